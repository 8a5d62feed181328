package domain

import "time"

// PartnerGroup classifies business partners (wholesale, retail, author pool).
type PartnerGroup struct {
	ID          int64
	Value       string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
