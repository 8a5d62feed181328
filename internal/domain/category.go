package domain

import "time"

// ProductCategory groups catalogue items in the book stock.
type ProductCategory struct {
	ID          int64
	Value       string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
