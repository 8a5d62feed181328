package domain

import "time"

// RoleAdmin is required for user and role management endpoints.
const RoleAdmin = "ADMIN"

// Role names grant access to protected endpoints via the bearer token's
// roles claim.
type Role struct {
	ID          int64
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
