package domain

import "time"

// User is the domain model for accounts that can authenticate.
// Accounts start inactive and are activated through email confirmation.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Active       bool
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user carries the given role name.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}
