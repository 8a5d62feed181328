package dto

import (
	"time"

	"github.com/spec-kit/bookstore-service/internal/domain"
)

// UserCreateRequest payload for admin-created users.
type UserCreateRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

// UserUpdateRequest payload for user updates. Roles replace the existing
// set when present.
type UserUpdateRequest struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Active bool     `json:"is_active"`
	Roles  []string `json:"roles,omitempty"`
}

// UserResponse representation of a user; the password hash never leaves the
// service.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"is_active"`
	Roles     []string  `json:"roles,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Active:    u.Active,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
