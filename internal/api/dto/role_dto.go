package dto

import (
	"time"

	"github.com/spec-kit/bookstore-service/internal/domain"
)

// RoleRequest payload for creating or updating a role.
type RoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"is_active,omitempty"`
}

// RoleResponse representation of a role.
type RoleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRoleResponse maps a domain role.
func NewRoleResponse(r *domain.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// NewRoleResponses maps a slice of domain roles.
func NewRoleResponses(roles []domain.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, NewRoleResponse(&roles[i]))
	}
	return out
}
