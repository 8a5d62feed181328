package dto

import (
	"time"

	"github.com/spec-kit/bookstore-service/internal/domain"
)

// PartnerGroupRequest payload for creating or updating a partner group.
type PartnerGroupRequest struct {
	Value       string `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"is_active,omitempty"`
}

// PartnerGroupResponse representation of a partner group.
type PartnerGroupResponse struct {
	ID          int64     `json:"id"`
	Value       string    `json:"value"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPartnerGroupResponse maps a domain group.
func NewPartnerGroupResponse(g *domain.PartnerGroup) PartnerGroupResponse {
	return PartnerGroupResponse{
		ID:          g.ID,
		Value:       g.Value,
		Name:        g.Name,
		Description: g.Description,
		Active:      g.Active,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// NewPartnerGroupResponses maps a slice of domain groups.
func NewPartnerGroupResponses(groups []domain.PartnerGroup) []PartnerGroupResponse {
	out := make([]PartnerGroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, NewPartnerGroupResponse(&groups[i]))
	}
	return out
}
