package dto

import (
	"time"

	"github.com/spec-kit/bookstore-service/internal/domain"
)

// PartnerRequest payload for creating or updating a business partner.
type PartnerRequest struct {
	Value       string `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"is_active,omitempty"`
	Customer    bool   `json:"is_customer"`
	Author      bool   `json:"is_author"`
	Employee    bool   `json:"is_employee"`
	ProfileURL  string `json:"profile_url"`
	Gender      string `json:"gender"`
	GroupID     int64  `json:"group_id"`
}

// PartnerResponse representation of a business partner.
type PartnerResponse struct {
	ID          int64     `json:"id"`
	Value       string    `json:"value"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"is_active"`
	Customer    bool      `json:"is_customer"`
	Author      bool      `json:"is_author"`
	Employee    bool      `json:"is_employee"`
	ProfileURL  string    `json:"profile_url"`
	Gender      string    `json:"gender"`
	GroupID     int64     `json:"group_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPartnerResponse maps a domain partner.
func NewPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		ID:          p.ID,
		Value:       p.Value,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		Customer:    p.Customer,
		Author:      p.Author,
		Employee:    p.Employee,
		ProfileURL:  p.ProfileURL,
		Gender:      string(p.Gender),
		GroupID:     p.GroupID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewPartnerResponses maps a slice of domain partners.
func NewPartnerResponses(partners []domain.Partner) []PartnerResponse {
	out := make([]PartnerResponse, 0, len(partners))
	for i := range partners {
		out = append(out, NewPartnerResponse(&partners[i]))
	}
	return out
}
