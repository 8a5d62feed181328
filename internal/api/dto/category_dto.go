package dto

import (
	"time"

	"github.com/spec-kit/bookstore-service/internal/domain"
)

// CategoryRequest payload for creating or updating a product category.
type CategoryRequest struct {
	Value       string `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"is_active,omitempty"`
}

// CategoryResponse representation of a product category.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Value       string    `json:"value"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(c *domain.ProductCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Value:       c.Value,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewCategoryResponses maps a slice of domain categories.
func NewCategoryResponses(categories []domain.ProductCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryResponse(&categories[i]))
	}
	return out
}
