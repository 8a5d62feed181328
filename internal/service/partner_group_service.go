package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/repository"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

// PartnerGroupService manages partner groups.
type PartnerGroupService struct {
	repo repository.PartnerGroupRepository
}

// NewPartnerGroupService builds the service.
func NewPartnerGroupService(repo repository.PartnerGroupRepository) *PartnerGroupService {
	return &PartnerGroupService{repo: repo}
}

// Create stores a new group, active by default.
func (s *PartnerGroupService) Create(ctx context.Context, group *domain.PartnerGroup) error {
	group.Active = true
	return s.repo.Create(ctx, group)
}

// List returns all groups.
func (s *PartnerGroupService) List(ctx context.Context) ([]domain.PartnerGroup, error) {
	return s.repo.List(ctx)
}

// GetByID returns one group.
func (s *PartnerGroupService) GetByID(ctx context.Context, id int64) (*domain.PartnerGroup, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("partner group", map[string]any{"id": id})
		}
		return nil, err
	}
	return group, nil
}

// Search filters groups by one of the enumerated fields.
func (s *PartnerGroupService) Search(ctx context.Context, field string, value any) ([]domain.PartnerGroup, error) {
	groups, err := s.repo.ListByField(ctx, field, value)
	if err != nil {
		if errors.Is(err, repository.ErrUnsupportedSearchField) {
			return nil, apperrors.NewValidationError("unsupported search field", map[string]any{"field": field})
		}
		return nil, err
	}
	return groups, nil
}

// Update modifies an existing group.
func (s *PartnerGroupService) Update(ctx context.Context, group *domain.PartnerGroup) error {
	if err := s.repo.Update(ctx, group); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("partner group", map[string]any{"id": group.ID})
		}
		return err
	}
	return nil
}

// Delete removes a group.
func (s *PartnerGroupService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("partner group", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
