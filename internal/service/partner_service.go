package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/repository"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

const defaultProfileURL = "https://www.svgrepo.com/show/452030/avatar-default.svg"

// PartnerService manages business partners.
type PartnerService struct {
	repo   repository.PartnerRepository
	groups repository.PartnerGroupRepository
}

// NewPartnerService builds the service.
func NewPartnerService(repo repository.PartnerRepository, groups repository.PartnerGroupRepository) *PartnerService {
	return &PartnerService{repo: repo, groups: groups}
}

// Create stores a new partner after verifying its group exists.
func (s *PartnerService) Create(ctx context.Context, partner *domain.Partner) error {
	if _, err := s.groups.GetByID(ctx, partner.GroupID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("unknown partner group", map[string]any{"group_id": partner.GroupID})
		}
		return err
	}

	partner.Active = true
	if partner.ProfileURL == "" {
		partner.ProfileURL = defaultProfileURL
	}
	return s.repo.Create(ctx, partner)
}

// List returns all partners.
func (s *PartnerService) List(ctx context.Context) ([]domain.Partner, error) {
	return s.repo.List(ctx)
}

// GetByID returns one partner.
func (s *PartnerService) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	partner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("partner", map[string]any{"id": id})
		}
		return nil, err
	}
	return partner, nil
}

// Search filters partners by one of the enumerated fields.
func (s *PartnerService) Search(ctx context.Context, field string, value any) ([]domain.Partner, error) {
	partners, err := s.repo.ListByField(ctx, field, value)
	if err != nil {
		if errors.Is(err, repository.ErrUnsupportedSearchField) {
			return nil, apperrors.NewValidationError("unsupported search field", map[string]any{"field": field})
		}
		return nil, err
	}
	return partners, nil
}

// Update modifies an existing partner.
func (s *PartnerService) Update(ctx context.Context, partner *domain.Partner) error {
	if err := s.repo.Update(ctx, partner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("partner", map[string]any{"id": partner.ID})
		}
		return err
	}
	return nil
}

// Delete removes a partner.
func (s *PartnerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("partner", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
