package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/repository"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

// RoleService manages role definitions.
type RoleService struct {
	repo repository.RoleRepository
}

// NewRoleService builds the service.
func NewRoleService(repo repository.RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

// Create stores a new role, rejecting duplicate names.
func (s *RoleService) Create(ctx context.Context, role *domain.Role) error {
	if _, err := s.repo.GetByName(ctx, role.Name); err == nil {
		return apperrors.NewConflict("role already exists", map[string]any{"name": role.Name})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	role.Active = true
	return s.repo.Create(ctx, role)
}

// List returns all roles.
func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.repo.List(ctx)
}

// GetByID returns one role.
func (s *RoleService) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("role", map[string]any{"id": id})
		}
		return nil, err
	}
	return role, nil
}

// Update modifies an existing role.
func (s *RoleService) Update(ctx context.Context, role *domain.Role) error {
	if err := s.repo.Update(ctx, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("role", map[string]any{"id": role.ID})
		}
		return err
	}
	return nil
}

// Delete removes a role.
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("role", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
