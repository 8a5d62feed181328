package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore-service/internal/auth"
	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/repository"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

// UserService manages admin-side user accounts. Self-registration goes
// through AuthService; these operations are for back-office management.
type UserService struct {
	repo       repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(repo repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{repo: repo, bcryptCost: bcryptCost}
}

// Create stores a new user with a hashed password and optional roles.
// Admin-created accounts start active.
func (s *UserService) Create(ctx context.Context, name, email, password string, roles []string) (*domain.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewEmailAlreadyExists()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		Roles:        roles,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// GetByID returns one user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// EmailExists reports whether an email is already registered.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Update modifies name, email, activity flag and roles of an existing user.
func (s *UserService) Update(ctx context.Context, id int64, name, email string, active bool, roles []string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}

	user.Name = name
	user.Email = email
	user.Active = active
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if roles != nil {
		if err := s.repo.ReplaceRoles(ctx, user.ID, roles); err != nil {
			return nil, err
		}
		user.Roles = roles
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
