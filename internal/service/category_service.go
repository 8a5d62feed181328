package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/persistence"
	"github.com/spec-kit/bookstore-service/internal/repository"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

const (
	categoryListCacheKey = "categories:all"
	categoryListCacheTTL = 60 * time.Second
)

// CategoryService manages product categories. The full listing is cached in
// Redis and invalidated on every write.
type CategoryService struct {
	repo   repository.CategoryRepository
	cache  *persistence.Redis
	logger *zap.Logger
}

// NewCategoryService builds the service.
func NewCategoryService(repo repository.CategoryRepository, cache *persistence.Redis, logger *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, cache: cache, logger: logger}
}

// Create stores a new category, active by default.
func (s *CategoryService) Create(ctx context.Context, category *domain.ProductCategory) error {
	category.Active = true
	if err := s.repo.Create(ctx, category); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// List returns all categories, served from cache when fresh.
func (s *CategoryService) List(ctx context.Context) ([]domain.ProductCategory, error) {
	if cached, err := s.cache.GetString(ctx, categoryListCacheKey); err == nil {
		var categories []domain.ProductCategory
		if err := json.Unmarshal([]byte(cached), &categories); err == nil {
			return categories, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("category cache read failed", zap.Error(err))
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(categories); err == nil {
		if err := s.cache.SetString(ctx, categoryListCacheKey, string(encoded), categoryListCacheTTL); err != nil {
			s.logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

// GetByID returns one category.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*domain.ProductCategory, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product category", map[string]any{"id": id})
		}
		return nil, err
	}
	return category, nil
}

// Search filters categories by one of the enumerated fields.
func (s *CategoryService) Search(ctx context.Context, field string, value any) ([]domain.ProductCategory, error) {
	categories, err := s.repo.ListByField(ctx, field, value)
	if err != nil {
		if errors.Is(err, repository.ErrUnsupportedSearchField) {
			return nil, apperrors.NewValidationError("unsupported search field", map[string]any{"field": field})
		}
		return nil, err
	}
	return categories, nil
}

// Update modifies an existing category.
func (s *CategoryService) Update(ctx context.Context, category *domain.ProductCategory) error {
	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product category", map[string]any{"id": category.ID})
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product category", map[string]any{"id": id})
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CategoryService) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, categoryListCacheKey); err != nil {
		s.logger.Warn("category cache invalidation failed", zap.Error(err))
	}
}
