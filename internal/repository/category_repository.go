package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore-service/internal/domain"
)

// Whitelist of columns product categories may be filtered by.
var categorySearchColumns = map[string]string{
	"value":     "value",
	"name":      "name",
	"is_active": "is_active",
}

// CategoryRepository defines persistence access for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.ProductCategory) error
	Update(ctx context.Context, category *domain.ProductCategory) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ProductCategory, error)
	List(ctx context.Context) ([]domain.ProductCategory, error)
	ListByField(ctx context.Context, field string, value any) ([]domain.ProductCategory, error)
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed implementation.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.ProductCategory) error {
	const query = `
        INSERT INTO product_categories (value, name, description, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		category.Value,
		category.Name,
		category.Description,
		category.Active,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.ProductCategory) error {
	const query = `
        UPDATE product_categories SET value=$1, name=$2, description=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		category.Value,
		category.Name,
		category.Description,
		category.Active,
		category.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM product_categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.ProductCategory, error) {
	const query = `
        SELECT id, value, name, description, is_active, created_at, updated_at
        FROM product_categories WHERE id=$1`

	var category domain.ProductCategory
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Value,
		&category.Name,
		&category.Description,
		&category.Active,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.ProductCategory, error) {
	const query = `
        SELECT id, value, name, description, is_active, created_at, updated_at
        FROM product_categories ORDER BY id`
	return r.queryMany(ctx, query)
}

func (r *categoryRepository) ListByField(ctx context.Context, field string, value any) ([]domain.ProductCategory, error) {
	col, err := searchColumn(categorySearchColumns, field)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
        SELECT id, value, name, description, is_active, created_at, updated_at
        FROM product_categories WHERE %s=$1 ORDER BY id`, col)
	return r.queryMany(ctx, query, value)
}

func (r *categoryRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.ProductCategory, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.ProductCategory
	for rows.Next() {
		var category domain.ProductCategory
		if err := rows.Scan(
			&category.ID,
			&category.Value,
			&category.Name,
			&category.Description,
			&category.Active,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
