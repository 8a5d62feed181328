package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore-service/internal/domain"
)

var partnerGroupSearchColumns = map[string]string{
	"value":     "value",
	"name":      "name",
	"is_active": "is_active",
}

// PartnerGroupRepository defines persistence access for partner groups.
type PartnerGroupRepository interface {
	Create(ctx context.Context, group *domain.PartnerGroup) error
	Update(ctx context.Context, group *domain.PartnerGroup) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.PartnerGroup, error)
	List(ctx context.Context) ([]domain.PartnerGroup, error)
	ListByField(ctx context.Context, field string, value any) ([]domain.PartnerGroup, error)
}

type partnerGroupRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerGroupRepository returns a Postgres-backed implementation.
func NewPartnerGroupRepository(pool *pgxpool.Pool) PartnerGroupRepository {
	return &partnerGroupRepository{pool: pool}
}

func (r *partnerGroupRepository) Create(ctx context.Context, group *domain.PartnerGroup) error {
	const query = `
        INSERT INTO partner_groups (value, name, description, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		group.Value,
		group.Name,
		group.Description,
		group.Active,
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
}

func (r *partnerGroupRepository) Update(ctx context.Context, group *domain.PartnerGroup) error {
	const query = `
        UPDATE partner_groups SET value=$1, name=$2, description=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		group.Value,
		group.Name,
		group.Description,
		group.Active,
		group.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerGroupRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partner_groups WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerGroupRepository) GetByID(ctx context.Context, id int64) (*domain.PartnerGroup, error) {
	const query = `
        SELECT id, value, name, description, is_active, created_at, updated_at
        FROM partner_groups WHERE id=$1`

	var group domain.PartnerGroup
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.Value,
		&group.Name,
		&group.Description,
		&group.Active,
		&group.CreatedAt,
		&group.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *partnerGroupRepository) List(ctx context.Context) ([]domain.PartnerGroup, error) {
	const query = `
        SELECT id, value, name, description, is_active, created_at, updated_at
        FROM partner_groups ORDER BY id`
	return r.queryMany(ctx, query)
}

func (r *partnerGroupRepository) ListByField(ctx context.Context, field string, value any) ([]domain.PartnerGroup, error) {
	col, err := searchColumn(partnerGroupSearchColumns, field)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
        SELECT id, value, name, description, is_active, created_at, updated_at
        FROM partner_groups WHERE %s=$1 ORDER BY id`, col)
	return r.queryMany(ctx, query, value)
}

func (r *partnerGroupRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.PartnerGroup, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.PartnerGroup
	for rows.Next() {
		var group domain.PartnerGroup
		if err := rows.Scan(
			&group.ID,
			&group.Value,
			&group.Name,
			&group.Description,
			&group.Active,
			&group.CreatedAt,
			&group.UpdatedAt,
		); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
