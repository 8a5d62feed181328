package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore-service/internal/domain"
)

var partnerSearchColumns = map[string]string{
	"value":       "value",
	"name":        "name",
	"is_active":   "is_active",
	"is_customer": "is_customer",
	"is_author":   "is_author",
	"is_employee": "is_employee",
	"group_id":    "group_id",
}

// PartnerRepository defines persistence access for business partners.
type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	Update(ctx context.Context, partner *domain.Partner) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Partner, error)
	List(ctx context.Context) ([]domain.Partner, error)
	ListByField(ctx context.Context, field string, value any) ([]domain.Partner, error)
}

type partnerRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository returns a Postgres-backed implementation.
func NewPartnerRepository(pool *pgxpool.Pool) PartnerRepository {
	return &partnerRepository{pool: pool}
}

const partnerColumns = `id, value, name, description, is_active, is_customer, is_author, is_employee, profile_url, gender, group_id, created_at, updated_at`

func (r *partnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	const query = `
        INSERT INTO partners (value, name, description, is_active, is_customer, is_author, is_employee, profile_url, gender, group_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		partner.Value,
		partner.Name,
		partner.Description,
		partner.Active,
		partner.Customer,
		partner.Author,
		partner.Employee,
		partner.ProfileURL,
		partner.Gender,
		partner.GroupID,
	).Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)
}

func (r *partnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	const query = `
        UPDATE partners SET value=$1, name=$2, description=$3, is_active=$4, is_customer=$5,
            is_author=$6, is_employee=$7, profile_url=$8, gender=$9, group_id=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		partner.Value,
		partner.Name,
		partner.Description,
		partner.Active,
		partner.Customer,
		partner.Author,
		partner.Employee,
		partner.ProfileURL,
		partner.Gender,
		partner.GroupID,
		partner.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	query := fmt.Sprintf(`SELECT %s FROM partners WHERE id=$1`, partnerColumns)

	var partner domain.Partner
	if err := r.scanOne(r.pool.QueryRow(ctx, query, id), &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	query := fmt.Sprintf(`SELECT %s FROM partners ORDER BY id`, partnerColumns)
	return r.queryMany(ctx, query)
}

func (r *partnerRepository) ListByField(ctx context.Context, field string, value any) ([]domain.Partner, error) {
	col, err := searchColumn(partnerSearchColumns, field)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM partners WHERE %s=$1 ORDER BY id`, partnerColumns, col)
	return r.queryMany(ctx, query, value)
}

func (r *partnerRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Partner, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var partner domain.Partner
		if err := r.scanOne(rows, &partner); err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, rows.Err()
}

func (r *partnerRepository) scanOne(row pgx.Row, partner *domain.Partner) error {
	return row.Scan(
		&partner.ID,
		&partner.Value,
		&partner.Name,
		&partner.Description,
		&partner.Active,
		&partner.Customer,
		&partner.Author,
		&partner.Employee,
		&partner.ProfileURL,
		&partner.Gender,
		&partner.GroupID,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	)
}
