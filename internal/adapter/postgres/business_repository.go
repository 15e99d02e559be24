package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkfolio-promos/internal/core/domain"
)

// BusinessRepository implements port.BusinessRepository using pgxpool.
type BusinessRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository returns a new repository instance.
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

// GetByID returns a business by id, or nil when absent.
func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	var b domain.Business
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, budget_cents, created_at FROM businesses WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.BudgetCents, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
