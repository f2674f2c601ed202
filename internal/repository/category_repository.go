package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// CategoryRepository encapsulates category lookups.
type CategoryRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Category, error)
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository instantiates repository.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	const query = `SELECT category_id, name FROM category WHERE name=$1 LIMIT 1`

	var category domain.Category
	if err := r.pool.QueryRow(ctx, query, name).Scan(&category.ID, &category.Name); err != nil {
		return nil, err
	}
	return &category, nil
}
