package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// FavoriteRepository encapsulates favorite list persistence.
type FavoriteRepository interface {
	GetByCustomer(ctx context.Context, customerID int64) (*domain.FavoriteList, error)
	ListItems(ctx context.Context, favoriteID int64) ([]domain.FavoriteListItem, error)
}

type favoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository instantiates repository.
func NewFavoriteRepository(pool *pgxpool.Pool) FavoriteRepository {
	return &favoriteRepository{pool: pool}
}

func (r *favoriteRepository) GetByCustomer(ctx context.Context, customerID int64) (*domain.FavoriteList, error) {
	const query = `
        SELECT favorite_id, total_price, create_date, customer_id
        FROM favorite_list WHERE customer_id=$1`

	var list domain.FavoriteList
	if err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&list.ID,
		&list.TotalPrice,
		&list.CreateDate,
		&list.CustomerID,
	); err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *favoriteRepository) ListItems(ctx context.Context, favoriteID int64) ([]domain.FavoriteListItem, error) {
	const query = `
        SELECT favorite_id, product_id, quantity
        FROM favorite_list_items WHERE favorite_id=$1 ORDER BY product_id`

	rows, err := r.pool.Query(ctx, query, favoriteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.FavoriteListItem
	for rows.Next() {
		var item domain.FavoriteListItem
		if err := rows.Scan(&item.FavoriteID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
