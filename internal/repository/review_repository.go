package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ReviewRepository encapsulates review persistence.
type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository instantiates repository.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	const query = `
        SELECT review_id, rating, comment, customer_id, product_id
        FROM review WHERE product_id=$1 ORDER BY review_id`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.Rating,
			&review.Comment,
			&review.CustomerID,
			&review.ProductID,
		); err != nil {
			return nil, err
		}
		result = append(result, review)
	}
	return result, rows.Err()
}
