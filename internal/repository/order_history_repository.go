package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// OrderHistoryRepository stores audit snapshots of served order details.
type OrderHistoryRepository interface {
	Create(ctx context.Context, entry *domain.OrderHistoryLog) error
	ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderHistoryLog, error)
}

type orderHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewOrderHistoryRepository builds repository.
func NewOrderHistoryRepository(pool *pgxpool.Pool) OrderHistoryRepository {
	return &orderHistoryRepository{pool: pool}
}

func (r *orderHistoryRepository) Create(ctx context.Context, entry *domain.OrderHistoryLog) error {
	const query = `
        INSERT INTO order_history_log (customer_id, order_id, order_details)
        VALUES ($1, $2, $3)
        RETURNING log_id, logged_at`

	return r.pool.QueryRow(ctx, query,
		entry.CustomerID,
		entry.OrderID,
		entry.OrderDetails,
	).Scan(&entry.ID, &entry.LoggedAt)
}

func (r *orderHistoryRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderHistoryLog, error) {
	const query = `
        SELECT log_id, customer_id, order_id, order_details, logged_at
        FROM order_history_log WHERE order_id=$1 ORDER BY logged_at ASC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrderHistoryLog
	for rows.Next() {
		var entry domain.OrderHistoryLog
		if err := rows.Scan(
			&entry.ID,
			&entry.CustomerID,
			&entry.OrderID,
			&entry.OrderDetails,
			&entry.LoggedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
