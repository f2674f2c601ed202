package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
        SELECT order_id, order_date, total_price, status, customer_id, address_id
        FROM "order" WHERE order_id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.OrderDate,
		&order.TotalPrice,
		&order.Status,
		&order.CustomerID,
		&order.AddressID,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const query = `
        SELECT order_id, product_id, quantity
        FROM order_items WHERE order_id=$1 ORDER BY product_id`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
