package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// AddressRepository encapsulates address persistence.
type AddressRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Address, error)
}

type addressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository instantiates repository.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

func (r *addressRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Address, error) {
	const query = `
        SELECT address_id, street_name, street_number, country, city, postal_code, province, customer_id
        FROM address WHERE customer_id=$1 ORDER BY address_id`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		var address domain.Address
		if err := rows.Scan(
			&address.ID,
			&address.StreetName,
			&address.StreetNumber,
			&address.Country,
			&address.City,
			&address.PostalCode,
			&address.Province,
			&address.CustomerID,
		); err != nil {
			return nil, err
		}
		result = append(result, address)
	}
	return result, rows.Err()
}
