package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ErrUsernameTaken reports a unique constraint violation on the username
// column. The store-level constraint is the authority; the service's
// pre-check only exists for the friendly message.
var ErrUsernameTaken = errors.New("username already taken")

const uniqueViolationCode = "23505"

// CustomerRepository defines persistence access for customer credential records.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	GetByUsername(ctx context.Context, username string) (*domain.Customer, error)
	DeleteByUsername(ctx context.Context, username string) error
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customer (first_name, last_name, password, username, phone_numbers)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING customer_id, wallet_balance`

	err := r.pool.QueryRow(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.PasswordHash,
		customer.Username,
		customer.PhoneNumbers,
	).Scan(&customer.ID, &customer.WalletBalance)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customer SET first_name=$1, last_name=$2, password=$3, phone_numbers=$4
        WHERE username=$5`

	cmd, err := r.pool.Exec(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.PasswordHash,
		customer.PhoneNumbers,
		customer.Username,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	const query = `
        SELECT customer_id, first_name, last_name, password, username, wallet_balance, phone_numbers
        FROM customer WHERE username=$1`

	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.PasswordHash,
		&customer.Username,
		&customer.WalletBalance,
		&customer.PhoneNumbers,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) DeleteByUsername(ctx context.Context, username string) error {
	const query = `DELETE FROM customer WHERE username=$1`

	cmd, err := r.pool.Exec(ctx, query, username)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
