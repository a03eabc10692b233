package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"storefront-api/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "order").Logger()}
}

func (r *postgresRepo) Create(ctx context.Context, customerID int64) (*domain.Order, error) {
	const q = `
INSERT INTO orders (customer_id, status)
VALUES ($1, $2)
RETURNING id, customer_id, status, created_at
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, customerID, domain.OrderStatusOpen).Scan(&o.ID, &o.CustomerID, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.Products = []domain.Product{}
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `SELECT id, customer_id, status, created_at FROM orders WHERE id = $1`
	return r.fetchOrder(ctx, q, id)
}

// GetOpenByCustomer returns the customer's newest open order. Two concurrent
// first adds can each miss here and both create an order; the race exists in
// the source system and is accepted.
func (r *postgresRepo) GetOpenByCustomer(ctx context.Context, customerID int64) (*domain.Order, error) {
	const q = `
SELECT id, customer_id, status, created_at
FROM orders
WHERE customer_id = $1 AND status = $2
ORDER BY created_at DESC
LIMIT 1
`
	return r.fetchOrder(ctx, q, customerID, domain.OrderStatusOpen)
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	const q = `SELECT id, customer_id, status, created_at FROM orders WHERE customer_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		products, err := r.fetchProducts(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Products = products
	}
	return orders, nil
}

func (r *postgresRepo) AddProduct(ctx context.Context, orderID, productID int64) error {
	const q = `INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, q, orderID, productID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrProductInCart
		}
		return err
	}
	return nil
}

func (r *postgresRepo) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	const q = `DELETE FROM order_products WHERE order_id = $1 AND product_id = $2`
	cmd, err := r.pool.Exec(ctx, q, orderID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotInCart
	}
	return nil
}

func (r *postgresRepo) fetchOrder(ctx context.Context, query string, args ...interface{}) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CustomerID, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Msg("scan order")
		return nil, err
	}

	products, err := r.fetchProducts(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Products = products
	return &o, nil
}

func (r *postgresRepo) fetchProducts(ctx context.Context, orderID int64) ([]domain.Product, error) {
	const q = `
SELECT p.id, p.name, p.price, p.created_at
FROM order_products op
JOIN products p ON p.id = op.product_id
WHERE op.order_id = $1
ORDER BY p.id
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("scan order product")
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
