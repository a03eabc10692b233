// Package seed loads a small sample dataset for local development.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Apply inserts sample customers and products. It is idempotent only in the
// sense that rerunning adds more rows; use a fresh database for demos.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	customers := []struct {
		name  string
		age   int
		phone string
		email string
	}{
		{"Ann Chovey", 30, "5550100", "ann@example.com"},
		{"Barry Cuda", 41, "", "barry@example.com"},
	}
	for _, c := range customers {
		var phone *string
		if c.phone != "" {
			phone = &c.phone
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO customers (name, age, phone_number, email) VALUES ($1, $2, $3, $4)`,
			c.name, c.age, phone, c.email,
		); err != nil {
			return fmt.Errorf("insert customer %s: %w", c.name, err)
		}
	}

	products := []struct {
		name  string
		price float64
	}{
		{"Mug", 9.99},
		{"T-Shirt", 19.50},
		{"Sticker Pack", 3.25},
	}
	for _, p := range products {
		if _, err := pool.Exec(ctx,
			`INSERT INTO products (name, price) VALUES ($1, $2)`,
			p.name, p.price,
		); err != nil {
			return fmt.Errorf("insert product %s: %w", p.name, err)
		}
	}

	return nil
}
