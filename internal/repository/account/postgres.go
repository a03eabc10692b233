package account

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
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "account").Logger()}
}

const accountColumns = `id, customer_id, username, password_hash, created_at`

func (r *postgresRepo) Create(ctx context.Context, a domain.Account) (*domain.Account, error) {
	const q = `
INSERT INTO accounts (customer_id, username, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + accountColumns
	return r.scanAccount(r.pool.QueryRow(ctx, q, a.CustomerID, a.Username, a.PasswordHash))
}

func (r *postgresRepo) GetByCustomer(ctx context.Context, customerID int64) (*domain.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, q, customerID))
}

func (r *postgresRepo) Update(ctx context.Context, customerID int64, patch domain.AccountPatch) (*domain.Account, error) {
	const q = `
UPDATE accounts
SET username      = COALESCE($1, username),
    password_hash = COALESCE($2, password_hash)
WHERE customer_id = $3
RETURNING ` + accountColumns
	return r.scanAccount(r.pool.QueryRow(ctx, q, patch.Username, patch.PasswordHash, customerID))
}

func (r *postgresRepo) DeleteByCustomer(ctx context.Context, customerID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE customer_id = $1`, customerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.CustomerID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Error().Err(err).Msg("scan account")
		return nil, err
	}
	return &a, nil
}
