package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"storefront-api/internal/httpserver"
	"storefront-api/internal/migrate"
	accountrepo "storefront-api/internal/repository/account"
	customerrepo "storefront-api/internal/repository/customer"
	orderrepo "storefront-api/internal/repository/order"
	productrepo "storefront-api/internal/repository/product"
	accountsvc "storefront-api/internal/service/account"
	cartsvc "storefront-api/internal/service/cart"
	customersvc "storefront-api/internal/service/customer"
	productsvc "storefront-api/internal/service/product"
)

// SetupTestDB starts a disposable Postgres container, applies migrations,
// and returns a connected pool. The container is torn down with the test.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storetest"),
		postgres.WithUsername("storetest"),
		postgres.WithPassword("storetest"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err, "start postgres container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "container connection string")

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err, "connect pool")
	require.NoError(t, pool.Ping(ctx), "ping database")

	require.NoError(t, migrate.Apply(ctx, pool), "apply migrations")

	t.Cleanup(func() {
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	return pool
}

// NewAPIServer wires the full service stack against the given pool.
func NewAPIServer(pool *pgxpool.Pool) *httpserver.Server {
	logger := zerolog.Nop()

	customerRepo := customerrepo.NewPostgres(pool, logger)
	productRepo := productrepo.NewPostgres(pool, logger)
	orderRepo := orderrepo.NewPostgres(pool, logger)
	accountRepo := accountrepo.NewPostgres(pool, logger)

	return httpserver.New(":0", logger, pool, httpserver.Deps{
		CustomerSvc: customersvc.New(customerRepo, orderRepo),
		ProductSvc:  productsvc.New(productRepo),
		CartSvc:     cartsvc.New(orderRepo, customerRepo, productRepo),
		AccountSvc:  accountsvc.New(accountRepo, customerRepo),
	})
}
