package account

import (
	"context"

	"storefront-api/internal/domain"
)

// Repository persists customer accounts.
type Repository interface {
	Create(ctx context.Context, a domain.Account) (*domain.Account, error)
	GetByCustomer(ctx context.Context, customerID int64) (*domain.Account, error)
	Update(ctx context.Context, customerID int64, patch domain.AccountPatch) (*domain.Account, error)
	DeleteByCustomer(ctx context.Context, customerID int64) error
}
