package order

import (
	"context"

	"storefront-api/internal/domain"
)

// Repository persists orders and their product links.
type Repository interface {
	Create(ctx context.Context, customerID int64) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetOpenByCustomer(ctx context.Context, customerID int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	AddProduct(ctx context.Context, orderID, productID int64) error
	RemoveProduct(ctx context.Context, orderID, productID int64) error
}
