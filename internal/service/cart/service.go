package cart

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
)

type ordersRepo interface {
	Create(ctx context.Context, customerID int64) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetOpenByCustomer(ctx context.Context, customerID int64) (*domain.Order, error)
	AddProduct(ctx context.Context, orderID, productID int64) error
	RemoveProduct(ctx context.Context, orderID, productID int64) error
}

type customersRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type productsRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// Service manages the open order a customer uses as a cart.
type Service struct {
	orders    ordersRepo
	customers customersRepo
	products  productsRepo
}

func New(orders ordersRepo, customers customersRepo, products productsRepo) *Service {
	return &Service{orders: orders, customers: customers, products: products}
}

// Get returns the customer's open order, or (nil, nil) when the cart is
// empty. A missing customer is domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, customerID int64) (*domain.Order, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	order, err := s.orders.GetOpenByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

// AddProduct links a product to the customer's open order, creating the
// order on first add. Adding a product already in the cart fails with
// domain.ErrProductInCart.
func (s *Service) AddProduct(ctx context.Context, customerID, productID int64) (*domain.Order, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	order, err := s.orders.GetOpenByCustomer(ctx, customerID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		order, err = s.orders.Create(ctx, customerID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.orders.AddProduct(ctx, order.ID, productID); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, order.ID)
}

// RemoveProduct unlinks a product from the customer's open order.
func (s *Service) RemoveProduct(ctx context.Context, customerID, productID int64) error {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return err
	}

	order, err := s.orders.GetOpenByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNoOpenOrder
		}
		return err
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}

	return s.orders.RemoveProduct(ctx, order.ID, productID)
}
