package customer

import (
	"context"

	"storefront-api/internal/domain"
)

type customersRepo interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type ordersRepo interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
}

// Service handles customer CRUD and assembles nested orders for responses.
type Service struct {
	repo   customersRepo
	orders ordersRepo
}

func New(repo customersRepo, orders ordersRepo) *Service {
	return &Service{repo: repo, orders: orders}
}

// CreateInput captures a validated create payload.
type CreateInput struct {
	Name        string
	Age         int
	PhoneNumber *string
	Email       string
}

// UpdateInput captures a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Age         *int
	PhoneNumber *string
	Email       *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	created, err := s.repo.Create(ctx, domain.Customer{
		Name:        in.Name,
		Age:         in.Age,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
	})
	if err != nil {
		return nil, err
	}
	created.Orders = []domain.Order{}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		orders, err := s.orders.ListByCustomer(ctx, customers[i].ID)
		if err != nil {
			return nil, err
		}
		customers[i].Orders = orders
	}
	return customers, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByCustomer(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Orders = orders
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Customer, error) {
	updated, err := s.repo.Update(ctx, id, domain.CustomerPatch{
		Name:        in.Name,
		Age:         in.Age,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
	})
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByCustomer(ctx, updated.ID)
	if err != nil {
		return nil, err
	}
	updated.Orders = orders
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
