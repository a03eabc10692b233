package product

import (
	"context"

	"storefront-api/internal/domain"
)

type productsRepo interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles product catalog operations.
type Service struct {
	repo productsRepo
}

func New(repo productsRepo) *Service {
	return &Service{repo: repo}
}

// CreateInput captures a validated create payload.
type CreateInput struct {
	Name  string
	Price float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	return s.repo.Create(ctx, domain.Product{Name: in.Name, Price: in.Price})
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
