package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"storefront-api/internal/domain"
)

type accountsRepo interface {
	Create(ctx context.Context, a domain.Account) (*domain.Account, error)
	GetByCustomer(ctx context.Context, customerID int64) (*domain.Account, error)
	Update(ctx context.Context, customerID int64, patch domain.AccountPatch) (*domain.Account, error)
	DeleteByCustomer(ctx context.Context, customerID int64) error
}

type customersRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// Service manages customer accounts. Passwords are stored as bcrypt hashes;
// the raw credential is never persisted.
type Service struct {
	repo      accountsRepo
	customers customersRepo
}

func New(repo accountsRepo, customers customersRepo) *Service {
	return &Service{repo: repo, customers: customers}
}

// CreateInput captures a validated create payload.
type CreateInput struct {
	Username string
	Password string
}

// UpdateInput captures a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Username *string
	Password *string
}

func (s *Service) Create(ctx context.Context, customerID int64, in CreateInput) (*domain.Account, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Account{
		CustomerID:   customerID,
		Username:     in.Username,
		PasswordHash: string(hashed),
	})
}

func (s *Service) Get(ctx context.Context, customerID int64) (*domain.Account, error) {
	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *Service) Update(ctx context.Context, customerID int64, in UpdateInput) (*domain.Account, error) {
	patch := domain.AccountPatch{Username: in.Username}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash := string(hashed)
		patch.PasswordHash = &hash
	}
	return s.repo.Update(ctx, customerID, patch)
}

func (s *Service) Delete(ctx context.Context, customerID int64) error {
	return s.repo.DeleteByCustomer(ctx, customerID)
}
