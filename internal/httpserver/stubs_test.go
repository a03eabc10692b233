package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront-api/internal/domain"
	accountsvc "storefront-api/internal/service/account"
	cartsvc "storefront-api/internal/service/cart"
	customersvc "storefront-api/internal/service/customer"
	productsvc "storefront-api/internal/service/product"
)

var errAny = errors.New("connection refused")

type stubCustomerRepo struct {
	created   *domain.Customer
	createErr error
	list      []domain.Customer
	byID      *domain.Customer
	byIDErr   error
	updated   *domain.Customer
	updateErr error
	deleteErr error
}

func (s *stubCustomerRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	c.ID = 1
	return &c, nil
}

func (s *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	return s.list, nil
}

func (s *stubCustomerRepo) GetByID(_ context.Context, _ int64) (*domain.Customer, error) {
	if s.byIDErr != nil {
		return nil, s.byIDErr
	}
	if s.byID == nil {
		return nil, domain.ErrNotFound
	}
	return s.byID, nil
}

func (s *stubCustomerRepo) Update(_ context.Context, _ int64, _ domain.CustomerPatch) (*domain.Customer, error) {
	return s.updated, s.updateErr
}

func (s *stubCustomerRepo) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

type stubProductRepo struct {
	created   *domain.Product
	createErr error
	list      []domain.Product
	byID      *domain.Product
	byIDErr   error
	deleteErr error
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	p.ID = 1
	return &p, nil
}

func (s *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	return s.list, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	if s.byIDErr != nil {
		return nil, s.byIDErr
	}
	if s.byID == nil {
		return nil, domain.ErrNotFound
	}
	return s.byID, nil
}

func (s *stubProductRepo) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

type stubOrderRepo struct {
	open      *domain.Order
	openErr   error
	created   *domain.Order
	createErr error
	byID      *domain.Order
	byCust    []domain.Order
	addErr    error
	removeErr error
}

func (s *stubOrderRepo) Create(_ context.Context, customerID int64) (*domain.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &domain.Order{ID: 99, CustomerID: customerID, Status: domain.OrderStatusOpen, Products: []domain.Product{}}, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	if s.byID != nil {
		return s.byID, nil
	}
	return &domain.Order{ID: id, Status: domain.OrderStatusOpen, Products: []domain.Product{}}, nil
}

func (s *stubOrderRepo) GetOpenByCustomer(_ context.Context, _ int64) (*domain.Order, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	if s.open == nil {
		return nil, domain.ErrNotFound
	}
	return s.open, nil
}

func (s *stubOrderRepo) ListByCustomer(_ context.Context, _ int64) ([]domain.Order, error) {
	if s.byCust == nil {
		return []domain.Order{}, nil
	}
	return s.byCust, nil
}

func (s *stubOrderRepo) AddProduct(_ context.Context, _, _ int64) error {
	return s.addErr
}

func (s *stubOrderRepo) RemoveProduct(_ context.Context, _, _ int64) error {
	return s.removeErr
}

type stubAccountRepo struct {
	created   *domain.Account
	createErr error
	byCust    *domain.Account
	byCustErr error
	updated   *domain.Account
	updateErr error
	deleteErr error
}

func (s *stubAccountRepo) Create(_ context.Context, a domain.Account) (*domain.Account, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	a.ID = 1
	return &a, nil
}

func (s *stubAccountRepo) GetByCustomer(_ context.Context, _ int64) (*domain.Account, error) {
	if s.byCustErr != nil {
		return nil, s.byCustErr
	}
	if s.byCust == nil {
		return nil, domain.ErrNotFound
	}
	return s.byCust, nil
}

func (s *stubAccountRepo) Update(_ context.Context, _ int64, _ domain.AccountPatch) (*domain.Account, error) {
	return s.updated, s.updateErr
}

func (s *stubAccountRepo) DeleteByCustomer(_ context.Context, _ int64) error {
	return s.deleteErr
}

type stubs struct {
	customers *stubCustomerRepo
	products  *stubProductRepo
	orders    *stubOrderRepo
	accounts  *stubAccountRepo
}

func newStubs() *stubs {
	return &stubs{
		customers: &stubCustomerRepo{},
		products:  &stubProductRepo{},
		orders:    &stubOrderRepo{},
		accounts:  &stubAccountRepo{},
	}
}

func (s *stubs) router() *gin.Engine {
	return buildRouter(zerolog.Nop(), nil, Deps{
		CustomerSvc: customersvc.New(s.customers, s.orders),
		ProductSvc:  productsvc.New(s.products),
		CartSvc:     cartsvc.New(s.orders, s.customers, s.products),
		AccountSvc:  accountsvc.New(s.accounts, s.customers),
	})
}
