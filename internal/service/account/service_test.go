package account

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"storefront-api/internal/domain"
)

type stubAccounts struct {
	created   *domain.Account
	createErr error
	lastInput domain.Account
	byCust    *domain.Account
	byCustErr error
	updated   *domain.Account
	updateErr error
	lastPatch domain.AccountPatch
	deleteErr error
}

func (s *stubAccounts) Create(_ context.Context, a domain.Account) (*domain.Account, error) {
	s.lastInput = a
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	a.ID = 1
	return &a, nil
}

func (s *stubAccounts) GetByCustomer(_ context.Context, _ int64) (*domain.Account, error) {
	return s.byCust, s.byCustErr
}

func (s *stubAccounts) Update(_ context.Context, _ int64, patch domain.AccountPatch) (*domain.Account, error) {
	s.lastPatch = patch
	return s.updated, s.updateErr
}

func (s *stubAccounts) DeleteByCustomer(_ context.Context, _ int64) error {
	return s.deleteErr
}

type stubCustomers struct {
	err error
}

func (s *stubCustomers) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Customer{ID: id, Name: "Ann", Age: 30, Email: "a@x.com"}, nil
}

func TestCreateHashesPassword(t *testing.T) {
	repo := &stubAccounts{}
	svc := New(repo, &stubCustomers{})
	created, err := svc.Create(context.Background(), 1, CreateInput{Username: "ann", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastInput.PasswordHash == "s3cret-pass" {
		t.Fatalf("raw password must not be stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastInput.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if created.Username != "ann" {
		t.Fatalf("unexpected account %+v", created)
	}
}

func TestCreateMissingCustomer(t *testing.T) {
	svc := New(&stubAccounts{}, &stubCustomers{err: domain.ErrNotFound})
	_, err := svc.Create(context.Background(), 1, CreateInput{Username: "ann", Password: "s3cret-pass"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	svc := New(&stubAccounts{createErr: domain.ErrAlreadyExists}, &stubCustomers{})
	_, err := svc.Create(context.Background(), 1, CreateInput{Username: "ann", Password: "s3cret-pass"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := &stubAccounts{updated: &domain.Account{ID: 1, CustomerID: 1, Username: "ann"}}
	svc := New(repo, &stubCustomers{})
	password := "new-password"
	if _, err := svc.Update(context.Background(), 1, UpdateInput{Password: &password}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPatch.PasswordHash == nil {
		t.Fatalf("expected password hash in patch")
	}
	if *repo.lastPatch.PasswordHash == password {
		t.Fatalf("raw password must not be stored")
	}
	if repo.lastPatch.Username != nil {
		t.Fatalf("username should stay nil in patch: %+v", repo.lastPatch)
	}
}

func TestUpdateUsernameOnly(t *testing.T) {
	repo := &stubAccounts{updated: &domain.Account{ID: 1, CustomerID: 1, Username: "annie"}}
	svc := New(repo, &stubCustomers{})
	username := "annie"
	if _, err := svc.Update(context.Background(), 1, UpdateInput{Username: &username}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPatch.PasswordHash != nil {
		t.Fatalf("password hash should stay nil when password absent")
	}
}
