package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrProductInCart is returned when adding a product already linked to the order.
	ErrProductInCart = errors.New("product already in cart")
	// ErrNoOpenOrder is returned when a customer has no open order to operate on.
	ErrNoOpenOrder = errors.New("no open order")
	// ErrProductNotInCart is returned when removing a product the order does not hold.
	ErrProductNotInCart = errors.New("product not in cart")
)
