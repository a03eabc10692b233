package domain

import "time"

// Customer represents a registered storefront customer.
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Email       string    `json:"email"`
	Orders      []Order   `json:"orders"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomerPatch carries the fields of a partial update. Nil means "leave as is".
type CustomerPatch struct {
	Name        *string
	Age         *int
	PhoneNumber *string
	Email       *string
}
