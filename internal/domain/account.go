package domain

import "time"

// Account is a customer's login account. Each customer owns at most one.
// The password hash never leaves the server.
type Account struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountPatch carries the fields of a partial account update.
type AccountPatch struct {
	Username     *string
	PasswordHash *string
}
