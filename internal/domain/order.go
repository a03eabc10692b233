package domain

import "time"

// Order statuses. Only "open" exists today; the column keeps the cart
// lookup unambiguous instead of relying on "first order found".
const OrderStatusOpen = "open"

// Order is a customer's order. The newest open order acts as the cart.
// Products are linked through a join table; a pair is never duplicated.
type Order struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Status     string    `json:"status"`
	Products   []Product `json:"products"`
	CreatedAt  time.Time `json:"created_at"`
}
