package domain

import "time"

// Order statuses. An order moves pending -> paid exactly once and never back.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

type Order struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	TotalCents int64       `json:"totalCents"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"items,omitempty"`
}

// OrderItem is an immutable snapshot of a cart line at order creation time.
// PriceCents is copied from the cart, so later product price changes never
// affect historical orders.
type OrderItem struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"orderId"`
	ProductID  int64 `json:"productId"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"priceCents"`
}
