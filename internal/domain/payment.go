package domain

import "time"

const PaymentStatusPaid = "paid"

// Payment records a successful settlement. Exactly one exists per paid order
// and its amount equals the order total at settlement time.
type Payment struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"orderId"`
	AmountCents   int64     `json:"amountCents"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}
