package domain

import "time"

// CartOwner identifies whose cart a row belongs to: a guest session or a
// registered user, never both. The zero value is invalid.
type CartOwner struct {
	SessionID string
	UserID    int64
}

// SessionOwner keys a cart by an anonymous session id.
func SessionOwner(sessionID string) CartOwner {
	return CartOwner{SessionID: sessionID}
}

// UserOwner keys a cart by a registered user id.
func UserOwner(userID int64) CartOwner {
	return CartOwner{UserID: userID}
}

// IsUser reports whether the owner is a registered user.
func (o CartOwner) IsUser() bool {
	return o.UserID != 0
}

type CartItem struct {
	ID         int64     `json:"id"`
	SessionID  *string   `json:"-"`
	UserID     *int64    `json:"userId,omitempty"`
	ProductID  int64     `json:"productId"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TotalCents is the line total at the stored unit price.
func (i CartItem) TotalCents() int64 {
	return int64(i.Quantity) * i.PriceCents
}
