package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"shop-api/internal/domain"
)

type Service struct {
	repo      paymentRepo
	orderRepo orderRepo
}

type paymentRepo interface {
	Settle(ctx context.Context, orderID int64, transactionID string) (*domain.Payment, error)
}

type orderRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

func New(repo paymentRepo, orders orderRepo) *Service {
	return &Service{repo: repo, orderRepo: orders}
}

// Settle pays for an order. Ownership and a pending status are checked up
// front for fast failures; the repository re-checks the status under the
// settlement transaction's row lock, so a concurrent settle of the same order
// still yields exactly one success. Insufficient stock for any item rolls the
// whole transaction back and is terminal for the attempt (no retry).
func (s *Service) Settle(ctx context.Context, actor *domain.User, orderID int64) (*domain.Payment, error) {
	ord, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}
	if ord.Status != domain.OrderStatusPending {
		return nil, domain.ErrAlreadyPaid
	}

	txnID, err := transactionID()
	if err != nil {
		return nil, err
	}
	return s.repo.Settle(ctx, orderID, txnID)
}

func transactionID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return "txn_" + hex.EncodeToString(b[:]), nil
}
