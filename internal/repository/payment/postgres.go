package payment

import (
	"context"
	"errors"
	"io"
	"log"

	"shop-api/internal/domain"
	productrepo "shop-api/internal/repository/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	stock  StockDecrementer
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, stock StockDecrementer, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, stock: stock, logger: logger}
}

func (r *postgresRepo) Settle(ctx context.Context, orderID int64, transactionID string) (*domain.Payment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The status check must happen under the row lock, not before the
	// transaction, so two concurrent settles resolve to one winner.
	var status string
	var totalCents int64
	err = tx.QueryRow(ctx, `
SELECT status, total_cents
FROM orders
WHERE id = $1
FOR UPDATE
`, orderID).Scan(&status, &totalCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if status != domain.OrderStatusPending {
		return nil, domain.ErrAlreadyPaid
	}

	rows, err := tx.Query(ctx, `
SELECT oi.product_id, oi.quantity, p.name
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1
ORDER BY oi.product_id ASC
`, orderID)
	if err != nil {
		return nil, err
	}

	type settleLine struct {
		productID int64
		quantity  int
		name      string
	}
	var lines []settleLine
	for rows.Next() {
		var l settleLine
		if err := rows.Scan(&l.productID, &l.quantity, &l.name); err != nil {
			rows.Close()
			return nil, err
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, l := range lines {
		if err := r.stock.TryDecrementStock(ctx, tx, l.productID, l.quantity); err != nil {
			if errors.Is(err, productrepo.ErrInsufficientStock) {
				r.logger.Printf("payment repo: settle order_id=%d insufficient stock product_id=%d", orderID, l.productID)
				return nil, &domain.InsufficientStockError{ProductID: l.productID, ProductName: l.name}
			}
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `
UPDATE orders
SET status = $2
WHERE id = $1
`, orderID, domain.OrderStatusPaid); err != nil {
		return nil, err
	}

	var pay domain.Payment
	if err := tx.QueryRow(ctx, `
INSERT INTO payments (order_id, amount_cents, status, transaction_id)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, amount_cents, status, transaction_id, created_at
`, orderID, totalCents, domain.PaymentStatusPaid, transactionID).
		Scan(&pay.ID, &pay.OrderID, &pay.AmountCents, &pay.Status, &pay.TransactionID, &pay.CreatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	r.logger.Printf("payment repo: settled order_id=%d amount_cents=%d txn=%s", orderID, totalCents, transactionID)
	return &pay, nil
}

func (r *postgresRepo) GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	var pay domain.Payment
	err := r.pool.QueryRow(ctx, `
SELECT id, order_id, amount_cents, status, transaction_id, created_at
FROM payments
WHERE order_id = $1
`, orderID).Scan(&pay.ID, &pay.OrderID, &pay.AmountCents, &pay.Status, &pay.TransactionID, &pay.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &pay, nil
}

func (r *postgresRepo) ListPage(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, order_id, amount_cents, status, transaction_id, created_at
FROM payments
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Payment
	for rows.Next() {
		var pay domain.Payment
		if err := rows.Scan(&pay.ID, &pay.OrderID, &pay.AmountCents, &pay.Status, &pay.TransactionID, &pay.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, pay)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}
