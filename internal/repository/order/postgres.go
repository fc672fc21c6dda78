package order

import (
	"context"
	"errors"
	"io"
	"log"

	"shop-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) CreateFromCart(ctx context.Context, userID int64) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
SELECT product_id, quantity, price_cents
FROM cart_items
WHERE user_id = $1
ORDER BY created_at ASC
`, userID)
	if err != nil {
		return nil, err
	}

	type cartLine struct {
		productID  int64
		quantity   int
		priceCents int64
	}
	var lines []cartLine
	for rows.Next() {
		var l cartLine
		if err := rows.Scan(&l.productID, &l.quantity, &l.priceCents); err != nil {
			rows.Close()
			return nil, err
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var total int64
	for _, l := range lines {
		total += int64(l.quantity) * l.priceCents
	}

	var ord domain.Order
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents, status)
VALUES ($1, $2, $3)
RETURNING id, user_id, total_cents, status, created_at
`, userID, total, domain.OrderStatusPending).Scan(&ord.ID, &ord.UserID, &ord.TotalCents, &ord.Status, &ord.CreatedAt); err != nil {
		return nil, err
	}

	for _, l := range lines {
		var item domain.OrderItem
		if err := tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, product_id, quantity, price_cents
`, ord.ID, l.productID, l.quantity, l.priceCents).
			Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceCents); err != nil {
			return nil, err
		}
		ord.Items = append(ord.Items, item)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	r.logger.Printf("order repo: created id=%d user_id=%d total_cents=%d items=%d", ord.ID, userID, total, len(ord.Items))
	return &ord, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var ord domain.Order
	err := r.pool.QueryRow(ctx, `
SELECT id, user_id, total_cents, status, created_at
FROM orders
WHERE id = $1
`, id).Scan(&ord.ID, &ord.UserID, &ord.TotalCents, &ord.Status, &ord.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, order_id, product_id, quantity, price_cents
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceCents); err != nil {
			return nil, err
		}
		ord.Items = append(ord.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *postgresRepo) ListPage(ctx context.Context, limit, offset int) ([]domain.Order, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, total_cents, status, created_at
FROM orders
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var ord domain.Order
		if err := rows.Scan(&ord.ID, &ord.UserID, &ord.TotalCents, &ord.Status, &ord.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}
