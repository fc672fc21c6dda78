package cart

import (
	"context"
	"errors"

	"shop-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `id, session_id, user_id, product_id, quantity, price_cents, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// ownerFilter renders the WHERE fragment for an owner variant. The argument
// slot is always $1.
func ownerFilter(owner domain.CartOwner) (string, interface{}) {
	if owner.IsUser() {
		return "user_id = $1", owner.UserID
	}
	return "session_id = $1", owner.SessionID
}

func (r *postgresRepo) Get(ctx context.Context, owner domain.CartOwner) ([]domain.CartItem, error) {
	filter, arg := ownerFilter(owner)
	q := `
SELECT ` + itemColumns + `
FROM cart_items
WHERE ` + filter + `
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, owner domain.CartOwner, productID int64, quantity int, priceCents int64) (*domain.CartItem, error) {
	var q string
	var ownerArg interface{}
	if owner.IsUser() {
		q = `
INSERT INTO cart_items (user_id, product_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, product_id) WHERE user_id IS NOT NULL DO UPDATE SET
    quantity = cart_items.quantity + EXCLUDED.quantity,
    price_cents = EXCLUDED.price_cents,
    updated_at = now()
RETURNING ` + itemColumns + `
`
		ownerArg = owner.UserID
	} else {
		q = `
INSERT INTO cart_items (session_id, product_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)
ON CONFLICT (session_id, product_id) WHERE session_id IS NOT NULL DO UPDATE SET
    quantity = cart_items.quantity + EXCLUDED.quantity,
    price_cents = EXCLUDED.price_cents,
    updated_at = now()
RETURNING ` + itemColumns + `
`
		ownerArg = owner.SessionID
	}

	var item domain.CartItem
	if err := scanItem(r.pool.QueryRow(ctx, q, ownerArg, productID, quantity, priceCents), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Update(ctx context.Context, owner domain.CartOwner, itemID int64, quantity int, priceCents int64) (*domain.CartItem, error) {
	filter, arg := ownerFilter(owner)
	q := `
UPDATE cart_items
SET quantity = $3,
    price_cents = $4,
    updated_at = now()
WHERE id = $2 AND ` + filter + `
RETURNING ` + itemColumns + `
`
	var item domain.CartItem
	err := scanItem(r.pool.QueryRow(ctx, q, arg, itemID, quantity, priceCents), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Remove(ctx context.Context, owner domain.CartOwner, itemID int64) error {
	filter, arg := ownerFilter(owner)
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $2 AND `+filter, arg, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, owner domain.CartOwner) error {
	filter, arg := ownerFilter(owner)
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE `+filter, arg)
	return err
}

func (r *postgresRepo) Migrate(ctx context.Context, sessionID string, userID int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (user_id, product_id, quantity, price_cents)
SELECT $2, product_id, quantity, price_cents
FROM cart_items
WHERE session_id = $1
ON CONFLICT (user_id, product_id) WHERE user_id IS NOT NULL DO UPDATE SET
    quantity = cart_items.quantity + EXCLUDED.quantity,
    price_cents = EXCLUDED.price_cents,
    updated_at = now()
`, sessionID, userID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanItem(row pgx.Row, item *domain.CartItem) error {
	return row.Scan(
		&item.ID,
		&item.SessionID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.PriceCents,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
