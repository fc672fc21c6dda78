package stats

import (
	"context"

	"shop-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Counts(ctx context.Context) (Counts, error) {
	const q = `
SELECT
    (SELECT COUNT(*) FROM users),
    (SELECT COUNT(*) FROM products),
    (SELECT COUNT(*) FROM orders),
    (SELECT COUNT(*) FROM payments)
`
	var c Counts
	if err := r.pool.QueryRow(ctx, q).Scan(&c.Users, &c.Products, &c.Orders, &c.Payments); err != nil {
		return Counts{}, err
	}
	return c, nil
}

func (r *postgresRepo) TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	const q = `
SELECT oi.product_id,
       p.name,
       SUM(oi.quantity)::bigint,
       SUM(oi.quantity * oi.price_cents)::bigint
FROM order_items oi
JOIN orders o ON o.id = oi.order_id AND o.status = 'paid'
JOIN products p ON p.id = oi.product_id
GROUP BY oi.product_id, p.name
ORDER BY SUM(oi.quantity) DESC, oi.product_id ASC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TopProduct
	for rows.Next() {
		var t domain.TopProduct
		if err := rows.Scan(&t.ProductID, &t.Name, &t.UnitsSold, &t.RevenueCents); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) SellStats(ctx context.Context, days int) ([]domain.SellStat, error) {
	const q = `
SELECT to_char(date_trunc('day', pay.created_at), 'YYYY-MM-DD'),
       COUNT(*)::bigint,
       SUM(pay.amount_cents)::bigint
FROM payments pay
WHERE pay.created_at >= now() - make_interval(days => $1)
GROUP BY date_trunc('day', pay.created_at)
ORDER BY date_trunc('day', pay.created_at) DESC
`
	rows, err := r.pool.Query(ctx, q, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SellStat
	for rows.Next() {
		var s domain.SellStat
		if err := rows.Scan(&s.Day, &s.Orders, &s.RevenueCents); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
