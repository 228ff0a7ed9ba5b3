package postgres

import (
	"context"
	"fmt"
	"storefront/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PendingPurchaseRepository struct {
	pool *pgxpool.Pool
}

func (r *PendingPurchaseRepository) Append(ctx context.Context, p domain.PendingPurchase) error {
	const q = `
		insert into pending_purchases (id, game_id, game_name, price, user_id, payment_method, created_at)
		values ($1, $2, $3, $4, $5, nullif($6, ''), $7);
	`

	if _, err := r.pool.Exec(ctx, q, p.ID, p.GameID, p.GameName, p.Price, p.UserID, p.PaymentMethod, p.Timestamp); err != nil {
		return fmt.Errorf("failed to insert pending purchase %q: %w", p.ID, err)
	}
	return nil
}

// List returns queued purchases in the order they were saved.
func (r *PendingPurchaseRepository) List(ctx context.Context) ([]domain.PendingPurchase, error) {
	const q = `
		select id, game_id, game_name, price, user_id, coalesce(payment_method, ''), created_at
		from pending_purchases
		order by seq;
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending purchases: %w", err)
	}
	defer rows.Close()

	purchases := make([]domain.PendingPurchase, 0, 16)
	for rows.Next() {
		var p domain.PendingPurchase
		if err = rows.Scan(&p.ID, &p.GameID, &p.GameName, &p.Price, &p.UserID, &p.PaymentMethod, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan pending purchase: %w", err)
		}
		p.Timestamp = p.Timestamp.UTC()
		purchases = append(purchases, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending purchases: %w", err)
	}
	return purchases, nil
}

func (r *PendingPurchaseRepository) Remove(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `delete from pending_purchases where id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pending purchase %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPurchaseNotFound
	}
	return nil
}

func (r *PendingPurchaseRepository) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `delete from pending_purchases;`); err != nil {
		return fmt.Errorf("failed to clear pending purchases: %w", err)
	}
	return nil
}

func NewPendingPurchaseRepository(pool *pgxpool.Pool) *PendingPurchaseRepository {
	return &PendingPurchaseRepository{pool: pool}
}
