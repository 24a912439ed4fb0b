package commission

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStorage persists sales entries in PostgreSQL.
type PgStorage struct {
	pool *pgxpool.Pool
}

// NewPgStorage creates a PostgreSQL-backed storage over the given pool.
func NewPgStorage(pool *pgxpool.Pool) *PgStorage {
	return &PgStorage{pool: pool}
}

func (s *PgStorage) SaveEntry(ctx context.Context, entry SalesEntry) error {
	const q = `
		INSERT INTO sales_entries (id, name, locks, stocks, barrels, sales_cents, commission_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.pool.Exec(ctx, q,
		entry.ID,
		entry.Name,
		entry.Locks,
		entry.Stocks,
		entry.Barrels,
		entry.SalesCents,
		entry.CommissionCents,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("commission: insert sales entry: %w", err)
	}
	return nil
}

func (s *PgStorage) ListEntries(ctx context.Context, limit int) ([]SalesEntry, error) {
	const q = `
		SELECT id, name, locks, stocks, barrels, sales_cents, commission_cents, created_at
		FROM sales_entries
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("commission: query sales entries: %w", err)
	}
	defer rows.Close()

	var entries []SalesEntry
	for rows.Next() {
		var entry SalesEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Locks,
			&entry.Stocks,
			&entry.Barrels,
			&entry.SalesCents,
			&entry.CommissionCents,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("commission: scan sales entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("commission: iterate sales entries: %w", err)
	}

	return entries, nil
}
