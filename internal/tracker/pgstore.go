package tracker

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists the seen-set in a Postgres table. Append is durable on
// return (single INSERT inside Postgres's own WAL), so Flush is a no-op.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a Postgres-backed seen-set store. The pool must have
// the seen_list / seen_insert statements prepared (internal/db does this).
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Load(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, "seen_list")
	if err != nil {
		return nil, fmt.Errorf("list seen games: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan seen game: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *PGStore) Append(ctx context.Context, gameID string) error {
	if _, err := s.pool.Exec(ctx, "seen_insert", gameID); err != nil {
		return fmt.Errorf("insert seen game: %w", err)
	}
	return nil
}

func (s *PGStore) Flush(ctx context.Context) error { return nil }
func (s *PGStore) Close() error                    { return nil }
