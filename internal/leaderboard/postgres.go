package leaderboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS leaderboard (
    rank INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    score INTEGER NOT NULL,
    level INTEGER NOT NULL,
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Load returns the stored entries ordered by rank.
func (s *PostgresStore) Load(ctx context.Context) ([]Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, score, level, recorded_at FROM leaderboard ORDER BY rank`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Save replaces the stored board in a single transaction.
func (s *PostgresStore) Save(ctx context.Context, entries []Entry) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM leaderboard`); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, e := range entries {
		batch.Queue(
			`INSERT INTO leaderboard (rank, name, score, level, recorded_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			i+1, e.Name, e.Score, e.Level, e.Date)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert leaderboard: %w", err)
	}

	return tx.Commit(ctx)
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	if err := row.Scan(&e.Name, &e.Score, &e.Level, &e.Date); err != nil {
		return nil, err
	}
	return &e, nil
}
