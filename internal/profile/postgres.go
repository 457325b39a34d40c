package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists profile keys in PostgreSQL, for hosts that keep
// player profiles server-side. Rows are scoped by player id; the schema
// is managed by the embedded goose migrations (see migrate.go).
type PostgresStore struct {
	pool     *pgxpool.Pool
	playerID string
}

// NewPostgresStore creates a store over an existing pool scoped to
// playerID.
func NewPostgresStore(pool *pgxpool.Pool, playerID string) (*PostgresStore, error) {
	if playerID == "" {
		return nil, fmt.Errorf("player id must not be empty")
	}
	return &PostgresStore{pool: pool, playerID: playerID}, nil
}

// Get implements Store.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM profile_kv WHERE player_id = $1 AND key = $2`,
		s.playerID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get profile key %q: %w", key, err)
	}
	return value, true, nil
}

// Set implements Store.
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO profile_kv (player_id, key, value) VALUES ($1, $2, $3)
		 ON CONFLICT (player_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		s.playerID, key, value)
	if err != nil {
		return fmt.Errorf("failed to set profile key %q: %w", key, err)
	}
	return nil
}

// Remove implements Store.
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM profile_kv WHERE player_id = $1 AND key = $2`,
		s.playerID, key)
	if err != nil {
		return fmt.Errorf("failed to remove profile key %q: %w", key, err)
	}
	return nil
}

// Keys implements Store.
func (s *PostgresStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT key FROM profile_kv WHERE player_id = $1 AND key LIKE $2 || '%'`,
		s.playerID, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Ping verifies database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close implements Store. The pool is shared and owned by the host, so
// Close is a no-op here.
func (s *PostgresStore) Close() error { return nil }
