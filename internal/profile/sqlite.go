package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists a player's flat profile keys in a local SQLite
// database. This is the default driver for single-player hosts: one file
// per install, rows scoped by player id.
type SQLiteStore struct {
	db       *sql.DB
	playerID string
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS profile_kv (
	player_id TEXT NOT NULL,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (player_id, key)
);`

// NewSQLiteStore opens (creating if needed) the profile database at path
// and scopes all operations to playerID.
func NewSQLiteStore(path, playerID string) (*SQLiteStore, error) {
	if playerID == "" {
		return nil, fmt.Errorf("player id must not be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create profile directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create profile schema: %w", err)
	}

	return &SQLiteStore{db: db, playerID: playerID}, nil
}

// Get implements Store.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM profile_kv WHERE player_id = ? AND key = ?`,
		s.playerID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get profile key %q: %w", key, err)
	}
	return value, true, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profile_kv (player_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (player_id, key) DO UPDATE SET value = excluded.value`,
		s.playerID, key, value)
	if err != nil {
		return fmt.Errorf("failed to set profile key %q: %w", key, err)
	}
	return nil
}

// Remove implements Store.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM profile_kv WHERE player_id = ? AND key = ?`,
		s.playerID, key)
	if err != nil {
		return fmt.Errorf("failed to remove profile key %q: %w", key, err)
	}
	return nil
}

// Keys implements Store.
func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM profile_kv WHERE player_id = ? AND key LIKE ? || '%'`,
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

// Ping verifies the database file is still reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
