package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wonny/techscreener/pkg/database"
)

// PostgresStore persists preferences in screener.preferences
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore wraps an open pool
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the preferences table when missing
func (s *PostgresStore) Migrate(ctx context.Context) error {
	query := `
		CREATE SCHEMA IF NOT EXISTS screener;
		CREATE TABLE IF NOT EXISTS screener.preferences (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := s.db.Pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create preferences table: %w", err)
	}
	return nil
}

// Get returns the stored value or ErrNotFound
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.Pool.QueryRow(ctx,
		"SELECT value FROM screener.preferences WHERE key = $1", key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query preference %s: %w", key, err)
	}
	return value, nil
}

// Set upserts value
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO screener.preferences (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`
	if _, err := s.db.Pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}

// Close closes the pool
func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}
