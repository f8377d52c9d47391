package kv_repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/anuntech/nutrisnap-backend/internal/infra/db/helpers"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createKvTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type PostgresStore struct {
	Pool *pgxpool.Pool
}

// NewPostgresStore creates the kv_store table when it does not exist yet.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, createKvTable); err != nil {
		return nil, fmt.Errorf("error creating kv_store table: %w", err)
	}

	return &PostgresStore{
		Pool: pool,
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.PostgresTimeout)
	defer cancel()

	var value string
	err := s.Pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading key %s from Postgres: %w", key, err)
	}

	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value string) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.PostgresTimeout)
	defer cancel()

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = $2,
			updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("error saving key %s to Postgres: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	s.Pool.Close()
	return nil
}
