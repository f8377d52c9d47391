package helpers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var PostgresTimeout = 10 * time.Second

func PostgresHelper(connectionUrl string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), PostgresTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, connectionUrl)
	if err != nil {
		return nil, fmt.Errorf("error creating Postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging Postgres: %w", err)
	}

	log.Println("Postgres connection established")

	return pool, nil
}
