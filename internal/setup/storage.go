package setup

import (
	"context"
	"fmt"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/helpers"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/kv_repository"
	"github.com/anuntech/nutrisnap-backend/internal/setup/config"
)

func NewKeyValueStore(ctx context.Context, cfg *config.Config) (usecase.KeyValueStore, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return kv_repository.NewMemoryStore(), nil
	case config.StorageRedis:
		client, err := helpers.RedisHelper(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return kv_repository.NewRedisStore(client), nil
	case config.StorageMongoDB:
		db, err := helpers.MongoHelper(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return kv_repository.NewMongoStore(db), nil
	case config.StoragePostgres:
		pool, err := helpers.PostgresHelper(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		store, err := kv_repository.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
