package kv_repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/anuntech/nutrisnap-backend/internal/infra/db/helpers"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		Client: client,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	value, err := s.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading key %s from Redis: %w", key, err)
	}

	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	if err := s.Client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("error saving key %s to Redis: %w", key, err)
	}

	return nil
}

func (s *RedisStore) Close() error {
	helpers.DisconnectRedis()
	return nil
}
