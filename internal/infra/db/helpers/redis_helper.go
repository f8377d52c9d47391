package helpers

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

var RedisTimeout = 30 * time.Second

func RedisHelper(connectionUrl string) (*redis.Client, error) {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	if client, exists := redisClients[connectionUrl]; exists {
		return client, nil
	}

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		return nil, fmt.Errorf("error parsing Redis URL: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 1
	opt.ConnMaxIdleTime = 200 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error pinging Redis: %w", err)
	}

	redisClients[connectionUrl] = client

	log.Printf("Connected to Redis: %s", opt.Addr)

	return client, nil
}

func DisconnectRedis() {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	for url, client := range redisClients {
		if err := client.Close(); err != nil {
			log.Printf("Error disconnecting from Redis %s: %v", url, err)
		} else {
			log.Printf("Disconnected from Redis")
		}
	}

	redisClients = make(map[string]*redis.Client)
}
