// Package redis holds the Redis-backed run lock and generation cache.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"adpilot/internal/config/configs"
)

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
