package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Cache stores generated texts keyed by a digest of model and prompt.
type Cache struct {
	client goredis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewCache returns a cache whose entries expire after ttl.
func NewCache(client goredis.Cmdable, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

func (c *Cache) key(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + prompt))
	return c.prefix + "gen:" + hex.EncodeToString(sum[:])
}

// Get returns the cached text and whether it was present.
func (c *Cache) Get(ctx context.Context, model, prompt string) (string, bool, error) {
	text, err := c.client.Get(ctx, c.key(model, prompt)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// Set stores text for the model and prompt.
func (c *Cache) Set(ctx context.Context, model, prompt, text string) error {
	return c.client.Set(ctx, c.key(model, prompt), text, c.ttl).Err()
}
