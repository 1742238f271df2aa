package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`)

// Lock implements port.RunLock with SET NX. The TTL bounds how long a
// crashed holder can block other runs.
type Lock struct {
	client goredis.Cmdable
	prefix string
	ttl    time.Duration

	mu     sync.Mutex
	owners map[string]string
}

// NewLock creates a lock storing its keys under prefix.
func NewLock(client goredis.Cmdable, prefix string, ttl time.Duration) *Lock {
	return &Lock{client: client, prefix: prefix, ttl: ttl, owners: make(map[string]string)}
}

func (l *Lock) redisKey(key string) string {
	return fmt.Sprintf("%slock:%s", l.prefix, key)
}

// Acquire takes key if nobody holds it.
func (l *Lock) Acquire(ctx context.Context, key string) (bool, error) {
	owner := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.redisKey(key), owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	l.mu.Lock()
	l.owners[key] = owner
	l.mu.Unlock()
	return true, nil
}

// Release deletes key only if this instance still owns it.
func (l *Lock) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	owner, ok := l.owners[key]
	delete(l.owners, key)
	l.mu.Unlock()
	if !ok {
		return nil
	}
	if err := releaseScript.Run(ctx, l.client, []string{l.redisKey(key)}, owner).Err(); err != nil {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	return nil
}
