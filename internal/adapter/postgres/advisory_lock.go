package postgres

import (
	"context"
	"database/sql"
	"hash/fnv"
	"sync"
)

// AdvisoryLock implements port.RunLock with PostgreSQL session-level
// advisory locks. Each held key pins its own connection, since the lock is
// bound to the session that took it.
type AdvisoryLock struct {
	db *sql.DB

	mu    sync.Mutex
	conns map[string]*sql.Conn
}

// NewAdvisoryLock creates a lock backed by db. Use stdlib.OpenDBFromPool to
// share a pgx pool.
func NewAdvisoryLock(db *sql.DB) *AdvisoryLock {
	return &AdvisoryLock{db: db, conns: make(map[string]*sql.Conn)}
}

// advisoryKey derives a deterministic lock id from key.
func advisoryKey(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}

// Acquire tries pg_try_advisory_lock without blocking. It returns false if
// another session, or this process, already holds key.
func (l *AdvisoryLock) Acquire(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, held := l.conns[key]; held {
		return false, nil
	}

	conn, err := l.db.Conn(ctx)
	if err != nil {
		return false, err
	}
	var acquired bool
	if err = conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", advisoryKey(key)).Scan(&acquired); err != nil {
		_ = conn.Close()
		return false, err
	}
	if !acquired {
		_ = conn.Close()
		return false, nil
	}
	l.conns[key] = conn
	return true, nil
}

// Release unlocks key on the session that acquired it. Releasing a key that
// is not held is a no-op.
func (l *AdvisoryLock) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	conn, ok := l.conns[key]
	delete(l.conns, key)
	l.mu.Unlock()
	if !ok {
		return nil
	}
	defer conn.Close()
	_, err := conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", advisoryKey(key))
	return err
}
