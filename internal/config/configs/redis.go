package configs

import "time"

// Redis configures the optional Redis instance. An empty Addr disables it:
// run locks then fall back to PostgreSQL advisory locks and generated texts
// are not cached.
type Redis struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// Prefix namespaces every key written by the service.
	Prefix string `env:"PREFIX" envDefault:"adpilot:"`
	// LockTTL bounds how long a crashed aggregation run keeps its lock.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"30m"`
	// CacheTTL is the lifetime of cached generated texts; zero disables
	// the cache.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// Enabled reports whether a Redis address is configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
