package cache

import (
	"context"
	"fmt"
	"time"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Defaults shared by every backend.
const (
	DefaultTTL    = 10 * time.Minute
	DefaultPrefix = "langmap:"
)

// Config selects and configures a backend.
type Config struct {
	Type            string // memory or redis
	RedisURL        string
	Prefix          string
	DefaultTTL      time.Duration
	MaxSize         int
	CleanupInterval time.Duration
}

// DefaultConfig returns an unlimited memory cache configuration.
func DefaultConfig() Config {
	return Config{
		Type:            BackendMemory,
		Prefix:          DefaultPrefix,
		DefaultTTL:      DefaultTTL,
		CleanupInterval: time.Minute,
	}
}

// New creates the cache described by cfg. An empty Type means memory.
func New(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Type {
	case "", BackendMemory:
		return NewMemoryCache(MemoryOptions{
			DefaultTTL:      cfg.DefaultTTL,
			MaxSize:         cfg.MaxSize,
			CleanupInterval: cfg.CleanupInterval,
		}), nil
	case BackendRedis:
		opts := DefaultRedisOptions()
		opts.URL = cfg.RedisURL
		if cfg.Prefix != "" {
			opts.Prefix = cfg.Prefix
		}
		if cfg.DefaultTTL > 0 {
			opts.DefaultTTL = cfg.DefaultTTL
		}
		c, err := NewRedisCache(ctx, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}
