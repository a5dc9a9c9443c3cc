package cache

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// Documents caches generated documents such as the sitemap. Concurrent
// misses for the same key share one build.
type Documents struct {
	cache Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewDocuments wraps c. A zero ttl uses the backend default.
func NewDocuments(c Cache, ttl time.Duration) *Documents {
	return &Documents{cache: c, ttl: ttl}
}

// Get returns the document stored under key, calling build on a miss.
// A failing backend degrades to building on every call. Build errors
// are not cached.
func (d *Documents) Get(ctx context.Context, key string, build func() ([]byte, error)) ([]byte, error) {
	data, err := d.cache.Get(ctx, key)
	if err == nil {
		return data, nil
	}

	v, err, _ := d.group.Do(key, func() (any, error) {
		data, err := build()
		if err != nil {
			return nil, err
		}
		// The document is valid even if it cannot be stored.
		_ = d.cache.Set(ctx, key, data, d.ttl)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate removes keys. Keys already absent are not an error.
func (d *Documents) Invalidate(ctx context.Context, keys ...string) error {
	var errs []error
	for _, k := range keys {
		if err := d.cache.Delete(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
