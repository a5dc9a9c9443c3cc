package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock returns a clock the test advances by hand.
func fakeClock(c *MemoryCache) func(time.Duration) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	c.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	return func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}
}

func TestMemoryCache_BasicOperations(t *testing.T) {
	c := NewMemoryCache(MemoryOptions{DefaultTTL: time.Hour})
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "sitemap.xml", []byte("<urlset/>"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := c.Get(ctx, "sitemap.xml")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "<urlset/>" {
		t.Errorf("Get = %q, want %q", got, "<urlset/>")
	}

	if err := c.Delete(ctx, "sitemap.xml"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := c.Get(ctx, "sitemap.xml"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	c := NewMemoryCache(MemoryOptions{})
	ctx := context.Background()

	value := []byte("robots")
	_ = c.Set(ctx, "k", value, 0)
	value[0] = 'X'

	got, _ := c.Get(ctx, "k")
	got[1] = 'X'

	again, _ := c.Get(ctx, "k")
	if string(again) != "robots" {
		t.Errorf("stored value mutated: %q", again)
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	c := NewMemoryCache(MemoryOptions{DefaultTTL: time.Minute})
	advance := fakeClock(c)
	ctx := context.Background()

	_ = c.Set(ctx, "default", []byte("a"), 0)
	_ = c.Set(ctx, "long", []byte("b"), time.Hour)

	advance(59 * time.Second)
	if _, err := c.Get(ctx, "default"); err != nil {
		t.Errorf("entry expired early: %v", err)
	}

	advance(time.Second)
	if _, err := c.Get(ctx, "default"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected default-TTL entry to expire, got %v", err)
	}
	if _, err := c.Get(ctx, "long"); err != nil {
		t.Errorf("long-TTL entry expired: %v", err)
	}
}

func TestMemoryCache_MaxSize(t *testing.T) {
	t.Run("expired entries go first", func(t *testing.T) {
		c := NewMemoryCache(MemoryOptions{MaxSize: 2})
		advance := fakeClock(c)
		ctx := context.Background()

		_ = c.Set(ctx, "short", []byte("1"), time.Second)
		_ = c.Set(ctx, "long", []byte("2"), time.Hour)
		advance(2 * time.Second)
		_ = c.Set(ctx, "new", []byte("3"), time.Hour)

		if c.Len() != 2 {
			t.Fatalf("Len = %d, want 2", c.Len())
		}
		if _, err := c.Get(ctx, "long"); err != nil {
			t.Errorf("live entry evicted: %v", err)
		}
	})

	t.Run("closest to expiry otherwise", func(t *testing.T) {
		c := NewMemoryCache(MemoryOptions{MaxSize: 2})
		fakeClock(c)
		ctx := context.Background()

		_ = c.Set(ctx, "a", []byte("1"), time.Hour)
		_ = c.Set(ctx, "b", []byte("2"), time.Minute)
		_ = c.Set(ctx, "c", []byte("3"), time.Hour)

		if _, err := c.Get(ctx, "b"); !errors.Is(err, ErrCacheMiss) {
			t.Errorf("expected b to be evicted, got %v", err)
		}
		for _, k := range []string{"a", "c"} {
			if _, err := c.Get(ctx, k); err != nil {
				t.Errorf("Get(%q) failed: %v", k, err)
			}
		}
	})

	t.Run("overwrite does not evict", func(t *testing.T) {
		c := NewMemoryCache(MemoryOptions{MaxSize: 2})
		ctx := context.Background()

		_ = c.Set(ctx, "a", []byte("1"), 0)
		_ = c.Set(ctx, "b", []byte("2"), 0)
		_ = c.Set(ctx, "a", []byte("3"), 0)

		if c.Len() != 2 {
			t.Errorf("Len = %d, want 2", c.Len())
		}
	})
}

func TestMemoryCache_DeleteByPrefixAndClear(t *testing.T) {
	c := NewMemoryCache(MemoryOptions{})
	ctx := context.Background()

	for _, k := range []string{"hreflang:/a", "hreflang:/b", "doc:sitemap.xml"} {
		_ = c.Set(ctx, k, []byte("x"), 0)
	}

	if err := c.DeleteByPrefix(ctx, "hreflang:"); err != nil {
		t.Fatalf("DeleteByPrefix failed: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len after DeleteByPrefix = %d, want 1", c.Len())
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestMemoryCache_Closed(t *testing.T) {
	c := NewMemoryCache(MemoryOptions{CleanupInterval: time.Hour})
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Second close is a no-op.
	if err := c.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	ctx := context.Background()
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get error = %v, want ErrCacheClosed", err)
	}
	if err := c.Set(ctx, "k", nil, 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set error = %v, want ErrCacheClosed", err)
	}
	if err := c.Clear(ctx); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Clear error = %v, want ErrCacheClosed", err)
	}
}

func TestMemoryCache_Stats(t *testing.T) {
	c := NewMemoryCache(MemoryOptions{})
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), 0)
	_, _ = c.Get(ctx, "k")
	_, _ = c.Get(ctx, "k")
	_, _ = c.Get(ctx, "missing")

	s := c.Stats()
	if s.Backend != BackendMemory {
		t.Errorf("Backend = %q, want %q", s.Backend, BackendMemory)
	}
	if s.Hits != 2 || s.Misses != 1 || s.Sets != 1 || s.Items != 1 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if s.HitRate < 66.6 || s.HitRate > 66.7 {
		t.Errorf("HitRate = %f, want ~66.67", s.HitRate)
	}
}

func TestMemoryCache_Concurrent(t *testing.T) {
	c := NewMemoryCache(MemoryOptions{MaxSize: 50})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (n*100+j)%80)
				_ = c.Set(ctx, key, []byte("v"), 0)
				_, _ = c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Len = %d exceeds MaxSize", c.Len())
	}
}
