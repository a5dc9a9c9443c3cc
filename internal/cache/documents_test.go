package cache

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDocuments_Get(t *testing.T) {
	ctx := context.Background()
	docs := NewDocuments(NewMemoryCache(MemoryOptions{}), time.Minute)

	var builds atomic.Int32
	build := func() ([]byte, error) {
		builds.Add(1)
		return []byte("User-agent: *\n"), nil
	}

	for range 3 {
		got, err := docs.Get(ctx, "robots.txt", build)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "User-agent: *\n" {
			t.Errorf("Get = %q", got)
		}
	}
	if n := builds.Load(); n != 1 {
		t.Errorf("build called %d times, want 1", n)
	}

	if err := docs.Invalidate(ctx, "robots.txt", "absent"); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}
	_, _ = docs.Get(ctx, "robots.txt", build)
	if n := builds.Load(); n != 2 {
		t.Errorf("build called %d times after Invalidate, want 2", n)
	}
}

func TestDocuments_BuildErrorNotCached(t *testing.T) {
	ctx := context.Background()
	docs := NewDocuments(NewMemoryCache(MemoryOptions{}), 0)

	errBuild := errors.New("boom")
	if _, err := docs.Get(ctx, "sitemap.xml", func() ([]byte, error) { return nil, errBuild }); !errors.Is(err, errBuild) {
		t.Fatalf("Get error = %v, want %v", err, errBuild)
	}

	got, err := docs.Get(ctx, "sitemap.xml", func() ([]byte, error) { return []byte("ok"), nil })
	if err != nil || string(got) != "ok" {
		t.Errorf("Get = %q, %v; want ok", got, err)
	}
}

func TestDocuments_ClosedBackendStillBuilds(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryOptions{})
	_ = c.Close()
	docs := NewDocuments(c, 0)

	var builds atomic.Int32
	for range 2 {
		got, err := docs.Get(ctx, "k", func() ([]byte, error) {
			builds.Add(1)
			return []byte("v"), nil
		})
		if err != nil || string(got) != "v" {
			t.Fatalf("Get = %q, %v", got, err)
		}
	}
	if n := builds.Load(); n != 2 {
		t.Errorf("build called %d times, want 2", n)
	}
}

func TestDocuments_Concurrent(t *testing.T) {
	ctx := context.Background()
	docs := NewDocuments(NewMemoryCache(MemoryOptions{}), 0)
	want := []byte("<urlset/>")

	var wg sync.WaitGroup
	results := make([][]byte, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = docs.Get(ctx, "sitemap.xml", func() ([]byte, error) {
				return want, nil
			})
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !bytes.Equal(got, want) {
			t.Errorf("result %d = %q, want %q", i, got, want)
		}
	}
}
