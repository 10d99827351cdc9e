package cache_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woopy/woo-cli/internal/cache"
	"github.com/woopy/woo-cli/internal/metrics"
)

type category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestFileStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	s := cache.NewFileStore(t.TempDir(), "https://shop.test", 0)

	items := []category{{ID: 9, Name: "Clothing"}, {ID: 10, Name: "Music"}}
	s.Put(ctx, "categories", items)

	var got []category
	require.True(t, s.Get(ctx, "categories", &got))
	assert.Equal(t, items, got)
}

func TestFileStore_ExpiredTTL(t *testing.T) {
	ctx := context.Background()
	s := cache.NewFileStore(t.TempDir(), "https://shop.test", time.Millisecond)

	s.Put(ctx, "tags", []string{"a"})
	time.Sleep(5 * time.Millisecond)

	var got []string
	assert.False(t, s.Get(ctx, "tags", &got))
}

func TestFileStore_MissOnEmpty(t *testing.T) {
	var got []string
	s := cache.NewFileStore(t.TempDir(), "https://shop.test", 0)
	assert.False(t, s.Get(context.Background(), "tags", &got))
}

func TestFileStore_ScopedByStoreURL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := cache.NewFileStore(dir, "https://a.test", 0)
	b := cache.NewFileStore(dir, "https://b.test/", 0)

	a.Put(ctx, "tags", []string{"from-a"})

	var got []string
	assert.False(t, b.Get(ctx, "tags", &got))

	b.Put(ctx, "tags", []string{"from-b"})
	require.NoError(t, a.Clear(ctx))

	assert.False(t, a.Get(ctx, "tags", &got))
	require.True(t, b.Get(ctx, "tags", &got))
	assert.Equal(t, []string{"from-b"}, got)
}

func TestClearAll_RemovesOnlyCacheFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := cache.NewFileStore(dir, "https://shop.test", 0)
	s.Put(ctx, "attribute_terms", []int{1})

	other := filepath.Join(dir, "notes.json")
	require.NoError(t, os.WriteFile(other, []byte("{}"), 0o644))

	cache.ClearAll(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.json", entries[0].Name())
}

func TestFileStore_ClearMissingDir(t *testing.T) {
	s := cache.NewFileStore(filepath.Join(t.TempDir(), "absent"), "https://shop.test", 0)
	assert.NoError(t, s.Clear(context.Background()))
}

func TestFileStore_DisabledByEnv(t *testing.T) {
	t.Setenv("WOO_NO_CACHE", "1")
	ctx := context.Background()
	dir := t.TempDir()
	s := cache.NewFileStore(dir, "https://shop.test", 0)

	s.Put(ctx, "tags", []string{"a"})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	s := cache.NewFileStore(t.TempDir(), "https://shop.test", 0)
	hits := testutil.ToFloat64(metrics.CacheHitsTotal.WithLabelValues("file"))
	misses := testutil.ToFloat64(metrics.CacheMissesTotal.WithLabelValues("file"))

	calls := 0
	load := func(context.Context) ([]category, error) {
		calls++
		return []category{{ID: 1, Name: "Uncategorized"}}, nil
	}

	first, err := cache.Fetch(ctx, s, "categories", load)
	require.NoError(t, err)
	second, err := cache.Fetch(ctx, s, "categories", load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.CacheHitsTotal.WithLabelValues("file")))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.CacheMissesTotal.WithLabelValues("file")))
}

func TestFetch_LoadErrorNotCached(t *testing.T) {
	ctx := context.Background()
	s := cache.NewFileStore(t.TempDir(), "https://shop.test", 0)

	_, err := cache.Fetch(ctx, s, "tags", func(context.Context) ([]string, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	var got []string
	assert.False(t, s.Get(ctx, "tags", &got))
}

func TestFetch_NilStore(t *testing.T) {
	got, err := cache.Fetch(context.Background(), nil, "tags", func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestDefaultDir(t *testing.T) {
	dir, err := cache.DefaultDir()
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	assert.Equal(t, "woo", filepath.Base(dir))
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := cache.NewFileStore(t.TempDir(), "https://shop.test", 0)

	s.Put(ctx, "categories", []category{{ID: 9, Name: "Clothing"}})
	s.Put(ctx, "tags", []string{"a"})
	require.NoError(t, s.Delete(ctx, "categories"))
	require.NoError(t, s.Delete(ctx, "categories"))

	var got []category
	assert.False(t, s.Get(ctx, "categories", &got))
	var tags []string
	assert.True(t, s.Get(ctx, "tags", &tags))
}
