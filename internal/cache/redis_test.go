package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woopy/woo-cli/internal/cache"
)

func newRedisStore(t *testing.T, baseURL string) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := cache.NewRedisStore("redis://"+mr.Addr()+"/0", baseURL, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t, "https://shop.test")

	s.Put(ctx, "data/countries", []string{"BR", "US"})

	var got []string
	require.True(t, s.Get(ctx, "data/countries", &got))
	assert.Equal(t, []string{"BR", "US"}, got)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Regexp(t, `^woo:cache:[0-9a-f]{12}:data-countries$`, keys[0])
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))
}

func TestRedisStore_Expires(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t, "https://shop.test")

	s.Put(ctx, "tags", []string{"a"})
	mr.FastForward(2 * time.Minute)

	var got []string
	assert.False(t, s.Get(ctx, "tags", &got))
}

func TestRedisStore_ClearIsScoped(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t, "https://a.test")
	other, err := cache.NewRedisStore("redis://"+mr.Addr(), "https://b.test", time.Minute)
	require.NoError(t, err)
	defer other.Close()

	s.Put(ctx, "tags", []string{"a"})
	s.Put(ctx, "categories", []string{"c"})
	other.Put(ctx, "tags", []string{"b"})

	require.NoError(t, s.Clear(ctx))

	assert.Len(t, mr.Keys(), 1)
	var got []string
	require.True(t, other.Get(ctx, "tags", &got))
	assert.Equal(t, []string{"b"}, got)
}

func TestRedisStore_Unreachable(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	s, err := cache.NewRedisStore("redis://"+mr.Addr(), "https://shop.test", 0)
	require.NoError(t, err)
	defer s.Close()
	mr.Close()

	ctx := context.Background()
	assert.Error(t, s.Ping(ctx))

	var got []string
	assert.False(t, s.Get(ctx, "tags", &got))
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := cache.NewRedisStore("http://nope", "https://shop.test", 0)
	assert.Error(t, err)
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t, "https://shop.test")

	s.Put(ctx, "tags", []string{"a"})
	s.Put(ctx, "categories", []string{"c"})
	require.NoError(t, s.Delete(ctx, "tags"))

	assert.Len(t, mr.Keys(), 1)
	var got []string
	assert.False(t, s.Get(ctx, "tags", &got))
}
