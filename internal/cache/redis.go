package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "woo:cache:"

// RedisStore keeps entries in Redis under "woo:cache:<12hex>:<key>" and
// lets Redis expire them.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to the Redis server at url (redis://host:port/db)
// and scopes entries to the store at baseURL.
func NewRedisStore(url, baseURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return NewRedisStoreFromClient(redis.NewClient(opts), baseURL, ttl), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, baseURL string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		prefix: redisKeyPrefix + scopeHash(baseURL) + ":",
		ttl:    ttl,
	}
}

func (s *RedisStore) Name() string { return "redis" }

func (s *RedisStore) Get(ctx context.Context, key string, dst any) bool {
	if disabled() {
		return false
	}
	data, err := s.client.Get(ctx, s.prefix+sanitizeKey(key)).Bytes()
	if err != nil {
		return false
	}
	return decodeEntry(data, dst)
}

func (s *RedisStore) Put(ctx context.Context, key string, v any) {
	if disabled() {
		return
	}
	data, err := encodeEntry(v)
	if err != nil {
		return
	}
	_ = s.client.Set(ctx, s.prefix+sanitizeKey(key), data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+sanitizeKey(key)).Err()
}

// Clear deletes this store's keys.
func (s *RedisStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis unreachable: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
