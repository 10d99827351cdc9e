// Package cache keeps slow-changing reference data (categories, tags,
// countries) between CLI invocations.
//
// Entries are scoped per store URL. The file store keeps one JSON file per
// key; the Redis store shares entries between machines. Default TTL is
// 5 minutes. Disable with WOO_NO_CACHE=1.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/woopy/woo-cli/internal/metrics"
)

const DefaultTTL = 5 * time.Minute

const envNoCache = "WOO_NO_CACHE"

// Store is a keyed cache of JSON-encodable values.
type Store interface {
	// Get loads the value for key into dst. It reports false on a miss.
	Get(ctx context.Context, key string, dst any) bool
	// Put stores v under key. Failures are silent; the cache is best effort.
	Put(ctx context.Context, key string, v any)
	// Delete drops key. A missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every entry of this store's scope.
	Clear(ctx context.Context) error
	// Name identifies the backend in metrics and output.
	Name() string
}

type entry struct {
	CachedAt time.Time       `json:"cached_at"`
	Items    json.RawMessage `json:"items"`
}

// Fetch returns the cached value for key, or calls load and caches its
// result. Load errors are returned and nothing is cached.
func Fetch[T any](ctx context.Context, s Store, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if s != nil && !disabled() {
		if s.Get(ctx, key, &cached) {
			metrics.CacheHitsTotal.WithLabelValues(s.Name()).Inc()
			return cached, nil
		}
		metrics.CacheMissesTotal.WithLabelValues(s.Name()).Inc()
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if s != nil && !disabled() {
		s.Put(ctx, key, value)
	}
	return value, nil
}

// scopeHash identifies a store URL in file names and Redis keys.
func scopeHash(baseURL string) string {
	hash := sha1.Sum([]byte(strings.TrimSuffix(baseURL, "/")))
	return hex.EncodeToString(hash[:6])
}

// DefaultDir returns the platform-appropriate cache directory.
// Returns "$XDG_CACHE_HOME/woo" or equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "woo"), nil
}

func disabled() bool {
	return os.Getenv(envNoCache) != ""
}

func sanitizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "cache"
	}
	key = strings.ReplaceAll(key, "/", "-")
	key = strings.ReplaceAll(key, "\\", "-")
	key = strings.ReplaceAll(key, "_", "-")
	return key
}

func encodeEntry(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(entry{CachedAt: time.Now(), Items: raw})
}

func decodeEntry(data []byte, dst any) bool {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return false
	}
	return json.Unmarshal(e.Items, dst) == nil
}
