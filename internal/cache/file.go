package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore keeps each key in "<key>_<12hex>.json" under dir, where the hex
// part identifies the store URL.
type FileStore struct {
	dir   string
	scope string
	ttl   time.Duration
}

// NewFileStore creates a FileStore for the store at baseURL. A zero ttl
// means DefaultTTL.
func NewFileStore(dir, baseURL string, ttl time.Duration) *FileStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FileStore{dir: dir, scope: scopeHash(baseURL), ttl: ttl}
}

func (s *FileStore) Name() string { return "file" }

// Dir returns the cache directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", sanitizeKey(key), s.scope))
}

func (s *FileStore) Get(_ context.Context, key string, dst any) bool {
	if disabled() {
		return false
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return false
	}
	if time.Since(e.CachedAt) > s.ttl {
		return false
	}
	return json.Unmarshal(e.Items, dst) == nil
}

func (s *FileStore) Put(_ context.Context, key string, v any) {
	if disabled() {
		return
	}
	data, err := encodeEntry(v)
	if err != nil {
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return
	}

	// Write a temp file and rename so readers never see a partial entry.
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return
	}
	_ = os.Rename(tmp, path)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear removes this store's entries. Entries of other store URLs stay.
func (s *FileStore) Clear(_ context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !isCacheFilename(name) || !strings.HasSuffix(name, "_"+s.scope+".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// ClearAll removes all cache files from the directory.
// For safety, it only removes files matching the cache filename scheme.
func ClearAll(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() || !isCacheFilename(e.Name()) {
			continue
		}
		_ = os.Remove(filepath.Join(dir, e.Name()))
	}
}

func isCacheFilename(name string) bool {
	// Expected: "<key>_<12hex>.json"
	if filepath.Ext(name) != ".json" {
		return false
	}
	parts := strings.Split(strings.TrimSuffix(name, ".json"), "_")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}
	return len(parts[1]) == 12 && isHex(parts[1])
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}
