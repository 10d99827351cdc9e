package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheFiles(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.Getenv("XDG_CACHE_HOME"), "woo", "*.json"))
	require.NoError(t, err)
	return matches
}

func TestCachePathAndClear(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/data/countries", jsonResponse(200, countriesJSON))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "data", "countries")
	require.NotEmpty(t, cacheFiles(t))

	out := mustRun(t, "cache", "path")
	assert.Contains(t, out, filepath.Join(os.Getenv("XDG_CACHE_HOME"), "woo"))
	assert.Contains(t, out, ".json")

	out = mustRun(t, "cache", "clear")
	assert.Contains(t, out, "Cache cleared for")

	mustRun(t, "data", "countries")
	assert.Equal(t, 2, handler.count("GET", "/data/countries"))
}

func TestCacheClearAll(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/data/countries", jsonResponse(200, countriesJSON))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "data", "countries")
	require.NotEmpty(t, cacheFiles(t))

	out := mustRun(t, "cache", "clear", "--all")
	assert.Contains(t, out, "Cache cleared:")
	assert.Empty(t, cacheFiles(t))
}

func TestCacheClearDisabled(t *testing.T) {
	setupTestEnvWithHandler(t, newRouteHandler())

	out := mustRun(t, "cache", "clear", "--no-cache")
	assert.Contains(t, out, "Cache is disabled")
}
