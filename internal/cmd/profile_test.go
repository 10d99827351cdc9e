package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woopy/woo-cli/internal/config"
)

func saveTestProfile(t *testing.T, name, url string) {
	t.Helper()
	require.NoError(t, config.SaveProfile(config.Profile{
		Name:        name,
		Settings:    config.Settings{URL: url},
		Credentials: config.Credentials{ConsumerKey: "ck_" + name, ConsumerSecret: "cs_" + name},
	}))
}

func TestProfileListEmpty(t *testing.T) {
	isolateConfig(t)
	withKeyring(t)

	out := mustRun(t, "profile", "list")
	assert.Contains(t, out, "No profiles configured.")

	assert.Empty(t, decodeItems(t, mustRun(t, "profile", "-o", "json")))
}

func TestProfileListAndUse(t *testing.T) {
	isolateConfig(t)
	withKeyring(t)
	saveTestProfile(t, "production", "https://shop.example.com")
	saveTestProfile(t, "staging", "https://staging.example.com")

	out := mustRun(t, "profile", "list")
	assert.Contains(t, out, "production")
	assert.Contains(t, out, "https://staging.example.com")

	mustRun(t, "profile", "use", "production")

	items := decodeItems(t, mustRun(t, "profile", "list", "-o", "json"))
	require.Len(t, items, 2)
	current := map[string]bool{}
	for _, item := range items {
		current[item["name"].(string)] = item["current"].(bool)
	}
	assert.Equal(t, map[string]bool{"production": true, "staging": false}, current)

	p, err := config.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com", p.URL)
}

func TestProfileUseUnknown(t *testing.T) {
	isolateConfig(t)
	withKeyring(t)
	saveTestProfile(t, "production", "https://shop.example.com")

	_, err := run(t, "profile", "use", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot switch to profile nope")

	current, err := config.CurrentProfile()
	require.NoError(t, err)
	assert.Equal(t, "production", current)
}

func TestProfileFlagSelectsStore(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/products", jsonResponse(200, `[]`))
	storeURL := startStore(t, handler)
	saveTestProfile(t, "other", "https://other.example.com")
	saveTestProfile(t, "test", storeURL)
	mustRun(t, "profile", "use", "other")

	mustRun(t, "products", "list", "--profile", "test")

	assert.Equal(t, 1, handler.count("GET", "/products"))
}
