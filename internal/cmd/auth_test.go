package cmd

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woopy/woo-cli/internal/config"
)

const currencyJSON = `{"code":"USD","name":"United States (US) dollar","symbol":"$"}`

// startStore serves handler and leaves the WOO_* variables empty, so the
// CLI has to rely on saved profiles.
func startStore(t *testing.T, handler *routeHandler) string {
	t.Helper()
	isolateConfig(t)
	withKeyring(t)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server.URL
}

func TestAuthLoginVerifiesAndSaves(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/data/currencies/current", jsonResponse(200, currencyJSON))
	storeURL := startStore(t, handler)

	var out string
	stderr := captureStderr(t, func() {
		out = mustRun(t, "auth", "login", "--url", storeURL+"/", "--consumer-key", "ck_live_abcdefgh1234", "--consumer-secret", "cs_live_secret")
	})

	assert.Contains(t, out, "Credentials saved.")
	assert.Contains(t, out, "ck_l************1234")
	assert.NotContains(t, out, "cs_live_secret")
	assert.Contains(t, stderr, "plain HTTP")
	assert.Equal(t, 1, handler.count("GET", "/data/currencies/current"))

	p, err := config.LoadProfile("default")
	require.NoError(t, err)
	assert.Equal(t, storeURL, p.URL, "trailing slash is trimmed")
	assert.Equal(t, "ck_live_abcdefgh1234", p.ConsumerKey)
	assert.Equal(t, "cs_live_secret", p.ConsumerSecret)
}

func TestAuthLoginRejectedCredentials(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/data/currencies/current", jsonResponse(401, `{"code":"woocommerce_rest_authentication_error","message":"Invalid signature - provided signature does not match.","data":{"status":401}}`))
	storeURL := startStore(t, handler)

	_, err := run(t, "auth", "login", "--url", storeURL, "--key", "ck_bad_12345678", "--secret", "cs_bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the store rejected the credentials")
	assert.Equal(t, exitAuth, ExitCode(err))

	profiles, err := config.ListProfiles()
	require.NoError(t, err)
	assert.Empty(t, profiles, "nothing is saved after a failed check")
}

func TestAuthLoginNoVerify(t *testing.T) {
	handler := newRouteHandler()
	storeURL := startStore(t, handler)

	out := mustRun(t, "auth", "login", "--url", storeURL, "--consumer-key", "ck_1234567890", "--consumer-secret", "cs_1234567890",
		"--profile", "staging", "--no-verify", "--insecure-policy", "reject", "--rate-limit", "5", "-o", "json")

	obj := decodeObject(t, out)
	assert.Equal(t, "staging", obj["profile"])
	assert.Equal(t, false, obj["verified"])
	assert.Zero(t, handler.count("GET", "/data/currencies/current"))

	p, err := config.LoadProfile("staging")
	require.NoError(t, err)
	assert.Equal(t, "reject", p.InsecurePolicy)
	assert.Equal(t, 5.0, p.RateLimit)

	current, err := config.CurrentProfile()
	require.NoError(t, err)
	assert.Equal(t, "staging", current)
}

func TestAuthLoginValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing url", []string{"--consumer-key", "ck", "--consumer-secret", "cs"}, "--url is required"},
		{"missing key", []string{"--url", "https://shop.example.com", "--consumer-secret", "cs"}, "--consumer-key is required"},
		{"missing secret", []string{"--url", "https://shop.example.com", "--consumer-key", "ck"}, "--consumer-secret is required"},
		{"scheme", []string{"--url", "shop.example.com", "--consumer-key", "ck", "--consumer-secret", "cs"}, "must start with http:// or https://"},
		{"query", []string{"--url", "https://shop.example.com/?a=1", "--consumer-key", "ck", "--consumer-secret", "cs"}, "must not carry a query"},
		{"policy", []string{"--url", "https://shop.example.com", "--consumer-key", "ck", "--consumer-secret", "cs", "--insecure-policy", "maybe"}, "insecure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			withKeyring(t)

			_, err := run(t, append([]string{"auth", "login", "--no-verify"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAuthStatus(t *testing.T) {
	storeURL := startStore(t, newRouteHandler())

	out := mustRun(t, "auth", "status")
	assert.Contains(t, out, "Not configured.")

	mustRun(t, "auth", "login", "--url", storeURL, "--consumer-key", "ck_1234567890", "--consumer-secret", "cs_1234567890", "--no-verify")

	out = mustRun(t, "auth", "status")
	assert.Contains(t, out, "Configured")
	assert.Contains(t, out, storeURL)
	assert.Contains(t, out, "OAuth 1.0a (plain HTTP)")
	assert.Contains(t, out, "Source: keychain")
	assert.NotContains(t, out, "cs_1234567890")
}

func TestAuthStatusFromEnv(t *testing.T) {
	setupTestEnvWithHandler(t, newRouteHandler())

	obj := decodeObject(t, mustRun(t, "auth", "status", "-o", "json"))
	assert.Equal(t, true, obj["authenticated"])
	assert.Equal(t, "env", obj["source"])
	assert.Equal(t, "ck_t**********7890", obj["consumer_key"])
}

func TestAuthLogout(t *testing.T) {
	storeURL := startStore(t, newRouteHandler())
	mustRun(t, "auth", "login", "--url", storeURL, "--consumer-key", "ck_1234567890", "--consumer-secret", "cs_1234567890", "--no-verify")

	out := mustRun(t, "auth", "logout")
	assert.Contains(t, out, "Profile default removed.")

	out = mustRun(t, "auth", "logout", "--profile", "default")
	assert.Contains(t, out, "No credentials found for profile default.")

	_, err := config.LoadProfile("default")
	assert.Error(t, err)
}

func TestAuthDescription(t *testing.T) {
	yes := true
	tests := []struct {
		profile config.Profile
		want    string
	}{
		{config.Profile{Settings: config.Settings{URL: "https://shop.example.com"}}, "HTTP Basic"},
		{config.Profile{Settings: config.Settings{URL: "https://shop.example.com", QueryStringAuth: &yes}}, "query string"},
		{config.Profile{Settings: config.Settings{URL: "http://localhost:8080"}}, "OAuth 1.0a (plain HTTP)"},
		{config.Profile{Settings: config.Settings{URL: "http://localhost:8080", InsecurePolicy: "reject"}}, "none (plain HTTP rejected)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, authDescription(tt.profile), tt.profile.URL)
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "", maskToken(""))
	assert.Equal(t, "*******", maskToken("ck_1234"))
	assert.Equal(t, "ck_1****5678", maskToken("ck_1abcd5678"))
}
