package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/cache"
	"github.com/woopy/woo-cli/internal/config"
)

type clientFactory struct {
	profile   string
	timeout   time.Duration
	userAgent string
}

func newClientFactory() *clientFactory {
	return &clientFactory{
		profile:   flags.Profile,
		timeout:   flags.Timeout,
		userAgent: fmt.Sprintf("woo-cli/%s", version),
	}
}

// getClient creates an API client for the selected profile.
func getClient() (*api.Client, error) {
	client, _, err := newClientFactory().client()
	return client, err
}

func (f *clientFactory) client() (*api.Client, config.Profile, error) {
	profile, err := config.Resolve(f.profile)
	if err != nil {
		return nil, config.Profile{}, err
	}
	opts, err := f.options(profile)
	if err != nil {
		return nil, config.Profile{}, err
	}
	return api.New(profile.URL, profile.ConsumerKey, profile.ConsumerSecret, opts...), profile, nil
}

// options turns profile settings into client options. --timeout wins over
// the profile's timeout.
func (f *clientFactory) options(profile config.Profile) ([]api.Option, error) {
	opts := []api.Option{
		api.WithUserAgent(f.userAgent),
		api.WithLogger(slog.Default()),
	}
	if profile.APIPath != "" {
		opts = append(opts, api.WithAPIPath(profile.APIPath))
	}
	if profile.QueryStringAuth != nil {
		opts = append(opts, api.WithQueryStringAuth(*profile.QueryStringAuth))
	}
	if profile.VerifySSL != nil {
		opts = append(opts, api.WithVerifySSL(*profile.VerifySSL))
	}

	timeout := profile.Timeout
	if f.timeout > 0 {
		timeout = f.timeout
	}
	if timeout > 0 {
		opts = append(opts, api.WithTimeout(timeout))
	}

	if profile.NonceLength != 0 {
		opts = append(opts, api.WithSigner(api.NewSigner(profile.ConsumerKey, profile.ConsumerSecret,
			api.WithNonceLength(profile.NonceLength))))
	}

	policy, err := api.ParseInsecurePolicy(profile.InsecurePolicy)
	if err != nil {
		return nil, err
	}
	opts = append(opts, api.WithInsecurePolicy(policy))

	if profile.RateLimit > 0 {
		opts = append(opts, api.WithRateLimit(profile.RateLimit, profile.RateBurst))
	}
	return opts, nil
}

// openCache returns the reference data store for profile, or nil when
// caching is off. The returned func releases the store.
func openCache(profile config.Profile) (cache.Store, func(), error) {
	if flags.NoCache {
		return nil, func() {}, nil
	}
	if profile.CacheRedisURL != "" {
		store, err := cache.NewRedisStore(profile.CacheRedisURL, profile.URL, cache.DefaultTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open redis cache: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		slog.Debug("cache disabled", "error", err)
		return nil, func() {}, nil
	}
	return cache.NewFileStore(dir, profile.URL, cache.DefaultTTL), func() {}, nil
}
