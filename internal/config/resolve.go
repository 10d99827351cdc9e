package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides.
const (
	EnvURL             = "WOO_URL"
	EnvConsumerKey     = "WOO_CONSUMER_KEY"
	EnvConsumerSecret  = "WOO_CONSUMER_SECRET"
	EnvProfile         = "WOO_PROFILE"
	EnvQueryStringAuth = "WOO_QUERY_STRING_AUTH"
	EnvVerifySSL       = "WOO_VERIFY_SSL"
	EnvCacheRedisURL   = "WOO_CACHE_REDIS_URL"
)

// LoadDotEnv loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Resolve returns the profile to connect with. WOO_URL with both consumer
// variables bypasses stored profiles; otherwise the profile is chosen by
// override, then WOO_PROFILE, then the current profile. The remaining
// WOO_* variables are applied on top.
func Resolve(override string) (Profile, error) {
	profile, err := resolveBase(override)
	if err != nil {
		return Profile{}, err
	}

	if v, ok, err := envBool(EnvQueryStringAuth); err != nil {
		return Profile{}, err
	} else if ok {
		profile.QueryStringAuth = &v
	}
	if v, ok, err := envBool(EnvVerifySSL); err != nil {
		return Profile{}, err
	} else if ok {
		profile.VerifySSL = &v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCacheRedisURL)); v != "" {
		profile.CacheRedisURL = v
	}
	return profile, nil
}

func resolveBase(override string) (Profile, error) {
	if url := strings.TrimSpace(os.Getenv(EnvURL)); url != "" {
		key := strings.TrimSpace(os.Getenv(EnvConsumerKey))
		secret := strings.TrimSpace(os.Getenv(EnvConsumerSecret))
		if key == "" || secret == "" {
			return Profile{}, fmt.Errorf("environment variables %s, %s, and %s must all be set", EnvURL, EnvConsumerKey, EnvConsumerSecret)
		}
		return Profile{
			Name:        "env",
			Settings:    Settings{URL: strings.TrimSuffix(url, "/")},
			Credentials: Credentials{ConsumerKey: key, ConsumerSecret: secret},
		}, nil
	}

	name := strings.TrimSpace(override)
	if name == "" {
		name = strings.TrimSpace(os.Getenv(EnvProfile))
	}
	if name == "" {
		current, err := CurrentProfile()
		if err != nil {
			return Profile{}, err
		}
		name = current
	}
	return LoadProfile(name)
}

func envBool(key string) (bool, bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return v, true, nil
}
