package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const envConfigFile = "WOO_CONFIG"

// Settings are the non-secret connection settings of a profile. Nil and
// zero values leave the client default in place.
type Settings struct {
	URL             string        `yaml:"url"`
	APIPath         string        `yaml:"api_path,omitempty"`
	QueryStringAuth *bool         `yaml:"query_string_auth,omitempty"`
	VerifySSL       *bool         `yaml:"verify_ssl,omitempty"`
	Timeout         time.Duration `yaml:"timeout,omitempty"`
	NonceLength     int           `yaml:"nonce_length,omitempty"`
	InsecurePolicy  string        `yaml:"insecure_policy,omitempty"`
	RateLimit       float64       `yaml:"rate_limit,omitempty"`
	RateBurst       int           `yaml:"rate_burst,omitempty"`
	CacheRedisURL   string        `yaml:"cache_redis_url,omitempty"`
}

// SettingsFile is the on-disk settings document.
type SettingsFile struct {
	Profiles map[string]Settings `yaml:"profiles"`
}

// SettingsPath returns the settings file location: $WOO_CONFIG, or
// config.yaml in the user config directory.
func SettingsPath() string {
	if path := strings.TrimSpace(os.Getenv(envConfigFile)); path != "" {
		return path
	}
	return filepath.Join(configBaseDir(), "config.yaml")
}

// LoadSettingsFile reads the settings file. A missing file is empty.
func LoadSettingsFile() (*SettingsFile, error) {
	path := SettingsPath()
	file := &SettingsFile{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read settings: %w", err)
	default:
		if err := yaml.Unmarshal(data, file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if file.Profiles == nil {
		file.Profiles = map[string]Settings{}
	}
	return file, nil
}

// SaveSettingsFile writes the settings file, creating its directory.
func SaveSettingsFile(file *SettingsFile) error {
	path := SettingsPath()
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
