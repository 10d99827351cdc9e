package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/99designs/keyring"
)

const (
	serviceName       = "woo-cli"
	credentialsKey    = "default"
	defaultProfile    = "default"
	profilePrefix     = "profile:"
	profileIndexKey   = "profiles_index"
	currentProfileKey = "current_profile"

	envKeyringBackend  = "WOO_KEYRING_BACKEND"
	envKeyringPassword = "WOO_KEYRING_PASSWORD"
	envCredentialsDir  = "WOO_CREDENTIALS_DIR"

	keyringBackendAuto   = "auto"
	keyringBackendFile   = "file"
	keyringBackendSystem = "system"
)

// openKeyring is a package-level function for opening keyrings.
// It can be replaced in tests to use a mock keyring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

var userConfigDir = os.UserConfigDir

var stdinHasTTY = func() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// SetOpenKeyring allows replacing the keyring opener for testing.
// Returns a cleanup function that restores the original.
func SetOpenKeyring(fn func(keyring.Config) (keyring.Keyring, error)) func() {
	original := openKeyring
	openKeyring = fn
	return func() { openKeyring = original }
}

// Credentials are the REST API key pair of a store. They live in the keyring.
type Credentials struct {
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

// Profile is one configured store: its settings plus its credentials.
type Profile struct {
	Name string
	Settings
	Credentials
}

// ErrNotConfigured is returned when no store is configured
var ErrNotConfigured = errors.New("woo not configured - run 'woo auth login' first")

// keyringConfig returns the keyring configuration
func keyringConfig() keyring.Config {
	cfg := keyring.Config{
		ServiceName: serviceName,
	}

	backend := keyringBackendMode()
	if backend == keyringBackendSystem {
		return cfg
	}

	// Auto mode can still fall through to the encrypted file store.
	configureFileBackend(&cfg)

	if shouldForceFileBackend(runtime.GOOS, backend, os.Getenv("DBUS_SESSION_BUS_ADDRESS")) {
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	}

	return cfg
}

func keyringBackendMode() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envKeyringBackend))) {
	case keyringBackendFile:
		return keyringBackendFile
	case keyringBackendSystem, "os", "native":
		return keyringBackendSystem
	default:
		return keyringBackendAuto
	}
}

// shouldForceFileBackend reports whether only the file backend may be used.
// Headless Linux has no secret service to talk to.
func shouldForceFileBackend(goos, backend, dbusAddr string) bool {
	if backend == keyringBackendFile {
		return true
	}
	if backend != keyringBackendAuto {
		return false
	}
	return goos == "linux" && strings.TrimSpace(dbusAddr) == ""
}

func configureFileBackend(cfg *keyring.Config) {
	cfg.FileDir = keyringFileDir()
	cfg.FilePasswordFunc = keyringFilePassword
}

func keyringFileDir() string {
	base := strings.TrimSpace(os.Getenv(envCredentialsDir))
	if base == "" {
		base = configBaseDir()
	}
	return filepath.Join(base, "keyring")
}

// configBaseDir is the per-user directory holding woo's files.
func configBaseDir() string {
	if dir, err := userConfigDir(); err == nil && strings.TrimSpace(dir) != "" {
		return filepath.Join(dir, "woo")
	}
	if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
		return filepath.Join(home, ".config", "woo")
	}
	return filepath.Join(os.TempDir(), "woo")
}

func keyringFilePassword(prompt string) (string, error) {
	if password, ok := os.LookupEnv(envKeyringPassword); ok && strings.TrimSpace(password) != "" {
		return password, nil
	}
	if !stdinHasTTY() {
		return "", fmt.Errorf("set %s when using file keyring in non-interactive environments", envKeyringPassword)
	}
	return keyring.TerminalPrompt(prompt)
}

func profileKey(name string) string {
	if name == "" {
		name = defaultProfile
	}
	if name == defaultProfile {
		return credentialsKey
	}
	return profilePrefix + name
}

func loadProfileIndex(ring keyring.Keyring) ([]string, error) {
	item, err := ring.Get(profileIndexKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get profile index: %w", err)
	}
	var profiles []string
	if err := json.Unmarshal(item.Data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile index: %w", err)
	}
	return profiles, nil
}

func saveProfileIndex(ring keyring.Keyring, profiles []string) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to marshal profile index: %w", err)
	}
	return ring.Set(keyring.Item{
		Key:  profileIndexKey,
		Data: data,
	})
}

func normalizeProfiles(profiles []string) []string {
	seen := make(map[string]struct{}, len(profiles))
	var out []string
	for _, p := range profiles {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// SaveProfile stores a profile: credentials in the keyring, settings in the
// settings file. The saved profile becomes the current one.
func SaveProfile(profile Profile) error {
	name := profile.Name
	if name == "" {
		name = defaultProfile
	}

	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}

	data, err := json.Marshal(profile.Credentials)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := ring.Set(keyring.Item{
		Key:   profileKey(name),
		Label: serviceName + " " + name,
		Data:  data,
	}); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	file, err := LoadSettingsFile()
	if err != nil {
		return err
	}
	file.Profiles[name] = profile.Settings
	if err := SaveSettingsFile(file); err != nil {
		return err
	}

	profiles, err := loadProfileIndex(ring)
	if err != nil {
		return err
	}
	if err := saveProfileIndex(ring, normalizeProfiles(append(profiles, name))); err != nil {
		return err
	}

	return SetCurrentProfile(name)
}

// LoadProfile reads a stored profile.
func LoadProfile(name string) (Profile, error) {
	if name == "" {
		name = defaultProfile
	}

	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return Profile{}, fmt.Errorf("failed to open keyring: %w", err)
	}

	item, err := ring.Get(profileKey(name))
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return Profile{}, ErrNotConfigured
		}
		return Profile{}, fmt.Errorf("failed to get credentials: %w", err)
	}

	profile := Profile{Name: name}
	if err := json.Unmarshal(item.Data, &profile.Credentials); err != nil {
		return Profile{}, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}

	file, err := LoadSettingsFile()
	if err != nil {
		return Profile{}, err
	}
	profile.Settings = file.Profiles[name]
	if profile.URL == "" {
		return Profile{}, fmt.Errorf("profile %q has no store URL: %w", name, ErrNotConfigured)
	}
	return profile, nil
}

// DeleteProfile removes a stored profile. Deleting the current profile
// switches to the next remaining one.
func DeleteProfile(name string) error {
	if name == "" {
		name = defaultProfile
	}

	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}

	if err := ring.Remove(profileKey(name)); err != nil {
		if !errors.Is(err, keyring.ErrKeyNotFound) {
			return fmt.Errorf("failed to remove credentials: %w", err)
		}
	}

	file, err := LoadSettingsFile()
	if err != nil {
		return err
	}
	if _, ok := file.Profiles[name]; ok {
		delete(file.Profiles, name)
		if err := SaveSettingsFile(file); err != nil {
			return err
		}
	}

	profiles, err := loadProfileIndex(ring)
	if err != nil {
		return err
	}
	var remaining []string
	for _, p := range profiles {
		if p != name {
			remaining = append(remaining, p)
		}
	}
	if err := saveProfileIndex(ring, remaining); err != nil {
		return err
	}

	current, err := CurrentProfile()
	if err == nil && current == name {
		next := defaultProfile
		if len(remaining) > 0 {
			next = remaining[0]
		}
		_ = SetCurrentProfile(next)
	}

	return nil
}

// ListProfiles returns the known profile names
func ListProfiles() ([]string, error) {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}

	profiles, err := loadProfileIndex(ring)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		if _, err := ring.Get(credentialsKey); err == nil {
			return []string{defaultProfile}, nil
		}
	}
	return profiles, nil
}

// CurrentProfile returns the active profile name
func CurrentProfile() (string, error) {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return "", fmt.Errorf("failed to open keyring: %w", err)
	}

	item, err := ring.Get(currentProfileKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return defaultProfile, nil
		}
		return "", fmt.Errorf("failed to get current profile: %w", err)
	}
	return string(item.Data), nil
}

// SetCurrentProfile sets the active profile name
func SetCurrentProfile(name string) error {
	if name == "" {
		name = defaultProfile
	}

	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}

	return ring.Set(keyring.Item{
		Key:  currentProfileKey,
		Data: []byte(name),
	})
}
