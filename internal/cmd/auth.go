package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/config"
	"github.com/woopy/woo-cli/internal/validation"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"au"},
		Short:   "Manage store credentials",
		Long:    "Configure WooCommerce REST API credentials. Keys are stored in your OS keychain; other settings in the config file.",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var (
		storeURL        string
		key             string
		secret          string
		profile         string
		queryStringAuth bool
		insecureSkip    bool
		insecurePolicy  string
		apiPath         string
		timeout         time.Duration
		nonceLength     int
		rateLimit       float64
		rateBurst       int
		redisURL        string
		noVerify        bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save credentials for a store",
		Long: strings.TrimSpace(`
Save WooCommerce REST API credentials.

Generate a key pair in WooCommerce > Settings > Advanced > REST API. The
consumer key and secret go to your OS keychain; the remaining settings are
written to the config file (see WOO_CONFIG).

Unless --no-verify is given, the credentials are checked against the store
before they are saved.
`),
		Example: strings.TrimSpace(`
  woo auth login --url https://shop.example.com --consumer-key ck_xxx --consumer-secret cs_xxx

  # A second store under its own profile
  woo auth login --profile staging --url https://staging.example.com --consumer-key ck_xxx --consumer-secret cs_xxx

  # Servers that strip the Authorization header
  woo auth login --url https://shop.example.com --consumer-key ck_xxx --consumer-secret cs_xxx --query-string-auth
`),
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			storeURL = strings.TrimSuffix(strings.TrimSpace(storeURL), "/")
			key = strings.TrimSpace(key)
			secret = strings.TrimSpace(secret)
			if storeURL == "" {
				return fmt.Errorf("--url is required")
			}
			if key == "" {
				return fmt.Errorf("--consumer-key is required")
			}
			if secret == "" {
				return fmt.Errorf("--consumer-secret is required")
			}
			if err := validateStoreURL(storeURL); err != nil {
				return err
			}
			if _, err := api.ParseInsecurePolicy(insecurePolicy); err != nil {
				return err
			}
			if timeout < 0 {
				return fmt.Errorf("--timeout must be >= 0")
			}
			if rateLimit < 0 {
				return fmt.Errorf("--rate-limit must be >= 0")
			}

			p := config.Profile{
				Name: profile,
				Settings: config.Settings{
					URL:            storeURL,
					APIPath:        apiPath,
					Timeout:        timeout,
					NonceLength:    nonceLength,
					InsecurePolicy: insecurePolicy,
					RateLimit:      rateLimit,
					RateBurst:      rateBurst,
					CacheRedisURL:  redisURL,
				},
				Credentials: config.Credentials{ConsumerKey: key, ConsumerSecret: secret},
			}
			if cmd.Flags().Changed("query-string-auth") {
				p.QueryStringAuth = &queryStringAuth
			}
			if insecureSkip {
				verify := false
				p.VerifySSL = &verify
			}

			if !noVerify {
				if err := verifyCredentials(cmd, p); err != nil {
					return err
				}
			}

			if err := config.SaveProfile(p); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{
					"saved":        true,
					"profile":      profileName(p.Name),
					"url":          storeURL,
					"consumer_key": maskToken(key),
					"verified":     !noVerify,
				})
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Credentials saved.")
			_, _ = fmt.Fprintf(out, "  URL: %s\n", storeURL)
			_, _ = fmt.Fprintf(out, "  Consumer key: %s\n", maskToken(key))
			_, _ = fmt.Fprintf(out, "  Profile: %s\n", profileName(p.Name))
			if strings.HasPrefix(storeURL, "http://") {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: plain HTTP sends signed requests without TLS; prefer https.")
			}
			return nil
		}),
	}

	fs := cmd.Flags()
	fs.StringVar(&storeURL, "url", "", "Store URL (e.g. https://shop.example.com)")
	fs.StringVar(&key, "consumer-key", "", "REST API consumer key (ck_...)")
	fs.StringVar(&secret, "consumer-secret", "", "REST API consumer secret (cs_...)")
	fs.StringVar(&profile, "profile", "default", "Profile name to save the store under")
	fs.BoolVar(&queryStringAuth, "query-string-auth", false, "Send HTTPS credentials as query parameters instead of Basic auth")
	fs.BoolVar(&insecureSkip, "insecure-skip-verify", false, "Do not verify the store's TLS certificate")
	fs.StringVar(&insecurePolicy, "insecure-policy", "", "Plain HTTP handling: sign (OAuth 1.0a, default) or reject")
	fs.StringVar(&apiPath, "api-path", "", "REST API path (default /wp-json/wc/v3)")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout for this store (default 30s)")
	fs.IntVar(&nonceLength, "nonce-length", 0, "OAuth nonce length (default 32, minimum 8)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Maximum requests per second (0 for no limit)")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Burst allowed above --rate-limit")
	fs.StringVar(&redisURL, "redis-url", "", "Cache reference data in Redis (redis://host:6379/0)")
	fs.BoolVar(&noVerify, "no-verify", false, "Save without checking the credentials against the store")
	flagAlias(fs, "profile", "pf")
	flagAlias(fs, "consumer-key", "key")
	flagAlias(fs, "consumer-secret", "secret")

	return cmd
}

func validateStoreURL(raw string) error {
	if err := validation.StoreURL(raw); err != nil {
		return fmt.Errorf("invalid value for --url %q: %w", raw, err)
	}
	return nil
}

// verifyCredentials makes one authenticated read against the store.
func verifyCredentials(cmd *cobra.Command, p config.Profile) error {
	f := newClientFactory()
	opts, err := f.options(p)
	if err != nil {
		return err
	}
	client := api.New(p.URL, p.ConsumerKey, p.ConsumerSecret, opts...)
	if _, err := client.Data().CurrentCurrency(cmdContext(cmd)); err != nil {
		if api.IsAuthError(err) {
			return fmt.Errorf("the store rejected the credentials: %w", err)
		}
		return fmt.Errorf("could not reach the store API at %s: %w", client.BaseURL(), err)
	}
	return nil
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active store configuration",
		Long:  "Display the store the next command would talk to. The consumer key is masked and the secret is never shown.",
		Example: strings.TrimSpace(`
  woo auth status
  woo auth status --json
`),
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			p, err := config.Resolve(flags.Profile)
			if err != nil {
				if !errors.Is(err, config.ErrNotConfigured) {
					return err
				}
				if isJSON(cmd) {
					return printJSON(cmd, map[string]any{
						"authenticated": false,
						"message":       "Not configured. Run 'woo auth login' to add a store.",
					})
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not configured.")
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Run 'woo auth login' to add a store.")
				return nil
			}

			source := "keychain"
			if strings.TrimSpace(os.Getenv(config.EnvURL)) != "" {
				source = "env"
			}
			auth := authDescription(p)

			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{
					"authenticated": true,
					"profile":       profileName(p.Name),
					"url":           p.URL,
					"consumer_key":  maskToken(p.ConsumerKey),
					"auth":          auth,
					"source":        source,
				})
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Configured")
			_, _ = fmt.Fprintf(out, "  Profile: %s\n", profileName(p.Name))
			_, _ = fmt.Fprintf(out, "  URL: %s\n", p.URL)
			_, _ = fmt.Fprintf(out, "  Consumer key: %s\n", maskToken(p.ConsumerKey))
			_, _ = fmt.Fprintf(out, "  Auth: %s\n", auth)
			_, _ = fmt.Fprintf(out, "  Source: %s\n", source)
			if p.VerifySSL != nil && !*p.VerifySSL {
				_, _ = fmt.Fprintln(out, "  TLS verification: disabled")
			}
			return nil
		}),
	}
}

// authDescription names the strategy the client picks for the profile.
func authDescription(p config.Profile) string {
	if !strings.HasPrefix(strings.ToLower(p.URL), "https://") {
		if strings.EqualFold(p.InsecurePolicy, "reject") {
			return "none (plain HTTP rejected)"
		}
		return "OAuth 1.0a (plain HTTP)"
	}
	if p.QueryStringAuth != nil && *p.QueryStringAuth {
		return "query string"
	}
	return "HTTP Basic"
}

func newAuthLogoutCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Delete a profile's credentials from your OS keychain and its settings from the config file.",
		Example: strings.TrimSpace(`
  woo auth logout
  woo auth logout --profile staging
`),
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if profile == "" {
				current, err := config.CurrentProfile()
				if err != nil {
					return err
				}
				profile = current
			}
			profiles, err := config.ListProfiles()
			if err != nil {
				return err
			}
			known := false
			for _, p := range profiles {
				if p == profile {
					known = true
					break
				}
			}
			if !known {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No credentials found for profile %s.\n", profile)
				return nil
			}

			if err := config.DeleteProfile(profile); err != nil {
				return fmt.Errorf("failed to remove credentials: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile %s removed.\n", profile)
			return nil
		}),
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile to remove (defaults to current)")
	flagAlias(cmd.Flags(), "profile", "pf")
	return cmd
}

func profileName(name string) string {
	if name == "" {
		return "default"
	}
	return name
}

// maskToken masks a key for display, showing only the first and last 4 characters.
func maskToken(token string) string {
	if len(token) < 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
