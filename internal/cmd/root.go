package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woopy/woo-cli/internal/config"
	"github.com/woopy/woo-cli/internal/debug"
	"github.com/woopy/woo-cli/internal/dryrun"
	"github.com/woopy/woo-cli/internal/iocontext"
	"github.com/woopy/woo-cli/internal/metrics"
	"github.com/woopy/woo-cli/internal/outfmt"
)

const envOutput = "WOO_OUTPUT"

// rootFlags holds global CLI flags
type rootFlags struct {
	Output    string
	JSON      bool
	Debug     bool
	LogFormat string
	JQ        string
	Template  string
	Compact   bool
	Profile   string
	Timeout   time.Duration
	Metrics   bool
	NoCache   bool
	Quiet     bool
	DryRun    bool
}

// flags holds the global command flags. It is package-level mutable state
// and is reset at the start of every Execute() call, so anything reading it
// outside a command's RunE sees values from the previous run.
var flags = defaultFlags()

func defaultFlags() rootFlags {
	return rootFlags{
		Output:    defaultOutput(),
		LogFormat: debug.FormatText,
	}
}

func defaultOutput() string {
	if value := strings.TrimSpace(os.Getenv(envOutput)); value != "" {
		return value
	}
	return "text"
}

// Execute runs the root command
func Execute(ctx context.Context, args []string) error {
	// .env is loaded before the flag reset so WOO_OUTPUT can come from it.
	dotEnvErr := config.LoadDotEnv("")

	flags = defaultFlags()

	root := &cobra.Command{
		Use:                "woo",
		Short:              "CLI for the WooCommerce REST API",
		Long:               "Manage a WooCommerce store from the command line: products, orders, customers, coupons and the rest of the wc/v3 REST API.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true, // suggestions come from enhanceUnknownError
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if dotEnvErr != nil {
				return dotEnvErr
			}

			if flags.JSON {
				if cmd.Flags().Changed("output") && flags.Output != "json" {
					return fmt.Errorf("--json conflicts with --output %s", flags.Output)
				}
				flags.Output = "json"
			}
			if (flags.JQ != "" || flags.Template != "") && flags.Output == "text" {
				if cmd.Flags().Changed("output") {
					return fmt.Errorf("--jq and --template require --output json or jsonl")
				}
				flags.Output = "json"
			}

			mode, err := outfmt.Parse(flags.Output)
			if err != nil {
				return err
			}
			ctx = outfmt.WithMode(ctx, mode)
			ctx = outfmt.WithCompact(ctx, flags.Compact)

			ioStreams := iocontext.DefaultIO()
			if flags.Quiet {
				ioStreams.ErrOut = io.Discard
			}
			ctx = iocontext.WithIO(ctx, ioStreams)
			cmd.SetOut(ioStreams.Out)
			cmd.SetErr(ioStreams.ErrOut)

			if err := debug.SetupLogger(ioStreams.ErrOut, flags.Debug, flags.LogFormat); err != nil {
				return err
			}
			ctx = debug.WithDebug(ctx, flags.Debug)
			ctx = dryrun.WithDryRun(ctx, flags.DryRun)

			if flags.JQ != "" {
				ctx = outfmt.WithQuery(ctx, flags.JQ)
			}
			if flags.Template != "" {
				tmpl, err := iocontext.ReadSource(ctx, flags.Template)
				if err != nil {
					return fmt.Errorf("failed to load --template: %w", err)
				}
				ctx = outfmt.WithTemplate(ctx, string(tmpl))
			}

			if flags.Timeout < 0 {
				return fmt.Errorf("--timeout must be >= 0")
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetContext(ctx)
	root.SetArgs(args)

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text|json|jsonl (env WOO_OUTPUT)")
	pf.BoolVarP(&flags.JSON, "json", "j", false, "Shorthand for --output json")
	pf.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text|json")
	pf.StringVarP(&flags.JQ, "jq", "q", "", "jq expression to filter JSON output")
	pf.StringVar(&flags.Template, "template", "", "Go template string (or @path) to render JSON output")
	pf.BoolVar(&flags.Compact, "compact-json", false, "Compact JSON output (no indentation)")
	pf.StringVarP(&flags.Profile, "profile", "p", "", "Store profile to use (env WOO_PROFILE)")
	pf.DurationVar(&flags.Timeout, "timeout", 0, "HTTP request timeout (e.g. 30s); 0 uses the profile setting")
	pf.BoolVar(&flags.Metrics, "metrics", false, "Print request metrics to stderr when the command finishes")
	pf.BoolVar(&flags.NoCache, "no-cache", false, "Bypass the reference data cache")
	pf.BoolVarP(&flags.Quiet, "quiet", "Q", false, "Suppress messages on stderr")
	pf.BoolVar(&flags.DryRun, "dry-run", false, "Print the writes a command would send without sending them")
	flagAlias(pf, "jq", "query")
	flagAlias(pf, "dry-run", "dr")

	root.AddCommand(newAuthCmd())
	root.AddCommand(newProfileCmd())
	root.AddCommand(newAPICmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newVersionCmd())

	root.AddCommand(newProductsCmd())
	root.AddCommand(newVariationsCmd())
	root.AddCommand(newCategoriesCmd())
	root.AddCommand(newTagsCmd())
	root.AddCommand(newAttributesCmd())
	root.AddCommand(newAttributeTermsCmd())
	root.AddCommand(newReviewsCmd())
	root.AddCommand(newOrdersCmd())
	root.AddCommand(newOrderNotesCmd())
	root.AddCommand(newRefundsCmd())
	root.AddCommand(newCouponsCmd())
	root.AddCommand(newCustomersCmd())
	root.AddCommand(newWebhooksCmd())
	root.AddCommand(newPaymentGatewaysCmd())
	root.AddCommand(newReportsCmd())
	root.AddCommand(newSettingsCmd())
	root.AddCommand(newTaxClassesCmd())
	root.AddCommand(newTaxesCmd())
	root.AddCommand(newDataCmd())

	targetCmd, err := root.ExecuteC()
	if flags.Metrics {
		_ = metrics.WriteSummary(root.ErrOrStderr())
	}
	if err != nil {
		if !errors.Is(err, errAlreadyHandled) {
			_, _ = fmt.Fprintln(root.ErrOrStderr(), enhanceUnknownError(err, root, targetCmd))
		}
		return err
	}
	return nil
}

// enhanceUnknownError adds "did you mean?" suggestions to unknown command/flag errors.
func enhanceUnknownError(err error, root *cobra.Command, targetCmd *cobra.Command) string {
	msg := err.Error()

	if strings.Contains(msg, "unknown command") {
		if unknown := extractQuoted(msg); unknown != "" {
			var names []string
			for _, c := range root.Commands() {
				if c.IsAvailableCommand() {
					names = append(names, c.Name())
					names = append(names, c.Aliases...)
				}
			}
			if suggestion := suggestCommand(unknown, names); suggestion != "" {
				return fmt.Sprintf("%s\n\nDid you mean %q?", msg, suggestion)
			}
		}
		return msg
	}

	if strings.Contains(msg, "unknown flag") || strings.Contains(msg, "unknown shorthand flag") {
		unknown := extractFlag(msg)
		if unknown == "" {
			return msg
		}
		cmd := targetCmd
		if cmd == nil {
			cmd = root
		}
		var names []string
		collect := func(fs *pflag.FlagSet) {
			fs.VisitAll(func(f *pflag.Flag) {
				if !f.Hidden {
					names = append(names, "--"+f.Name)
				}
			})
		}
		collect(cmd.Flags())
		collect(cmd.InheritedFlags())
		helpCmd := strings.TrimSpace(cmd.CommandPath()) + " --help"
		if suggestion := suggestFlag(unknown, names); suggestion != "" {
			return fmt.Sprintf("%s\n\nDid you mean %q?\nRun %q to see supported flags.", msg, suggestion, helpCmd)
		}
		return fmt.Sprintf("%s\n\nRun %q to see supported flags.", msg, helpCmd)
	}

	return msg
}

// extractQuoted extracts the first double-quoted substring from s.
func extractQuoted(s string) string {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(s[start+1:], '"')
	if end < 0 {
		return ""
	}
	return s[start+1 : start+1+end]
}

// extractFlag extracts a flag name (e.g., "--foo") from an error message.
func extractFlag(s string) string {
	idx := strings.Index(s, "--")
	if idx < 0 {
		return ""
	}
	rest := s[idx:]
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimRight(rest, ".,;:!?\"'")
}
