package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/config"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles", "pr"},
		Short:   "Switch between configured stores",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			return runProfileList(cmd)
		}),
	}

	cmd.AddCommand(newProfileListCmd())
	cmd.AddCommand(newProfileUseCmd())

	return cmd
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured profiles",
		Example: "woo profile list",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			return runProfileList(cmd)
		}),
	}
}

type profileEntry struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Current bool   `json:"current"`
}

func runProfileList(cmd *cobra.Command) error {
	names, err := config.ListProfiles()
	if err != nil {
		return err
	}
	current, err := config.CurrentProfile()
	if err != nil {
		return err
	}
	file, err := config.LoadSettingsFile()
	if err != nil {
		return err
	}

	entries := make([]profileEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, profileEntry{
			Name:    name,
			URL:     file.Profiles[name].URL,
			Current: name == current,
		})
	}

	if len(entries) == 0 && !isJSON(cmd) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No profiles configured. Run 'woo auth login' to add a store.")
		return nil
	}
	return printItems(cmd, entries, profileColumns, "profiles")
}

var profileColumns = columns[profileEntry]{
	headers: []string{"", "PROFILE", "URL"},
	row: func(e profileEntry) []string {
		marker := ""
		if e.Current {
			marker = "*"
		}
		return []string{marker, e.Name, e.URL}
	},
}

func newProfileUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "use <name>",
		Aliases: []string{"switch"},
		Short:   "Make a profile the current one",
		Example: "woo profile use staging",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, err := config.LoadProfile(name); err != nil {
				return fmt.Errorf("cannot switch to profile %s: %w", name, err)
			}
			if err := config.SetCurrentProfile(name); err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{"current": name})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile %s.\n", name)
			return nil
		}),
	}
}
