package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/cache"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		Aliases: []string{"ch"},
		Short:   "Manage the reference data cache",
		Long: "Categories, tags, attributes, countries and currencies are cached for a few\n" +
			"minutes so names resolve without extra requests. Set WOO_NO_CACHE=1 or pass\n" +
			"--no-cache to bypass it.",
	}

	cmd.AddCommand(newCacheClearCmd())
	cmd.AddCommand(newCachePathCmd())
	return cmd
}

func newCacheClearCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear cached data for the current store",
		Example: `  woo cache clear
  woo cache clear --all`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if all {
				dir, err := cache.DefaultDir()
				if err != nil {
					return fmt.Errorf("could not determine cache directory: %w", err)
				}
				cache.ClearAll(dir)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cache cleared: %s\n", dir)
				return nil
			}

			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close()
			store := s.cache()
			if store == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cache is disabled; nothing to clear.")
				return nil
			}
			if err := store.Clear(cmdContext(cmd)); err != nil {
				return fmt.Errorf("failed to clear %s cache: %w", store.Name(), err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cache cleared for %s (%s)\n", s.profile.URL, store.Name())
			return nil
		}),
	}

	cmd.Flags().BoolVar(&all, "all", false, "Clear the file cache of every store")
	return cmd
}

func newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the cache directory path",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return fmt.Errorf("could not determine cache directory: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), dir)

			entries, err := os.ReadDir(dir)
			if err != nil {
				return nil // not created yet
			}
			for _, e := range entries {
				if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
					continue
				}
				info, err := e.Info()
				if err != nil {
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d bytes)\n", e.Name(), info.Size())
			}
			return nil
		}),
	}
}
