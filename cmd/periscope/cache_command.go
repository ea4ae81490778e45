package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"periscope/internal/cache"
	"periscope/internal/logging"
)

func newClearCacheCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Clear the shared query response cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCache(func(store *cache.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					// Interactive operators get the short message; the
					// full diagnostic goes to logs for automated capture.
					if !isatty.IsTerminal(os.Stdout.Fd()) {
						ctx.ensureLogger().Error("clear cache failed",
							logging.Error(err),
							logging.String("cache", store.Path()))
					}
					return fmt.Errorf("error clearing cache: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared query response cache")
				return nil
			})
		},
	}
}
