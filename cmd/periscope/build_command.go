package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"periscope/internal/ui"
)

func newBuildUICommand(ctx *commandContext) *cobra.Command {
	var timeoutFlag int

	cmd := &cobra.Command{
		Use:   "build-ui",
		Short: "Create a new UI build",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "Starting new UI build with a %d second timeout...\n", timeoutFlag)

			builder := ui.NewBuilder(cfg.Paths.UIDir, cfg.UIBuild.Command, cfg.UIBuild.Args, ctx.ensureLogger())
			if !builder.Build(cmd.Context(), time.Duration(timeoutFlag)*time.Second) {
				return errors.New("UI build failed or timed out")
			}
			fmt.Fprintln(stdout, "UI build complete")
			return nil
		},
	}

	cmd.Flags().IntVarP(&timeoutFlag, "timeout", "t", 180, "Timeout in seconds")
	return cmd
}
