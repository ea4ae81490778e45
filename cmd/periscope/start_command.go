package main

import (
	"time"

	"github.com/spf13/cobra"

	"periscope/internal/cache"
	"periscope/internal/launch"
	"periscope/internal/server"
	"periscope/internal/state"
	"periscope/internal/ui"
)

func newStartCommand(ctx *commandContext) *cobra.Command {
	var buildFlag bool
	var workersFlag int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the periscope service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			return ctx.withCache(func(cacheStore *cache.Store) error {
				st := state.New(cfg, cacheStore)
				builder := ui.NewBuilder(cfg.Paths.UIDir, cfg.UIBuild.Command, cfg.UIBuild.Args, logger)
				svc := server.New(cfg.Listen, st, logger)

				orch := &launch.Orchestrator{
					Build:  builder.Build,
					Serve:  svc.Run,
					Logger: logger,
				}
				return orch.Run(cmd.Context(), launch.Options{
					Build:        buildFlag,
					BuildTimeout: time.Duration(cfg.UIBuild.Timeout) * time.Second,
					Workers:      workersFlag,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&buildFlag, "build", "b", false, "Build the UI before starting")
	cmd.Flags().IntVarP(&workersFlag, "workers", "w", 0, "Number of query workers (0 = service default)")
	return cmd
}
