package main

import (
	"github.com/spf13/cobra"

	"periscope/internal/installer"
)

func newSetupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Initialize periscope setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return installer.New(cfg, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
}
