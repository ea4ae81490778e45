package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"periscope/internal/state"
)

func newDevicesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "devices [pattern]",
		Short: "Show all configured devices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.ensureState()
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()

			if len(args) == 1 {
				match, found, err := state.SearchFirst(st.Devices, args[0])
				if err != nil {
					return err
				}
				if found {
					fmt.Fprintln(stdout, renderPanel(match.Name, deviceRows(match)))
					return nil
				}
			}

			for _, device := range st.Devices {
				fmt.Fprintln(stdout, renderPanel(device.Name, deviceRows(device)))
			}
			return nil
		},
	}
}

func newDirectivesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "directives [pattern]",
		Short: "Show all configured query directives",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.ensureState()
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()

			if len(args) == 1 {
				match, found, err := state.SearchFirst(st.Directives, args[0])
				if err != nil {
					return err
				}
				if found {
					fmt.Fprintln(stdout, renderPanel(match.Name, directiveRows(match)))
					return nil
				}
			}

			for _, directive := range st.Directives {
				fmt.Fprintln(stdout, renderPanel(directive.Name, directiveRows(directive)))
			}
			return nil
		},
	}
}

func newPluginsCommand(ctx *commandContext) *cobra.Command {
	var inputOnly bool
	var outputOnly bool

	cmd := &cobra.Command{
		Use:   "plugins [pattern]",
		Short: "Show all configured plugins",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.ensureState()
			if err != nil {
				return err
			}

			var types []state.PluginType
			switch {
			case inputOnly:
				types = []state.PluginType{state.PluginInput}
			case outputOnly:
				types = []state.PluginType{state.PluginOutput}
			}
			plugins := st.Plugins(types...)

			stdout := cmd.OutOrStdout()
			if len(args) == 1 {
				matched, err := state.SearchAll(plugins, args[0])
				if err != nil {
					return err
				}
				if len(matched) == 0 {
					return fmt.Errorf("no plugins matching %q", args[0])
				}
				plugins = matched
			}

			for _, plugin := range plugins {
				fmt.Fprintln(stdout, renderPanel(plugin.Name, pluginRows(plugin)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&inputOnly, "input", "i", false, "Show input plugins only")
	cmd.Flags().BoolVarP(&outputOnly, "output", "o", false, "Show output plugins only")
	cmd.MarkFlagsMutuallyExclusive("input", "output")
	return cmd
}

func deviceRows(d state.Device) [][2]string {
	return [][2]string{
		{"id", d.ID},
		{"name", d.Name},
		{"address", d.Address},
		{"platform", titleCaser.String(d.Platform)},
		{"description", d.Description},
		{"directives", strings.Join(d.Directives, ", ")},
	}
}

func directiveRows(d state.Directive) [][2]string {
	return [][2]string{
		{"id", d.ID},
		{"name", d.Name},
		{"description", d.Description},
		{"rules", strings.Join(d.Rules, ", ")},
	}
}

func pluginRows(p state.Plugin) [][2]string {
	return [][2]string{
		{"name", p.Name},
		{"type", string(p.Type)},
		{"path", p.Path},
		{"description", p.Description},
	}
}
