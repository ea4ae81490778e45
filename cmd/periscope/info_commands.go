package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"periscope/internal/settings"
	"periscope/internal/sysinfo"
)

func newSystemInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "system-info",
		Short: "Get system information for a bug report",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, renderNotice("Please copy & paste this table in your bug report"))

			rows := make([][]string, 0, 8)
			for _, metric := range sysinfo.Report() {
				value := metric.Value
				if metric.Code {
					value = "`" + value + "`"
				}
				rows = append(rows, []string{metric.Label, value})
			}
			fmt.Fprintln(stdout, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}
}

func newSettingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show periscope system settings (environment variables)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, 5)
			for _, row := range settings.Load().Dump() {
				rows = append(rows, []string{row[0], row[1]})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Setting", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}
}
