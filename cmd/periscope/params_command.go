package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"periscope/internal/state"
)

func newParamsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "params [path]",
		Short: "Show configuration parameters",
		Long:  "Show configuration parameters, or a single value by dotted path, for example 'messages.no_input'.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.ensureState()
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()

			if len(args) == 1 {
				path := args[0]
				value, err := state.Resolve(st.Params, path)
				if err != nil {
					var notFound *state.PathNotFoundError
					if errors.As(err, &notFound) {
						return fmt.Errorf("'params.%s' does not exist", notFound.Path)
					}
					return err
				}
				if node, ok := value.(state.Node); ok {
					fmt.Fprintln(stdout, renderPanel("params."+path, paramRows(path, node)))
					return nil
				}
				fmt.Fprintln(stdout, renderPanel("params."+path, [][2]string{{path, fmt.Sprint(value)}}))
				return nil
			}

			fmt.Fprintln(stdout, renderPanel("Periscope Configuration Parameters", paramRows("", st.Params)))
			return nil
		},
	}
}

// paramRows flattens a parameter subtree into dotted-path rows in
// schema order.
func paramRows(prefix string, node state.Node) [][2]string {
	var rows [][2]string
	for _, name := range node.FieldNames() {
		value, ok := node.Field(name)
		if !ok {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if child, isNode := value.(state.Node); isNode {
			rows = append(rows, paramRows(path, child)...)
			continue
		}
		rows = append(rows, [2]string{path, fmt.Sprint(value)})
	}
	return rows
}
