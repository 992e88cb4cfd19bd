package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <expr>...",
		Short: "Roll one or more dice expressions, e.g. 3d8 or d20",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			defer rt.logger.Sync() //nolint:errcheck

			for _, expr := range args {
				result, err := rt.roller.RollExpr(expr)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.String())
			}
			return nil
		},
	}
}
