package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/charsheet/internal/game/ability"
	"github.com/cory-johannsen/charsheet/internal/game/sheet"
)

func newShowCmd() *cobra.Command {
	var modified bool
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Render one sheet, or all sheets when no id is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			defer rt.logger.Sync() //nolint:errcheck

			reg, err := rt.sheets()
			if err != nil {
				return err
			}

			defs := reg.All()
			if len(args) == 1 {
				def, ok := reg.Get(args[0])
				if !ok {
					return fmt.Errorf("unknown sheet %q", args[0])
				}
				defs = []*sheet.Def{def}
			}

			out := cmd.OutOrStdout()
			for i, def := range defs {
				s, err := sheet.Build(def, ability.RandomDescriptors{})
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("modified") {
					s.Abilities.SetModifiedDisplay(modified)
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, s.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&modified, "modified", false, "render modified scores instead of the template's display mode")
	return cmd
}
