package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/charsheet/internal/game/ability"
	"github.com/cory-johannsen/charsheet/internal/game/sheet"
)

func newRestCmd() *cobra.Command {
	var (
		pool      string
		damage    int
		use       int
		replenish int
	)
	cmd := &cobra.Command{
		Use:   "rest <id>",
		Short: "Spend and replenish hit dice on a freshly built sheet",
		Long: `rest builds the sheet, applies --damage, spends --use dice from the selected pool (adding each
roll to current hit points, capped at maximum), then replenishes --replenish uses.`,
		Args: cobra.ExactArgs(1),
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
			def, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown sheet %q", args[0])
			}
			s, err := sheet.Build(def, ability.RandomDescriptors{})
			if err != nil {
				return err
			}

			hp := s.HitPoints
			pools := hp.Pools()
			if len(pools) == 0 {
				return fmt.Errorf("sheet %q has no hit dice", def.ID)
			}
			hd := pools[0]
			if pool != "" {
				if hd, ok = hp.Pool(pool); !ok {
					return fmt.Errorf("sheet %q has no hit dice pool %q", def.ID, pool)
				}
			}

			out := cmd.OutOrStdout()
			hp.Current -= damage
			fmt.Fprintln(out, hp.String())
			conMod := s.Abilities.Get(ability.Constitution).Bonus(true)
			for i := 0; i < use; i++ {
				v := rt.roller.Use(hd)
				if v == 0 {
					fmt.Fprintf(out, "%s is depleted\n", hd.Dice().String())
					break
				}
				hp.Current = min(hp.Maximum, hp.Current+max(0, v+conMod))
				fmt.Fprintf(out, "rolled %d (%+d CON) -> %s\n", v, conMod, hp.String())
			}
			rt.roller.Replenish(hd, replenish)
			rt.logger.Info("rest complete",
				zap.String("sheet", def.ID),
				zap.String("pool", hd.Descriptor()),
				zap.Int("remaining", hd.Remaining()),
			)
			fmt.Fprintln(out, hd.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&pool, "pool", "", "hit dice pool descriptor (defaults to the first pool)")
	cmd.Flags().IntVar(&damage, "damage", 0, "damage taken before resting")
	cmd.Flags().IntVar(&use, "use", 1, "number of hit dice to spend")
	cmd.Flags().IntVar(&replenish, "replenish", 0, "number of hit dice uses to restore afterwards")
	return cmd
}
