// Package main provides the charsheet command-line tool for inspecting
// character templates and exercising dice and hit dice pools.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/charsheet/internal/config"
	"github.com/cory-johannsen/charsheet/internal/game/dice"
	"github.com/cory-johannsen/charsheet/internal/game/sheet"
	"github.com/cory-johannsen/charsheet/internal/observability"
)

var configPath string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "charsheet",
		Short:         "Character sheet mechanics tool",
		Long:          `charsheet renders ability scores, hit points, and hit dice pools from YAML templates and rolls dice.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/charsheet.yaml", "path to configuration file")
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newRollCmd())
	rootCmd.AddCommand(newRestCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtime bundles the collaborators every subcommand needs.
type runtime struct {
	cfg    config.Config
	logger *zap.Logger
	roller *dice.Roller
}

func loadRuntime() (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	src, err := dice.NewSource(cfg.Dice)
	if err != nil {
		return nil, err
	}
	logger.Debug("runtime loaded",
		zap.String("config", configPath),
		zap.String("dice_source", cfg.Dice.Source),
		zap.String("sheets_dir", cfg.Content.SheetsDir),
	)
	return &runtime{cfg: cfg, logger: logger, roller: dice.NewLoggedRoller(src, logger)}, nil
}

func (rt *runtime) sheets() (*sheet.Registry, error) {
	reg, err := sheet.LoadDirectory(rt.cfg.Content.SheetsDir)
	if err != nil {
		return nil, fmt.Errorf("loading sheets: %w", err)
	}
	rt.logger.Info("sheets loaded", zap.Int("count", len(reg.All())))
	return reg, nil
}
