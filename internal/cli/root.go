// Package cli wires the cobra command tree. The bare command launches
// the interactive interface; subcommands operate on the same snapshot
// store for quick one-shot use.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planner/internal/config"
	"planner/internal/logging"
	"planner/internal/storage"
	"planner/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Planner - a single-user task manager for the terminal",
	Long: `Planner keeps tasks and labels in a local snapshot store and renders
them as list, agenda and notes views with date-range filters.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		return ui.Run(store, cfg)
	},
}

func Execute() error {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	return rootCmd.Execute()
}

func openStore() (config.Config, *storage.Store, error) {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("open store: %w", err)
	}
	return cfg, store, nil
}
