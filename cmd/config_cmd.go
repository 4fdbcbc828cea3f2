// Package cmd implements the ramtrack CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/config"
	"github.com/theirongolddev/ramtrack/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database: %s\n", dbPath())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	tr, db, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("  [Tracker]")
	fmt.Printf("    Start date: %s\n", cli.FormatDate(tr.Settings.StartDate()))
	fmt.Printf("    Days recorded: %d\n", len(tr.Days.State()))
	if at, err := db.UpdatedAt(cmd.Context(), store.KeyData); err == nil && !at.IsZero() {
		fmt.Printf("    Last saved: %s\n", at.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println()

	fmt.Println("  Run `ramtrack setup` to reconfigure.")
	return nil
}
