package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/config"
	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	tr, db, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println()
	fmt.Println("  Welcome to ramtrack!")
	fmt.Println()

	// 1. Start date
	fmt.Println("  1. First day of Ramadan (YYYY-MM-DD)")
	fmt.Printf("     Current: %s\n", cli.FormatDate(tr.Settings.StartDate()))
	fmt.Print("     > ")
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input != "" {
		date, err := time.Parse(model.DateLayout, input)
		if err != nil {
			fmt.Printf("     Invalid date %q, keeping current.\n", input)
		} else if err := tr.Settings.SetStartDate(date); err != nil {
			return fmt.Errorf("saving start date: %w", err)
		}
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	for i, th := range theme.All {
		suffix := ""
		if th.Name == cfg.Appearance.Theme {
			suffix = " [current]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, th.Name, suffix)
	}
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	for i, th := range theme.All {
		if choice == fmt.Sprint(i+1) {
			cfg.Appearance.Theme = th.Name
		}
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `ramtrack setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
