package cmd

import (
	"fmt"

	"github.com/theirongolddev/ramtrack/internal/config"
	"github.com/theirongolddev/ramtrack/internal/tui"
	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Load config for theme
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	today, err := now()
	if err != nil {
		return err
	}
	tr, db, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	// Log lines would tear the alt screen.
	if !flagVerbose {
		log.Logger = log.Logger.Level(zerolog.Disabled)
	}

	clock := tui.FixedClock(today)
	if flagToday == "" {
		clock = tui.SystemClock
	}

	app := tui.NewApp(tr, clock)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
