package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/ramtrack/internal/config"
	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/store"
	"github.com/theirongolddev/ramtrack/internal/tracker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagToday   string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:               "ramtrack",
	Short:             "Ramadan daily habit tracker",
	Long:              "Track fasting, the five daily prayers, and good habits across the 30 days of Ramadan.",
	PersistentPreRunE: setup,
	RunE:              runSummary,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Tracker database path (default: $RAMTRACK_DB, config, or data dir)")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Treat this date (YYYY-MM-DD) as today")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug log output")
}

func setup(_ *cobra.Command, _ []string) error {
	level := zerolog.WarnLevel
	switch {
	case flagQuiet:
		level = zerolog.Disabled
	case flagVerbose:
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	return config.LoadEnv()
}

// dbPath resolves the database location: flag, then env, then config file.
func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, using defaults")
		cfg = config.DefaultConfig()
	}
	return config.GetDBPath(cfg)
}

// openTracker is the shared loading path used by all commands. The caller
// must close the returned database.
func openTracker(cmd *cobra.Command) (*tracker.Tracker, *store.DB, error) {
	path := dbPath()
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("path", path).Msg("opened tracker db")

	tr, err := tracker.Open(cmd.Context(), db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return tr, db, nil
}

// now returns the current time, or local midnight of --today when set.
func now() (time.Time, error) {
	if flagToday == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation(model.DateLayout, flagToday, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q: want YYYY-MM-DD", flagToday)
	}
	return d, nil
}
