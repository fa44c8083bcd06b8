// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Opens the store in PersistentPreRunE and closes it after.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/storage"
)

var (
	dbPath string
	store  storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `Fittrack is a CLI tool for tracking users, workouts, and who did what when.

ENTITIES:

  Users     People tracking their training. Emails are unique.
  Workouts  Activity types with a default duration (Running, Yoga, ...).
  Logs      "User X did workout Y on date Z" entries with optional notes.
            At most one log per user, workout, and calendar day; logging
            the same workout twice on one day returns the first entry.

QUICK START:

  $ fittrack seed                           # Load sample data
  $ fittrack user add Alice alice@a.com     # Create a user
  $ fittrack workout add Running 30         # Create a workout type
  $ fittrack log add 1 1 --notes "5k PR"    # Log it for today
  $ fittrack log list                       # All logs, most recent first
  $ fittrack menu                           # Interactive menu instead

DATA STORAGE:

  A single SQLite file, by default ~/.local/share/fittrack/fittrack.db.
  Override with --db, FITTRACK_DB, or the config file at
  ~/.config/fittrack/config.json.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the store
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file path")
}
