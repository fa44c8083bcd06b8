// ABOUTME: CLI command for loading development fixture data.
// ABOUTME: Wipes existing data and repopulates users, workouts, and logs.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the database with sample data",
	Long: `Clear all users, workouts, and logs, then load a fixed set of sample
users and workouts with randomized log entries over the last 30 days.

This is development tooling: everything currently in the database is lost.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := store.Seed()
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}

		color.Green("✓ Database seeded")
		fmt.Printf("  %d users, %d workouts, %d logs\n",
			summary.Users, summary.Workouts, summary.Logs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
