// ABOUTME: CLI commands for workout log entries.
// ABOUTME: Supports add (with dedup-by-day), list, user, participants, delete.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/storage"
)

var (
	logAt    string
	logNotes string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Manage workout logs",
	Long: `Record and query which user completed which workout and when.

A user can log a given workout at most once per calendar day. Logging it
again on the same day returns the existing entry instead of creating a
duplicate - an intentional no-op, not an error.

Examples:
  fittrack log add 1 2                       # user 1 did workout 2 now
  fittrack log add 1 2 --at 2024-01-01       # backdate
  fittrack log add 1 2 --notes "Felt great"
  fittrack log list                          # all logs, most recent first
  fittrack log user 1                        # everything user 1 logged
  fittrack log participants 2                # everyone who did workout 2
  fittrack log delete 7`,
}

var logAddCmd = &cobra.Command{
	Use:   "add <user-id> <workout-id>",
	Short: "Log a completed workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}
		workoutID, err := parseID(args[1])
		if err != nil {
			return err
		}

		var completedAt time.Time
		if logAt != "" {
			completedAt, err = parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
		}

		var notes *string
		if logNotes != "" {
			notes = &logNotes
		}

		entry, created, err := store.LogWorkout(userID, workoutID, completedAt, notes)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Reports which side is missing, e.g. "user 3: not found".
				fmt.Printf("%v.\n", err)
				return nil
			}
			return fmt.Errorf("failed to log workout: %w", err)
		}

		if !created {
			color.Yellow("%s already logged %s on %s",
				entry.User.Name, entry.Workout.Activity,
				entry.CompletedAt.Format("2006-01-02"))
			fmt.Printf("  %s\n", formatLog(entry))
			return nil
		}

		color.Green("✓ Logged %s for %s", entry.Workout.Activity, entry.User.Name)
		fmt.Printf("  %s\n", formatLog(entry))
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all workout logs, most recent first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := store.ListLogs()
		if err != nil {
			return fmt.Errorf("failed to list logs: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No workout logs found.")
			return nil
		}
		for _, l := range logs {
			fmt.Println(formatLog(l))
		}
		return nil
	},
}

var logUserCmd = &cobra.Command{
	Use:   "user <user-id>",
	Short: "List all logs for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}

		logs, err := store.UserLogs(userID)
		if err != nil {
			return fmt.Errorf("failed to list user logs: %w", err)
		}

		if len(logs) == 0 {
			fmt.Printf("No workout logs for user %d.\n", userID)
			return nil
		}
		for _, l := range logs {
			fmt.Println(formatLog(l))
		}
		return nil
	},
}

var logParticipantsCmd = &cobra.Command{
	Use:   "participants <workout-id>",
	Short: "List users who have logged a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := parseID(args[0])
		if err != nil {
			return err
		}

		users, err := store.WorkoutParticipants(workoutID)
		if err != nil {
			return fmt.Errorf("failed to list participants: %w", err)
		}

		if len(users) == 0 {
			fmt.Printf("No participants for workout %d.\n", workoutID)
			return nil
		}
		for _, u := range users {
			fmt.Println(formatUser(u))
		}
		return nil
	},
}

var logDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a single workout log",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := store.DeleteLog(id)
		if err != nil {
			return fmt.Errorf("failed to delete log: %w", err)
		}
		if !deleted {
			fmt.Printf("Log %d not found.\n", id)
			return nil
		}

		color.Green("✓ Deleted log %d", id)
		return nil
	},
}

func init() {
	logAddCmd.Flags().StringVar(&logAt, "at", "", "completion timestamp (YYYY-MM-DD HH:MM)")
	logAddCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "notes for the log entry")

	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logUserCmd)
	logCmd.AddCommand(logParticipantsCmd)
	logCmd.AddCommand(logDeleteCmd)
	rootCmd.AddCommand(logCmd)
}
