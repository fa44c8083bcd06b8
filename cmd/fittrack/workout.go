// ABOUTME: CLI commands for managing workout types.
// ABOUTME: Supports add, list, show, duration, and delete subcommands.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout types",
	Long: `Manage workout types. The activity name is freeform - use whatever
makes sense for you: Running, Yoga, Swimming, lift, hiit, ...

Examples:
  fittrack workout add Running 30
  fittrack workout list
  fittrack workout duration 1 45
  fittrack workout delete 1`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <activity> <minutes>",
	Short: "Add a new workout type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid duration: %s", args[1])
		}

		w := models.NewWorkout(args[0], minutes)
		if err := store.CreateWorkout(w); err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Added %s workout", w.Activity)
		fmt.Printf("  %s\n", formatWorkout(w))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all workout types",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := store.ListWorkouts()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		for _, w := range workouts {
			fmt.Println(formatWorkout(w))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		w, err := store.GetWorkout(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Printf("Workout %d not found.\n", id)
				return nil
			}
			return fmt.Errorf("failed to get workout: %w", err)
		}

		fmt.Println(formatWorkout(w))
		return nil
	},
}

var workoutDurationCmd = &cobra.Command{
	Use:   "duration <id> <minutes>",
	Short: "Update a workout's default duration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid duration: %s", args[1])
		}

		w, err := store.UpdateWorkoutDuration(id, minutes)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Printf("Workout %d not found.\n", id)
				return nil
			}
			return fmt.Errorf("failed to update duration: %w", err)
		}

		color.Green("✓ Updated %s to %d min", w.Activity, w.DurationMinutes)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout and its logs",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := store.DeleteWorkout(id)
		if err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		if !deleted {
			fmt.Printf("Workout %d not found.\n", id)
			return nil
		}

		color.Green("✓ Deleted workout %d and its logs", id)
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDurationCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
