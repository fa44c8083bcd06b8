// ABOUTME: CLI commands for managing users.
// ABOUTME: Supports add, list, show, find, email, and delete subcommands.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"u"},
	Short:   "Manage users",
	Long: `Manage the people tracked by fittrack.

Examples:
  fittrack user add Alice alice@example.com
  fittrack user list
  fittrack user find ali
  fittrack user email 1 alice@newhost.com
  fittrack user delete 1`,
}

var userAddCmd = &cobra.Command{
	Use:   "add <name> <email>",
	Short: "Add a new user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := models.NewUser(args[0], args[1])
		if err := store.CreateUser(u); err != nil {
			if errors.Is(err, storage.ErrDuplicateEmail) {
				return fmt.Errorf("email %s is already in use", u.Email)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		color.Green("✓ Added user %s", u.Name)
		fmt.Printf("  %s\n", formatUser(u))
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all users",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := store.ListUsers()
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		for _, u := range users {
			fmt.Println(formatUser(u))
		}
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a user by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		u, err := store.GetUser(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Printf("User %d not found.\n", id)
				return nil
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		fmt.Println(formatUser(u))
		return nil
	},
}

var userFindCmd = &cobra.Command{
	Use:   "find <name-fragment>",
	Short: "Find users by name",
	Long:  "Find users whose name contains the fragment, case-insensitively.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := store.FindUsersByName(args[0])
		if err != nil {
			return fmt.Errorf("failed to find users: %w", err)
		}

		if len(users) == 0 {
			fmt.Printf("No users matching %q.\n", args[0])
			return nil
		}
		for _, u := range users {
			fmt.Println(formatUser(u))
		}
		return nil
	},
}

var userEmailCmd = &cobra.Command{
	Use:   "email <id> <new-email>",
	Short: "Update a user's email",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		u, err := store.UpdateUserEmail(id, args[1])
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Printf("User %d not found.\n", id)
				return nil
			}
			if errors.Is(err, storage.ErrDuplicateEmail) {
				return fmt.Errorf("email %s is already in use", args[1])
			}
			return fmt.Errorf("failed to update email: %w", err)
		}

		color.Green("✓ Updated email for %s", u.Name)
		fmt.Printf("  %s\n", formatUser(u))
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a user and their logs",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := store.DeleteUser(id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if !deleted {
			fmt.Printf("User %d not found.\n", id)
			return nil
		}

		color.Green("✓ Deleted user %d and their workout logs", id)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userFindCmd)
	userCmd.AddCommand(userEmailCmd)
	userCmd.AddCommand(userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}
