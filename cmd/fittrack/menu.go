// ABOUTME: Interactive numbered menu front end over the storage layer.
// ABOUTME: Line-based input with retry on invalid values; no business logic.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long:  "Run fittrack as an interactive numbered menu instead of subcommands.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := &menu{
			in:    bufio.NewScanner(cmd.InOrStdin()),
			out:   cmd.OutOrStdout(),
			store: store,
		}
		m.run()
		return nil
	},
}

type menu struct {
	in    *bufio.Scanner
	out   io.Writer
	store storage.Repository
}

func (m *menu) run() {
	for {
		fmt.Fprintln(m.out, "\n=== Fittrack ===")
		fmt.Fprintln(m.out, "1. Manage users")
		fmt.Fprintln(m.out, "2. Manage workouts")
		fmt.Fprintln(m.out, "3. Manage workout logs")
		fmt.Fprintln(m.out, "4. Seed sample data")
		fmt.Fprintln(m.out, "0. Exit")

		choice, ok := m.promptInt("Choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			if !m.userMenu() {
				return
			}
		case 2:
			if !m.workoutMenu() {
				return
			}
		case 3:
			if !m.logMenu() {
				return
			}
		case 4:
			summary, err := m.store.Seed()
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(m.out, "Seeded %d users, %d workouts, %d logs.\n",
				summary.Users, summary.Workouts, summary.Logs)
		case 0:
			fmt.Fprintln(m.out, "Bye!")
			return
		default:
			fmt.Fprintln(m.out, "Please pick one of the listed numbers.")
		}
	}
}

// userMenu returns false when input is exhausted.
func (m *menu) userMenu() bool {
	for {
		fmt.Fprintln(m.out, "\n--- Users ---")
		fmt.Fprintln(m.out, "1. Add user")
		fmt.Fprintln(m.out, "2. List users")
		fmt.Fprintln(m.out, "3. Find user by id")
		fmt.Fprintln(m.out, "4. Find users by name")
		fmt.Fprintln(m.out, "5. Update user email")
		fmt.Fprintln(m.out, "6. Delete user")
		fmt.Fprintln(m.out, "0. Back")

		choice, ok := m.promptInt("Choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			name, ok := m.promptLine("Name: ")
			if !ok {
				return false
			}
			email, ok := m.promptLine("Email: ")
			if !ok {
				return false
			}
			u := models.NewUser(name, email)
			if err := m.store.CreateUser(u); err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(m.out, "Created: %s\n", formatUser(u))
		case 2:
			users, err := m.store.ListUsers()
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			m.printUsers(users)
		case 3:
			id, ok := m.promptInt("User id: ")
			if !ok {
				return false
			}
			u, err := m.store.GetUser(int64(id))
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					fmt.Fprintln(m.out, "User not found.")
				} else {
					fmt.Fprintf(m.out, "Error: %v\n", err)
				}
				continue
			}
			fmt.Fprintln(m.out, formatUser(u))
		case 4:
			fragment, ok := m.promptLine("Name contains: ")
			if !ok {
				return false
			}
			users, err := m.store.FindUsersByName(fragment)
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			m.printUsers(users)
		case 5:
			id, ok := m.promptInt("User id: ")
			if !ok {
				return false
			}
			email, ok := m.promptLine("New email: ")
			if !ok {
				return false
			}
			u, err := m.store.UpdateUserEmail(int64(id), email)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					fmt.Fprintln(m.out, "User not found.")
				} else {
					fmt.Fprintf(m.out, "Error: %v\n", err)
				}
				continue
			}
			fmt.Fprintf(m.out, "Updated: %s\n", formatUser(u))
		case 6:
			id, ok := m.promptInt("User id: ")
			if !ok {
				return false
			}
			deleted, err := m.store.DeleteUser(int64(id))
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			if deleted {
				fmt.Fprintln(m.out, "User and their logs deleted.")
			} else {
				fmt.Fprintln(m.out, "User not found.")
			}
		case 0:
			return true
		default:
			fmt.Fprintln(m.out, "Please pick one of the listed numbers.")
		}
	}
}

func (m *menu) workoutMenu() bool {
	for {
		fmt.Fprintln(m.out, "\n--- Workouts ---")
		fmt.Fprintln(m.out, "1. Add workout")
		fmt.Fprintln(m.out, "2. List workouts")
		fmt.Fprintln(m.out, "3. Find workout by id")
		fmt.Fprintln(m.out, "4. Update workout duration")
		fmt.Fprintln(m.out, "5. Delete workout")
		fmt.Fprintln(m.out, "0. Back")

		choice, ok := m.promptInt("Choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			activity, ok := m.promptLine("Activity: ")
			if !ok {
				return false
			}
			minutes, ok := m.promptInt("Duration (minutes): ")
			if !ok {
				return false
			}
			w := models.NewWorkout(activity, minutes)
			if err := m.store.CreateWorkout(w); err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(m.out, "Created: %s\n", formatWorkout(w))
		case 2:
			workouts, err := m.store.ListWorkouts()
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			m.printWorkouts(workouts)
		case 3:
			id, ok := m.promptInt("Workout id: ")
			if !ok {
				return false
			}
			w, err := m.store.GetWorkout(int64(id))
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					fmt.Fprintln(m.out, "Workout not found.")
				} else {
					fmt.Fprintf(m.out, "Error: %v\n", err)
				}
				continue
			}
			fmt.Fprintln(m.out, formatWorkout(w))
		case 4:
			id, ok := m.promptInt("Workout id: ")
			if !ok {
				return false
			}
			minutes, ok := m.promptInt("New duration (minutes): ")
			if !ok {
				return false
			}
			w, err := m.store.UpdateWorkoutDuration(int64(id), minutes)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					fmt.Fprintln(m.out, "Workout not found.")
				} else {
					fmt.Fprintf(m.out, "Error: %v\n", err)
				}
				continue
			}
			fmt.Fprintf(m.out, "Updated: %s\n", formatWorkout(w))
		case 5:
			id, ok := m.promptInt("Workout id: ")
			if !ok {
				return false
			}
			deleted, err := m.store.DeleteWorkout(int64(id))
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			if deleted {
				fmt.Fprintln(m.out, "Workout and its logs deleted.")
			} else {
				fmt.Fprintln(m.out, "Workout not found.")
			}
		case 0:
			return true
		default:
			fmt.Fprintln(m.out, "Please pick one of the listed numbers.")
		}
	}
}

func (m *menu) logMenu() bool {
	for {
		fmt.Fprintln(m.out, "\n--- Workout logs ---")
		fmt.Fprintln(m.out, "1. Log a workout")
		fmt.Fprintln(m.out, "2. List all logs")
		fmt.Fprintln(m.out, "3. Logs for a user")
		fmt.Fprintln(m.out, "4. Participants of a workout")
		fmt.Fprintln(m.out, "5. Delete a log")
		fmt.Fprintln(m.out, "0. Back")

		choice, ok := m.promptInt("Choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			userID, ok := m.promptInt("User id: ")
			if !ok {
				return false
			}
			workoutID, ok := m.promptInt("Workout id: ")
			if !ok {
				return false
			}
			when, ok := m.promptLine("Date (YYYY-MM-DD, empty for now): ")
			if !ok {
				return false
			}
			var completedAt time.Time
			if when != "" {
				var err error
				completedAt, err = parseTime(when)
				if err != nil {
					fmt.Fprintln(m.out, "Unrecognized date, using now.")
				}
			}
			noteLine, ok := m.promptLine("Notes (optional): ")
			if !ok {
				return false
			}
			var notes *string
			if noteLine != "" {
				notes = &noteLine
			}

			entry, created, err := m.store.LogWorkout(int64(userID), int64(workoutID), completedAt, notes)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					fmt.Fprintf(m.out, "%v.\n", err)
				} else {
					fmt.Fprintf(m.out, "Error: %v\n", err)
				}
				continue
			}
			if created {
				fmt.Fprintf(m.out, "Logged: %s\n", formatLog(entry))
			} else {
				fmt.Fprintf(m.out, "Already logged that day: %s\n", formatLog(entry))
			}
		case 2:
			logs, err := m.store.ListLogs()
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			m.printLogs(logs)
		case 3:
			userID, ok := m.promptInt("User id: ")
			if !ok {
				return false
			}
			logs, err := m.store.UserLogs(int64(userID))
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			m.printLogs(logs)
		case 4:
			workoutID, ok := m.promptInt("Workout id: ")
			if !ok {
				return false
			}
			users, err := m.store.WorkoutParticipants(int64(workoutID))
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			m.printUsers(users)
		case 5:
			id, ok := m.promptInt("Log id: ")
			if !ok {
				return false
			}
			deleted, err := m.store.DeleteLog(int64(id))
			if err != nil {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			if deleted {
				fmt.Fprintln(m.out, "Log deleted.")
			} else {
				fmt.Fprintln(m.out, "Log not found.")
			}
		case 0:
			return true
		default:
			fmt.Fprintln(m.out, "Please pick one of the listed numbers.")
		}
	}
}

// promptLine reads one trimmed line. ok is false when input is exhausted.
func (m *menu) promptLine(prompt string) (value string, ok bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptInt reads lines until one parses as a non-negative integer.
func (m *menu) promptInt(prompt string) (value int, ok bool) {
	for {
		line, ok := m.promptLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			fmt.Fprintln(m.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

func (m *menu) printUsers(users []*models.User) {
	if len(users) == 0 {
		fmt.Fprintln(m.out, "No users found.")
		return
	}
	for _, u := range users {
		fmt.Fprintln(m.out, formatUser(u))
	}
}

func (m *menu) printWorkouts(workouts []*models.Workout) {
	if len(workouts) == 0 {
		fmt.Fprintln(m.out, "No workouts found.")
		return
	}
	for _, w := range workouts {
		fmt.Fprintln(m.out, formatWorkout(w))
	}
}

func (m *menu) printLogs(logs []*models.WorkoutLog) {
	if len(logs) == 0 {
		fmt.Fprintln(m.out, "No workout logs found.")
		return
	}
	for _, l := range logs {
		fmt.Fprintln(m.out, formatLog(l))
	}
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
