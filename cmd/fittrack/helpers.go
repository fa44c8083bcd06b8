// ABOUTME: Shared CLI helpers for parsing arguments and rendering entities.
// ABOUTME: Used by the user, workout, and log command groups and the menu.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/models"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func formatUser(u *models.User) string {
	return fmt.Sprintf("%-4d %s <%s>", u.ID, padRight(u.Name, 16), u.Email)
}

func formatWorkout(w *models.Workout) string {
	return fmt.Sprintf("%-4d %s %d min", w.ID, padRight(w.Activity, 16), w.DurationMinutes)
}

func formatLog(l *models.WorkoutLog) string {
	notes := ""
	if l.Notes != nil {
		notes = truncate(*l.Notes, 40)
	}
	return fmt.Sprintf("%-4d %s %s %s %s",
		l.ID,
		l.CompletedAt.Format("2006-01-02 15:04"),
		padRight(l.User.Name, 12),
		padRight(l.Workout.Activity, 16),
		notes)
}
