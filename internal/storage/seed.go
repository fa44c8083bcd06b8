// ABOUTME: Development fixture loader for the fitness tracker.
// ABOUTME: Clears all tables and repopulates them with sample data.
package storage

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/fittrack/fittrack/internal/models"
)

// SeedSummary holds counts of seeded entities.
type SeedSummary struct {
	Users    int
	Workouts int
	Logs     int
}

var seedUsers = []struct {
	name, email string
}{
	{"Alice", "alice@example.com"},
	{"Bob", "bob@example.com"},
	{"Charlie", "charlie@example.com"},
	{"Diana", "diana@example.com"},
	{"Eve", "eve@example.com"},
}

var seedWorkouts = []struct {
	activity string
	minutes  int
}{
	{"Running", 30},
	{"Yoga", 60},
	{"Swimming", 45},
	{"Cycling", 40},
	{"Weightlifting", 50},
	{"Hiking", 90},
}

var seedNotes = []string{
	"Felt great today!",
	"Tough session, pushed through.",
	"Easy recovery pace.",
}

// Seed wipes all three tables and repopulates them: a fixed set of users and
// workouts, then 2-6 randomly dated log entries per user over the last 30
// days. This is development tooling; nothing in the tracker depends on the
// random part.
func (d *DB) Seed() (*SeedSummary, error) {
	summary := &SeedSummary{}

	err := d.withTx(func(tx *sql.Tx) error {
		for _, table := range []string{"workout_logs", "workouts", "users"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		now := time.Now()
		userIDs := make([]int64, 0, len(seedUsers))
		for _, su := range seedUsers {
			result, err := tx.Exec(
				`INSERT INTO users (name, email, created_at) VALUES (?, ?, ?)`,
				su.name, su.email, now.Format(time.RFC3339),
			)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", su.name, err)
			}
			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("seed user %s: %w", su.name, err)
			}
			userIDs = append(userIDs, id)
			summary.Users++
		}

		workoutIDs := make([]int64, 0, len(seedWorkouts))
		for _, sw := range seedWorkouts {
			result, err := tx.Exec(
				`INSERT INTO workouts (activity, duration_minutes, created_at) VALUES (?, ?, ?)`,
				sw.activity, sw.minutes, now.Format(time.RFC3339),
			)
			if err != nil {
				return fmt.Errorf("seed workout %s: %w", sw.activity, err)
			}
			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("seed workout %s: %w", sw.activity, err)
			}
			workoutIDs = append(workoutIDs, id)
			summary.Workouts++
		}

		// Track (user, workout, day) so seeding never violates the
		// one-log-per-day rule.
		type dayKey struct {
			userID, workoutID int64
			day               string
		}
		seen := map[dayKey]bool{}

		for _, userID := range userIDs {
			count := 2 + rand.Intn(5) // 2-6 logs per user
			for i := 0; i < count; i++ {
				workoutID := workoutIDs[rand.Intn(len(workoutIDs))]
				completedAt := now.
					AddDate(0, 0, -rand.Intn(30)).
					Add(-time.Duration(rand.Intn(12)) * time.Hour)

				key := dayKey{userID, workoutID, completedAt.Format("2006-01-02")}
				if seen[key] {
					continue
				}
				seen[key] = true

				var notes *string
				if rand.Float64() < 0.3 {
					n := seedNotes[rand.Intn(len(seedNotes))]
					notes = &n
				}

				l := models.NewWorkoutLog(userID, workoutID, completedAt)
				_, err := tx.Exec(
					`INSERT INTO workout_logs (user_id, workout_id, completed_at, notes, created_at)
					 VALUES (?, ?, ?, ?, ?)`,
					l.UserID, l.WorkoutID,
					l.CompletedAt.Format(time.RFC3339), notes, l.CreatedAt.Format(time.RFC3339),
				)
				if err != nil {
					return fmt.Errorf("seed log: %w", err)
				}
				summary.Logs++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
