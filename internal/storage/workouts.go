// ABOUTME: Workout CRUD operations for SQLite storage.
// ABOUTME: Mirrors the user operations; deletes cascade to workout logs.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/models"
)

// CreateWorkout stores a new workout type and assigns its id.
// Returns ErrInvalid for an empty activity or non-positive duration.
func (d *DB) CreateWorkout(w *models.Workout) error {
	if strings.TrimSpace(w.Activity) == "" {
		return fmt.Errorf("%w: activity is required", ErrInvalid)
	}
	if w.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalid)
	}

	result, err := d.db.Exec(
		`INSERT INTO workouts (activity, duration_minutes, created_at) VALUES (?, ?, ?)`,
		w.Activity, w.DurationMinutes, w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}

	w.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by id. Returns ErrNotFound when absent.
func (d *DB) GetWorkout(id int64) (*models.Workout, error) {
	row := d.db.QueryRow(
		`SELECT id, activity, duration_minutes, created_at FROM workouts WHERE id = ?`, id,
	)
	return scanWorkout(row)
}

// ListWorkouts retrieves all workouts in insertion order.
func (d *DB) ListWorkouts() ([]*models.Workout, error) {
	rows, err := d.db.Query(
		`SELECT id, activity, duration_minutes, created_at FROM workouts ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// UpdateWorkoutDuration overwrites a workout's default duration and returns
// the updated workout. Returns ErrNotFound for an unknown id.
func (d *DB) UpdateWorkoutDuration(id int64, newDuration int) (*models.Workout, error) {
	if newDuration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalid)
	}

	result, err := d.db.Exec(
		`UPDATE workouts SET duration_minutes = ? WHERE id = ?`, newDuration, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update workout duration: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update workout duration: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return d.GetWorkout(id)
}

// DeleteWorkout removes a workout and all logs referencing it (cascade
// delete). Returns false when no such workout exists.
func (d *DB) DeleteWorkout(id int64) (bool, error) {
	result, err := d.db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete workout: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete workout: %w", err)
	}
	return affected > 0, nil
}

// scanWorkout scans a single row into a Workout struct.
func scanWorkout(row *sql.Row) (*models.Workout, error) {
	var w models.Workout
	var createdAt string

	err := row.Scan(&w.ID, &w.Activity, &w.DurationMinutes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &w, nil
}

// scanWorkouts scans multiple rows into a slice of Workouts.
func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	workouts := []*models.Workout{}

	for rows.Next() {
		var w models.Workout
		var createdAt string

		if err := rows.Scan(&w.ID, &w.Activity, &w.DurationMinutes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}

		w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		workouts = append(workouts, &w)
	}

	return workouts, rows.Err()
}
