// ABOUTME: Workout log operations: logging with dedup-by-day, relationship queries.
// ABOUTME: Every returned log carries its User and Workout joined inline.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/models"
)

const logColumns = `l.id, l.user_id, l.workout_id, l.completed_at, l.notes, l.created_at,
	u.name, u.email, u.created_at,
	w.activity, w.duration_minutes, w.created_at`

const logJoin = `FROM workout_logs l
	JOIN users u ON u.id = l.user_id
	JOIN workouts w ON w.id = l.workout_id`

// LogWorkout records that a user completed a workout. A zero completedAt
// means "now". If a log for the same user, workout, and calendar day already
// exists, that log is returned unchanged with created=false; logging is
// idempotent per day, and a repeat is not an error.
//
// The existence check and insert run in one transaction. Under a single
// writer that makes the day-invariant hold; concurrent processes could
// still race the check, which this tool does not attempt to defend against.
func (d *DB) LogWorkout(userID, workoutID int64, completedAt time.Time, notes *string) (*models.WorkoutLog, bool, error) {
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	var entry *models.WorkoutLog
	var created bool

	err := d.withTx(func(tx *sql.Tx) error {
		user, err := scanUser(tx.QueryRow(
			`SELECT id, name, email, created_at FROM users WHERE id = ?`, userID))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("user %d: %w", userID, ErrNotFound)
			}
			return err
		}

		workout, err := scanWorkout(tx.QueryRow(
			`SELECT id, activity, duration_minutes, created_at FROM workouts WHERE id = ?`, workoutID))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("workout %d: %w", workoutID, ErrNotFound)
			}
			return err
		}

		start, end := models.DayWindow(completedAt)
		existing, err := scanBareLog(tx.QueryRow(
			`SELECT id, user_id, workout_id, completed_at, notes, created_at
			 FROM workout_logs
			 WHERE user_id = ? AND workout_id = ? AND completed_at >= ? AND completed_at <= ?
			 LIMIT 1`,
			userID, workoutID, start.Format(time.RFC3339), end.Format(time.RFC3339)))
		if err == nil {
			// Already logged today: return the first entry untouched.
			existing.User = user
			existing.Workout = workout
			entry = existing
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}

		l := models.NewWorkoutLog(userID, workoutID, completedAt)
		if notes != nil {
			l.WithNotes(*notes)
		}

		result, err := tx.Exec(
			`INSERT INTO workout_logs (user_id, workout_id, completed_at, notes, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			l.UserID, l.WorkoutID,
			l.CompletedAt.Format(time.RFC3339), l.Notes, l.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("log workout: %w", err)
		}
		l.ID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("log workout: %w", err)
		}

		l.User = user
		l.Workout = workout
		entry = l
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return entry, created, nil
}

// GetLog retrieves a single log by id with its user and workout populated.
func (d *DB) GetLog(id int64) (*models.WorkoutLog, error) {
	return scanLog(d.db.QueryRow(
		`SELECT `+logColumns+` `+logJoin+` WHERE l.id = ?`, id))
}

// UserLogs retrieves all logs for a user, most recent first.
// An unknown user yields an empty slice.
func (d *DB) UserLogs(userID int64) ([]*models.WorkoutLog, error) {
	rows, err := d.db.Query(
		`SELECT `+logColumns+` `+logJoin+`
		 WHERE l.user_id = ?
		 ORDER BY l.completed_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// WorkoutParticipants retrieves the distinct users with at least one log
// for the workout. Unknown workouts and workouts without logs both yield
// an empty slice.
func (d *DB) WorkoutParticipants(workoutID int64) ([]*models.User, error) {
	rows, err := d.db.Query(
		`SELECT DISTINCT u.id, u.name, u.email, u.created_at
		 FROM users u
		 JOIN workout_logs l ON l.user_id = u.id
		 WHERE l.workout_id = ?
		 ORDER BY u.id`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list workout participants: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListLogs retrieves all logs across all users and workouts, ordered by
// completion timestamp descending. The ordering is part of the contract.
func (d *DB) ListLogs() ([]*models.WorkoutLog, error) {
	rows, err := d.db.Query(
		`SELECT ` + logColumns + ` ` + logJoin + `
		 ORDER BY l.completed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// DeleteLog removes a single log entry. Returns false when no such log
// exists.
func (d *DB) DeleteLog(id int64) (bool, error) {
	result, err := d.db.Exec(`DELETE FROM workout_logs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete log: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete log: %w", err)
	}
	return affected > 0, nil
}

// scanBareLog scans a log row without the joined user/workout columns.
func scanBareLog(row *sql.Row) (*models.WorkoutLog, error) {
	var l models.WorkoutLog
	var completedAt, createdAt string
	var notes sql.NullString

	err := row.Scan(&l.ID, &l.UserID, &l.WorkoutID, &completedAt, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan log: %w", err)
	}

	l.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		l.Notes = &notes.String
	}

	return &l, nil
}

// scanLog scans a joined row into a WorkoutLog with User and Workout set.
func scanLog(row *sql.Row) (*models.WorkoutLog, error) {
	var l models.WorkoutLog
	var u models.User
	var w models.Workout
	var completedAt, createdAt, userCreatedAt, workoutCreatedAt string
	var notes sql.NullString

	err := row.Scan(&l.ID, &l.UserID, &l.WorkoutID, &completedAt, &notes, &createdAt,
		&u.Name, &u.Email, &userCreatedAt,
		&w.Activity, &w.DurationMinutes, &workoutCreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan log: %w", err)
	}

	populateLog(&l, &u, &w, completedAt, createdAt, userCreatedAt, workoutCreatedAt, notes)
	return &l, nil
}

// scanLogs scans multiple joined rows into a slice of WorkoutLogs.
func scanLogs(rows *sql.Rows) ([]*models.WorkoutLog, error) {
	logs := []*models.WorkoutLog{}

	for rows.Next() {
		var l models.WorkoutLog
		var u models.User
		var w models.Workout
		var completedAt, createdAt, userCreatedAt, workoutCreatedAt string
		var notes sql.NullString

		err := rows.Scan(&l.ID, &l.UserID, &l.WorkoutID, &completedAt, &notes, &createdAt,
			&u.Name, &u.Email, &userCreatedAt,
			&w.Activity, &w.DurationMinutes, &workoutCreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}

		populateLog(&l, &u, &w, completedAt, createdAt, userCreatedAt, workoutCreatedAt, notes)
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}

// populateLog fills in parsed timestamps and attaches the joined aggregates.
func populateLog(l *models.WorkoutLog, u *models.User, w *models.Workout,
	completedAt, createdAt, userCreatedAt, workoutCreatedAt string, notes sql.NullString) {
	l.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		l.Notes = &notes.String
	}

	u.ID = l.UserID
	u.CreatedAt, _ = time.Parse(time.RFC3339, userCreatedAt)
	w.ID = l.WorkoutID
	w.CreatedAt, _ = time.Parse(time.RFC3339, workoutCreatedAt)
	l.User = u
	l.Workout = w
}
