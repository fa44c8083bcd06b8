// ABOUTME: WorkoutLog model linking users to completed workouts.
// ABOUTME: Carries completion timestamp and optional notes; one entry per user/workout/day.
package models

import "time"

// WorkoutLog records that a user completed a workout at a point in time.
// User and Workout are populated on every read path, so a returned log is
// always safe to render without further lookups.
type WorkoutLog struct {
	ID          int64     `json:"id" yaml:"id"`
	UserID      int64     `json:"user_id" yaml:"user_id"`
	WorkoutID   int64     `json:"workout_id" yaml:"workout_id"`
	CompletedAt time.Time `json:"completed_at" yaml:"completed_at"`
	Notes       *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`

	User    *User    `json:"-" yaml:"-"`
	Workout *Workout `json:"-" yaml:"-"`
}

// NewWorkoutLog creates a new WorkoutLog for the given user and workout.
// A zero completedAt means "now".
func NewWorkoutLog(userID, workoutID int64, completedAt time.Time) *WorkoutLog {
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	return &WorkoutLog{
		UserID:      userID,
		WorkoutID:   workoutID,
		CompletedAt: completedAt,
		CreatedAt:   time.Now(),
	}
}

// WithNotes sets notes on the log entry.
func (l *WorkoutLog) WithNotes(notes string) *WorkoutLog {
	l.Notes = &notes
	return l
}

// DayWindow returns the inclusive bounds of the calendar day containing t,
// in t's location. The date component alone is the dedup key; time of day
// is ignored, and no timezone conversion is performed.
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
