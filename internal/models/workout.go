// ABOUTME: Workout model representing a type of activity.
// ABOUTME: Workouts carry a default duration and are referenced by log entries.
package models

import "time"

// Workout represents a workout type, e.g. "Running" with a 30 minute duration.
// Activity names are freeform and not required to be unique.
type Workout struct {
	ID              int64     `json:"id" yaml:"id"`
	Activity        string    `json:"activity" yaml:"activity"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// NewWorkout creates a new Workout with the current timestamp.
// The ID is assigned by the store on insert.
func NewWorkout(activity string, durationMinutes int) *Workout {
	return &Workout{
		Activity:        activity,
		DurationMinutes: durationMinutes,
		CreatedAt:       time.Now(),
	}
}
