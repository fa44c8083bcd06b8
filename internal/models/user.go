// ABOUTME: User model for the fitness tracker.
// ABOUTME: Users own workout log entries; email is unique across users.
package models

import "time"

// User represents a person tracking their workouts.
type User struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewUser creates a new User with the current timestamp.
// The ID is assigned by the store on insert.
func NewUser(name, email string) *User {
	return &User{
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
}
