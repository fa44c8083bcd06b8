// ABOUTME: Export and import functionality for fitness data.
// ABOUTME: Supports JSON and YAML export formats; import preserves ids.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/fittrack/fittrack/internal/models"
)

// ExportData represents the full export format for fitness data.
type ExportData struct {
	Version    string               `json:"version" yaml:"version"`
	ExportID   string               `json:"export_id" yaml:"export_id"`
	ExportedAt time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool       string               `json:"tool" yaml:"tool"`
	Users      []*models.User       `json:"users" yaml:"users"`
	Workouts   []*models.Workout    `json:"workouts" yaml:"workouts"`
	Logs       []*models.WorkoutLog `json:"logs" yaml:"logs"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	users, err := d.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	workouts, err := d.ListWorkouts()
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	logs, err := d.ListLogs()
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now(),
		Tool:       "fittrack",
		Users:      users,
		Workouts:   workouts,
		Logs:       logs,
	}, nil
}

// ImportData imports data from an export file in one transaction.
// Rows keep their exported ids so log references stay intact; importing
// into a non-empty store fails on the first id or email collision.
func (d *DB) ImportData(data *ExportData) error {
	return d.withTx(func(tx *sql.Tx) error {
		for _, u := range data.Users {
			_, err := tx.Exec(
				`INSERT INTO users (id, name, email, created_at) VALUES (?, ?, ?, ?)`,
				u.ID, u.Name, u.Email, u.CreatedAt.Format(time.RFC3339),
			)
			if err != nil {
				if isUniqueConstraint(err) && strings.Contains(err.Error(), "users.email") {
					return fmt.Errorf("import user %d: %w", u.ID, ErrDuplicateEmail)
				}
				return fmt.Errorf("import user %d: %w", u.ID, err)
			}
		}

		for _, w := range data.Workouts {
			_, err := tx.Exec(
				`INSERT INTO workouts (id, activity, duration_minutes, created_at) VALUES (?, ?, ?, ?)`,
				w.ID, w.Activity, w.DurationMinutes, w.CreatedAt.Format(time.RFC3339),
			)
			if err != nil {
				return fmt.Errorf("import workout %d: %w", w.ID, err)
			}
		}

		for _, l := range data.Logs {
			_, err := tx.Exec(
				`INSERT INTO workout_logs (id, user_id, workout_id, completed_at, notes, created_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				l.ID, l.UserID, l.WorkoutID,
				l.CompletedAt.Format(time.RFC3339), l.Notes, l.CreatedAt.Format(time.RFC3339),
			)
			if err != nil {
				return fmt.Errorf("import log %d: %w", l.ID, err)
			}
		}

		return nil
	})
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ParseExport parses a JSON export file produced by ExportJSON.
func ParseExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &data, nil
}
