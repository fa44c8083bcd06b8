// ABOUTME: Repository interface for fitness tracker storage.
// ABOUTME: Defines the contract for user, workout, and log operations.
package storage

import (
	"time"

	"github.com/fittrack/fittrack/internal/models"
)

// Repository defines the storage interface for fitness data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// User operations
	CreateUser(u *models.User) error
	GetUser(id int64) (*models.User, error)
	ListUsers() ([]*models.User, error)
	FindUsersByName(fragment string) ([]*models.User, error)
	UpdateUserEmail(id int64, newEmail string) (*models.User, error)
	DeleteUser(id int64) (bool, error)

	// Workout operations
	CreateWorkout(w *models.Workout) error
	GetWorkout(id int64) (*models.Workout, error)
	ListWorkouts() ([]*models.Workout, error)
	UpdateWorkoutDuration(id int64, newDuration int) (*models.Workout, error)
	DeleteWorkout(id int64) (bool, error)

	// Log operations
	LogWorkout(userID, workoutID int64, completedAt time.Time, notes *string) (*models.WorkoutLog, bool, error)
	GetLog(id int64) (*models.WorkoutLog, error)
	UserLogs(userID int64) ([]*models.WorkoutLog, error)
	WorkoutParticipants(workoutID int64) ([]*models.User, error)
	ListLogs() ([]*models.WorkoutLog, error)
	DeleteLog(id int64) (bool, error)

	// Fixtures
	Seed() (*SeedSummary, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
