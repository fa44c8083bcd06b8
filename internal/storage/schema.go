// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for users, workouts, and workout_logs.
package storage

// initSchema creates the database schema if it does not exist.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workout_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		workout_id INTEGER NOT NULL,
		completed_at DATETIME NOT NULL,
		notes TEXT,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_logs_user ON workout_logs(user_id);
	CREATE INDEX IF NOT EXISTS idx_logs_workout ON workout_logs(workout_id);
	CREATE INDEX IF NOT EXISTS idx_logs_completed ON workout_logs(completed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_logs_user_workout ON workout_logs(user_id, workout_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
