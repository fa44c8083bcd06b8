// ABOUTME: User CRUD operations for SQLite storage.
// ABOUTME: Email uniqueness is enforced by the store; deletes cascade to logs.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/models"
)

// CreateUser stores a new user and assigns its id.
// Returns ErrInvalid for empty fields and ErrDuplicateEmail when the email
// is already taken.
func (d *DB) CreateUser(u *models.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalid)
	}

	result, err := d.db.Exec(
		`INSERT INTO users (name, email, created_at) VALUES (?, ?, ?)`,
		u.Name, u.Email, u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraint(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, u.Email)
		}
		return fmt.Errorf("create user: %w", err)
	}

	u.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id. Returns ErrNotFound when absent.
func (d *DB) GetUser(id int64) (*models.User, error) {
	row := d.db.QueryRow(
		`SELECT id, name, email, created_at FROM users WHERE id = ?`, id,
	)
	return scanUser(row)
}

// ListUsers retrieves all users in insertion order.
// An empty store yields an empty slice, not an error.
func (d *DB) ListUsers() ([]*models.User, error) {
	rows, err := d.db.Query(
		`SELECT id, name, email, created_at FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// FindUsersByName retrieves users whose name contains the fragment,
// case-insensitively. No match yields an empty slice.
func (d *DB) FindUsersByName(fragment string) ([]*models.User, error) {
	rows, err := d.db.Query(
		`SELECT id, name, email, created_at FROM users
		 WHERE LOWER(name) LIKE '%' || LOWER(?) || '%' ORDER BY id`,
		fragment,
	)
	if err != nil {
		return nil, fmt.Errorf("find users by name: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// UpdateUserEmail overwrites a user's email and returns the updated user.
// Returns ErrNotFound for an unknown id and ErrDuplicateEmail when the new
// email collides with another user.
func (d *DB) UpdateUserEmail(id int64, newEmail string) (*models.User, error) {
	if strings.TrimSpace(newEmail) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalid)
	}

	result, err := d.db.Exec(
		`UPDATE users SET email = ? WHERE id = ?`, newEmail, id,
	)
	if err != nil {
		if isUniqueConstraint(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, newEmail)
		}
		return nil, fmt.Errorf("update user email: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update user email: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return d.GetUser(id)
}

// DeleteUser removes a user and all of its workout logs (cascade delete).
// Returns false when no such user exists; that is a normal outcome, not
// an error.
func (d *DB) DeleteUser(id int64) (bool, error) {
	result, err := d.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return affected > 0, nil
}

// scanUser scans a single row into a User struct.
func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var createdAt string

	err := row.Scan(&u.ID, &u.Name, &u.Email, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

// scanUsers scans multiple rows into a slice of Users.
func scanUsers(rows *sql.Rows) ([]*models.User, error) {
	users := []*models.User{}

	for rows.Next() {
		var u models.User
		var createdAt string

		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}

		u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		users = append(users, &u)
	}

	return users, rows.Err()
}
