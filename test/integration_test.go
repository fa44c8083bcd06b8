// ABOUTME: Integration tests for the fittrack CLI.
// ABOUTME: Builds the binary and drives a full workflow against a temp database.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "fittrack")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fittrack")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Use temp database
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Create a user
	output, err := run("user", "add", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Failed to add user: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added user Alice") {
		t.Errorf("Expected 'Added user Alice' in output, got: %s", output)
	}

	// Duplicate email fails with a non-zero exit
	output, err = run("user", "add", "Impostor", "alice@example.com")
	if err == nil {
		t.Errorf("Expected duplicate email to fail, got: %s", output)
	}
	if !strings.Contains(output, "already in use") {
		t.Errorf("Expected 'already in use' in output, got: %s", output)
	}

	// Create a workout
	output, err = run("workout", "add", "Running", "30")
	if err != nil {
		t.Fatalf("Failed to add workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added Running workout") {
		t.Errorf("Expected 'Added Running workout' in output, got: %s", output)
	}

	// Log it
	output, err = run("log", "add", "1", "1", "--at", "2024-01-01", "--notes", "first")
	if err != nil {
		t.Fatalf("Failed to log workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Running for Alice") {
		t.Errorf("Expected 'Logged Running for Alice' in output, got: %s", output)
	}

	// Same-day repeat is a friendly no-op, not an error
	output, err = run("log", "add", "1", "1", "--at", "2024-01-01", "--notes", "second")
	if err != nil {
		t.Fatalf("Same-day repeat must not fail: %v\n%s", err, output)
	}
	if !strings.Contains(output, "already logged Running") {
		t.Errorf("Expected 'already logged Running' in output, got: %s", output)
	}

	// List shows one entry with the first call's notes
	output, err = run("log", "list")
	if err != nil {
		t.Fatalf("Failed to list logs: %v\n%s", err, output)
	}
	if !strings.Contains(output, "first") || strings.Contains(output, "second") {
		t.Errorf("Expected only the first log's notes, got: %s", output)
	}

	// Deleting an unknown user is a normal outcome with exit 0
	output, err = run("user", "delete", "999")
	if err != nil {
		t.Fatalf("Delete of unknown user must exit 0: %v\n%s", err, output)
	}
	if !strings.Contains(output, "User 999 not found.") {
		t.Errorf("Expected 'User 999 not found.' in output, got: %s", output)
	}

	// Deleting the user cascades to their logs
	output, err = run("user", "delete", "1")
	if err != nil {
		t.Fatalf("Failed to delete user: %v\n%s", err, output)
	}
	output, err = run("log", "list")
	if err != nil {
		t.Fatalf("Failed to list logs: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No workout logs found.") {
		t.Errorf("Expected empty log list after cascade, got: %s", output)
	}

	// Seed repopulates everything
	output, err = run("seed")
	if err != nil {
		t.Fatalf("Failed to seed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Database seeded") {
		t.Errorf("Expected 'Database seeded' in output, got: %s", output)
	}
	output, err = run("user", "list")
	if err != nil {
		t.Fatalf("Failed to list users: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Alice") || !strings.Contains(output, "Eve") {
		t.Errorf("Expected seeded users in output, got: %s", output)
	}
}

func TestExportImportWorkflow(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "fittrack")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fittrack")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	tmpDir := t.TempDir()
	srcDB := filepath.Join(tmpDir, "src.db")
	dstDB := filepath.Join(tmpDir, "dst.db")
	backup := filepath.Join(tmpDir, "backup.json")

	run := func(db string, args ...string) (string, error) {
		fullArgs := append([]string{"--db", db}, args...)
		cmd := exec.Command(binary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	if out, err := run(srcDB, "user", "add", "Alice", "alice@example.com"); err != nil {
		t.Fatalf("add user: %v\n%s", err, out)
	}
	if out, err := run(srcDB, "workout", "add", "Yoga", "60"); err != nil {
		t.Fatalf("add workout: %v\n%s", err, out)
	}
	if out, err := run(srcDB, "log", "add", "1", "1"); err != nil {
		t.Fatalf("log workout: %v\n%s", err, out)
	}

	if out, err := run(srcDB, "export", "json", "-o", backup); err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	if out, err := run(dstDB, "import", backup); err != nil {
		t.Fatalf("import: %v\n%s", err, out)
	}

	out, err := run(dstDB, "log", "list")
	if err != nil {
		t.Fatalf("list after import: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Yoga") {
		t.Errorf("Expected imported log with aggregates, got: %s", out)
	}
}
