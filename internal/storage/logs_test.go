// ABOUTME: Tests for workout logging: dedup-by-day, cascades, ordering, joins.
// ABOUTME: Exercises the invariants the rest of the tool depends on.
package storage

import (
	"errors"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestLogWorkoutCreatesEntry(t *testing.T) {
	db := setupTestDB(t)

	u := mustCreateUser(t, db, "Alice", "alice@example.com")
	w := mustCreateWorkout(t, db, "Running", 30)

	entry, created, err := db.LogWorkout(u.ID, w.ID, time.Time{}, strPtr("morning run"))
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if !created {
		t.Error("expected created=true for first log")
	}
	if entry.ID == 0 {
		t.Error("expected store-assigned id, got 0")
	}
	if entry.Notes == nil || *entry.Notes != "morning run" {
		t.Errorf("notes mismatch: got %v", entry.Notes)
	}
	if entry.CompletedAt.IsZero() {
		t.Error("zero completedAt should default to now")
	}
	if entry.User == nil || entry.User.Name != "Alice" {
		t.Errorf("expected populated user, got %+v", entry.User)
	}
	if entry.Workout == nil || entry.Workout.Activity != "Running" {
		t.Errorf("expected populated workout, got %+v", entry.Workout)
	}
}

func TestLogWorkoutMissingParents(t *testing.T) {
	db := setupTestDB(t)

	u := mustCreateUser(t, db, "Alice", "alice@example.com")
	w := mustCreateWorkout(t, db, "Running", 30)

	if _, _, err := db.LogWorkout(9999, w.ID, time.Time{}, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user: got %v, want ErrNotFound", err)
	}
	if _, _, err := db.LogWorkout(u.ID, 9999, time.Time{}, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown workout: got %v, want ErrNotFound", err)
	}

	// No partial write may have happened.
	logs, err := db.ListLogs()
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected no logs after failed attempts, got %d", len(logs))
	}
}

func TestDedupByDayIdempotence(t *testing.T) {
	db := setupTestDB(t)

	u := mustCreateUser(t, db, "Alice", "alice@example.com")
	w := mustCreateWorkout(t, db, "Running", 30)

	morning := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 1, 1, 20, 0, 0, 0, time.Local)

	first, created, err := db.LogWorkout(u.ID, w.ID, morning, strPtr("first"))
	if err != nil {
		t.Fatalf("first LogWorkout failed: %v", err)
	}
	if !created {
		t.Fatal("expected created=true for first log")
	}

	second, created, err := db.LogWorkout(u.ID, w.ID, evening, strPtr("late note"))
	if err != nil {
		t.Fatalf("second LogWorkout failed: %v", err)
	}
	if created {
		t.Error("expected created=false for same-day repeat")
	}
	if second.ID != first.ID {
		t.Errorf("expected same log identity, got %d and %d", first.ID, second.ID)
	}
	if second.Notes == nil || *second.Notes != "first" {
		t.Errorf("stored notes must remain the first call's: got %v", second.Notes)
	}
	if !second.CompletedAt.Equal(first.CompletedAt) {
		t.Errorf("stored timestamp must remain the first call's: got %v, want %v",
			second.CompletedAt, first.CompletedAt)
	}

	logs, err := db.ListLogs()
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected exactly 1 log, got %d", len(logs))
	}
}

func TestCrossDayDistinction(t *testing.T) {
	db := setupTestDB(t)

	u := mustCreateUser(t, db, "Alice", "alice@example.com")
	w := mustCreateWorkout(t, db, "Running", 30)

	day1 := time.Date(2024, 1, 1, 23, 59, 0, 0, time.Local)
	day2 := time.Date(2024, 1, 2, 0, 1, 0, 0, time.Local)

	first, _, err := db.LogWorkout(u.ID, w.ID, day1, nil)
	if err != nil {
		t.Fatalf("LogWorkout day1 failed: %v", err)
	}
	second, created, err := db.LogWorkout(u.ID, w.ID, day2, nil)
	if err != nil {
		t.Fatalf("LogWorkout day2 failed: %v", err)
	}
	if !created {
		t.Error("expected created=true across a day boundary")
	}
	if first.ID == second.ID {
		t.Error("expected distinct log entries for distinct days")
	}
}

func TestDedupIsPerUserAndWorkout(t *testing.T) {
	db := setupTestDB(t)

	alice := mustCreateUser(t, db, "Alice", "alice@example.com")
	bob := mustCreateUser(t, db, "Bob", "bob@example.com")
	run := mustCreateWorkout(t, db, "Running", 30)
	yoga := mustCreateWorkout(t, db, "Yoga", 60)

	day := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)

	if _, created, err := db.LogWorkout(alice.ID, run.ID, day, nil); err != nil || !created {
		t.Fatalf("alice/run: created=%v err=%v", created, err)
	}
	// Same day, different user: allowed.
	if _, created, err := db.LogWorkout(bob.ID, run.ID, day, nil); err != nil || !created {
		t.Errorf("bob/run same day: created=%v err=%v", created, err)
	}
	// Same day, same user, different workout: allowed.
	if _, created, err := db.LogWorkout(alice.ID, yoga.ID, day, nil); err != nil || !created {
		t.Errorf("alice/yoga same day: created=%v err=%v", created, err)
	}
}

func TestListLogsOrderedByCompletionDesc(t *testing.T) {
	db := setupTestDB(t)

	u := mustCreateUser(t, db, "Alice", "alice@example.com")
	w := mustCreateWorkout(t, db, "Running", 30)

	t1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	t2 := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	t3 := time.Date(2024, 1, 3, 8, 0, 0, 0, time.Local)

	// Insert out of order to prove the sort is not incidental.
	for _, ts := range []time.Time{t2, t3, t1} {
		if _, _, err := db.LogWorkout(u.ID, w.ID, ts, nil); err != nil {
			t.Fatalf("LogWorkout(%v) failed: %v", ts, err)
		}
	}

	logs, err := db.ListLogs()
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	want := []time.Time{t3, t2, t1}
	for i, ts := range want {
		if !logs[i].CompletedAt.Equal(ts) {
			t.Errorf("position %d: got %v, want %v", i, logs[i].CompletedAt, ts)
		}
	}
}

func TestUserLogsFullyPopulated(t *testing.T) {
	db := setupTestDB(t)

	u := mustCreateUser(t, db, "Alice", "alice@example.com")
	run := mustCreateWorkout(t, db, "Running", 30)
	yoga := mustCreateWorkout(t, db, "Yoga", 60)

	day := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	if _, _, err := db.LogWorkout(u.ID, run.ID, day, nil); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if _, _, err := db.LogWorkout(u.ID, yoga.ID, day, nil); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	logs, err := db.UserLogs(u.ID)
	if err != nil {
		t.Fatalf("UserLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	for _, l := range logs {
		if l.User == nil || l.User.ID != u.ID || l.User.Email != "alice@example.com" {
			t.Errorf("log %d: user not fully populated: %+v", l.ID, l.User)
		}
		if l.Workout == nil || l.Workout.Activity == "" || l.Workout.DurationMinutes == 0 {
			t.Errorf("log %d: workout not fully populated: %+v", l.ID, l.Workout)
		}
	}
}

func TestUserLogsUnknownUserIsEmpty(t *testing.T) {
	db := setupTestDB(t)

	logs, err := db.UserLogs(9999)
	if err != nil {
		t.Fatalf("UserLogs for unknown user must not error: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected empty slice, got %d logs", len(logs))
	}
}

func TestWorkoutParticipantsDistinct(t *testing.T) {
	db := setupTestDB(t)

	alice := mustCreateUser(t, db, "Alice", "alice@example.com")
	bob := mustCreateUser(t, db, "Bob", "bob@example.com")
	run := mustCreateWorkout(t, db, "Running", 30)

	// Alice logs the run on two different days; she must appear once.
	day1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	for _, args := range []struct {
		userID int64
		ts     time.Time
	}{{alice.ID, day1}, {alice.ID, day2}, {bob.ID, day1}} {
		if _, _, err := db.LogWorkout(args.userID, run.ID, args.ts, nil); err != nil {
			t.Fatalf("LogWorkout failed: %v", err)
		}
	}

	participants, err := db.WorkoutParticipants(run.ID)
	if err != nil {
		t.Fatalf("WorkoutParticipants failed: %v", err)
	}
	if len(participants) != 2 {
		t.Fatalf("expected 2 distinct participants, got %d", len(participants))
	}
}

func TestWorkoutParticipantsUnknownWorkoutIsEmpty(t *testing.T) {
	db := setupTestDB(t)

	participants, err := db.WorkoutParticipants(9999)
	if err != nil {
		t.Fatalf("WorkoutParticipants for unknown workout must not error: %v", err)
	}
	if len(participants) != 0 {
		t.Errorf("expected empty slice, got %d users", len(participants))
	}
}

func TestDeleteUserCascadesToLogs(t *testing.T) {
	db := setupTestDB(t)

	alice := mustCreateUser(t, db, "Alice", "alice@example.com")
	bob := mustCreateUser(t, db, "Bob", "bob@example.com")
	run := mustCreateWorkout(t, db, "Running", 30)

	day := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	if _, _, err := db.LogWorkout(alice.ID, run.ID, day, nil); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if _, _, err := db.LogWorkout(bob.ID, run.ID, day, nil); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	deleted, err := db.DeleteUser(alice.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteUser failed: deleted=%v err=%v", deleted, err)
	}

	logs, err := db.UserLogs(alice.ID)
	if err != nil {
		t.Fatalf("UserLogs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected alice's logs gone, got %d", len(logs))
	}

	// Bob's log survives.
	remaining, err := db.ListLogs()
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].UserID != bob.ID {
		t.Errorf("expected exactly bob's log to remain, got %d logs", len(remaining))
	}
}

func TestDeleteWorkoutCascadesToLogs(t *testing.T) {
	db := setupTestDB(t)

	alice := mustCreateUser(t, db, "Alice", "alice@example.com")
	run := mustCreateWorkout(t, db, "Running", 30)
	yoga := mustCreateWorkout(t, db, "Yoga", 60)

	day := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	if _, _, err := db.LogWorkout(alice.ID, run.ID, day, nil); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if _, _, err := db.LogWorkout(alice.ID, yoga.ID, day, nil); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	deleted, err := db.DeleteWorkout(run.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteWorkout failed: deleted=%v err=%v", deleted, err)
	}

	logs, err := db.ListLogs()
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 1 || logs[0].WorkoutID != yoga.ID {
		t.Errorf("expected only the yoga log to remain, got %d logs", len(logs))
	}
}

func TestDeleteLog(t *testing.T) {
	db := setupTestDB(t)

	u := mustCreateUser(t, db, "Alice", "alice@example.com")
	w := mustCreateWorkout(t, db, "Running", 30)

	entry, _, err := db.LogWorkout(u.ID, w.ID, time.Time{}, nil)
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	deleted, err := db.DeleteLog(entry.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteLog failed: deleted=%v err=%v", deleted, err)
	}

	// Parents stay.
	if _, err := db.GetUser(u.ID); err != nil {
		t.Errorf("user should survive log delete: %v", err)
	}
	if _, err := db.GetWorkout(w.ID); err != nil {
		t.Errorf("workout should survive log delete: %v", err)
	}
}

func TestDeleteLogNotFoundIsNotFatal(t *testing.T) {
	db := setupTestDB(t)

	deleted, err := db.DeleteLog(9999)
	if err != nil {
		t.Fatalf("DeleteLog on empty store must not error: %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for unknown log")
	}
}

// End-to-end sequence: log, same-day repeat, fetch.
func TestLoggingScenario(t *testing.T) {
	db := setupTestDB(t)

	alice := mustCreateUser(t, db, "Alice", "alice@example.com")
	run := mustCreateWorkout(t, db, "Run", 30)

	morning := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	l1, created, err := db.LogWorkout(alice.ID, run.ID, morning, nil)
	if err != nil || !created {
		t.Fatalf("first log: created=%v err=%v", created, err)
	}

	evening := time.Date(2024, 1, 1, 20, 0, 0, 0, time.Local)
	repeat, created, err := db.LogWorkout(alice.ID, run.ID, evening, strPtr("late note"))
	if err != nil {
		t.Fatalf("repeat log failed: %v", err)
	}
	if created || repeat.ID != l1.ID {
		t.Errorf("repeat must return L1 unchanged: created=%v id=%d want=%d", created, repeat.ID, l1.ID)
	}
	if repeat.Notes != nil {
		t.Errorf("L1 had no notes; repeat must not add any: %v", *repeat.Notes)
	}

	logs, err := db.UserLogs(alice.ID)
	if err != nil {
		t.Fatalf("UserLogs failed: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != l1.ID {
		t.Fatalf("expected exactly L1, got %d logs", len(logs))
	}
	if logs[0].User.Name != "Alice" || logs[0].Workout.Activity != "Run" {
		t.Errorf("aggregates not populated: %+v %+v", logs[0].User, logs[0].Workout)
	}
}
