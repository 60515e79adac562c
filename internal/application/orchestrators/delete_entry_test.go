package orchestrators

import (
	"context"
	"errors"
	"testing"

	"xymworkout/internal/domain/set"
	"xymworkout/internal/domain/workout"
)

// TestExecuteDeleteEntry verifies one (exercise, date) entry is removed and
// the last entry cascades to the exercise key.
func TestExecuteDeleteEntry(t *testing.T) {
	store := newMockLedgerStore()
	store.ledger["Squat"] = []workout.DayEntry{
		{ExerciseName: "Squat", Date: "01.03", Sets: []set.Record{set.New("5x100", "")}},
	}
	deps := DeleteEntryDeps{LedgerStore: store}

	if err := ExecuteDeleteEntry(context.Background(), DeleteEntryInput{Exercise: "Squat", Date: "01.03"}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.ledger["Squat"]; ok {
		t.Error("expected exercise key removed after last entry deleted")
	}
}

// TestExecuteDeleteEntry_NotFound verifies the domain error surfaces.
func TestExecuteDeleteEntry_NotFound(t *testing.T) {
	deps := DeleteEntryDeps{LedgerStore: newMockLedgerStore()}

	err := ExecuteDeleteEntry(context.Background(), DeleteEntryInput{Exercise: "Squat", Date: "01.03"}, deps)
	if !errors.Is(err, workout.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

// TestExecuteDeleteDay verifies a whole date is removed across exercises and
// an empty date is a no-op.
func TestExecuteDeleteDay(t *testing.T) {
	store := newMockLedgerStore()
	store.ledger["Squat"] = []workout.DayEntry{
		{ExerciseName: "Squat", Date: "01.03", Sets: []set.Record{set.New("5x100", "")}},
		{ExerciseName: "Squat", Date: "03.03", Sets: []set.Record{set.New("5x105", "")}},
	}
	store.ledger["Bench Press"] = []workout.DayEntry{
		{ExerciseName: "Bench Press", Date: "01.03", Sets: []set.Record{set.New("10x40", "")}},
	}
	deps := DeleteEntryDeps{LedgerStore: store}
	ctx := context.Background()

	if err := ExecuteDeleteDay(ctx, DeleteDayInput{Date: "01.03"}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.ledger["Squat"]) != 1 || store.ledger["Squat"][0].Date != "03.03" {
		t.Errorf("wrong entries left: %+v", store.ledger["Squat"])
	}
	if _, ok := store.ledger["Bench Press"]; ok {
		t.Error("expected Bench Press removed entirely")
	}

	if err := ExecuteDeleteDay(ctx, DeleteDayInput{Date: "25.12"}, deps); err != nil {
		t.Errorf("empty-day delete should be a no-op, got %v", err)
	}
}
