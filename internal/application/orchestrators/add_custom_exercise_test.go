package orchestrators

import (
	"context"
	"errors"
	"testing"

	"xymworkout/internal/domain/exercise"
)

// TestExecuteAddCustomExercise verifies a new name is appended once.
func TestExecuteAddCustomExercise(t *testing.T) {
	store := newMockLedgerStore()
	deps := AddCustomExerciseDeps{LedgerStore: store}
	ctx := context.Background()

	if err := ExecuteAddCustomExercise(ctx, AddCustomExerciseInput{Name: "Sled Push"}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.customExercises) != 1 || store.customExercises[0] != "Sled Push" {
		t.Errorf("wrong custom exercises: %+v", store.customExercises)
	}

	if err := ExecuteAddCustomExercise(ctx, AddCustomExerciseInput{Name: "Sled Push"}, deps); !errors.Is(err, exercise.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if err := ExecuteAddCustomExercise(ctx, AddCustomExerciseInput{Name: "Bench Press"}, deps); !errors.Is(err, exercise.ErrBuiltin) {
		t.Errorf("expected ErrBuiltin, got %v", err)
	}
	if err := ExecuteAddCustomExercise(ctx, AddCustomExerciseInput{Name: ""}, deps); !errors.Is(err, exercise.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}
