package orchestrators

import (
	"context"
	"log/slog"

	"xymworkout/internal/domain/exercise"
)

// CustomExerciseStore defines the ledger store interface needed for the
// custom exercise list.
type CustomExerciseStore interface {
	LoadCustomExercises(ctx context.Context) ([]string, error)
	SaveCustomExercises(ctx context.Context, names []string) error
}

// AddCustomExerciseInput carries input for the add-custom-exercise orchestrator.
type AddCustomExerciseInput struct {
	Name string
}

// AddCustomExerciseDeps holds dependencies for AddCustomExercise.
type AddCustomExerciseDeps struct {
	LedgerStore CustomExerciseStore
}

// ExecuteAddCustomExercise records a user-defined exercise name that is not
// part of the built-in catalog.
// POST: Name appears exactly once in the custom exercise list
func ExecuteAddCustomExercise(ctx context.Context, input AddCustomExerciseInput, deps AddCustomExerciseDeps) error {
	existing, err := deps.LedgerStore.LoadCustomExercises(ctx)
	if err != nil {
		return err
	}

	if err := exercise.ValidateCustom(input.Name, existing); err != nil {
		return err
	}

	if err := deps.LedgerStore.SaveCustomExercises(ctx, append(existing, input.Name)); err != nil {
		return err
	}

	slog.Info("custom_exercise_added", "name", input.Name)
	return nil
}
