package ledger

import (
	"context"

	"xymworkout/internal/domain/template"
	"xymworkout/internal/domain/workout"
)

// Document keys, one per logical JSON document. These names are part of the
// persisted format and must not change.
const (
	KeyWorkoutData     = "workoutData"
	KeyCustomWorkouts  = "customWorkouts"
	KeyCustomExercises = "customExercises"
)

// Store is the persistence boundary for the three ledger documents. Callers
// load the current value, apply changes, and save the full structure back.
// Missing or corrupted documents load as empty defaults, never as errors.
type Store interface {
	LoadLedger(ctx context.Context) (workout.Ledger, error)
	SaveLedger(ctx context.Context, l workout.Ledger) error

	LoadTemplates(ctx context.Context) ([]template.CustomWorkout, error)
	SaveTemplates(ctx context.Context, ts []template.CustomWorkout) error

	LoadCustomExercises(ctx context.Context) ([]string, error)
	SaveCustomExercises(ctx context.Context, names []string) error

	// RawLedgerDocument exposes the workoutData document verbatim for
	// export; ok is false when nothing has ever been saved.
	RawLedgerDocument(ctx context.Context) (data string, ok bool, err error)
	// ReplaceLedgerDocument swaps the workoutData document wholesale.
	// PRE: data has already been validated by the caller
	ReplaceLedgerDocument(ctx context.Context, data string) error
}
