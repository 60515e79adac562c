package projections

import (
	"context"
	"sort"

	"xymworkout/internal/domain/exercise"
	"xymworkout/internal/domain/workout"
)

// ExerciseOption is one selectable exercise in the logging form.
type ExerciseOption struct {
	Name          string
	Custom        bool   // user-added rather than built-in
	LastPerformed string // most recent ledger date, empty if never logged
}

// GetExerciseOptionsResult carries the exercise picker contents.
type GetExerciseOptionsResult struct {
	Options []ExerciseOption
}

// ExerciseOptionsStore defines the store interface needed by the exercise
// options projection.
type ExerciseOptionsStore interface {
	LoadLedger(ctx context.Context) (workout.Ledger, error)
	LoadCustomExercises(ctx context.Context) ([]string, error)
}

// GetExerciseOptionsDeps holds dependencies for the exercise options
// projection.
type GetExerciseOptionsDeps struct {
	LedgerStore ExerciseOptionsStore
}

// QueryGetExerciseOptions lists every exercise the picker should offer:
// exercises already present in the ledger first (sorted by name), then the
// remainder of the built-in catalog and any unused custom exercises.
func QueryGetExerciseOptions(ctx context.Context, deps GetExerciseOptionsDeps) (GetExerciseOptionsResult, error) {
	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return GetExerciseOptionsResult{}, err
	}
	custom, err := deps.LedgerStore.LoadCustomExercises(ctx)
	if err != nil {
		return GetExerciseOptionsResult{}, err
	}

	customSet := make(map[string]bool, len(custom))
	for _, name := range custom {
		customSet[name] = true
	}

	lastDates := workout.LastWorkoutDates(ledger)

	logged := make([]string, 0, len(ledger))
	for name := range ledger {
		if len(ledger[name]) == 0 {
			continue
		}
		logged = append(logged, name)
	}
	sort.Strings(logged)

	seen := make(map[string]bool, len(logged))
	options := make([]ExerciseOption, 0, len(logged)+len(custom))
	for _, name := range logged {
		seen[name] = true
		options = append(options, ExerciseOption{
			Name:          name,
			Custom:        customSet[name],
			LastPerformed: lastDates[name],
		})
	}
	for _, name := range exercise.Catalog() {
		if seen[name] {
			continue
		}
		seen[name] = true
		options = append(options, ExerciseOption{Name: name})
	}
	for _, name := range custom {
		if seen[name] {
			continue
		}
		seen[name] = true
		options = append(options, ExerciseOption{Name: name, Custom: true})
	}

	return GetExerciseOptionsResult{Options: options}, nil
}
