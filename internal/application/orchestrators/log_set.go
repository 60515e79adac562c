package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"xymworkout/internal/domain/set"
	"xymworkout/internal/domain/workout"
)

// LogSetStore defines the ledger store interface needed for set logging.
type LogSetStore interface {
	LoadLedger(ctx context.Context) (workout.Ledger, error)
	SaveLedger(ctx context.Context, l workout.Ledger) error
}

// LogSetInput carries input for the log-set orchestrator.
type LogSetInput struct {
	Exercise   string
	Date       string // DD.MM
	Reps       int
	Weight     float64
	WeightStep string // logging default remembered for new entries
	Notes      string
}

// LogSetDeps holds dependencies for LogSet.
type LogSetDeps struct {
	LedgerStore LogSetStore
}

// ExecuteLogSet records one set. Logging a second set on an existing
// exercise/date pair appends to that day's entry; a new pair creates the
// entry, remembering the current defaults.
// PRE: Exercise and Date are non-empty; Reps and Weight are non-negative
// POST: The set is the last element of the (exercise, date) entry
func ExecuteLogSet(ctx context.Context, input LogSetInput, deps LogSetDeps) error {
	if input.Exercise == "" {
		return workout.ErrEmptyExercise
	}
	if input.Date == "" {
		return errors.New("date is required")
	}
	if input.Reps < 0 || input.Weight < 0 {
		return errors.New("reps and weight must be non-negative")
	}

	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return err
	}

	rec := set.New(set.FormatValue(input.Reps, input.Weight), input.Notes)
	defaults := workout.DefaultValues{
		Reps:       input.Reps,
		Weight:     input.Weight,
		WeightStep: input.WeightStep,
	}
	if err := ledger.AppendSet(input.Exercise, input.Date, rec, defaults); err != nil {
		return err
	}

	if err := deps.LedgerStore.SaveLedger(ctx, ledger); err != nil {
		return err
	}

	slog.Info("set_logged", "exercise", input.Exercise, "date", input.Date, "value", rec.Value)
	return nil
}
