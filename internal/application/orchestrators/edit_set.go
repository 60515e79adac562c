package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"xymworkout/internal/domain/set"
)

// EditSetInput carries input for the edit-set orchestrator.
type EditSetInput struct {
	Exercise string
	Date     string // DD.MM
	SetIndex int
	Reps     int
	Weight   float64
	Notes    string
}

// EditSetDeps holds dependencies for EditSet.
type EditSetDeps struct {
	LedgerStore LogSetStore
}

// ExecuteEditSet replaces one logged set's value and notes in place. The
// edited set is persisted in the canonical object encoding even when it was
// stored in the legacy string format.
// PRE: SetIndex addresses an existing set within the (exercise, date) entry
// POST: Only the addressed set changes
func ExecuteEditSet(ctx context.Context, input EditSetInput, deps EditSetDeps) error {
	if input.Reps < 0 || input.Weight < 0 {
		return errors.New("reps and weight must be non-negative")
	}

	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return err
	}

	rec := set.New(set.FormatValue(input.Reps, input.Weight), input.Notes)
	if err := ledger.EditSet(input.Exercise, input.Date, input.SetIndex, rec); err != nil {
		return err
	}

	if err := deps.LedgerStore.SaveLedger(ctx, ledger); err != nil {
		return err
	}

	slog.Info("set_edited", "exercise", input.Exercise, "date", input.Date, "index", input.SetIndex, "value", rec.Value)
	return nil
}
