package orchestrators

import (
	"context"
	"log/slog"
)

// DeleteEntryInput carries input for the delete-entry orchestrator.
type DeleteEntryInput struct {
	Exercise string
	Date     string // DD.MM
}

// DeleteEntryDeps holds dependencies for DeleteEntry.
type DeleteEntryDeps struct {
	LedgerStore LogSetStore
}

// ExecuteDeleteEntry removes one exercise's entry for one date. Deleting the
// exercise's last entry removes the exercise key from the ledger entirely.
// POST: No (exercise, date) entry remains
func ExecuteDeleteEntry(ctx context.Context, input DeleteEntryInput, deps DeleteEntryDeps) error {
	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return err
	}

	if err := ledger.DeleteEntry(input.Exercise, input.Date); err != nil {
		return err
	}

	if err := deps.LedgerStore.SaveLedger(ctx, ledger); err != nil {
		return err
	}

	slog.Info("entry_deleted", "exercise", input.Exercise, "date", input.Date)
	return nil
}

// DeleteDayInput carries input for the delete-day orchestrator.
type DeleteDayInput struct {
	Date string // DD.MM
}

// ExecuteDeleteDay removes the given date across every exercise, cascading
// exercise-key removal for exercises left without entries.
func ExecuteDeleteDay(ctx context.Context, input DeleteDayInput, deps DeleteEntryDeps) error {
	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return err
	}

	ledger.DeleteDay(input.Date)

	if err := deps.LedgerStore.SaveLedger(ctx, ledger); err != nil {
		return err
	}

	slog.Info("day_deleted", "date", input.Date)
	return nil
}
