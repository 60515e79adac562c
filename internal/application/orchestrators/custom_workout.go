package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"xymworkout/internal/domain/template"
	"xymworkout/internal/domain/workout"
)

// CustomWorkoutStore defines the ledger store interface needed for template
// management.
type CustomWorkoutStore interface {
	LoadLedger(ctx context.Context) (workout.Ledger, error)
	LoadTemplates(ctx context.Context) ([]template.CustomWorkout, error)
	SaveTemplates(ctx context.Context, ts []template.CustomWorkout) error
}

// SaveCustomWorkoutInput carries input for the save-template orchestrator.
type SaveCustomWorkoutInput struct {
	Name string
	Date string // DD.MM
}

// CustomWorkoutDeps holds dependencies for the template orchestrators.
type CustomWorkoutDeps struct {
	LedgerStore CustomWorkoutStore
}

// ExecuteSaveCustomWorkout snapshots one day's display entries (volumes
// included) as a reusable named template and appends it to the template list.
// A blank or whitespace-only name is a silent no-op, not an error.
// POST: On success the template list has one more entry
func ExecuteSaveCustomWorkout(ctx context.Context, input SaveCustomWorkoutInput, deps CustomWorkoutDeps) error {
	if strings.TrimSpace(input.Name) == "" {
		slog.Info("custom_workout_save_skipped", "reason", "empty name")
		return nil
	}

	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return err
	}
	templates, err := deps.LedgerStore.LoadTemplates(ctx)
	if err != nil {
		return err
	}

	// Snapshot the display view for the date: template-covered entries show
	// their snapshot values, the rest come from the live ledger.
	grouped, _ := template.GroupedView(ledger, templates)
	t, err := template.Snapshot(input.Name, input.Date, grouped[input.Date])
	if err != nil {
		return err
	}

	if err := deps.LedgerStore.SaveTemplates(ctx, append(templates, t)); err != nil {
		return err
	}

	slog.Info("custom_workout_saved", "name", t.Name, "date", t.Date, "exercises", len(t.Exercises))
	return nil
}

// RenameCustomWorkoutInput carries input for the rename orchestrator.
type RenameCustomWorkoutInput struct {
	OldName string
	NewName string
}

// ExecuteRenameCustomWorkout renames every template whose name equals
// OldName. Template identity is the name, so all namesakes move together.
// PRE: NewName is non-empty
func ExecuteRenameCustomWorkout(ctx context.Context, input RenameCustomWorkoutInput, deps CustomWorkoutDeps) error {
	if strings.TrimSpace(input.NewName) == "" {
		return template.ErrEmptyName
	}

	templates, err := deps.LedgerStore.LoadTemplates(ctx)
	if err != nil {
		return err
	}

	n := template.RenameAll(templates, input.OldName, input.NewName)
	if n == 0 {
		return errors.New("no custom workout with that name")
	}

	if err := deps.LedgerStore.SaveTemplates(ctx, templates); err != nil {
		return err
	}

	slog.Info("custom_workout_renamed", "old", input.OldName, "new", input.NewName, "count", n)
	return nil
}

// DeleteCustomWorkoutInput carries input for the delete orchestrator.
type DeleteCustomWorkoutInput struct {
	Name string
}

// ExecuteDeleteCustomWorkout removes every template whose name equals Name.
// The underlying ledger entries the template covered are untouched and
// reappear in the raw history view.
func ExecuteDeleteCustomWorkout(ctx context.Context, input DeleteCustomWorkoutInput, deps CustomWorkoutDeps) error {
	templates, err := deps.LedgerStore.LoadTemplates(ctx)
	if err != nil {
		return err
	}

	kept := template.DeleteAll(templates, input.Name)
	removed := len(templates) - len(kept)
	if removed == 0 {
		return errors.New("no custom workout with that name")
	}

	if err := deps.LedgerStore.SaveTemplates(ctx, kept); err != nil {
		return err
	}

	slog.Info("custom_workout_deleted", "name", input.Name, "count", removed)
	return nil
}
