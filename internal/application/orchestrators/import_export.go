package orchestrators

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// Import/export errors. ErrNoData is a recoverable user-facing condition, not
// a failure: nothing has been logged yet.
var (
	ErrNoData         = errors.New("no workout data to export")
	ErrInvalidPayload = errors.New("invalid data format")
)

// ImportExportStore defines the ledger store interface needed for backup and
// restore. Both operate on the raw workoutData document so legacy-format sets
// survive a round trip byte for byte.
type ImportExportStore interface {
	RawLedgerDocument(ctx context.Context) (string, bool, error)
	ReplaceLedgerDocument(ctx context.Context, data string) error
}

// ExportDataInput carries input for the export orchestrator.
type ExportDataInput struct {
	Now time.Time // optional: if zero, time.Now() is used
}

// ExportDataResult carries the downloadable backup artifact.
type ExportDataResult struct {
	Filename string
	Data     string
}

// ImportExportDeps holds dependencies for import and export.
type ImportExportDeps struct {
	LedgerStore ImportExportStore
}

// ExecuteExportData returns the full ledger document for download, named
// workout-data-<date>.json after the current calendar date.
// POST: Returns ErrNoData when nothing has ever been saved
func ExecuteExportData(ctx context.Context, input ExportDataInput, deps ImportExportDeps) (ExportDataResult, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	data, ok, err := deps.LedgerStore.RawLedgerDocument(ctx)
	if err != nil {
		return ExportDataResult{}, err
	}
	if !ok {
		return ExportDataResult{}, ErrNoData
	}

	return ExportDataResult{
		Filename: "workout-data-" + now.Format("2006-01-02") + ".json",
		Data:     data,
	}, nil
}

// ImportDataInput carries the uploaded file contents.
type ImportDataInput struct {
	Contents string
}

// ExecuteImportData validates the uploaded backup and replaces the ledger
// document wholesale. There is no merge or partial import; an invalid payload
// leaves existing state untouched.
// POST: On success the workoutData document equals Contents
func ExecuteImportData(ctx context.Context, input ImportDataInput, deps ImportExportDeps) error {
	var parsed any
	if err := json.Unmarshal([]byte(input.Contents), &parsed); err != nil {
		return ErrInvalidPayload
	}
	if _, ok := parsed.(map[string]any); !ok {
		return ErrInvalidPayload
	}

	if err := deps.LedgerStore.ReplaceLedgerDocument(ctx, input.Contents); err != nil {
		return err
	}

	slog.Info("ledger_imported", "bytes", len(input.Contents))
	return nil
}
