package projections

import (
	"context"

	"xymworkout/internal/domain/template"
	"xymworkout/internal/domain/workout"
)

// HistoryStore defines the ledger store interface needed by the history
// projection.
type HistoryStore interface {
	LoadLedger(ctx context.Context) (workout.Ledger, error)
	LoadTemplates(ctx context.Context) ([]template.CustomWorkout, error)
}

// HistoryDay is one date of the display-ready history view.
type HistoryDay struct {
	Date         string
	TemplateName string // name of the custom workout covering this date, if any
	TopExercise  string // highest-volume exercise of the day
	Stats        workout.Stats
	Entries      []workout.ExerciseEntry
}

// GetHistoryResult carries the output of the history projection.
type GetHistoryResult struct {
	Days []HistoryDay // most recent first
}

// GetHistoryDeps holds dependencies for the history projection.
type GetHistoryDeps struct {
	LedgerStore HistoryStore
}

// QueryGetHistory builds the date-grouped history view: raw ledger entries
// with template-covered pairs replaced by the templates' snapshots, day stats,
// and dates ordered most recent first.
// POST: No (exercise, date) pair appears twice across a day's entries
func QueryGetHistory(ctx context.Context, deps GetHistoryDeps) (GetHistoryResult, error) {
	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return GetHistoryResult{}, err
	}
	templates, err := deps.LedgerStore.LoadTemplates(ctx)
	if err != nil {
		return GetHistoryResult{}, err
	}

	grouped, nameByDate := template.GroupedView(ledger, templates)

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	workout.SortDatesDesc(dates)

	days := make([]HistoryDay, 0, len(dates))
	for _, date := range dates {
		entries := grouped[date]
		days = append(days, HistoryDay{
			Date:         date,
			TemplateName: nameByDate[date],
			TopExercise:  topExercise(entries),
			Stats:        workout.DayStats(entries),
			Entries:      entries,
		})
	}

	return GetHistoryResult{Days: days}, nil
}

// topExercise returns the name of the highest-volume entry, the day's
// headline in the history list.
func topExercise(entries []workout.ExerciseEntry) string {
	if len(entries) == 0 {
		return ""
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Volume > best.Volume {
			best = e
		}
	}
	return best.ExerciseName
}
