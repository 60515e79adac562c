package projections

import (
	"context"

	"xymworkout/internal/domain/set"
	"xymworkout/internal/domain/workout"
)

// ExerciseLogRow is one date's worth of a single exercise's history.
type ExerciseLogRow struct {
	Date   string
	Sets   []set.Record
	Volume float64
	Latest bool // true on the last-logged row
}

// GetExerciseLogQuery selects the exercise to inspect.
type GetExerciseLogQuery struct {
	ExerciseName string
}

// GetExerciseLogResult carries the per-exercise log view.
type GetExerciseLogResult struct {
	Rows     []ExerciseLogRow // in logged order
	MaxSets  int              // widest row, for table layout
	Defaults workout.DefaultValues
}

// GetExerciseLogDeps holds dependencies for the exercise log projection.
type GetExerciseLogDeps struct {
	LedgerStore HistoryStore
}

// QueryGetExerciseLog returns the history of one exercise in the order it was
// logged, with the last-logged entry flagged. Defaults come from the first
// stored entry, which is where the remembered prefill values live.
// POST: Rows preserves ledger order; at most the final row has Latest set
func QueryGetExerciseLog(ctx context.Context, query GetExerciseLogQuery, deps GetExerciseLogDeps) (GetExerciseLogResult, error) {
	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return GetExerciseLogResult{}, err
	}

	entries := ledger[query.ExerciseName]
	if len(entries) == 0 {
		return GetExerciseLogResult{}, nil
	}

	result := GetExerciseLogResult{
		Rows:     make([]ExerciseLogRow, 0, len(entries)),
		Defaults: entries[0].DefaultValues,
	}
	for i, e := range entries {
		if len(e.Sets) > result.MaxSets {
			result.MaxSets = len(e.Sets)
		}
		result.Rows = append(result.Rows, ExerciseLogRow{
			Date:   e.Date,
			Sets:   e.Sets,
			Volume: set.Volume(e.Sets),
			Latest: i == len(entries)-1,
		})
	}

	return result, nil
}
