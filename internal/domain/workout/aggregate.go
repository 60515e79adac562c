package workout

import "xymworkout/internal/domain/set"

// ExerciseEntry is one (exercise, date) pair in a date-keyed view of the
// ledger, with its volume computed from the sets.
type ExerciseEntry struct {
	ExerciseName string       `json:"exerciseName"`
	Sets         []set.Record `json:"sets"`
	Volume       float64      `json:"volume"`
}

// Stats summarizes one day's entries.
type Stats struct {
	ExerciseCount int     `json:"exerciseCount"`
	TotalSets     int     `json:"totalSets"`
	TotalWeight   float64 `json:"totalWeight"`
}

// GroupByDate inverts the exercise-keyed ledger into a date-keyed view:
// one ExerciseEntry per (exercise, date) pair found in the ledger.
func GroupByDate(l Ledger) map[string][]ExerciseEntry {
	grouped := make(map[string][]ExerciseEntry)
	for exercise, entries := range l {
		for _, e := range entries {
			grouped[e.Date] = append(grouped[e.Date], ExerciseEntry{
				ExerciseName: exercise,
				Sets:         e.Sets,
				Volume:       set.Volume(e.Sets),
			})
		}
	}
	return grouped
}

// LastWorkoutDates returns, per exercise, the date of its most recent entry
// under the month-then-day ordering.
func LastWorkoutDates(l Ledger) map[string]string {
	last := make(map[string]string, len(l))
	for exercise, entries := range l {
		for _, e := range entries {
			cur, ok := last[exercise]
			if !ok || MoreRecent(e.Date, cur) {
				last[exercise] = e.Date
			}
		}
	}
	return last
}

// DayStats computes the exercise, set, and total-weight counts for one day's
// entries.
func DayStats(entries []ExerciseEntry) Stats {
	var s Stats
	for _, e := range entries {
		s.ExerciseCount++
		s.TotalSets += len(e.Sets)
		s.TotalWeight += e.Volume
	}
	return s
}
