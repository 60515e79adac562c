package template

import "xymworkout/internal/domain/workout"

// GroupedView builds the display-ready date-keyed view: the raw ledger
// grouping with template-covered pairs removed, and the templates' own
// snapshotted exercises appended for their dates. Also returns the
// date -> template name map for labelling.
//
// Guarantees: no (exercise, date) pair appears twice, and a template-covered
// entry always shows the snapshot's sets and volume, never the live ledger's.
func GroupedView(ledger workout.Ledger, templates []CustomWorkout) (map[string][]workout.ExerciseEntry, map[string]string) {
	nameByDate := make(map[string]string)
	covered := make(map[string]map[string]bool) // date -> exercise set
	for _, t := range templates {
		nameByDate[t.Date] = t.Name
		if covered[t.Date] == nil {
			covered[t.Date] = make(map[string]bool)
		}
		for _, e := range t.Exercises {
			covered[t.Date][e.ExerciseName] = true
		}
	}

	grouped := make(map[string][]workout.ExerciseEntry)
	for date, entries := range workout.GroupByDate(ledger) {
		for _, e := range entries {
			if covered[date][e.ExerciseName] {
				continue
			}
			grouped[date] = append(grouped[date], e)
		}
		// Keep the date visible even when templates cover everything on it.
		if _, ok := grouped[date]; !ok {
			grouped[date] = []workout.ExerciseEntry{}
		}
	}

	for _, t := range templates {
		for _, e := range t.Exercises {
			grouped[t.Date] = append(grouped[t.Date], workout.ExerciseEntry{
				ExerciseName: e.ExerciseName,
				Sets:         e.Sets,
				Volume:       e.Volume,
			})
		}
	}

	return grouped, nameByDate
}
