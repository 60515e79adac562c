package template

import (
	"errors"
	"strings"

	"xymworkout/internal/domain/set"
	"xymworkout/internal/domain/workout"
)

// Domain errors
var (
	ErrEmptyName = errors.New("custom workout name cannot be empty")
)

// Exercise is one exercise inside a custom workout, with the sets and volume
// snapshotted at save time. The volume is never recomputed when the underlying
// ledger changes.
type Exercise struct {
	ExerciseName string       `json:"exerciseName"`
	Sets         []set.Record `json:"sets"`
	Volume       float64      `json:"volume"`
}

// CustomWorkout is a named, point-in-time snapshot of one day's exercises,
// reusable as a routine. Identity is the name, not an id: several templates
// may share a name, and rename/delete act on every template with that name.
type CustomWorkout struct {
	Name          string     `json:"name"`
	Date          string     `json:"date"`
	Exercises     []Exercise `json:"exercises"`
	LastPerformed string     `json:"lastPerformed,omitempty"`
}

// Snapshot builds a custom workout from one day's aggregated entries.
// PRE: entries are the display entries for date
// POST: Returns ErrEmptyName for a blank or whitespace-only name
func Snapshot(name, date string, entries []workout.ExerciseEntry) (CustomWorkout, error) {
	if strings.TrimSpace(name) == "" {
		return CustomWorkout{}, ErrEmptyName
	}

	exercises := make([]Exercise, 0, len(entries))
	for _, e := range entries {
		exercises = append(exercises, Exercise{
			ExerciseName: e.ExerciseName,
			Sets:         e.Sets,
			Volume:       e.Volume,
		})
	}
	return CustomWorkout{Name: name, Date: date, Exercises: exercises}, nil
}

// RenameAll renames every template whose name equals oldName. Returns how many
// templates were renamed.
func RenameAll(templates []CustomWorkout, oldName, newName string) int {
	n := 0
	for i := range templates {
		if templates[i].Name == oldName {
			templates[i].Name = newName
			n++
		}
	}
	return n
}

// DeleteAll removes every template whose name equals name.
func DeleteAll(templates []CustomWorkout, name string) []CustomWorkout {
	kept := templates[:0]
	for _, t := range templates {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	return kept
}

// LastPerformed finds the most recent date in the grouped view whose entries
// contain the template's first exercise, falling back to the template's own
// date when no match exists.
//
// Matching is keyed on the first exercise only; the grouped view passed in
// should include template-covered entries so a template always matches at
// least its own date.
func LastPerformed(t CustomWorkout, grouped map[string][]workout.ExerciseEntry) string {
	if len(t.Exercises) == 0 {
		return t.Date
	}
	first := t.Exercises[0].ExerciseName

	best := ""
	for date, entries := range grouped {
		match := false
		for _, e := range entries {
			if e.ExerciseName == first {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		if best == "" || workout.MoreRecent(date, best) {
			best = date
		}
	}
	if best == "" {
		return t.Date
	}
	return best
}
