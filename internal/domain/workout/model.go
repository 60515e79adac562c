package workout

import (
	"errors"

	"xymworkout/internal/domain/set"
)

// Domain errors
var (
	ErrEmptyExercise = errors.New("exercise name cannot be empty")
	ErrEntryNotFound = errors.New("no entry for that exercise and date")
	ErrSetNotFound   = errors.New("set index out of range")
)

// DefaultValues carries the logging defaults remembered per exercise.
type DefaultValues struct {
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	WeightStep string  `json:"weightStep"`
}

// DayEntry is one exercise's logged sets for one calendar date.
// Date is a zero-padded DD.MM string with no year component.
type DayEntry struct {
	ExerciseName  string        `json:"exerciseName"`
	Date          string        `json:"date"`
	Sets          []set.Record  `json:"sets"`
	DefaultValues DefaultValues `json:"defaultValues"`
}

// Ledger is the canonical exercise-keyed store of all logged entries.
// Entries per exercise keep insertion order, not date order.
type Ledger map[string][]DayEntry

// AppendSet logs a set for an exercise on a date. A second set on an existing
// exercise/date pair appends to that entry; a new pair creates the entry with
// the given defaults.
// PRE: exercise is non-empty, date is a DD.MM string
// POST: Exactly one DayEntry exists for (exercise, date); rec is its last set
func (l Ledger) AppendSet(exercise, date string, rec set.Record, defaults DefaultValues) error {
	if exercise == "" {
		return ErrEmptyExercise
	}

	entries := l[exercise]
	for i := range entries {
		if entries[i].Date == date {
			entries[i].Sets = append(entries[i].Sets, rec)
			l[exercise] = entries
			return nil
		}
	}

	l[exercise] = append(entries, DayEntry{
		ExerciseName:  exercise,
		Date:          date,
		Sets:          []set.Record{rec},
		DefaultValues: defaults,
	})
	return nil
}

// EditSet replaces one set in place. The edited set is stored in canonical
// form even if it was decoded from the legacy string format.
// PRE: index addresses an existing set within the (exercise, date) entry
// POST: The set at index equals rec; siblings are untouched
func (l Ledger) EditSet(exercise, date string, index int, rec set.Record) error {
	entries, ok := l[exercise]
	if !ok {
		return ErrEntryNotFound
	}
	for i := range entries {
		if entries[i].Date != date {
			continue
		}
		if index < 0 || index >= len(entries[i].Sets) {
			return ErrSetNotFound
		}
		entries[i].Sets[index] = rec
		return nil
	}
	return ErrEntryNotFound
}

// DeleteEntry removes the (exercise, date) entry. Removing the exercise's last
// entry removes the exercise key entirely.
// POST: Returns ErrEntryNotFound if no such entry existed
func (l Ledger) DeleteEntry(exercise, date string) error {
	entries, ok := l[exercise]
	if !ok {
		return ErrEntryNotFound
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.Date == date {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEntryNotFound
	}

	if len(kept) == 0 {
		delete(l, exercise)
	} else {
		l[exercise] = kept
	}
	return nil
}

// DeleteDay removes the given date from every exercise, cascading key removal
// for exercises left with no entries.
func (l Ledger) DeleteDay(date string) {
	for exercise := range l {
		// Ignore not-found: the date may not appear under every exercise.
		_ = l.DeleteEntry(exercise, date)
	}
}

// Entry returns the (exercise, date) entry, if present.
func (l Ledger) Entry(exercise, date string) (DayEntry, bool) {
	for _, e := range l[exercise] {
		if e.Date == date {
			return e, true
		}
	}
	return DayEntry{}, false
}
