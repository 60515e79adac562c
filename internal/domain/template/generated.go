package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"xymworkout/internal/domain/set"
)

// Errors for assistant-generated workout payloads.
var (
	ErrNotJSONObject = errors.New("generated workout must be a single JSON object")
	ErrNoExercises   = errors.New("generated workout must contain at least one exercise")
)

// ParseGenerated validates an assistant response against the workout schema
// and returns the decoded template. The response must be exactly one JSON
// object with name, an ISO date, exercises with RxW set values, and an ISO or
// empty lastPerformed. A non-conforming response yields an error and nothing
// is ever partially ingested.
func ParseGenerated(data []byte) (CustomWorkout, error) {
	// Reject arrays, strings, etc. before decoding into the struct: json
	// would otherwise happily decode "null" into a zero CustomWorkout.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return CustomWorkout{}, fmt.Errorf("generated workout is not valid JSON: %w", err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return CustomWorkout{}, ErrNotJSONObject
	}

	var w CustomWorkout
	if err := json.Unmarshal(data, &w); err != nil {
		return CustomWorkout{}, fmt.Errorf("generated workout does not match the schema: %w", err)
	}

	if w.Name == "" {
		return CustomWorkout{}, ErrEmptyName
	}
	if err := validateISODate(w.Date); err != nil {
		return CustomWorkout{}, fmt.Errorf("generated workout date: %w", err)
	}
	if w.LastPerformed != "" {
		if err := validateISODate(w.LastPerformed); err != nil {
			return CustomWorkout{}, fmt.Errorf("generated workout lastPerformed: %w", err)
		}
	}
	if len(w.Exercises) == 0 {
		return CustomWorkout{}, ErrNoExercises
	}
	for _, e := range w.Exercises {
		if e.ExerciseName == "" {
			return CustomWorkout{}, errors.New("generated exercise is missing a name")
		}
		for _, s := range e.Sets {
			if _, _, err := set.ParseValue(s.Value); err != nil {
				return CustomWorkout{}, fmt.Errorf("generated set %q: %w", s.Value, err)
			}
		}
	}

	return w, nil
}

func validateISODate(d string) error {
	if _, err := time.Parse("2006-01-02", d); err != nil {
		return fmt.Errorf("%q is not a YYYY-MM-DD date", d)
	}
	return nil
}
