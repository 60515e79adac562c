package projections

import (
	"context"
	"testing"

	"xymworkout/internal/domain/set"
	"xymworkout/internal/domain/template"
	"xymworkout/internal/domain/workout"
)

// mockLedgerStore implements the projection store interfaces for testing.
type mockLedgerStore struct {
	ledger          workout.Ledger
	templates       []template.CustomWorkout
	customExercises []string
}

func (m *mockLedgerStore) LoadLedger(_ context.Context) (workout.Ledger, error) {
	if m.ledger == nil {
		return workout.Ledger{}, nil
	}
	return m.ledger, nil
}

func (m *mockLedgerStore) LoadTemplates(_ context.Context) ([]template.CustomWorkout, error) {
	return m.templates, nil
}

func (m *mockLedgerStore) LoadCustomExercises(_ context.Context) ([]string, error) {
	return m.customExercises, nil
}

// TestQueryGetHistory verifies ordering, stats, and the headline exercise.
func TestQueryGetHistory(t *testing.T) {
	store := &mockLedgerStore{
		ledger: workout.Ledger{
			"Squat": {
				{ExerciseName: "Squat", Date: "01.03", Sets: []set.Record{set.New("5x100", ""), set.New("5x100", "")}},
				{ExerciseName: "Squat", Date: "15.06", Sets: []set.Record{set.New("5x110", "")}},
			},
			"Bench Press": {
				{ExerciseName: "Bench Press", Date: "01.03", Sets: []set.Record{set.New("10x40", "")}},
			},
		},
	}

	result, err := QueryGetHistory(context.Background(), GetHistoryDeps{LedgerStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(result.Days))
	}
	// Most recent first.
	if result.Days[0].Date != "15.06" || result.Days[1].Date != "01.03" {
		t.Errorf("wrong order: %s, %s", result.Days[0].Date, result.Days[1].Date)
	}

	day := result.Days[1]
	if day.Stats.ExerciseCount != 2 || day.Stats.TotalSets != 3 || day.Stats.TotalWeight != 1400 {
		t.Errorf("wrong stats: %+v", day.Stats)
	}
	if day.TopExercise != "Squat" {
		t.Errorf("expected headline Squat (volume 1000), got %q", day.TopExercise)
	}
}

// TestQueryGetHistory_TemplateCoverage verifies covered entries are replaced
// by the template snapshot and the day carries the template's name.
func TestQueryGetHistory_TemplateCoverage(t *testing.T) {
	store := &mockLedgerStore{
		ledger: workout.Ledger{
			"Squat": {
				{ExerciseName: "Squat", Date: "01.03", Sets: []set.Record{set.New("5x100", "")}},
			},
		},
		templates: []template.CustomWorkout{
			{
				Name:      "Leg Day",
				Date:      "01.03",
				Exercises: []template.Exercise{{ExerciseName: "Squat", Volume: 360}},
			},
		},
	}

	result, err := QueryGetHistory(context.Background(), GetHistoryDeps{LedgerStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(result.Days))
	}
	day := result.Days[0]
	if day.TemplateName != "Leg Day" {
		t.Errorf("expected template label, got %q", day.TemplateName)
	}
	if len(day.Entries) != 1 || day.Entries[0].Volume != 360 {
		t.Errorf("expected the snapshot entry only, got %+v", day.Entries)
	}

	// No (exercise, date) pair appears twice.
	seen := map[string]bool{}
	for _, e := range day.Entries {
		if seen[e.ExerciseName] {
			t.Errorf("duplicate entry for %q", e.ExerciseName)
		}
		seen[e.ExerciseName] = true
	}
}

// TestQueryGetHistory_Empty verifies the zero state.
func TestQueryGetHistory_Empty(t *testing.T) {
	result, err := QueryGetHistory(context.Background(), GetHistoryDeps{LedgerStore: &mockLedgerStore{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Days) != 0 {
		t.Errorf("expected no days, got %+v", result.Days)
	}
}
