package projections

import (
	"context"
	"testing"

	"xymworkout/internal/domain/set"
	"xymworkout/internal/domain/template"
	"xymworkout/internal/domain/workout"
)

// TestQueryGetTemplates_LastPerformedRecomputed verifies the last-performed
// date comes from the current ledger, not the stored template.
func TestQueryGetTemplates_LastPerformedRecomputed(t *testing.T) {
	store := &mockLedgerStore{
		ledger: workout.Ledger{
			"Bench Press": {
				{ExerciseName: "Bench Press", Date: "15.06", Sets: []set.Record{set.New("10x40", "")}},
			},
		},
		templates: []template.CustomWorkout{
			{
				Name:          "Push Day",
				Date:          "01.03",
				Exercises:     []template.Exercise{{ExerciseName: "Bench Press"}},
				LastPerformed: "01.03", // stale stored value
			},
		},
	}

	result, err := QueryGetTemplates(context.Background(), GetTemplatesDeps{LedgerStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(result.Templates))
	}
	if result.Templates[0].LastPerformed != "15.06" {
		t.Errorf("expected recomputed 15.06, got %q", result.Templates[0].LastPerformed)
	}
}

// TestQueryGetTemplates_FallbackToTemplateDate verifies an unmatched lead
// exercise falls back to the template's own date.
func TestQueryGetTemplates_FallbackToTemplateDate(t *testing.T) {
	store := &mockLedgerStore{
		templates: []template.CustomWorkout{
			{
				Name:      "Push Day",
				Date:      "01.03",
				Exercises: []template.Exercise{{ExerciseName: "Bench Press"}},
			},
		},
	}

	result, err := QueryGetTemplates(context.Background(), GetTemplatesDeps{LedgerStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Templates[0].LastPerformed != "01.03" {
		t.Errorf("expected fallback 01.03, got %q", result.Templates[0].LastPerformed)
	}
}
