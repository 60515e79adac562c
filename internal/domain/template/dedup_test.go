package template

import (
	"testing"

	"xymworkout/internal/domain/set"
	"xymworkout/internal/domain/workout"
)

// TestGroupedView_CoveredEntriesReplaced verifies ledger entries covered by a
// template on their date are dropped in favor of the template's snapshot.
func TestGroupedView_CoveredEntriesReplaced(t *testing.T) {
	ledger := workout.Ledger{
		"Squat": {
			{ExerciseName: "Squat", Date: "01.03", Sets: []set.Record{set.New("5x100", "")}},
		},
		"Bench Press": {
			{ExerciseName: "Bench Press", Date: "01.03", Sets: []set.Record{set.New("10x40", "")}},
		},
	}
	templates := []CustomWorkout{
		{
			Name: "Leg Day",
			Date: "01.03",
			Exercises: []Exercise{
				// Snapshot diverges from the live ledger on purpose.
				{ExerciseName: "Squat", Sets: []set.Record{set.New("3x120", "")}, Volume: 360},
			},
		},
	}

	grouped, nameByDate := GroupedView(ledger, templates)

	entries := grouped["01.03"]
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}

	// No (exercise, date) pair may appear twice.
	seen := map[string]int{}
	for _, e := range entries {
		seen[e.ExerciseName]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("exercise %q appears %d times", name, n)
		}
	}

	// The covered exercise shows the snapshot, not the live ledger.
	for _, e := range entries {
		if e.ExerciseName == "Squat" && e.Volume != 360 {
			t.Errorf("expected snapshot volume 360, got %v", e.Volume)
		}
	}

	if nameByDate["01.03"] != "Leg Day" {
		t.Errorf("expected date labelled Leg Day, got %q", nameByDate["01.03"])
	}
}

// TestGroupedView_FullyCoveredDateStaysVisible verifies a date whose entries
// are all covered still appears, showing only the template's exercises.
func TestGroupedView_FullyCoveredDateStaysVisible(t *testing.T) {
	ledger := workout.Ledger{
		"Squat": {
			{ExerciseName: "Squat", Date: "01.03", Sets: []set.Record{set.New("5x100", "")}},
		},
	}
	templates := []CustomWorkout{
		{
			Name:      "Leg Day",
			Date:      "01.03",
			Exercises: []Exercise{{ExerciseName: "Squat", Volume: 500}},
		},
	}

	grouped, _ := GroupedView(ledger, templates)

	entries, ok := grouped["01.03"]
	if !ok {
		t.Fatal("fully covered date disappeared from the view")
	}
	if len(entries) != 1 || entries[0].ExerciseName != "Squat" {
		t.Fatalf("expected only the template exercise, got %+v", entries)
	}
}

// TestGroupedView_TemplateOnlyDate verifies a template dated where the ledger
// has nothing still contributes its exercises.
func TestGroupedView_TemplateOnlyDate(t *testing.T) {
	templates := []CustomWorkout{
		{
			Name:      "Push Day",
			Date:      "05.03",
			Exercises: []Exercise{{ExerciseName: "Bench Press", Volume: 400}},
		},
	}

	grouped, nameByDate := GroupedView(workout.Ledger{}, templates)

	if len(grouped["05.03"]) != 1 {
		t.Fatalf("expected template-only date present, got %+v", grouped)
	}
	if nameByDate["05.03"] != "Push Day" {
		t.Errorf("expected label Push Day, got %q", nameByDate["05.03"])
	}
}

// TestGroupedView_UncoveredDatesUntouched verifies dates with no template
// pass through the raw grouping.
func TestGroupedView_UncoveredDatesUntouched(t *testing.T) {
	ledger := workout.Ledger{
		"Squat": {
			{ExerciseName: "Squat", Date: "03.03", Sets: []set.Record{set.New("5x105", "")}},
		},
	}

	grouped, _ := GroupedView(ledger, nil)

	if len(grouped["03.03"]) != 1 || grouped["03.03"][0].Volume != 525 {
		t.Fatalf("expected raw entry with volume 525, got %+v", grouped["03.03"])
	}
}
