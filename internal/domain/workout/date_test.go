package workout

import (
	"testing"
	"time"
)

// TestFormatDate verifies the DD.MM rendering.
func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "01.03" {
		t.Errorf("expected 01.03, got %q", got)
	}
}

// TestCompareDates verifies month-then-day descending order.
func TestCompareDates(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign only
	}{
		{"15.06", "01.03", -1}, // later month sorts first
		{"01.03", "15.06", 1},
		{"03.03", "01.03", -1}, // same month, later day first
		{"01.03", "01.03", 0},
	}

	for _, tt := range tests {
		got := CompareDates(tt.a, tt.b)
		switch {
		case tt.want < 0 && got >= 0:
			t.Errorf("CompareDates(%q, %q) = %d, want negative", tt.a, tt.b, got)
		case tt.want > 0 && got <= 0:
			t.Errorf("CompareDates(%q, %q) = %d, want positive", tt.a, tt.b, got)
		case tt.want == 0 && got != 0:
			t.Errorf("CompareDates(%q, %q) = %d, want 0", tt.a, tt.b, got)
		}
	}
}

// TestSortDatesDesc verifies most-recent-first ordering, including malformed
// dates sinking to the end.
func TestSortDatesDesc(t *testing.T) {
	dates := []string{"01.03", "15.06", "03.03", "garbage", "25.12"}
	SortDatesDesc(dates)

	want := []string{"25.12", "15.06", "03.03", "01.03", "garbage"}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("order %v, want %v", dates, want)
		}
	}
}

// TestMoreRecent verifies the convenience comparison.
func TestMoreRecent(t *testing.T) {
	if !MoreRecent("15.06", "01.03") {
		t.Error("15.06 should be more recent than 01.03")
	}
	if MoreRecent("01.03", "15.06") {
		t.Error("01.03 should not be more recent than 15.06")
	}
}
