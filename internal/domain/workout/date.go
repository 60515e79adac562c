package workout

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the Go time layout for the ledger's DD.MM date strings.
const DateLayout = "02.01"

// FormatDate renders a time as a ledger date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CompareDates orders two DD.MM dates by recency: month descending, then day
// descending. Returns a negative number when a is more recent than b, positive
// when older, 0 when equal.
//
// Dates carry no year, so this is a within-year ordering only: entries
// spanning a December-January boundary sort by month alone. Known limitation
// of the data model, kept as-is.
func CompareDates(a, b string) int {
	dayA, monthA := splitDate(a)
	dayB, monthB := splitDate(b)
	if monthA != monthB {
		return monthB - monthA
	}
	return dayB - dayA
}

// MoreRecent reports whether a is strictly more recent than b under the
// month-then-day ordering.
func MoreRecent(a, b string) bool {
	return CompareDates(a, b) < 0
}

// SortDatesDesc sorts dates in place, most recent first.
func SortDatesDesc(dates []string) {
	sort.SliceStable(dates, func(i, j int) bool {
		return CompareDates(dates[i], dates[j]) < 0
	})
}

// splitDate parses "DD.MM" into day and month integers. Malformed components
// parse as 0 and sort after every real date.
func splitDate(d string) (day, month int) {
	left, right, _ := strings.Cut(d, ".")
	day, _ = strconv.Atoi(left)
	month, _ = strconv.Atoi(right)
	return day, month
}
