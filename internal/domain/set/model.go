package set

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Domain errors
var (
	ErrMalformedValue = errors.New("set value must be <reps>x<weight>")
)

// Record represents one logged set: an "RxW" value string (e.g. "10x50")
// plus an optional free-text note.
//
// Two wire encodings exist: the current object form {"value","notes"} and a
// legacy bare-string form equal to the value. Decoding normalizes both to the
// canonical shape; a legacy set keeps its bare-string encoding on write until
// the set itself is edited, so untouched ledgers round-trip byte-stable.
type Record struct {
	Value string `json:"value"`
	Notes string `json:"notes"`

	// legacy marks a record decoded from the bare-string format.
	legacy bool
}

// New creates a canonical Record from a value string and note.
func New(value, notes string) Record {
	return Record{Value: value, Notes: notes}
}

// FromLegacy normalizes a legacy bare-string set into a canonical Record.
// Pure and total: any string input yields a Record with empty notes.
func FromLegacy(value string) Record {
	return Record{Value: value, legacy: true}
}

// IsLegacy reports whether the record was decoded from the bare-string format
// and has not been edited since.
func (r Record) IsLegacy() bool {
	return r.legacy
}

// UnmarshalJSON accepts either wire encoding.
// POST: r holds the canonical {value, notes} shape; notes defaults to ""
func (r *Record) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = FromLegacy(s)
		return nil
	}

	var obj struct {
		Value string `json:"value"`
		Notes string `json:"notes"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Record{Value: obj.Value, Notes: obj.Notes}
	return nil
}

// MarshalJSON re-emits the legacy encoding for untouched legacy sets so the
// normalization is never persisted behind the user's back.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.legacy {
		return json.Marshal(r.Value)
	}
	return json.Marshal(struct {
		Value string `json:"value"`
		Notes string `json:"notes"`
	}{Value: r.Value, Notes: r.Notes})
}

// ParseValue splits an RxW value into its reps and weight components.
// PRE: value is the set's Value string
// POST: Returns non-negative reps and weight, or ErrMalformedValue
func ParseValue(value string) (reps, weight float64, err error) {
	left, right, found := strings.Cut(value, "x")
	if !found {
		return 0, 0, ErrMalformedValue
	}
	reps, err = strconv.ParseFloat(left, 64)
	if err != nil || reps < 0 {
		return 0, 0, ErrMalformedValue
	}
	weight, err = strconv.ParseFloat(right, 64)
	if err != nil || weight < 0 {
		return 0, 0, ErrMalformedValue
	}
	return reps, weight, nil
}

// FormatValue builds an RxW value string from reps and weight.
func FormatValue(reps int, weight float64) string {
	return strconv.Itoa(reps) + "x" + strconv.FormatFloat(weight, 'f', -1, 64)
}

// Volume sums reps x weight across the given sets. Zero sets yields 0.
// A malformed value contributes 0 rather than poisoning the total.
func Volume(sets []Record) float64 {
	var total float64
	for _, s := range sets {
		reps, weight, err := ParseValue(s.Value)
		if err != nil {
			continue
		}
		total += reps * weight
	}
	return total
}
