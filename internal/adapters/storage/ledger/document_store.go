package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"xymworkout/internal/adapters/storage/document"
	"xymworkout/internal/domain/template"
	"xymworkout/internal/domain/workout"
)

// DocumentStore implements Store on top of an opaque key-value document
// store. Set records pass through the normalizer on every load via their
// JSON decoding, so downstream code only ever sees the canonical shape.
type DocumentStore struct {
	docs document.Store
}

// NewDocumentStore creates a ledger store backed by docs.
func NewDocumentStore(docs document.Store) *DocumentStore {
	return &DocumentStore{docs: docs}
}

// LoadLedger loads the workoutData document.
// POST: Returns an empty ledger when the document is absent or corrupted
func (s *DocumentStore) LoadLedger(ctx context.Context) (workout.Ledger, error) {
	raw, ok, err := s.docs.Get(ctx, KeyWorkoutData)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyWorkoutData, err)
	}
	l := workout.Ledger{}
	if ok && !decodeDoc(KeyWorkoutData, raw, &l) {
		l = workout.Ledger{}
	}
	return l, nil
}

// SaveLedger persists the full ledger back to the workoutData document.
func (s *DocumentStore) SaveLedger(ctx context.Context, l workout.Ledger) error {
	return s.saveDoc(ctx, KeyWorkoutData, l)
}

// LoadTemplates loads the customWorkouts document.
// POST: Returns an empty slice when the document is absent or corrupted
func (s *DocumentStore) LoadTemplates(ctx context.Context) ([]template.CustomWorkout, error) {
	raw, ok, err := s.docs.Get(ctx, KeyCustomWorkouts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyCustomWorkouts, err)
	}
	var ts []template.CustomWorkout
	if ok && !decodeDoc(KeyCustomWorkouts, raw, &ts) {
		ts = nil
	}
	return ts, nil
}

// SaveTemplates persists the full template list.
func (s *DocumentStore) SaveTemplates(ctx context.Context, ts []template.CustomWorkout) error {
	if ts == nil {
		ts = []template.CustomWorkout{}
	}
	return s.saveDoc(ctx, KeyCustomWorkouts, ts)
}

// LoadCustomExercises loads the customExercises document.
// POST: Returns an empty slice when the document is absent or corrupted
func (s *DocumentStore) LoadCustomExercises(ctx context.Context) ([]string, error) {
	raw, ok, err := s.docs.Get(ctx, KeyCustomExercises)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyCustomExercises, err)
	}
	var names []string
	if ok && !decodeDoc(KeyCustomExercises, raw, &names) {
		names = nil
	}
	return names, nil
}

// SaveCustomExercises persists the full custom exercise list.
func (s *DocumentStore) SaveCustomExercises(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	return s.saveDoc(ctx, KeyCustomExercises, names)
}

// RawLedgerDocument returns the workoutData document verbatim.
func (s *DocumentStore) RawLedgerDocument(ctx context.Context) (string, bool, error) {
	return s.docs.Get(ctx, KeyWorkoutData)
}

// ReplaceLedgerDocument swaps the workoutData document wholesale.
func (s *DocumentStore) ReplaceLedgerDocument(ctx context.Context, data string) error {
	return s.docs.Put(ctx, KeyWorkoutData, data)
}

// decodeDoc unmarshals a stored document. Corrupted JSON is treated as absent
// data: it logs and reports false so the caller falls back to empty defaults.
func decodeDoc(key, raw string, v any) bool {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("document_corrupted", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (s *DocumentStore) saveDoc(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.docs.Put(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
