package assistant

import (
	"context"
	"log/slog"
	"time"
)

// NoopService is a development stand-in that answers every conversation with
// a canned, schema-conforming workout.
type NoopService struct{}

// NewNoopService creates a new NoopService.
func NewNoopService() *NoopService {
	return &NoopService{}
}

// GenerateWorkout returns a fixed push-day workout dated today.
// POST: The reply parses against the workout schema
func (s *NoopService) GenerateWorkout(_ context.Context, messages []Message) (string, error) {
	slog.Info("noop_assistant_reply", "transcript_len", len(messages))
	today := time.Now().Format("2006-01-02")
	return `{
  "name": "Push Day",
  "date": "` + today + `",
  "exercises": [
    {"exerciseName": "Bench Press", "sets": [{"value": "10x50", "notes": ""}, {"value": "8x55", "notes": ""}], "volume": 940},
    {"exerciseName": "Overhead Press", "sets": [{"value": "10x30", "notes": ""}], "volume": 300}
  ],
  "lastPerformed": ""
}`, nil
}
