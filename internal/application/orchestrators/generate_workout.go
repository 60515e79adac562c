package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"xymworkout/internal/adapters/assistant"
	"xymworkout/internal/domain/template"
)

// GenerateWorkoutInput carries the chat transcript, oldest first.
type GenerateWorkoutInput struct {
	Messages []assistant.Message
}

// GenerateWorkoutResult carries the assistant's reply. Exactly one of Workout
// and ErrorText is set: a schema-conforming reply yields the parsed workout,
// anything else yields a display-only transcript error. The ledger is never
// touched either way.
type GenerateWorkoutResult struct {
	MessageID string
	Workout   *template.CustomWorkout
	Raw       string
	ErrorText string
}

// GenerateWorkoutDeps holds dependencies for GenerateWorkout.
type GenerateWorkoutDeps struct {
	Assistant assistant.Service
}

// ExecuteGenerateWorkout asks the assistant for a workout plan and validates
// the reply against the workout schema.
// PRE: Messages is non-empty
// POST: A non-conforming reply is surfaced via ErrorText, never ingested
func ExecuteGenerateWorkout(ctx context.Context, input GenerateWorkoutInput, deps GenerateWorkoutDeps) (GenerateWorkoutResult, error) {
	if len(input.Messages) == 0 {
		return GenerateWorkoutResult{}, errors.New("messages are required")
	}

	result := GenerateWorkoutResult{MessageID: uuid.New().String()}

	raw, err := deps.Assistant.GenerateWorkout(ctx, input.Messages)
	if err != nil {
		slog.Error("assistant_request_failed", "error", err.Error())
		result.ErrorText = "Sorry, I couldn't get a response. Please try again."
		return result, nil
	}
	result.Raw = raw

	w, err := template.ParseGenerated([]byte(raw))
	if err != nil {
		slog.Warn("assistant_reply_rejected", "error", err.Error())
		result.ErrorText = "The assistant's reply was not a valid workout. Please try again."
		return result, nil
	}

	result.Workout = &w
	slog.Info("workout_generated", "message_id", result.MessageID, "name", w.Name, "exercises", len(w.Exercises))
	return result, nil
}

// AcceptGeneratedWorkoutInput carries a previously generated workout the user
// chose to keep.
type AcceptGeneratedWorkoutInput struct {
	Workout template.CustomWorkout
}

// AcceptGeneratedWorkoutDeps holds dependencies for AcceptGeneratedWorkout.
type AcceptGeneratedWorkoutDeps struct {
	LedgerStore CustomWorkoutStore
}

// ExecuteAcceptGeneratedWorkout appends an accepted assistant workout to the
// template list. It never writes to the workout ledger itself.
// PRE: Workout passed ParseGenerated
func ExecuteAcceptGeneratedWorkout(ctx context.Context, input AcceptGeneratedWorkoutInput, deps AcceptGeneratedWorkoutDeps) error {
	templates, err := deps.LedgerStore.LoadTemplates(ctx)
	if err != nil {
		return err
	}

	if err := deps.LedgerStore.SaveTemplates(ctx, append(templates, input.Workout)); err != nil {
		return err
	}

	slog.Info("generated_workout_accepted", "name", input.Workout.Name)
	return nil
}
