package assistant

import "context"

// Message is one turn of the coaching conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Service generates a custom workout from a conversation. Implementations
// must return exactly one JSON object conforming to the workout schema; the
// caller validates before anything touches the ledger.
type Service interface {
	GenerateWorkout(ctx context.Context, messages []Message) (string, error)
}

// WorkoutSchema is the JSON schema the assistant is instructed to follow.
// It matches the custom workout wire format: ISO dates and RxW set values.
const WorkoutSchema = `{
  "type": "object",
  "required": ["name", "date", "exercises"],
  "properties": {
    "name": {"type": "string"},
    "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "lastPerformed": {"type": "string"},
    "exercises": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["exerciseName", "sets", "volume"],
        "properties": {
          "exerciseName": {"type": "string"},
          "sets": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["value"],
              "properties": {
                "value": {"type": "string", "pattern": "^\\d+x\\d+(\\.\\d+)?$"},
                "notes": {"type": "string"}
              }
            }
          },
          "volume": {"type": "number"}
        }
      }
    }
  }
}`
