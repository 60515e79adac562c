package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL targets the OpenAI chat completions API; any
	// OpenAI-compatible endpoint works.
	DefaultBaseURL = "https://api.openai.com/v1/chat/completions"
	DefaultModel   = "gpt-4o-mini"
)

// systemPrompt instructs the model to answer with a single schema-conforming
// JSON object.
var systemPrompt = Message{
	Role: "system",
	Content: "You are a helpful fitness assistant. Generate a custom workout plan based on the user's request. " +
		"You MUST respond ONLY with a valid JSON object that strictly adheres to the following JSON schema:\n" +
		WorkoutSchema + "\n" +
		"Ensure the 'date' and 'lastPerformed' fields are valid YYYY-MM-DD dates or an empty string for lastPerformed if not applicable. " +
		"Ensure the 'sets.value' field strictly follows the 'RxW' numeric format (e.g., '10x50'). " +
		"Calculate 'volume' correctly as reps * weight * number of sets for the exercise.",
}

// OpenAIService calls an OpenAI-compatible chat completions endpoint.
type OpenAIService struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOpenAIService creates a service using the default endpoint and model.
// PRE: apiKey is a valid API key for the endpoint
// POST: Returns a ready-to-use service
func NewOpenAIService(apiKey string) *OpenAIService {
	return &OpenAIService{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SetBaseURL points the service at a different OpenAI-compatible endpoint.
func (s *OpenAIService) SetBaseURL(url string) {
	s.baseURL = url
}

// SetModel overrides the default model.
func (s *OpenAIService) SetModel(model string) {
	s.model = model
}

type chatRequest struct {
	Model          string    `json:"model"`
	Messages       []Message `json:"messages"`
	Temperature    float64   `json:"temperature,omitempty"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateWorkout sends the conversation, prefixed with the schema system
// prompt, and returns the assistant's raw reply.
// PRE: messages is the user-visible transcript, oldest first
// POST: Returns the assistant content; schema validation is the caller's job
func (s *OpenAIService) GenerateWorkout(ctx context.Context, messages []Message) (string, error) {
	req := chatRequest{
		Model:       s.model,
		Messages:    append([]Message{systemPrompt}, messages...),
		Temperature: 0.7,
	}
	req.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("assistant error: %s (%s)", out.Error.Message, out.Error.Type)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("assistant returned no content")
	}

	slog.Info("assistant_reply", "model", s.model, "finish_reason", out.Choices[0].FinishReason)
	return out.Choices[0].Message.Content, nil
}
