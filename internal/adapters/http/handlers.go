package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"xymworkout/internal/application/orchestrators"
	"xymworkout/internal/application/projections"
	"xymworkout/internal/domain/exercise"
	templateDomain "xymworkout/internal/domain/template"
	"xymworkout/internal/domain/workout"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderNotes converts a set's markdown notes to display-ready HTML.
func renderNotes(md string) string {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTMLEscapeString(md)
	}
	return buf.String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// registerRoutes attaches all API handlers to the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/history", handleHistory)
	mux.HandleFunc("/api/days", handleDays)
	mux.HandleFunc("/api/sets", handleSets)
	mux.HandleFunc("/api/entries", handleEntries)
	mux.HandleFunc("/api/exercises", handleExercises)
	mux.HandleFunc("/api/exercise-log", handleExerciseLog)
	mux.HandleFunc("/api/custom-workouts", handleCustomWorkouts)
	mux.HandleFunc("/api/custom-workouts/rename", handleRenameCustomWorkout)
	mux.HandleFunc("/api/data/export", handleExport)
	mux.HandleFunc("/api/data/import", handleImport)
	mux.HandleFunc("/api/data/email-backup", handleEmailBackup)
	mux.HandleFunc("/api/assistant/generate", handleAssistantGenerate)
	mux.HandleFunc("/api/assistant/accept", handleAssistantAccept)
}

// handleHistory handles GET /api/history
func handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetHistoryDeps{LedgerStore: stores.LedgerStore}
	result, err := projections.QueryGetHistory(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, result.Days)
}

// handleDays handles DELETE /api/days?date=DD.MM
func handleDays(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.DeleteEntryDeps{LedgerStore: stores.LedgerStore}
	if err := orchestrators.ExecuteDeleteDay(r.Context(), orchestrators.DeleteDayInput{Date: date}, deps); err != nil {
		internalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSets handles POST (log) and PUT (edit) for /api/sets
func handleSets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		var input orchestrators.LogSetInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.Date == "" {
			input.Date = workout.FormatDate(timeNow())
		}

		deps := orchestrators.LogSetDeps{LedgerStore: stores.LedgerStore}
		if err := orchestrators.ExecuteLogSet(ctx, input, deps); err != nil {
			if errors.Is(err, workout.ErrEmptyExercise) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			internalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method == "PUT" {
		var input orchestrators.EditSetInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		deps := orchestrators.EditSetDeps{LedgerStore: stores.LedgerStore}
		if err := orchestrators.ExecuteEditSet(ctx, input, deps); err != nil {
			if errors.Is(err, workout.ErrEntryNotFound) || errors.Is(err, workout.ErrSetNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			internalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleEntries handles DELETE /api/entries?exercise=X&date=DD.MM
func handleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.DeleteEntryInput{
		Exercise: r.URL.Query().Get("exercise"),
		Date:     r.URL.Query().Get("date"),
	}
	if input.Exercise == "" || input.Date == "" {
		http.Error(w, "exercise and date are required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.DeleteEntryDeps{LedgerStore: stores.LedgerStore}
	if err := orchestrators.ExecuteDeleteEntry(r.Context(), input, deps); err != nil {
		if errors.Is(err, workout.ErrEntryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExercises handles GET (picker options) and POST (add custom) for /api/exercises
func handleExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		deps := projections.GetExerciseOptionsDeps{LedgerStore: stores.LedgerStore}
		result, err := projections.QueryGetExerciseOptions(ctx, deps)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, result.Options)
		return
	}

	if r.Method == "POST" {
		var input orchestrators.AddCustomExerciseInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		deps := orchestrators.AddCustomExerciseDeps{LedgerStore: stores.LedgerStore}
		if err := orchestrators.ExecuteAddCustomExercise(ctx, input, deps); err != nil {
			if errors.Is(err, exercise.ErrEmptyName) || errors.Is(err, exercise.ErrBuiltin) || errors.Is(err, exercise.ErrDuplicate) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			internalError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// exerciseLogRow is the wire shape of one exercise log row. Notes are carried
// both raw (for the edit form) and rendered (for display).
type exerciseLogRow struct {
	Date   string      `json:"date"`
	Sets   []logRowSet `json:"sets"`
	Volume float64     `json:"volume"`
	Latest bool        `json:"latest"`
}

type logRowSet struct {
	Value     string `json:"value"`
	Notes     string `json:"notes,omitempty"`
	NotesHTML string `json:"notesHtml,omitempty"`
}

// handleExerciseLog handles GET /api/exercise-log?exercise=X
func handleExerciseLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("exercise")
	if name == "" {
		http.Error(w, "exercise is required", http.StatusBadRequest)
		return
	}

	query := projections.GetExerciseLogQuery{ExerciseName: name}
	deps := projections.GetExerciseLogDeps{LedgerStore: stores.LedgerStore}
	result, err := projections.QueryGetExerciseLog(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	rows := make([]exerciseLogRow, 0, len(result.Rows))
	for _, row := range result.Rows {
		sets := make([]logRowSet, 0, len(row.Sets))
		for _, s := range row.Sets {
			sets = append(sets, logRowSet{
				Value:     s.Value,
				Notes:     s.Notes,
				NotesHTML: renderNotes(s.Notes),
			})
		}
		rows = append(rows, exerciseLogRow{
			Date:   row.Date,
			Sets:   sets,
			Volume: row.Volume,
			Latest: row.Latest,
		})
	}

	writeJSON(w, map[string]any{
		"rows":     rows,
		"maxSets":  result.MaxSets,
		"defaults": result.Defaults,
	})
}

// handleCustomWorkouts handles GET/POST/DELETE for /api/custom-workouts
func handleCustomWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		deps := projections.GetTemplatesDeps{LedgerStore: stores.LedgerStore}
		result, err := projections.QueryGetTemplates(ctx, deps)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, result.Templates)
		return
	}

	if r.Method == "POST" {
		var input orchestrators.SaveCustomWorkoutInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		deps := orchestrators.CustomWorkoutDeps{LedgerStore: stores.LedgerStore}
		if err := orchestrators.ExecuteSaveCustomWorkout(ctx, input, deps); err != nil {
			internalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method == "DELETE" {
		name := r.URL.Query().Get("name")
		if name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		deps := orchestrators.CustomWorkoutDeps{LedgerStore: stores.LedgerStore}
		input := orchestrators.DeleteCustomWorkoutInput{Name: name}
		if err := orchestrators.ExecuteDeleteCustomWorkout(ctx, input, deps); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleRenameCustomWorkout handles POST /api/custom-workouts/rename
func handleRenameCustomWorkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.RenameCustomWorkoutInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	deps := orchestrators.CustomWorkoutDeps{LedgerStore: stores.LedgerStore}
	if err := orchestrators.ExecuteRenameCustomWorkout(r.Context(), input, deps); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExport handles GET /api/data/export. The response body is the raw
// ledger document, served as a download.
func handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := orchestrators.ImportExportDeps{LedgerStore: stores.LedgerStore}
	result, err := orchestrators.ExecuteExportData(r.Context(), orchestrators.ExportDataInput{Now: timeNow()}, deps)
	if err != nil {
		if errors.Is(err, orchestrators.ErrNoData) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.Write([]byte(result.Data))
}

// maxImportBytes caps uploaded backup size.
const maxImportBytes = 10 << 20

// handleImport handles POST /api/data/import. The body is the backup file
// contents as previously exported.
func handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	contents, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		http.Error(w, "could not read upload", http.StatusBadRequest)
		return
	}

	deps := orchestrators.ImportExportDeps{LedgerStore: stores.LedgerStore}
	if err := orchestrators.ExecuteImportData(r.Context(), orchestrators.ImportDataInput{Contents: string(contents)}, deps); err != nil {
		if errors.Is(err, orchestrators.ErrInvalidPayload) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleEmailBackup handles POST /api/data/email-backup
func handleEmailBackup(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if emailSender == nil {
		http.Error(w, "email backup is not configured", http.StatusServiceUnavailable)
		return
	}

	var input struct {
		To string `json:"to"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	to := input.To
	if to == "" {
		to = emailBackupTo
	}
	if to == "" {
		http.Error(w, "recipient address is required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.EmailBackupDeps{
		LedgerStore: stores.LedgerStore,
		Sender:      emailSender,
		From:        emailFromAddress,
		ReplyTo:     emailFromAddress,
	}
	err := orchestrators.ExecuteEmailBackup(r.Context(), orchestrators.EmailBackupInput{To: to, Now: timeNow()}, deps)
	if err != nil {
		if errors.Is(err, orchestrators.ErrNoData) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleAssistantGenerate handles POST /api/assistant/generate. The reply is
// always 200: assistant failures surface as a transcript error message, not
// an HTTP error.
func handleAssistantGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if workoutAssistant == nil {
		http.Error(w, "assistant is not configured", http.StatusServiceUnavailable)
		return
	}

	var input orchestrators.GenerateWorkoutInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	deps := orchestrators.GenerateWorkoutDeps{Assistant: workoutAssistant}
	result, err := orchestrators.ExecuteGenerateWorkout(r.Context(), input, deps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]any{
		"messageId": result.MessageID,
		"workout":   result.Workout,
		"error":     result.ErrorText,
	})
}

// handleAssistantAccept handles POST /api/assistant/accept
func handleAssistantAccept(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input templateDomain.CustomWorkout
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if input.Name == "" || len(input.Exercises) == 0 {
		http.Error(w, "workout name and exercises are required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.AcceptGeneratedWorkoutDeps{LedgerStore: stores.LedgerStore}
	if err := orchestrators.ExecuteAcceptGeneratedWorkout(r.Context(), orchestrators.AcceptGeneratedWorkoutInput{Workout: input}, deps); err != nil {
		internalError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
