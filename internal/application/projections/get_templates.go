package projections

import (
	"context"

	"xymworkout/internal/domain/template"
)

// GetTemplatesResult carries the saved custom workouts with their
// last-performed dates recomputed against the current ledger.
type GetTemplatesResult struct {
	Templates []template.CustomWorkout
}

// GetTemplatesDeps holds dependencies for the templates projection.
type GetTemplatesDeps struct {
	LedgerStore HistoryStore
}

// QueryGetTemplates lists the saved custom workouts. LastPerformed is derived
// from the deduplicated history view at read time rather than trusting the
// stored value, so re-logging a template's lead exercise moves the date
// without a write to the template document.
func QueryGetTemplates(ctx context.Context, deps GetTemplatesDeps) (GetTemplatesResult, error) {
	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return GetTemplatesResult{}, err
	}
	templates, err := deps.LedgerStore.LoadTemplates(ctx)
	if err != nil {
		return GetTemplatesResult{}, err
	}

	grouped, _ := template.GroupedView(ledger, templates)

	out := make([]template.CustomWorkout, len(templates))
	for i, t := range templates {
		t.LastPerformed = template.LastPerformed(t, grouped)
		out[i] = t
	}

	return GetTemplatesResult{Templates: out}, nil
}
