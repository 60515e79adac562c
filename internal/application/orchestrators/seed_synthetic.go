package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"xymworkout/internal/domain/exercise"
	"xymworkout/internal/domain/set"
	"xymworkout/internal/domain/workout"
)

// SyntheticSeedDeps holds dependencies for SeedSynthetic.
type SyntheticSeedDeps struct {
	LedgerStore LogSetStore
}

// ExecuteSeedSynthetic fills an empty ledger with plausible fake history for
// development. Idempotent: a non-empty ledger is left alone. Dates stay within
// the current calendar year so the month-then-day ordering holds.
func ExecuteSeedSynthetic(ctx context.Context, deps SyntheticSeedDeps) error {
	ledger, err := deps.LedgerStore.LoadLedger(ctx)
	if err != nil {
		return err
	}
	if len(ledger) > 0 {
		return nil
	}

	now := time.Now()
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.Local)

	catalog := exercise.Catalog()
	picked := map[string]bool{}
	for len(picked) < 6 {
		picked[catalog[gofakeit.Number(0, len(catalog)-1)]] = true
	}

	for name := range picked {
		baseWeight := float64(gofakeit.Number(4, 20)) * 5 // 20-100kg in 5kg steps
		sessions := gofakeit.Number(2, 5)
		for s := 0; s < sessions; s++ {
			daysAgo := gofakeit.Number(0, 60)
			day := now.AddDate(0, 0, -daysAgo)
			if day.Before(yearStart) {
				day = yearStart
			}
			date := workout.FormatDate(day)

			setCount := gofakeit.Number(2, 5)
			for i := 0; i < setCount; i++ {
				reps := gofakeit.Number(5, 12)
				rec := set.New(set.FormatValue(reps, baseWeight), "")
				defaults := workout.DefaultValues{Reps: reps, Weight: baseWeight, WeightStep: "5"}
				if err := ledger.AppendSet(name, date, rec, defaults); err != nil {
					return err
				}
			}
		}
	}

	if err := deps.LedgerStore.SaveLedger(ctx, ledger); err != nil {
		return err
	}

	slog.Info("synthetic_seed_loaded", "exercises", len(picked))
	return nil
}
