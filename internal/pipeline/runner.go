// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/juan-28/entertainment-analysis/internal/activity"
	"github.com/juan-28/entertainment-analysis/internal/catalog"
	"github.com/juan-28/entertainment-analysis/internal/classify"
	"github.com/juan-28/entertainment-analysis/internal/config"
	"github.com/juan-28/entertainment-analysis/internal/dataset"
	"github.com/juan-28/entertainment-analysis/internal/logging"
	"github.com/juan-28/entertainment-analysis/internal/metrics"
	"github.com/juan-28/entertainment-analysis/internal/runstate"
)

// Stage names.
const (
	StageNormalize = "normalize"
	StageMerge     = "merge"
)

// Runner executes pipeline stages against one configuration.
type Runner struct {
	cfg    *config.Config
	store  runstate.Store
	engine catalog.Engine
}

// NewRunner creates a Runner. A nil store keeps run history in memory.
func NewRunner(cfg *config.Config, store runstate.Store, engine catalog.Engine) *Runner {
	if store == nil {
		store = runstate.NewMemoryStore()
	}
	return &Runner{cfg: cfg, store: store, engine: engine}
}

// Run executes Normalize then Merge under a single run ID. The processed
// table is written before the merge starts.
func (r *Runner) Run(ctx context.Context) ([]runstate.RunStats, error) {
	ctx = withRunID(ctx)

	norm, err := r.Normalize(ctx)
	if err != nil {
		return []runstate.RunStats{*norm}, err
	}
	if err := ctx.Err(); err != nil {
		return []runstate.RunStats{*norm}, err
	}
	merge, err := r.Merge(ctx)
	return []runstate.RunStats{*norm, *merge}, err
}

// Normalize runs the activity stages and writes the processed table. The
// returned RunStats is never nil.
func (r *Runner) Normalize(ctx context.Context) (*runstate.RunStats, error) {
	ctx = withRunID(ctx)
	stats, log := r.begin(ctx, StageNormalize)

	dropped := 0
	err := func() error {
		path := r.cfg.Inputs.ActivityPath
		raw, err := activity.ReadRaw(path)
		if err != nil {
			return err
		}
		stats.RowsIn = len(raw)

		n, err := activity.NewNormalizer(r.cfg.Normalize.Profiles)
		if err != nil {
			return err
		}
		n.Source = path
		records, ns, err := n.Normalize(raw)
		if err != nil {
			return err
		}
		dropped = ns.Dropped()
		log.Debug().
			Int("dropped_profile", ns.DroppedProfile).
			Int("dropped_duration", ns.DroppedDuration).
			Msg("Activity filtered")

		classify.ApplyTitles(records)
		classify.ApplyDevices(records)

		if len(records) == 0 {
			log.Warn().Int("read", ns.Read).Msg("No activity rows left after filtering")
			metrics.RecordEmptyResult(StageNormalize)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := activity.WriteProcessed(r.cfg.Outputs.ProcessedPath, records); err != nil {
			return err
		}
		stats.RowsOut = len(records)
		stats.OutputPath = r.cfg.Outputs.ProcessedPath
		metrics.RecordRowsWritten(StageNormalize, len(records))
		return nil
	}()

	stats.RowsDropped = dropped
	return r.finish(ctx, log, stats, err)
}

// Merge joins the catalog onto the processed table and writes the final
// table. The returned RunStats is never nil.
func (r *Runner) Merge(ctx context.Context) (*runstate.RunStats, error) {
	ctx = withRunID(ctx)
	stats, log := r.begin(ctx, StageMerge)

	err := func() error {
		if r.engine == nil {
			return catalog.ErrNoEngine
		}
		ratings, err := catalog.ReadRatings(r.cfg.Inputs.RatingsPath)
		if err != nil {
			return err
		}
		basics, err := catalog.ReadBasics(r.cfg.Inputs.BasicsPath)
		if err != nil {
			return err
		}
		records, err := activity.ReadProcessed(r.cfg.Outputs.ProcessedPath)
		if err != nil {
			return err
		}
		stats.RowsIn = len(records)
		log.Debug().
			Int("ratings", len(ratings)).
			Int("basics", len(basics)).
			Int("activity", len(records)).
			Msg("Merge inputs loaded")

		m := &catalog.Merger{Engine: r.engine, StrictTypeMatch: r.cfg.Merge.StrictTypeMatch}
		joined, ms, err := m.Merge(ctx, ratings, basics, records)
		if err != nil {
			return err
		}
		stats.RowsDropped = ms.Excluded

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := catalog.WriteJoined(r.cfg.Outputs.FinalPath, joined); err != nil {
			return err
		}
		stats.RowsOut = len(joined)
		stats.OutputPath = r.cfg.Outputs.FinalPath
		metrics.RecordRowsWritten(StageMerge, len(joined))
		return nil
	}()

	return r.finish(ctx, log, stats, err)
}

// Store returns the run history store.
func (r *Runner) Store() runstate.Store {
	return r.store
}

func withRunID(ctx context.Context) context.Context {
	if logging.RunIDFromContext(ctx) != "" {
		return ctx
	}
	return logging.ContextWithNewRunID(ctx)
}

func (r *Runner) begin(ctx context.Context, stage string) (*runstate.RunStats, zerolog.Logger) {
	log := logging.Ctx(ctx).With().Str("stage", stage).Logger()
	log.Info().Msg("Stage started")
	return &runstate.RunStats{
		RunID:     logging.RunIDFromContext(ctx),
		Stage:     stage,
		StartedAt: time.Now().UTC(),
		Status:    runstate.StatusSuccess,
	}, log
}

func (r *Runner) finish(ctx context.Context, log zerolog.Logger, stats *runstate.RunStats, err error) (*runstate.RunStats, error) {
	stats.FinishedAt = time.Now().UTC()
	if err != nil {
		stats.Status = runstate.StatusFailed
		stats.Error = err.Error()
	}
	metrics.RecordStage(stats.Stage, stats.Duration(), stats.RowsIn, stats.RowsOut, stats.RowsDropped, err)

	// Run history is written even when the stage context was cancelled.
	if serr := r.store.Save(context.WithoutCancel(ctx), stats); serr != nil {
		log.Warn().Err(serr).Msg("Failed to record run")
	}

	if err != nil {
		log.Error().Err(err).Dur("duration", stats.Duration()).Msg("Stage failed")
		return stats, fmt.Errorf("%s stage: %w", stats.Stage, err)
	}
	log.Info().
		Int("rows_in", stats.RowsIn).
		Int("rows_out", stats.RowsOut).
		Int("rows_dropped", stats.RowsDropped).
		Str("output", stats.OutputPath).
		Dur("duration", stats.Duration()).
		Msg("Stage finished")
	return stats, nil
}

// IsInputError reports whether err was caused by malformed or mismatched
// input data rather than an environment failure.
func IsInputError(err error) bool {
	return errors.Is(err, dataset.ErrParse) || errors.Is(err, dataset.ErrSchemaMismatch)
}
