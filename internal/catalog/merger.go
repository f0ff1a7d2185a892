// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/juan-28/entertainment-analysis/internal/logging"
	"github.com/juan-28/entertainment-analysis/internal/metrics"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

// ErrNoEngine is returned by Merge on a Merger without an Engine.
var ErrNoEngine = errors.New("merger has no engine")

// Merge step names used in logs and metrics.
const (
	StepJoinCatalog  = "join_catalog"
	StepArgmax       = "argmax"
	StepJoinActivity = "join_activity"
)

// MergeStats counts rows at each merge step.
type MergeStats struct {
	Ratings      int `json:"ratings"`
	Basics       int `json:"basics"`
	Activity     int `json:"activity"`
	Catalog      int `json:"catalog"`
	Candidates   int `json:"candidates"`
	Deduplicated int `json:"deduplicated"`
	Excluded     int `json:"excluded"`
	Joined       int `json:"joined"`
}

// Merger joins the IMDb catalog onto viewing activity.
type Merger struct {
	Engine Engine

	// StrictTypeMatch keeps a catalog entry as a candidate only when an
	// activity row with the same key has the same coarse content type.
	StrictTypeMatch bool
}

// Merge returns the joined records and per-step counts. Zero rows at any
// step is a valid result and is logged as a warning.
func (m *Merger) Merge(ctx context.Context, ratings []models.Rating, basics []models.Basic, activity []models.ActivityRecord) ([]models.JoinedRecord, MergeStats, error) {
	stats := MergeStats{Ratings: len(ratings), Basics: len(basics), Activity: len(activity)}
	if m.Engine == nil {
		return nil, stats, ErrNoEngine
	}
	engine := m.Engine.Name()
	log := logging.Ctx(ctx).With().Str("component", "merger").Str("engine", engine).Logger()

	start := time.Now()
	entries, err := m.Engine.JoinCatalog(ctx, ratings, basics)
	if err != nil {
		return nil, stats, err
	}
	metrics.RecordMergeStep(engine, StepJoinCatalog, time.Since(start))
	stats.Catalog = len(entries)
	if len(entries) == 0 {
		log.Warn().Int("ratings", len(ratings)).Int("basics", len(basics)).Msg("Ratings and basics share no tconst")
		metrics.RecordEmptyResult(StepJoinCatalog)
	}

	if m.StrictTypeMatch {
		entries = filterByActivityType(entries, activity)
	}
	stats.Candidates = len(entries)

	start = time.Now()
	deduped, err := m.Engine.ArgmaxByKey(ctx, entries)
	if err != nil {
		return nil, stats, err
	}
	metrics.RecordMergeStep(engine, StepArgmax, time.Since(start))
	stats.Deduplicated = len(deduped)

	kept := deduped[:0]
	for i := range deduped {
		if _, excluded := ExcludedTitleTypes[deduped[i].TitleType]; excluded {
			stats.Excluded++
			continue
		}
		kept = append(kept, deduped[i])
	}

	start = time.Now()
	joined, err := m.Engine.JoinActivity(ctx, kept, activity)
	if err != nil {
		return nil, stats, err
	}
	metrics.RecordMergeStep(engine, StepJoinActivity, time.Since(start))
	stats.Joined = len(joined)
	if len(joined) == 0 {
		log.Warn().Int("catalog", len(kept)).Int("activity", len(activity)).Msg("No activity row matched the catalog")
		metrics.RecordEmptyResult(StepJoinActivity)
	}

	log.Debug().
		Int("catalog", stats.Catalog).
		Int("candidates", stats.Candidates).
		Int("deduplicated", stats.Deduplicated).
		Int("excluded", stats.Excluded).
		Int("joined", stats.Joined).
		Msg("Merge steps finished")
	return joined, stats, nil
}

type keyType struct {
	key string
	typ models.ContentType
}

// filterByActivityType keeps entries whose coarse type matches an activity
// row with the same key. Entries with no coarse type are dropped.
func filterByActivityType(entries []models.CatalogEntry, activity []models.ActivityRecord) []models.CatalogEntry {
	seen := make(map[keyType]struct{}, len(activity))
	for i := range activity {
		seen[keyType{activity[i].Key(), activity[i].Type}] = struct{}{}
	}
	out := make([]models.CatalogEntry, 0, len(entries))
	for i := range entries {
		ct, ok := entries[i].CoarseType()
		if !ok {
			continue
		}
		if _, match := seen[keyType{entries[i].Key(), ct}]; match {
			out = append(out, entries[i])
		}
	}
	return out
}
