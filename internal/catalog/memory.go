// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"context"

	"github.com/juan-28/entertainment-analysis/internal/models"
)

// MemoryEngine runs every operation in the calling goroutine.
type MemoryEngine struct{}

// NewMemoryEngine returns a MemoryEngine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{}
}

func (e *MemoryEngine) Name() string { return "memory" }

func (e *MemoryEngine) JoinCatalog(ctx context.Context, ratings []models.Rating, basics []models.Basic) ([]models.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := hashJoinCatalog(ratings, basics)
	sortByID(out)
	return out, nil
}

func (e *MemoryEngine) ArgmaxByKey(ctx context.Context, entries []models.CatalogEntry) ([]models.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	best := make(map[string]models.CatalogEntry)
	reduceArgmax(best, entries)
	return collectByKey(best), nil
}

func (e *MemoryEngine) JoinActivity(ctx context.Context, catalog []models.CatalogEntry, activity []models.ActivityRecord) ([]models.JoinedRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	index := indexByKey(catalog)
	var rows []joinedRow
	for i := range activity {
		rows = probeActivity(rows, index, activity, i)
	}
	return sortJoined(rows), nil
}

// hashJoinCatalog builds on ratings and probes with basics. Duplicate IDs
// on either side produce one entry per matching pair.
func hashJoinCatalog(ratings []models.Rating, basics []models.Basic) []models.CatalogEntry {
	byID := make(map[string][]int, len(ratings))
	for i := range ratings {
		byID[ratings[i].ID] = append(byID[ratings[i].ID], i)
	}
	var out []models.CatalogEntry
	for i := range basics {
		for _, ri := range byID[basics[i].ID] {
			out = append(out, newEntry(&ratings[ri], &basics[i]))
		}
	}
	return out
}

func reduceArgmax(best map[string]models.CatalogEntry, entries []models.CatalogEntry) {
	for i := range entries {
		e := &entries[i]
		key := e.Key()
		cur, ok := best[key]
		if !ok || e.Beats(&cur) {
			best[key] = *e
		}
	}
}

func collectByKey(best map[string]models.CatalogEntry) []models.CatalogEntry {
	out := make([]models.CatalogEntry, 0, len(best))
	for _, e := range best {
		out = append(out, e)
	}
	sortByKey(out)
	return out
}

func indexByKey(catalog []models.CatalogEntry) map[string]*models.CatalogEntry {
	index := make(map[string]*models.CatalogEntry, len(catalog))
	for i := range catalog {
		index[catalog[i].Key()] = &catalog[i]
	}
	return index
}

func probeActivity(rows []joinedRow, index map[string]*models.CatalogEntry, activity []models.ActivityRecord, i int) []joinedRow {
	a := &activity[i]
	key := a.Key()
	e, ok := index[key]
	if !ok {
		return rows
	}
	return append(rows, joinedRow{key: key, index: i, record: models.NewJoinedRecord(e, a)})
}
