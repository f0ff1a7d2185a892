// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"context"
	"sort"

	"github.com/juan-28/entertainment-analysis/internal/models"
)

// Engine provides the table operations of a merge.
type Engine interface {
	// Name identifies the engine in logs and metrics.
	Name() string

	// JoinCatalog inner-joins ratings and basics on ID. The result is
	// ordered by ID.
	JoinCatalog(ctx context.Context, ratings []models.Rating, basics []models.Basic) ([]models.CatalogEntry, error)

	// ArgmaxByKey keeps, per join key, the entry that Beats every other.
	// The result is ordered by key.
	ArgmaxByKey(ctx context.Context, entries []models.CatalogEntry) ([]models.CatalogEntry, error)

	// JoinActivity inner-joins a catalog with at most one entry per key
	// against activity. The result is ordered by key, then activity index.
	JoinActivity(ctx context.Context, catalog []models.CatalogEntry, activity []models.ActivityRecord) ([]models.JoinedRecord, error)
}

func newEntry(r *models.Rating, b *models.Basic) models.CatalogEntry {
	return models.CatalogEntry{
		ID:            b.ID,
		TitleType:     b.TitleType,
		PrimaryTitle:  b.PrimaryTitle,
		NumVotes:      r.NumVotes,
		AverageRating: r.AverageRating,
		Genres:        b.Genres,
		StartYear:     b.StartYear,
	}
}

func sortByID(entries []models.CatalogEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
}

func sortByKey(entries []models.CatalogEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key() < entries[j].Key() })
}

// joinedRow tracks a joined record's ordering keys.
type joinedRow struct {
	key    string
	index  int
	record models.JoinedRecord
}

func sortJoined(rows []joinedRow) []models.JoinedRecord {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].key != rows[j].key {
			return rows[i].key < rows[j].key
		}
		return rows[i].index < rows[j].index
	})
	out := make([]models.JoinedRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].record
	}
	return out
}
