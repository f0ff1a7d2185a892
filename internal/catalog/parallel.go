// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"context"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/juan-28/entertainment-analysis/internal/metrics"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

// ParallelEngine splits each operation across a fixed number of partitions,
// one goroutine per partition.
//
// ArgmaxByKey works on contiguous chunks: every chunk computes a local
// argmax, and the partial results are reduced into the global argmax only
// after all chunks have finished.
type ParallelEngine struct {
	workers int
}

// NewParallelEngine returns an engine with the given partition count.
// workers <= 0 means runtime.NumCPU().
func NewParallelEngine(workers int) *ParallelEngine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelEngine{workers: workers}
}

func (e *ParallelEngine) Name() string { return "parallel" }

// Workers returns the partition count.
func (e *ParallelEngine) Workers() int { return e.workers }

func partitionOf(key string, n int) int {
	return int(xxhash.Sum64String(key) % uint64(n))
}

func (e *ParallelEngine) JoinCatalog(ctx context.Context, ratings []models.Rating, basics []models.Basic) ([]models.CatalogEntry, error) {
	n := e.workers
	metrics.MergePartitions.Set(float64(n))

	ratingParts := make([][]models.Rating, n)
	for i := range ratings {
		p := partitionOf(ratings[i].ID, n)
		ratingParts[p] = append(ratingParts[p], ratings[i])
	}
	basicParts := make([][]models.Basic, n)
	for i := range basics {
		p := partitionOf(basics[i].ID, n)
		basicParts[p] = append(basicParts[p], basics[i])
	}

	results := make([][]models.CatalogEntry, n)
	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < n; p++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[p] = hashJoinCatalog(ratingParts[p], basicParts[p])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []models.CatalogEntry
	for _, part := range results {
		out = append(out, part...)
	}
	sortByID(out)
	return out, nil
}

func (e *ParallelEngine) ArgmaxByKey(ctx context.Context, entries []models.CatalogEntry) ([]models.CatalogEntry, error) {
	chunks := chunkBounds(len(entries), e.workers)
	partials := make([]map[string]models.CatalogEntry, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for c, bounds := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			local := make(map[string]models.CatalogEntry)
			reduceArgmax(local, entries[bounds[0]:bounds[1]])
			partials[c] = local
			return nil
		})
	}
	// Every chunk must finish before any partial result is merged.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	global := make(map[string]models.CatalogEntry)
	for _, local := range partials {
		for key, cand := range local {
			cur, ok := global[key]
			if !ok || cand.Beats(&cur) {
				global[key] = cand
			}
		}
	}
	return collectByKey(global), nil
}

func (e *ParallelEngine) JoinActivity(ctx context.Context, catalog []models.CatalogEntry, activity []models.ActivityRecord) ([]models.JoinedRecord, error) {
	n := e.workers
	index := indexByKey(catalog)

	parts := make([][]int, n)
	for i := range activity {
		p := partitionOf(activity[i].Key(), n)
		parts[p] = append(parts[p], i)
	}

	results := make([][]joinedRow, n)
	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < n; p++ {
		g.Go(func() error {
			var rows []joinedRow
			for j, i := range parts[p] {
				if j%4096 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				rows = probeActivity(rows, index, activity, i)
			}
			results[p] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows []joinedRow
	for _, part := range results {
		rows = append(rows, part...)
	}
	return sortJoined(rows), nil
}

// chunkBounds splits [0,n) into at most parts contiguous half-open ranges.
func chunkBounds(n, parts int) [][2]int {
	if n == 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	size := (n + parts - 1) / parts
	bounds := make([][2]int, 0, parts)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		bounds = append(bounds, [2]int{lo, hi})
	}
	return bounds
}
