// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package runstate

import (
	"context"
	"errors"
	"sync"
)

// MemoryStore implements Store in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	runs []RunStats
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores a copy of stats.
func (s *MemoryStore) Save(ctx context.Context, stats *RunStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if stats.Stage == "" || stats.RunID == "" {
		return errors.New("runstate: stage and run id are required")
	}
	s.mu.Lock()
	s.runs = append(s.runs, *stats)
	s.mu.Unlock()
	return nil
}

// Latest returns the newest run of stage, or ErrNotFound.
func (s *MemoryStore) Latest(ctx context.Context, stage string) (*RunStats, error) {
	runs, err := s.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	for i := range runs {
		if runs[i].Stage == stage {
			return &runs[i], nil
		}
	}
	return nil, ErrNotFound
}

// List returns up to limit runs, newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]RunStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	runs := make([]RunStats, len(s.runs))
	copy(runs, s.runs)
	s.mu.RUnlock()

	sortNewestFirst(runs)
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
