// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package runstate

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/juan-28/entertainment-analysis/internal/logging"
	"github.com/juan-28/entertainment-analysis/internal/metrics"
)

const runKeyPrefix = "run:"

// BadgerStore implements Store on BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a run history database in dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(logging.NewBadgerLogger())
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open run history %s: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStore wraps an already opened database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func runKey(stats *RunStats) []byte {
	// Zero padded so lexical order matches time order.
	nanos := fmt.Sprintf("%020d", stats.StartedAt.UnixNano())
	return []byte(runKeyPrefix + stats.Stage + ":" + nanos + ":" + stats.RunID)
}

// Save stores a run record.
func (s *BadgerStore) Save(ctx context.Context, stats *RunStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if stats.Stage == "" || stats.RunID == "" {
		return errors.New("runstate: stage and run id are required")
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal run stats: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(stats), data)
	})
	metrics.RecordStateOperation("save", err)
	if err != nil {
		return fmt.Errorf("save run %s: %w", stats.RunID, err)
	}
	return nil
}

// Latest returns the newest run of stage, or ErrNotFound.
func (s *BadgerStore) Latest(ctx context.Context, stage string) (*RunStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runs, err := s.scan(runKeyPrefix+stage+":", 1)
	metrics.RecordStateOperation("latest", err)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrNotFound
	}
	return &runs[0], nil
}

// List returns up to limit runs across all stages, newest first. A
// non-positive limit returns every run.
func (s *BadgerStore) List(ctx context.Context, limit int) ([]RunStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runs, err := s.scan(runKeyPrefix, 0)
	metrics.RecordStateOperation("list", err)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(runs)
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// scan walks prefix in reverse key order. Within one stage that is newest
// first.
func (s *BadgerStore) scan(prefix string, limit int) ([]RunStats, error) {
	var runs []RunStats
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration seeks to the last key at or below the seek key.
		seek := append([]byte(prefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix([]byte(prefix)); it.Next() {
			var rs RunStats
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rs)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			runs = append(runs, rs)
			if limit > 0 && len(runs) >= limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan run history: %w", err)
	}
	return runs, nil
}

func sortNewestFirst(runs []RunStats) {
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].StartedAt.After(runs[j].StartedAt)
		}
		if runs[i].Stage != runs[j].Stage {
			return runs[i].Stage < runs[j].Stage
		}
		return runs[i].RunID > runs[j].RunID
	})
}
