// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package runstate

import (
	"context"
	"errors"
	"time"
)

// Status is the outcome of a stage run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// ErrNotFound is returned by Latest when a stage has never run.
var ErrNotFound = errors.New("runstate: no runs recorded")

// RunStats describes one finished stage run.
type RunStats struct {
	RunID       string    `json:"run_id"`
	Stage       string    `json:"stage"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	RowsIn      int       `json:"rows_in"`
	RowsOut     int       `json:"rows_out"`
	RowsDropped int       `json:"rows_dropped"`
	OutputPath  string    `json:"output_path,omitempty"`
	Status      Status    `json:"status"`
	Error       string    `json:"error,omitempty"`
}

// Duration is the wall time of the run.
func (s *RunStats) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// Store records and lists runs. List and Latest return the newest first.
type Store interface {
	Save(ctx context.Context, stats *RunStats) error
	Latest(ctx context.Context, stage string) (*RunStats, error)
	List(ctx context.Context, limit int) ([]RunStats, error)
	Close() error
}
