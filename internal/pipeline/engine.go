// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package pipeline

import (
	"fmt"

	"github.com/juan-28/entertainment-analysis/internal/catalog"
	"github.com/juan-28/entertainment-analysis/internal/config"
)

// NewEngine builds the merge engine selected by cfg.Merge.Engine. The
// returned close function releases engine resources and is never nil.
func NewEngine(cfg *config.Config) (catalog.Engine, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Merge.Engine {
	case config.EngineMemory, "":
		return catalog.NewMemoryEngine(), noop, nil
	case config.EngineParallel:
		return catalog.NewParallelEngine(cfg.Merge.EffectiveWorkers()), noop, nil
	case config.EngineDuckDB:
		e, err := catalog.OpenDuckDB(catalog.DuckDBConfig{
			Path:      cfg.Database.Path,
			MaxMemory: cfg.Database.MaxMemory,
			Threads:   cfg.Database.Threads,
		})
		if err != nil {
			return nil, noop, err
		}
		return e, e.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownEngine, cfg.Merge.Engine)
	}
}
