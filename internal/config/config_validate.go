// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/juan-28/entertainment-analysis/internal/validation"
)

var (
	// ErrNoProfiles is returned when the profile allow-list is empty.
	ErrNoProfiles = errors.New("at least one profile must be configured")

	// ErrUnknownEngine is returned for an unrecognized merge engine.
	ErrUnknownEngine = errors.New("unknown merge engine")

	// ErrOutputConflict is returned when an output path collides with
	// another configured file.
	ErrOutputConflict = errors.New("output path conflicts with another file")
)

// Validate checks struct rules first, then cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.validateProfiles(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	return c.validatePaths()
}

func (c *Config) validateProfiles() error {
	kept := c.Normalize.Profiles[:0]
	for _, p := range c.Normalize.Profiles {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	c.Normalize.Profiles = kept
	if len(kept) == 0 {
		return ErrNoProfiles
	}
	return nil
}

func (c *Config) validateEngine() error {
	switch c.Merge.Engine {
	case EngineMemory, EngineParallel, EngineDuckDB:
		return nil
	default:
		return fmt.Errorf("%w: %q (want memory, parallel or duckdb)", ErrUnknownEngine, c.Merge.Engine)
	}
}

// validatePaths rejects outputs that would overwrite an input or each other.
func (c *Config) validatePaths() error {
	inputs := map[string]string{
		filepath.Clean(c.Inputs.ActivityPath): "inputs.activity_path",
		filepath.Clean(c.Inputs.RatingsPath):  "inputs.ratings_path",
		filepath.Clean(c.Inputs.BasicsPath):   "inputs.basics_path",
	}
	processed := filepath.Clean(c.Outputs.ProcessedPath)
	final := filepath.Clean(c.Outputs.FinalPath)

	if processed == final {
		return fmt.Errorf("%w: outputs.processed_path and outputs.final_path are both %s", ErrOutputConflict, final)
	}
	for _, out := range []struct{ key, path string }{
		{"outputs.processed_path", processed},
		{"outputs.final_path", final},
	} {
		if in, ok := inputs[out.path]; ok {
			return fmt.Errorf("%w: %s equals %s", ErrOutputConflict, out.key, in)
		}
	}
	return nil
}
