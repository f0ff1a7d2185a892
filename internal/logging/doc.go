// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package logging provides the global zerolog logger used by every stage.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("path", out).Int("rows", n).Msg("Output written")
//
//	ctx = logging.ContextWithNewRunID(ctx)
//	logging.Ctx(ctx).Warn().Str("stage", "merge").Msg("Join produced no rows")
//
// # Configuration
//
// LOG_LEVEL, LOG_FORMAT and LOG_CALLER are mapped by internal/config onto
// Config; cmd/pipeline calls Init once at startup.
//
// # Run IDs
//
// Every pipeline run carries a short run ID in its context so that the
// normalize and merge stages of one run can be correlated. Dashboard
// requests carry a request ID instead.
//
// # Badger
//
// BadgerLogger routes BadgerDB's internal logging through zerolog.
//
// Always terminate event chains with Msg or Send, otherwise nothing is
// written.
package logging
