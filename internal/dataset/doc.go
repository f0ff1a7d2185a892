// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package dataset provides header-indexed readers and atomic writers for the
// flat files the pipeline consumes and produces.
//
// # Formats
//
//   - CSV: RFC 4180 via encoding/csv (streaming activity export, pipeline outputs)
//   - TSV: raw tab split with no quote handling (IMDb datasets, whose titles
//     contain bare double quotes)
//
// # Errors
//
// Two fatal error kinds are defined here:
//
//   - *SchemaMismatchError: a required column is absent from the header
//   - *ParseError: a field could not be converted; carries source, line,
//     column and offending value
//
// Both support errors.Is against ErrSchemaMismatch and ErrParse.
//
// # Writing
//
// WriteFileAtomic writes to a temporary file in the target directory and
// renames it into place, so a failed run never leaves a partial output.
package dataset
