// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package classify derives the canonical title, the content type and the
// device category of normalized activity records.
//
// Both classifiers are pure functions over strings; ApplyTitles and
// ApplyDevices run them over a record slice in place.
package classify
