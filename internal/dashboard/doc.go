// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package dashboard is the query layer over the final joined table.
//
// A Dataset is loaded once from the merged CSV and is read-only afterwards,
// so it can be shared by concurrent HTTP handlers. Genres are exploded into
// one tag per row for filtering, while counts and averages are computed per
// joined record: a title tagged with three genres still counts as one view.
package dashboard
