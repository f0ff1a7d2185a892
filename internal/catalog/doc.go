// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package catalog joins the IMDb ratings and basics datasets and attaches
// the deduplicated catalog to viewing activity.
//
// # Merge
//
// Merger.Merge runs these steps:
//
//  1. inner-join ratings and basics on tconst
//  2. optionally keep only entries whose coarse type (Movie or TV Show)
//     matches some activity row with the same lowercased title
//  3. keep one entry per lowercased title: the one with the most votes,
//     ties going to the lowest tconst
//  4. drop winners whose titleType is tvMovie, video or videoGame
//  5. inner-join the survivors with every activity row of the same title
//
// Output is ordered by lowercased title, then activity input order.
//
// # Engines
//
// The three table operations of steps 1, 3 and 5 are provided by an Engine:
//
//   - MemoryEngine: single goroutine hash join and group-by
//   - ParallelEngine: hash-partitioned workers via errgroup
//   - DuckDBEngine: SQL over DuckDB tables
//
// Every engine produces identical output for identical input.
package catalog
