// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

/*
Package pipeline runs the batch stages end to end.

Normalize reads the raw activity export, filters it by profile and minimum
duration, classifies titles and devices, and writes the processed table.
Merge reads the IMDb ratings and basics together with the processed table,
runs the catalog merge and writes the final table. Run does both in order.

Every stage runs under a run ID that is attached to the context, carried
through the logs and stored with the stage's RunStats. Each output file is
written atomically after its stage finished, so a failed stage leaves the
previous output in place.
*/
package pipeline
