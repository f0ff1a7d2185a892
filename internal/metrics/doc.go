// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package metrics registers the Prometheus collectors for the pipeline, the
// merge engines, the run history store and the dashboard API.
//
// Collectors are registered with promauto on the default registry and
// exposed by the API at /metrics. A batch run that never starts the server
// still records them; they are simply not scraped.
package metrics
