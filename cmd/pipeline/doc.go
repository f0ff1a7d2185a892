// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Command pipeline runs the viewing activity pipeline and serves its
// dashboard data.
//
// Usage:
//
//	pipeline [-config path] normalize   filter and classify the activity export
//	pipeline [-config path] merge       join the IMDb catalog onto the processed table
//	pipeline [-config path] run         normalize, then merge
//	pipeline [-config path] serve       serve the dashboard API
//	pipeline [-config path] status      print recent runs
//
// # Configuration
//
// Settings come from built-in defaults, then a YAML file (-config,
// CONFIG_PATH, ./config.yaml or /etc/entertainment-analysis/config.yaml),
// then environment variables. The profile allow-list has no default:
//
//	export PROFILES="Pranav,Home,Priya"
//	export MERGE_ENGINE=duckdb
//	pipeline run
//
// # Exit Status
//
// 0 on success, 1 when a stage fails or the configuration is invalid,
// 2 on a usage error.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the running stage before its output is written,
// and stop serve gracefully.
package main
