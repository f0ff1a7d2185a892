// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package config loads pipeline configuration with koanf.
//
// Sources, highest priority last:
//
//   - built-in defaults
//   - a YAML file (-config flag, CONFIG_PATH, ./config.yaml or
//     /etc/entertainment-analysis/config.yaml)
//   - environment variables
//
// Example config.yaml:
//
//	inputs:
//	  activity_path: data/ViewingActivity.csv
//	  ratings_path: data/title.ratings.tsv
//	  basics_path: data/title.basics.tsv
//	outputs:
//	  processed_path: data/processed_data.csv
//	  final_path: data/final_merged_data.csv
//	normalize:
//	  profiles: [Pranav, Home, Priya]
//	merge:
//	  strict_type_match: true
//	  engine: parallel
//	  workers: 8
//
// Environment variables:
//
//	ACTIVITY_PATH, RATINGS_PATH, BASICS_PATH   input files
//	PROCESSED_PATH, OUTPUT_PATH                output files
//	PROFILES                                   comma-separated allow-list
//	STRICT_TYPE_MATCH                          true|false
//	MERGE_ENGINE, MERGE_WORKERS                memory|parallel|duckdb, partitions
//	DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS
//	STATE_PATH                                 run history directory
//	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT         dashboard API
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
package config
