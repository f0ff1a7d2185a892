// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService runs the dashboard API and shuts it down gracefully
// when its context ends. DashboardReloadService watches the final joined
// table and swaps a freshly loaded dataset in whenever the pipeline
// rewrites it.
package services
