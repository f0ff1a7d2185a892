// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package runstate keeps a history of pipeline runs.
//
// Each finished stage produces a RunStats record. BadgerStore persists them
// in BadgerDB under keys of the form
//
//	run:<stage>:<unix-nanos>:<run-id>
//
// so a reverse prefix scan yields the newest runs first. MemoryStore keeps
// the same contract in memory and is used when no state path is configured.
package runstate
