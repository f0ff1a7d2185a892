// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

// Package activity reads the streaming service's viewing-activity export and
// normalizes it into analysis-ready records.
//
// Normalization keeps allow-listed profiles, drops sessions shorter than
// five minutes, converts durations to fractional hours and decomposes the
// start timestamp into Year, Month, Day and Hour (UTC). Title and device
// classification happen afterwards in package classify.
//
// The normalized, classified records are persisted as the processed
// activity table:
//
//	Profile Name,Title,Type,Duration,Device Category,Hour,Day,Month,Year
//	Home,Dune,Movie,2.5,Smart TVs,20,14,3,2023
package activity
