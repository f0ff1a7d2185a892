// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

/*
Package models defines the records that flow through the pipeline.

Record Lifecycle:

 1. RawActivityRecord: one row of the streaming activity export, as read
 2. ActivityRecord: normalized viewing event (duration in hours, decomposed
    start time, canonical title, content type, device category)
 3. Rating, Basic: rows of the ratings and title basics datasets
 4. CatalogEntry: a basics row joined with its rating
 5. JoinedRecord: the winning catalog entry for a title combined with one
    viewing event; the rows of the final output table

Join Keys:

Both sides are matched on TitleKey, the lowercased title. The key is never
written to any output file.

API Models:

APIResponse, Metadata and APIError wrap every dashboard HTTP response.
*/
package models
