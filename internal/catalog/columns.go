// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import "github.com/juan-28/entertainment-analysis/internal/activity"

// IMDb columns.
const (
	ColID             = "tconst"
	ColNumVotes       = "numVotes"
	ColAverageRating  = "averageRating"
	ColTitleType      = "titleType"
	ColPrimaryTitle   = "primaryTitle"
	ColIsAdult        = "isAdult"
	ColStartYear      = "startYear"
	ColRuntimeMinutes = "runtimeMinutes"
	ColGenres         = "genres"
)

// imdbNull marks a missing value in the IMDb datasets.
const imdbNull = `\N`

// RatingsColumns are required in title.ratings.tsv.
var RatingsColumns = []string{ColID, ColNumVotes, ColAverageRating}

// BasicsColumns are required in title.basics.tsv.
var BasicsColumns = []string{ColID, ColTitleType, ColPrimaryTitle, ColStartYear, ColGenres}

// JoinedColumns is the final table header, in order.
var JoinedColumns = []string{
	ColTitleType, ColPrimaryTitle, ColStartYear, ColGenres, ColNumVotes, ColAverageRating,
	activity.ColProfileName, activity.ColType, activity.ColDuration, activity.ColDeviceCategory,
	activity.ColHour, activity.ColDay, activity.ColMonth, activity.ColYear,
}

// ExcludedTitleTypes are dropped from the final table.
var ExcludedTitleTypes = map[string]struct{}{
	"tvMovie":   {},
	"video":     {},
	"videoGame": {},
}
