// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package models

// Rating is one row of the ratings dataset.
type Rating struct {
	ID            string
	NumVotes      int64
	AverageRating float64
}

// Basic is one row of the title basics dataset.
type Basic struct {
	ID             string
	TitleType      string
	PrimaryTitle   string
	IsAdult        string
	StartYear      *int
	RuntimeMinutes string
	Genres         []string
}

// CatalogEntry is a basics row joined with its rating.
type CatalogEntry struct {
	ID            string
	TitleType     string
	PrimaryTitle  string
	NumVotes      int64
	AverageRating float64
	Genres        []string
	StartYear     *int
}

// Key returns the lowercased join key for the primary title.
func (e *CatalogEntry) Key() string {
	return TitleKey(e.PrimaryTitle)
}

// CoarseType maps a catalog title type onto the activity content type.
// The second return is false for types with no activity counterpart
// (tvMovie, tvEpisode, video, videoGame, ...).
func (e *CatalogEntry) CoarseType() (ContentType, bool) {
	switch e.TitleType {
	case "movie", "short":
		return ContentMovie, true
	case "tvSeries", "tvMiniSeries":
		return ContentShow, true
	default:
		return "", false
	}
}

// Beats reports whether e wins the argmax tie-break over other: more votes
// first, then the lowest identifier.
func (e *CatalogEntry) Beats(other *CatalogEntry) bool {
	if e.NumVotes != other.NumVotes {
		return e.NumVotes > other.NumVotes
	}
	return e.ID < other.ID
}
