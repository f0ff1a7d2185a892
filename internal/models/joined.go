// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package models

// JoinedRecord is one row of the final output table: the winning catalog
// entry for a title combined with one matching viewing event.
type JoinedRecord struct {
	TitleType      string
	PrimaryTitle   string
	StartYear      *int
	Genres         []string
	NumVotes       int64
	AverageRating  float64
	ProfileName    string
	Type           ContentType
	DurationHours  float64
	DeviceCategory DeviceCategory
	Hour           int
	Day            int
	Month          int
	Year           int
}

// NewJoinedRecord combines a catalog entry with an activity record.
func NewJoinedRecord(e *CatalogEntry, a *ActivityRecord) JoinedRecord {
	var genres []string
	if len(e.Genres) > 0 {
		genres = append(genres, e.Genres...)
	}
	var startYear *int
	if e.StartYear != nil {
		y := *e.StartYear
		startYear = &y
	}
	return JoinedRecord{
		TitleType:      e.TitleType,
		PrimaryTitle:   e.PrimaryTitle,
		StartYear:      startYear,
		Genres:         genres,
		NumVotes:       e.NumVotes,
		AverageRating:  e.AverageRating,
		ProfileName:    a.ProfileName,
		Type:           a.Type,
		DurationHours:  a.DurationHours,
		DeviceCategory: a.DeviceCategory,
		Hour:           a.Hour,
		Day:            a.Day,
		Month:          a.Month,
		Year:           a.Year,
	}
}
