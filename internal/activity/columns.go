// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package activity

// Raw export columns.
const (
	ColProfileName = "Profile Name"
	ColTitle       = "Title"
	ColStartTime   = "Start Time"
	ColDuration    = "Duration"
	ColDeviceType  = "Device Type"
)

// Processed table columns that the raw export does not have.
const (
	ColType           = "Type"
	ColDeviceCategory = "Device Category"
	ColHour           = "Hour"
	ColDay            = "Day"
	ColMonth          = "Month"
	ColYear           = "Year"
)

// RawColumns are required in the raw export. Attributes, Supplemental Video
// Type, Bookmark, Latest Bookmark and Country may be present and are ignored.
var RawColumns = []string{ColProfileName, ColTitle, ColStartTime, ColDuration, ColDeviceType}

// ProcessedColumns is the processed table header, in order.
var ProcessedColumns = []string{
	ColProfileName, ColTitle, ColType, ColDuration, ColDeviceCategory,
	ColHour, ColDay, ColMonth, ColYear,
}
