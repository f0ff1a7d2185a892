// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package models

import (
	"fmt"
	"strings"
)

// ContentType is the coarse show/movie classification of a title.
type ContentType string

const (
	// ContentShow is an episodic title (series, mini-series, episode).
	ContentShow ContentType = "TV Show"

	// ContentMovie is a feature or short.
	ContentMovie ContentType = "Movie"
)

// ParseContentType converts an output label back into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch strings.TrimSpace(s) {
	case string(ContentShow), "Show":
		return ContentShow, nil
	case string(ContentMovie):
		return ContentMovie, nil
	default:
		return "", fmt.Errorf("unknown content type %q", s)
	}
}

// DeviceCategory buckets free-text device identifiers.
type DeviceCategory int

const (
	// DeviceUnknown marks a record that has not been categorized yet.
	DeviceUnknown DeviceCategory = iota
	DeviceAppleMobile
	DeviceWebBrowser
	DeviceSmartTV
	DeviceStreaming
	DeviceGameConsole
	DeviceSetTopBox
	DeviceOther
)

var deviceLabels = map[DeviceCategory]string{
	DeviceAppleMobile: "Apple Mobile Devices",
	DeviceWebBrowser:  "Web Browsers",
	DeviceSmartTV:     "Smart TVs",
	DeviceStreaming:   "Streaming Devices",
	DeviceGameConsole: "Game Consoles",
	DeviceSetTopBox:   "Set Top Boxes",
	DeviceOther:       "Other",
}

// Label returns the label written to the processed and joined CSV files.
func (c DeviceCategory) Label() string {
	if l, ok := deviceLabels[c]; ok {
		return l
	}
	return ""
}

// String implements fmt.Stringer.
func (c DeviceCategory) String() string {
	if l := c.Label(); l != "" {
		return l
	}
	return "Unknown"
}

// ParseDeviceCategory converts a label back into a DeviceCategory.
func ParseDeviceCategory(label string) (DeviceCategory, error) {
	label = strings.TrimSpace(label)
	for c, l := range deviceLabels {
		if l == label {
			return c, nil
		}
	}
	return DeviceUnknown, fmt.Errorf("unknown device category %q", label)
}

// RawActivityRecord is one row of the streaming activity export, as read.
// Only the columns the pipeline consumes are kept.
type RawActivityRecord struct {
	Line        int
	ProfileName string
	Title       string
	StartTime   string
	Duration    string
	DeviceType  string
}

// ActivityRecord is a normalized viewing event.
//
// Title and Type are filled by the title classifier; DeviceCategory by the
// device categorizer, which clears RawDevice once it has mapped it.
type ActivityRecord struct {
	ProfileName    string
	Title          string
	Type           ContentType
	DurationHours  float64
	RawDevice      string
	DeviceCategory DeviceCategory
	Year           int
	Month          int
	Day            int
	Hour           int
}

// Key returns the lowercased join key for the canonical title.
func (r *ActivityRecord) Key() string {
	return TitleKey(r.Title)
}

// TitleKey lowercases a title into the join key space shared by the
// activity log and the catalog.
func TitleKey(title string) string {
	return strings.ToLower(title)
}
