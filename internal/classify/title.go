// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package classify

import (
	"strings"

	"github.com/juan-28/entertainment-analysis/internal/models"
)

// showMarkers flag an episodic title. Matching is case-sensitive.
var showMarkers = []string{"Season", "Episode", ":"}

// ClassifyTitle returns the canonical title (text before the first colon,
// trimmed) and the content type. Any colon makes a title a show, so a movie
// such as "Glass Onion: A Knives Out Mystery" is classified as a show.
func ClassifyTitle(raw string) (string, models.ContentType) {
	canonical, _, _ := strings.Cut(raw, ":")
	canonical = strings.TrimSpace(canonical)

	for _, m := range showMarkers {
		if strings.Contains(raw, m) {
			return canonical, models.ContentShow
		}
	}
	return canonical, models.ContentMovie
}

// ApplyTitles replaces every record's title with its canonical form and sets
// its content type.
func ApplyTitles(records []models.ActivityRecord) {
	for i := range records {
		records[i].Title, records[i].Type = ClassifyTitle(records[i].Title)
	}
}
