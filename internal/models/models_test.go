// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package models

import (
	"testing"
)

func TestDeviceCategory_LabelRoundTrip(t *testing.T) {
	categories := []DeviceCategory{
		DeviceAppleMobile,
		DeviceWebBrowser,
		DeviceSmartTV,
		DeviceStreaming,
		DeviceGameConsole,
		DeviceSetTopBox,
		DeviceOther,
	}

	for _, c := range categories {
		t.Run(c.String(), func(t *testing.T) {
			got, err := ParseDeviceCategory(c.Label())
			if err != nil {
				t.Fatalf("ParseDeviceCategory(%q) error: %v", c.Label(), err)
			}
			if got != c {
				t.Errorf("ParseDeviceCategory(%q) = %v, want %v", c.Label(), got, c)
			}
		})
	}
}

func TestDeviceCategory_Unknown(t *testing.T) {
	if DeviceUnknown.Label() != "" {
		t.Errorf("DeviceUnknown.Label() = %q, want empty", DeviceUnknown.Label())
	}
	if DeviceUnknown.String() != "Unknown" {
		t.Errorf("DeviceUnknown.String() = %q, want Unknown", DeviceUnknown.String())
	}
	if _, err := ParseDeviceCategory("Toasters"); err == nil {
		t.Error("expected error for unknown label")
	}
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		input   string
		want    ContentType
		wantErr bool
	}{
		{"TV Show", ContentShow, false},
		{"Show", ContentShow, false},
		{"Movie", ContentMovie, false},
		{" Movie ", ContentMovie, false},
		{"movie", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseContentType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseContentType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseContentType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCatalogEntry_CoarseType(t *testing.T) {
	tests := []struct {
		titleType string
		want      ContentType
		ok        bool
	}{
		{"movie", ContentMovie, true},
		{"short", ContentMovie, true},
		{"tvSeries", ContentShow, true},
		{"tvMiniSeries", ContentShow, true},
		{"tvMovie", "", false},
		{"tvEpisode", "", false},
		{"video", "", false},
		{"videoGame", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.titleType, func(t *testing.T) {
			e := CatalogEntry{TitleType: tt.titleType}
			got, ok := e.CoarseType()
			if got != tt.want || ok != tt.ok {
				t.Errorf("CoarseType() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCatalogEntry_Beats(t *testing.T) {
	low := CatalogEntry{ID: "tt0000002", NumVotes: 500}
	high := CatalogEntry{ID: "tt0000009", NumVotes: 12000}
	tieA := CatalogEntry{ID: "tt0000001", NumVotes: 12000}

	if !high.Beats(&low) {
		t.Error("entry with more votes should win")
	}
	if low.Beats(&high) {
		t.Error("entry with fewer votes should lose")
	}
	if !tieA.Beats(&high) {
		t.Error("on equal votes the lowest identifier should win")
	}
	if high.Beats(&tieA) {
		t.Error("on equal votes the higher identifier should lose")
	}
}

func TestNewJoinedRecord_CopiesSlices(t *testing.T) {
	year := 2021
	e := CatalogEntry{
		ID:            "tt1160419",
		TitleType:     "movie",
		PrimaryTitle:  "Dune",
		NumVotes:      12000,
		AverageRating: 8.0,
		Genres:        []string{"Action", "Adventure"},
		StartYear:     &year,
	}
	a := ActivityRecord{
		ProfileName:    "Home",
		Title:          "Dune",
		Type:           ContentMovie,
		DurationHours:  2.5,
		DeviceCategory: DeviceSmartTV,
		Year:           2022,
		Month:          3,
		Day:            14,
		Hour:           21,
	}

	j := NewJoinedRecord(&e, &a)
	e.Genres[0] = "Changed"
	year = 1984

	if j.Genres[0] != "Action" {
		t.Errorf("Genres not copied: got %v", j.Genres)
	}
	if j.StartYear == nil || *j.StartYear != 2021 {
		t.Errorf("StartYear not copied: got %v", j.StartYear)
	}
	if j.ProfileName != "Home" || j.Hour != 21 || j.DeviceCategory != DeviceSmartTV {
		t.Errorf("activity fields not carried: %+v", j)
	}
}

func TestTitleKey(t *testing.T) {
	if got := TitleKey("Dune: Part Two"); got != "dune: part two" {
		t.Errorf("TitleKey() = %q", got)
	}
	r := ActivityRecord{Title: "DUNE"}
	e := CatalogEntry{PrimaryTitle: "Dune"}
	if r.Key() != e.Key() {
		t.Errorf("keys should match: %q vs %q", r.Key(), e.Key())
	}
}
