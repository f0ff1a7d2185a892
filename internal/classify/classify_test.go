// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package classify

import (
	"testing"

	"github.com/juan-28/entertainment-analysis/internal/models"
)

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		raw           string
		wantCanonical string
		wantType      models.ContentType
	}{
		{"The Office (U.S.): Season 2: Episode 3", "The Office (U.S.)", models.ContentShow},
		{"Inception", "Inception", models.ContentMovie},
		{"Glass Onion: A Knives Out Mystery", "Glass Onion", models.ContentShow},
		{"Planet Earth Season", "Planet Earth Season", models.ContentShow},
		{"Bonus Episode", "Bonus Episode", models.ContentShow},
		{"  Dune  ", "Dune", models.ContentMovie},
		{"the season of the witch", "the season of the witch", models.ContentMovie},
		{"", "", models.ContentMovie},
		{":Leading colon", "", models.ContentShow},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			canonical, ct := ClassifyTitle(tt.raw)
			if canonical != tt.wantCanonical {
				t.Errorf("canonical = %q, want %q", canonical, tt.wantCanonical)
			}
			if ct != tt.wantType {
				t.Errorf("type = %q, want %q", ct, tt.wantType)
			}
		})
	}
}

func TestApplyTitles(t *testing.T) {
	recs := []models.ActivityRecord{
		{Title: "Stranger Things: Season 4: Chapter One"},
		{Title: "Arrival"},
	}
	ApplyTitles(recs)
	if recs[0].Title != "Stranger Things" || recs[0].Type != models.ContentShow {
		t.Errorf("recs[0] = %q %q", recs[0].Title, recs[0].Type)
	}
	if recs[1].Title != "Arrival" || recs[1].Type != models.ContentMovie {
		t.Errorf("recs[1] = %q %q", recs[1].Title, recs[1].Type)
	}
}

func TestCategorizeDevice(t *testing.T) {
	tests := []struct {
		raw  string
		want models.DeviceCategory
	}{
		{"iPhone 14 Pro", models.DeviceAppleMobile},
		{"Apple iPad Air", models.DeviceAppleMobile},
		{"Chrome PC (Cadmium)", models.DeviceWebBrowser},
		{"Microsoft Edge", models.DeviceWebBrowser},
		{"Safari MAC (Cadmium)", models.DeviceWebBrowser},
		{"Samsung 2019 Smart TV", models.DeviceSmartTV},
		{"Sony Android TV", models.DeviceSmartTV},
		{"LG webOS TV", models.DeviceSmartTV},
		{"Apple TV (4th Generation)", models.DeviceStreaming},
		{"Amazon FireTV Stick", models.DeviceStreaming},
		{"Roku 3", models.DeviceStreaming},
		{"Streaming Stick 4K", models.DeviceStreaming},
		{"Google Chromecast", models.DeviceWebBrowser},
		{"Sony PS4", models.DeviceGameConsole},
		{"Sony PS3", models.DeviceGameConsole},
		{"Comcast Set Top Box", models.DeviceSetTopBox},
		{"Netflix Windows App", models.DeviceOther},
		{"", models.DeviceOther},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := CategorizeDevice(tt.raw); got != tt.want {
				t.Errorf("CategorizeDevice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCategorizeDevice_CaseInsensitive(t *testing.T) {
	for _, raw := range []string{"IPHONE", "iphone", "iPhone"} {
		if got := CategorizeDevice(raw); got != models.DeviceAppleMobile {
			t.Errorf("CategorizeDevice(%q) = %v", raw, got)
		}
	}
}

func TestApplyDevices_Idempotent(t *testing.T) {
	recs := []models.ActivityRecord{
		{RawDevice: "Apple TV (4th Generation)"},
		{RawDevice: "Chrome PC"},
		{RawDevice: ""},
		{DeviceCategory: models.DeviceGameConsole},
	}
	ApplyDevices(recs)

	want := []models.DeviceCategory{
		models.DeviceStreaming,
		models.DeviceWebBrowser,
		models.DeviceOther,
		models.DeviceGameConsole,
	}
	for i, w := range want {
		if recs[i].DeviceCategory != w {
			t.Errorf("recs[%d].DeviceCategory = %v, want %v", i, recs[i].DeviceCategory, w)
		}
		if recs[i].RawDevice != "" {
			t.Errorf("recs[%d].RawDevice = %q, want cleared", i, recs[i].RawDevice)
		}
	}

	snapshot := append([]models.ActivityRecord(nil), recs...)
	ApplyDevices(recs)
	for i := range recs {
		if recs[i] != snapshot[i] {
			t.Errorf("second pass changed recs[%d]: %+v -> %+v", i, snapshot[i], recs[i])
		}
	}
}
