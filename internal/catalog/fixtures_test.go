// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"fmt"
	"testing"

	"github.com/juan-28/entertainment-analysis/internal/models"
)

func year(y int) *int { return &y }

func fixtureRatings() []models.Rating {
	return []models.Rating{
		{ID: "tt0087182", NumVotes: 500, AverageRating: 6.3},
		{ID: "tt1160419", NumVotes: 12000, AverageRating: 8.0},
		{ID: "tt0386676", NumVotes: 900, AverageRating: 9.0},
		{ID: "tt0088000", NumVotes: 50000, AverageRating: 9.5},
		{ID: "tt9999999", NumVotes: 100, AverageRating: 5.0},
		{ID: "tt5555555", NumVotes: 2000, AverageRating: 5.5},
	}
}

func fixtureBasics() []models.Basic {
	return []models.Basic{
		{ID: "tt0087182", TitleType: "movie", PrimaryTitle: "Dune", StartYear: year(1984), Genres: []string{"Action", "Adventure"}},
		{ID: "tt1160419", TitleType: "movie", PrimaryTitle: "Dune", StartYear: year(2021), Genres: []string{"Action", "Adventure", "Drama"}},
		{ID: "tt0386676", TitleType: "tvSeries", PrimaryTitle: "The Office", StartYear: year(2005), Genres: []string{"Comedy"}},
		{ID: "tt0088000", TitleType: "videoGame", PrimaryTitle: "Zelda"},
		{ID: "tt5555555", TitleType: "movie", PrimaryTitle: "The Office", StartYear: year(2019), Genres: []string{"Documentary"}},
		{ID: "tt0000404", TitleType: "movie", PrimaryTitle: "Unrated", StartYear: year(2000)},
	}
}

func fixtureActivity() []models.ActivityRecord {
	return []models.ActivityRecord{
		{ProfileName: "Home", Title: "Dune", Type: models.ContentMovie, DurationHours: 2.5, DeviceCategory: models.DeviceSmartTV, Year: 2023, Month: 3, Day: 14, Hour: 20},
		{ProfileName: "Priya", Title: "The Office", Type: models.ContentShow, DurationHours: 0.5, DeviceCategory: models.DeviceWebBrowser, Year: 2023, Month: 3, Day: 15, Hour: 9},
		{ProfileName: "Home", Title: "Zelda", Type: models.ContentMovie, DurationHours: 1, DeviceCategory: models.DeviceGameConsole, Year: 2023, Month: 4, Day: 1, Hour: 18},
		{ProfileName: "Pranav", Title: "DUNE", Type: models.ContentMovie, DurationHours: 1.25, DeviceCategory: models.DeviceAppleMobile, Year: 2024, Month: 1, Day: 2, Hour: 22},
		{ProfileName: "Home", Title: "Unknown Film", Type: models.ContentMovie, DurationHours: 2, DeviceCategory: models.DeviceOther, Year: 2024, Month: 2, Day: 3, Hour: 12},
	}
}

// generatedInputs builds a larger input set with duplicate titles in mixed
// case, tied vote counts and every title type.
func generatedInputs() ([]models.Rating, []models.Basic, []models.ActivityRecord) {
	types := []string{"movie", "tvSeries", "short", "tvMovie", "video", "tvMiniSeries", "videoGame"}
	var ratings []models.Rating
	var basics []models.Basic
	for i := 0; i < 400; i++ {
		id := fmt.Sprintf("tt%07d", (i*7919)%100000)
		title := fmt.Sprintf("Title %d", i%37)
		if i%5 == 0 {
			title = fmt.Sprintf("TITLE %d", i%37)
		}
		b := models.Basic{ID: id, TitleType: types[i%len(types)], PrimaryTitle: title}
		if i%4 != 0 {
			b.StartYear = year(1950 + i%70)
		}
		if i%3 != 0 {
			b.Genres = []string{"Drama", fmt.Sprintf("G%d", i%6)}
		}
		basics = append(basics, b)
		if i%9 != 0 {
			ratings = append(ratings, models.Rating{
				ID:            id,
				NumVotes:      int64((i * 37 % 11) * 100),
				AverageRating: float64(i%100) / 10,
			})
		}
	}

	var acts []models.ActivityRecord
	devices := []models.DeviceCategory{models.DeviceSmartTV, models.DeviceWebBrowser, models.DeviceStreaming}
	for j := 0; j < 250; j++ {
		ct := models.ContentMovie
		if j%2 == 1 {
			ct = models.ContentShow
		}
		acts = append(acts, models.ActivityRecord{
			ProfileName:    []string{"Home", "Priya", "Pranav"}[j%3],
			Title:          fmt.Sprintf("Title %d", j%45),
			Type:           ct,
			DurationHours:  float64(j%7+1) / 4,
			DeviceCategory: devices[j%len(devices)],
			Year:           2020 + j%4,
			Month:          j%12 + 1,
			Day:            j%28 + 1,
			Hour:           j % 24,
		})
	}
	return ratings, basics, acts
}

type namedEngine struct {
	name   string
	engine Engine
}

// allEngines returns every engine; the DuckDB engine is closed when t ends.
func allEngines(t *testing.T) []namedEngine {
	t.Helper()
	duck, err := OpenDuckDB(DuckDBConfig{})
	if err != nil {
		t.Fatalf("OpenDuckDB() error = %v", err)
	}
	t.Cleanup(func() { _ = duck.Close() })
	return []namedEngine{
		{"memory", NewMemoryEngine()},
		{"parallel-1", NewParallelEngine(1)},
		{"parallel-4", NewParallelEngine(4)},
		{"parallel-16", NewParallelEngine(16)},
		{"duckdb", duck},
	}
}
