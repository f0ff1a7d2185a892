// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"context"
	"reflect"
	"testing"

	"github.com/juan-28/entertainment-analysis/internal/models"
)

func TestEngines_JoinCatalog(t *testing.T) {
	for _, ne := range allEngines(t) {
		t.Run(ne.name, func(t *testing.T) {
			got, err := ne.engine.JoinCatalog(context.Background(), fixtureRatings(), fixtureBasics())
			if err != nil {
				t.Fatalf("JoinCatalog() error = %v", err)
			}
			wantIDs := []string{"tt0087182", "tt0088000", "tt0386676", "tt1160419", "tt5555555"}
			if len(got) != len(wantIDs) {
				t.Fatalf("got %d entries, want %d", len(got), len(wantIDs))
			}
			for i, id := range wantIDs {
				if got[i].ID != id {
					t.Errorf("entry %d ID = %s, want %s", i, got[i].ID, id)
				}
			}
			zelda := got[1]
			if zelda.StartYear != nil || zelda.Genres != nil || zelda.NumVotes != 50000 {
				t.Errorf("zelda = %+v", zelda)
			}
		})
	}
}

func TestEngines_ArgmaxByKey(t *testing.T) {
	entries := []models.CatalogEntry{
		{ID: "tt3", PrimaryTitle: "Alien", NumVotes: 10},
		{ID: "tt1", PrimaryTitle: "alien", NumVotes: 30},
		{ID: "tt2", PrimaryTitle: "ALIEN", NumVotes: 30},
		{ID: "tt9", PrimaryTitle: "Brazil", NumVotes: 1},
		{ID: "tt4", PrimaryTitle: "", NumVotes: 5},
	}
	for _, ne := range allEngines(t) {
		t.Run(ne.name, func(t *testing.T) {
			got, err := ne.engine.ArgmaxByKey(context.Background(), entries)
			if err != nil {
				t.Fatalf("ArgmaxByKey() error = %v", err)
			}
			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			want := []string{"tt4", "tt1", "tt9"}
			if !reflect.DeepEqual(ids, want) {
				t.Errorf("winners = %v, want %v", ids, want)
			}
		})
	}
}

func TestEngines_JoinActivityOrder(t *testing.T) {
	catalog := []models.CatalogEntry{
		{ID: "tt2", TitleType: "movie", PrimaryTitle: "Zodiac", NumVotes: 5},
		{ID: "tt1", TitleType: "movie", PrimaryTitle: "Arrival", NumVotes: 7},
	}
	act := []models.ActivityRecord{
		{ProfileName: "a", Title: "Zodiac"},
		{ProfileName: "b", Title: "Arrival"},
		{ProfileName: "c", Title: "Nothing"},
		{ProfileName: "d", Title: "zodiac"},
		{ProfileName: "e", Title: "ARRIVAL"},
	}
	for _, ne := range allEngines(t) {
		t.Run(ne.name, func(t *testing.T) {
			got, err := ne.engine.JoinActivity(context.Background(), catalog, act)
			if err != nil {
				t.Fatalf("JoinActivity() error = %v", err)
			}
			var order string
			for _, r := range got {
				order += r.ProfileName
			}
			if order != "bead" {
				t.Errorf("profile order = %q, want %q", order, "bead")
			}
		})
	}
}

func TestChunkBounds(t *testing.T) {
	tests := []struct {
		n, parts int
		want     [][2]int
	}{
		{0, 4, nil},
		{3, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{10, 3, [][2]int{{0, 4}, {4, 8}, {8, 10}}},
		{4, 1, [][2]int{{0, 4}}},
	}
	for _, tt := range tests {
		if got := chunkBounds(tt.n, tt.parts); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("chunkBounds(%d, %d) = %v, want %v", tt.n, tt.parts, got, tt.want)
		}
	}
}

func TestNewParallelEngine_DefaultWorkers(t *testing.T) {
	if NewParallelEngine(0).Workers() < 1 {
		t.Error("default worker count must be positive")
	}
	if NewParallelEngine(3).Workers() != 3 {
		t.Error("explicit worker count not kept")
	}
}
