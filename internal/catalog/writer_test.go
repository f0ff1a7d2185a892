// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/juan-28/entertainment-analysis/internal/dataset"
)

func TestWriteJoined_RoundTrip(t *testing.T) {
	m := &Merger{Engine: NewMemoryEngine(), StrictTypeMatch: true}
	joined, _, err := m.Merge(context.Background(), fixtureRatings(), fixtureBasics(), fixtureActivity())
	if err != nil {
		t.Fatal(err)
	}
	joined[2].StartYear = nil

	path := filepath.Join(t.TempDir(), "out", "final_merged_data.csv")
	if err := WriteJoined(path, joined); err != nil {
		t.Fatalf("WriteJoined() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	wantHeader := "titleType,primaryTitle,startYear,genres,numVotes,averageRating,Profile Name,Type,Duration,Device Category,Hour,Day,Month,Year"
	if lines[0] != wantHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `movie,Dune,2021,"Action,Adventure,Drama",12000,8,Home,Movie,2.5,Smart TVs,20,14,3,2023` {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "tvSeries,The Office,,Comedy,") {
		t.Errorf("null start year row = %q", lines[3])
	}

	back, err := ReadJoined(path)
	if err != nil {
		t.Fatalf("ReadJoined() error = %v", err)
	}
	if !reflect.DeepEqual(back, joined) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, joined)
	}
}

func TestWriteJoined_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final.csv")
	if err := WriteJoined(path, nil); err != nil {
		t.Fatalf("WriteJoined() error = %v", err)
	}
	back, err := ReadJoined(path)
	if err != nil {
		t.Fatalf("ReadJoined() error = %v", err)
	}
	if len(back) != 0 {
		t.Errorf("read %d rows, want 0", len(back))
	}
}

func TestReadJoined_Errors(t *testing.T) {
	header := strings.Join(JoinedColumns, ",") + "\n"
	tests := []struct {
		name   string
		row    string
		column string
	}{
		{"votes", "movie,Dune,2021,Drama,lots,8,Home,Movie,2.5,Smart TVs,20,14,3,2023", ColNumVotes},
		{"device", "movie,Dune,2021,Drama,1,8,Home,Movie,2.5,Fridge,20,14,3,2023", "Device Category"},
		{"year", "movie,Dune,20x1,Drama,1,8,Home,Movie,2.5,Smart TVs,20,14,3,2023", ColStartYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJoinedFrom(strings.NewReader(header+tt.row+"\n"), "final.csv")
			var perr *dataset.ParseError
			if !errors.As(err, &perr) || perr.Column != tt.column {
				t.Errorf("error = %v, want ParseError on %s", err, tt.column)
			}
		})
	}
}
