// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package dashboard

import (
	"fmt"
	"time"

	"github.com/juan-28/entertainment-analysis/internal/catalog"
	"github.com/juan-28/entertainment-analysis/internal/metrics"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

// genreRow is one (record, genre) pair of the exploded table. Records
// without genres have a single row with an empty genre.
type genreRow struct {
	record int
	genre  string
}

// Dataset holds the loaded joined records.
type Dataset struct {
	records  []models.JoinedRecord
	rows     []genreRow
	options  Options
	source   string
	loadedAt time.Time
}

// Load reads the final joined table at path.
func Load(path string) (*Dataset, error) {
	records, err := catalog.ReadJoined(path)
	if err != nil {
		return nil, fmt.Errorf("load dashboard data: %w", err)
	}
	d := New(records)
	d.source = path
	metrics.DashboardRows.Set(float64(len(records)))
	return d, nil
}

// New builds a Dataset from records. The slice is not copied.
func New(records []models.JoinedRecord) *Dataset {
	d := &Dataset{records: records, loadedAt: time.Now().UTC()}
	for i := range records {
		if len(records[i].Genres) == 0 {
			d.rows = append(d.rows, genreRow{record: i})
			continue
		}
		for _, g := range records[i].Genres {
			d.rows = append(d.rows, genreRow{record: i, genre: g})
		}
	}
	d.options = d.buildOptions()
	return d
}

// Len returns the number of joined records.
func (d *Dataset) Len() int { return len(d.records) }

// Source returns the file the dataset was loaded from, if any.
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns when the dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Options lists the distinct filter values in first-seen order.
type Options struct {
	Profiles   []string `json:"profiles"`
	Genres     []string `json:"genres"`
	TitleTypes []string `json:"title_types"`
	Years      []int    `json:"years"`
	Months     []int    `json:"months"`
}

// Options returns the filter option lists.
func (d *Dataset) Options() Options {
	return d.options
}

func (d *Dataset) buildOptions() Options {
	var o Options
	profiles := newOrderedSet[string]()
	types := newOrderedSet[string]()
	years := newOrderedSet[int]()
	months := newOrderedSet[int]()
	for i := range d.records {
		r := &d.records[i]
		profiles.add(r.ProfileName)
		types.add(r.TitleType)
		years.add(r.Year)
		months.add(r.Month)
	}
	o.Profiles = profiles.values
	o.TitleTypes = types.values
	o.Years = years.values
	o.Months = months.values
	o.Genres = genresOf(d.rows, func(int) bool { return true })
	return o
}

func genresOf(rows []genreRow, keep func(record int) bool) []string {
	genres := newOrderedSet[string]()
	for _, row := range rows {
		if row.genre != "" && keep(row.record) {
			genres.add(row.genre)
		}
	}
	return genres.values
}

type orderedSet[T comparable] struct {
	seen   map[T]struct{}
	values []T
}

func newOrderedSet[T comparable]() *orderedSet[T] {
	return &orderedSet[T]{seen: make(map[T]struct{}), values: []T{}}
}

func (s *orderedSet[T]) add(v T) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}
