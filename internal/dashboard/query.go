// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package dashboard

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Filter values meaning "no filter", as presented by the dashboard.
const (
	AllGenres = "All Genres"
	AllTypes  = "All Types"
)

// Filter selects joined records. Zero values match everything.
type Filter struct {
	Profile   string
	Genre     string
	TitleType string
	Year      int
	Months    []int
}

// TitleCount is the number of views of one title.
type TitleCount struct {
	Title        string `json:"title"`
	TimesWatched int    `json:"times_watched"`
}

// TitleRating is the mean IMDb rating over the views of one title.
type TitleRating struct {
	Title         string  `json:"title"`
	AverageRating float64 `json:"average_rating"`
}

// Result is the dashboard data for one filter. Titles are sorted.
type Result struct {
	Rows          int           `json:"rows"`
	TimesWatched  []TitleCount  `json:"times_watched"`
	AverageRating []TitleRating `json:"average_rating"`

	// GenreOptions are the genres present once every filter except the
	// genre itself is applied.
	GenreOptions []string `json:"genre_options"`
}

func (f *Filter) matchesRecord(d *Dataset, i int) bool {
	r := &d.records[i]
	if f.Profile != "" && r.ProfileName != f.Profile {
		return false
	}
	if f.TitleType != "" && f.TitleType != AllTypes && r.TitleType != f.TitleType {
		return false
	}
	if f.Year != 0 && r.Year != f.Year {
		return false
	}
	if len(f.Months) > 0 && !slices.Contains(f.Months, r.Month) {
		return false
	}
	return true
}

// Key returns a canonical form of f. Filters that select the same records
// have the same key.
func (f *Filter) Key() string {
	titleType := f.TitleType
	if titleType == AllTypes {
		titleType = ""
	}
	months := slices.Clone(f.Months)
	slices.Sort(months)
	months = slices.Compact(months)

	var b strings.Builder
	b.WriteString(strconv.Quote(f.Profile))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(f.genreFilter()))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(titleType))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(f.Year))
	for i, m := range months {
		if i == 0 {
			b.WriteByte('|')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(m))
	}
	return b.String()
}

func (f *Filter) genreFilter() string {
	if f.Genre == AllGenres {
		return ""
	}
	return f.Genre
}

// Query applies f and aggregates the matching records per primary title.
func (d *Dataset) Query(f Filter) Result {
	genre := f.genreFilter()
	base := make([]bool, len(d.records))
	for i := range d.records {
		base[i] = f.matchesRecord(d, i)
	}

	matched := base
	if genre != "" {
		matched = make([]bool, len(d.records))
		for _, row := range d.rows {
			if row.genre == genre && base[row.record] {
				matched[row.record] = true
			}
		}
	}

	type agg struct {
		count int
		sum   float64
	}
	byTitle := make(map[string]*agg)
	res := Result{}
	for i, ok := range matched {
		if !ok {
			continue
		}
		res.Rows++
		r := &d.records[i]
		a := byTitle[r.PrimaryTitle]
		if a == nil {
			a = &agg{}
			byTitle[r.PrimaryTitle] = a
		}
		a.count++
		a.sum += r.AverageRating
	}

	titles := make([]string, 0, len(byTitle))
	for t := range byTitle {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	res.TimesWatched = make([]TitleCount, 0, len(titles))
	res.AverageRating = make([]TitleRating, 0, len(titles))
	for _, t := range titles {
		a := byTitle[t]
		res.TimesWatched = append(res.TimesWatched, TitleCount{Title: t, TimesWatched: a.count})
		res.AverageRating = append(res.AverageRating, TitleRating{Title: t, AverageRating: a.sum / float64(a.count)})
	}
	res.GenreOptions = genresOf(d.rows, func(i int) bool { return base[i] })
	return res
}
