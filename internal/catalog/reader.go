// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/juan-28/entertainment-analysis/internal/dataset"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

var errNull = errors.New(`unexpected null \N`)

// ReadRatings loads title.ratings.tsv.
func ReadRatings(path string) ([]models.Rating, error) {
	r, err := dataset.Open(path, dataset.TSV, RatingsColumns...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return readRatings(r)
}

// ReadRatingsFrom loads a ratings table from in.
func ReadRatingsFrom(in io.Reader, source string) ([]models.Rating, error) {
	r, err := dataset.NewReader(in, source, dataset.TSV, RatingsColumns...)
	if err != nil {
		return nil, err
	}
	return readRatings(r)
}

func readRatings(r *dataset.Reader) ([]models.Rating, error) {
	var out []models.Rating
	err := r.ForEach(func(row dataset.Row) error {
		votes, err := parseInt(row.Get(ColNumVotes))
		if err != nil {
			return r.ParseErr(row, ColNumVotes, err)
		}
		rating, err := parseFloat(row.Get(ColAverageRating))
		if err != nil {
			return r.ParseErr(row, ColAverageRating, err)
		}
		out = append(out, models.Rating{
			ID:            row.Get(ColID),
			NumVotes:      votes,
			AverageRating: rating,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadBasics loads title.basics.tsv.
func ReadBasics(path string) ([]models.Basic, error) {
	r, err := dataset.Open(path, dataset.TSV, BasicsColumns...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return readBasics(r)
}

// ReadBasicsFrom loads a basics table from in.
func ReadBasicsFrom(in io.Reader, source string) ([]models.Basic, error) {
	r, err := dataset.NewReader(in, source, dataset.TSV, BasicsColumns...)
	if err != nil {
		return nil, err
	}
	return readBasics(r)
}

func readBasics(r *dataset.Reader) ([]models.Basic, error) {
	var out []models.Basic
	err := r.ForEach(func(row dataset.Row) error {
		b := models.Basic{
			ID:             row.Get(ColID),
			TitleType:      row.Get(ColTitleType),
			PrimaryTitle:   row.Get(ColPrimaryTitle),
			IsAdult:        row.Get(ColIsAdult),
			RuntimeMinutes: row.Get(ColRuntimeMinutes),
			Genres:         splitGenres(row.Get(ColGenres)),
		}
		if y := row.Get(ColStartYear); y != imdbNull && y != "" {
			year, err := strconv.Atoi(y)
			if err != nil {
				return r.ParseErr(row, ColStartYear, err)
			}
			b.StartYear = &year
		}
		out = append(out, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseInt(s string) (int64, error) {
	if s == imdbNull {
		return 0, errNull
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	if s == imdbNull {
		return 0, errNull
	}
	return strconv.ParseFloat(s, 64)
}

// splitGenres returns nil for a null or empty genre list.
func splitGenres(s string) []string {
	if s == imdbNull || s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func joinGenres(genres []string) string {
	return strings.Join(genres, ",")
}
