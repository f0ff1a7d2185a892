// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"io"
	"strconv"

	"github.com/juan-28/entertainment-analysis/internal/activity"
	"github.com/juan-28/entertainment-analysis/internal/dataset"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

// WriteJoined atomically writes the final joined table. An unknown start
// year is written as an empty field.
func WriteJoined(path string, records []models.JoinedRecord) error {
	i := 0
	return dataset.WriteCSV(path, JoinedColumns, func() ([]string, bool) {
		if i >= len(records) {
			return nil, false
		}
		r := &records[i]
		i++
		return formatJoined(r), true
	})
}

func formatJoined(r *models.JoinedRecord) []string {
	year := ""
	if r.StartYear != nil {
		year = strconv.Itoa(*r.StartYear)
	}
	return []string{
		r.TitleType,
		r.PrimaryTitle,
		year,
		joinGenres(r.Genres),
		strconv.FormatInt(r.NumVotes, 10),
		strconv.FormatFloat(r.AverageRating, 'f', -1, 64),
		r.ProfileName,
		string(r.Type),
		strconv.FormatFloat(r.DurationHours, 'f', -1, 64),
		r.DeviceCategory.Label(),
		strconv.Itoa(r.Hour),
		strconv.Itoa(r.Day),
		strconv.Itoa(r.Month),
		strconv.Itoa(r.Year),
	}
}

// ReadJoined loads a final joined table.
func ReadJoined(path string) ([]models.JoinedRecord, error) {
	r, err := dataset.Open(path, dataset.CSV, JoinedColumns...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return readJoined(r)
}

// ReadJoinedFrom loads a final joined table from in.
func ReadJoinedFrom(in io.Reader, source string) ([]models.JoinedRecord, error) {
	r, err := dataset.NewReader(in, source, dataset.CSV, JoinedColumns...)
	if err != nil {
		return nil, err
	}
	return readJoined(r)
}

func readJoined(r *dataset.Reader) ([]models.JoinedRecord, error) {
	var out []models.JoinedRecord
	err := r.ForEach(func(row dataset.Row) error {
		rec, err := parseJoinedRow(r, row)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseJoinedRow(r *dataset.Reader, row dataset.Row) (models.JoinedRecord, error) {
	rec := models.JoinedRecord{
		TitleType:    row.Get(ColTitleType),
		PrimaryTitle: row.Get(ColPrimaryTitle),
		Genres:       splitGenres(row.Get(ColGenres)),
		ProfileName:  row.Get(activity.ColProfileName),
	}

	if y := row.Get(ColStartYear); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return rec, r.ParseErr(row, ColStartYear, err)
		}
		rec.StartYear = &year
	}

	var err error
	if rec.NumVotes, err = strconv.ParseInt(row.Get(ColNumVotes), 10, 64); err != nil {
		return rec, r.ParseErr(row, ColNumVotes, err)
	}
	if rec.AverageRating, err = strconv.ParseFloat(row.Get(ColAverageRating), 64); err != nil {
		return rec, r.ParseErr(row, ColAverageRating, err)
	}
	if rec.Type, err = models.ParseContentType(row.Get(activity.ColType)); err != nil {
		return rec, r.ParseErr(row, activity.ColType, err)
	}
	if rec.DurationHours, err = strconv.ParseFloat(row.Get(activity.ColDuration), 64); err != nil {
		return rec, r.ParseErr(row, activity.ColDuration, err)
	}
	if rec.DeviceCategory, err = models.ParseDeviceCategory(row.Get(activity.ColDeviceCategory)); err != nil {
		return rec, r.ParseErr(row, activity.ColDeviceCategory, err)
	}

	ints := []struct {
		col string
		dst *int
	}{
		{activity.ColHour, &rec.Hour},
		{activity.ColDay, &rec.Day},
		{activity.ColMonth, &rec.Month},
		{activity.ColYear, &rec.Year},
	}
	for _, f := range ints {
		v, err := strconv.Atoi(row.Get(f.col))
		if err != nil {
			return rec, r.ParseErr(row, f.col, err)
		}
		*f.dst = v
	}
	return rec, nil
}
