// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package activity

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/juan-28/entertainment-analysis/internal/dataset"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

// ErrUncategorized is returned when writing a record without a device category.
var ErrUncategorized = errors.New("record has no device category")

// WriteProcessed atomically writes records as the processed activity table.
func WriteProcessed(path string, records []models.ActivityRecord) error {
	for i := range records {
		if records[i].DeviceCategory == models.DeviceUnknown {
			return fmt.Errorf("record %d (%s): %w", i, records[i].Title, ErrUncategorized)
		}
	}

	i := 0
	return dataset.WriteCSV(path, ProcessedColumns, func() ([]string, bool) {
		if i >= len(records) {
			return nil, false
		}
		r := &records[i]
		i++
		return []string{
			r.ProfileName,
			r.Title,
			string(r.Type),
			strconv.FormatFloat(r.DurationHours, 'f', -1, 64),
			r.DeviceCategory.Label(),
			strconv.Itoa(r.Hour),
			strconv.Itoa(r.Day),
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Year),
		}, true
	})
}

// ReadProcessed loads a processed activity table. Records come back
// categorized, with no raw device value.
func ReadProcessed(path string) ([]models.ActivityRecord, error) {
	r, err := dataset.Open(path, dataset.CSV, ProcessedColumns...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return readProcessed(r)
}

// ReadProcessedFrom loads a processed activity table from in.
func ReadProcessedFrom(in io.Reader, source string) ([]models.ActivityRecord, error) {
	r, err := dataset.NewReader(in, source, dataset.CSV, ProcessedColumns...)
	if err != nil {
		return nil, err
	}
	return readProcessed(r)
}

func readProcessed(r *dataset.Reader) ([]models.ActivityRecord, error) {
	var out []models.ActivityRecord
	err := r.ForEach(func(row dataset.Row) error {
		rec, err := parseProcessedRow(r, row)
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

func parseProcessedRow(r *dataset.Reader, row dataset.Row) (models.ActivityRecord, error) {
	rec := models.ActivityRecord{
		ProfileName: row.Get(ColProfileName),
		Title:       row.Get(ColTitle),
	}

	ct, err := models.ParseContentType(row.Get(ColType))
	if err != nil {
		return rec, r.ParseErr(row, ColType, err)
	}
	rec.Type = ct

	hours, err := strconv.ParseFloat(row.Get(ColDuration), 64)
	if err != nil {
		return rec, r.ParseErr(row, ColDuration, err)
	}
	rec.DurationHours = hours

	dc, err := models.ParseDeviceCategory(row.Get(ColDeviceCategory))
	if err != nil {
		return rec, r.ParseErr(row, ColDeviceCategory, err)
	}
	rec.DeviceCategory = dc

	ints := []struct {
		col string
		dst *int
	}{
		{ColHour, &rec.Hour},
		{ColDay, &rec.Day},
		{ColMonth, &rec.Month},
		{ColYear, &rec.Year},
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
