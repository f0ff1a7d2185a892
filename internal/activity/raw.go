// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package activity

import (
	"io"

	"github.com/juan-28/entertainment-analysis/internal/dataset"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

// ReadRaw loads the viewing-activity export at path.
func ReadRaw(path string) ([]models.RawActivityRecord, error) {
	r, err := dataset.Open(path, dataset.CSV, RawColumns...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return readRaw(r)
}

// ReadRawFrom loads a viewing-activity export from in. source names the
// input in errors.
func ReadRawFrom(in io.Reader, source string) ([]models.RawActivityRecord, error) {
	r, err := dataset.NewReader(in, source, dataset.CSV, RawColumns...)
	if err != nil {
		return nil, err
	}
	return readRaw(r)
}

func readRaw(r *dataset.Reader) ([]models.RawActivityRecord, error) {
	var out []models.RawActivityRecord
	err := r.ForEach(func(row dataset.Row) error {
		out = append(out, models.RawActivityRecord{
			Line:        row.Line,
			ProfileName: row.Get(ColProfileName),
			Title:       row.Get(ColTitle),
			StartTime:   row.Get(ColStartTime),
			Duration:    row.Get(ColDuration),
			DeviceType:  row.Get(ColDeviceType),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
