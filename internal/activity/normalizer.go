// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package activity

import (
	"errors"
	"time"

	"github.com/juan-28/entertainment-analysis/internal/dataset"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

// MinDuration is the shortest session kept. A session of exactly this
// length is kept.
const MinDuration = 5 * time.Minute

// ErrEmptyAllowList is returned by NewNormalizer without any profile.
var ErrEmptyAllowList = errors.New("profile allow-list is empty")

// Stats counts what Normalize did with its input.
type Stats struct {
	Read            int `json:"read"`
	DroppedProfile  int `json:"dropped_profile"`
	DroppedDuration int `json:"dropped_duration"`
	Kept            int `json:"kept"`
}

// Dropped returns the total number of discarded rows.
func (s Stats) Dropped() int {
	return s.DroppedProfile + s.DroppedDuration
}

// Normalizer filters and converts raw activity rows.
type Normalizer struct {
	// Source names the input in parse errors.
	Source string

	profiles map[string]struct{}
}

// NewNormalizer returns a Normalizer keeping only the given profiles.
// Profile names are matched exactly.
func NewNormalizer(profiles []string) (*Normalizer, error) {
	if len(profiles) == 0 {
		return nil, ErrEmptyAllowList
	}
	set := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		set[p] = struct{}{}
	}
	return &Normalizer{profiles: set}, nil
}

// Normalize converts raw rows in input order. The first malformed duration
// or timestamp among the rows that survive filtering aborts with a
// *dataset.ParseError and no records.
//
// Returned records still carry the raw title and raw device; Type and
// DeviceCategory are assigned by package classify.
func (n *Normalizer) Normalize(raw []models.RawActivityRecord) ([]models.ActivityRecord, Stats, error) {
	stats := Stats{Read: len(raw)}
	out := make([]models.ActivityRecord, 0, len(raw))

	for i := range raw {
		r := &raw[i]

		if _, ok := n.profiles[r.ProfileName]; !ok {
			stats.DroppedProfile++
			continue
		}

		d, err := ParseDuration(r.Duration)
		if err != nil {
			return nil, stats, n.parseErr(r, ColDuration, r.Duration, err)
		}
		if d < MinDuration {
			stats.DroppedDuration++
			continue
		}

		start, err := ParseStartTime(r.StartTime)
		if err != nil {
			return nil, stats, n.parseErr(r, ColStartTime, r.StartTime, err)
		}

		out = append(out, models.ActivityRecord{
			ProfileName:   r.ProfileName,
			Title:         r.Title,
			DurationHours: d.Hours(),
			RawDevice:     r.DeviceType,
			Year:          start.Year(),
			Month:         int(start.Month()),
			Day:           start.Day(),
			Hour:          start.Hour(),
		})
	}

	stats.Kept = len(out)
	return out, stats, nil
}

func (n *Normalizer) parseErr(r *models.RawActivityRecord, column, value string, err error) *dataset.ParseError {
	return &dataset.ParseError{
		Source: n.Source,
		Line:   r.Line,
		Column: column,
		Value:  value,
		Err:    err,
	}
}
