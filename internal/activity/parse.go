// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package activity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	errDurationFormat  = errors.New("want H:MM:SS or D days HH:MM:SS")
	errDurationRange   = errors.New("minutes and seconds must be below 60")
	errTimestampFormat = errors.New("unrecognized timestamp layout")
)

// ParseDuration parses an export duration. Hours are unbounded and seconds
// may carry a fraction: "0:45:12", "12:03:00.5". The pandas rendering
// "0 days 00:45:12" is also accepted.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	var days int64
	if i := strings.Index(s, " day"); i >= 0 {
		d, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil || d < 0 {
			return 0, errDurationFormat
		}
		days = d
		rest := strings.TrimPrefix(s[i+1:], "days")
		rest = strings.TrimPrefix(rest, "day")
		s = strings.TrimSpace(rest)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, errDurationFormat
	}
	h, err := parseUnsigned(parts[0])
	if err != nil {
		return 0, errDurationFormat
	}
	m, err := parseUnsigned(parts[1])
	if err != nil {
		return 0, errDurationFormat
	}
	if !isDecimal(parts[2]) {
		return 0, errDurationFormat
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, errDurationFormat
	}
	if m >= 60 || sec >= 60 {
		return 0, errDurationRange
	}

	total := time.Duration(days)*24*time.Hour +
		time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec*float64(time.Second))
	return total, nil
}

func parseUnsigned(s string) (int64, error) {
	if s == "" || strings.ContainsAny(s, "+-") {
		return 0, errDurationFormat
	}
	return strconv.ParseInt(s, 10, 64)
}

// isDecimal accepts digits with at most one dot, e.g. "07" or "07.250".
func isDecimal(s string) bool {
	digits, dots := 0, 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// timestampLayouts are tried in order; all are read as UTC.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseStartTime parses an export start timestamp into UTC.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errTimestampFormat, s)
}
