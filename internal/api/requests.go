// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/juan-28/entertainment-analysis/internal/dashboard"
)

// DashboardQuery holds the dashboard filter parameters.
type DashboardQuery struct {
	Profile   string `json:"profile" validate:"max=200"`
	Genre     string `json:"genre" validate:"max=200"`
	TitleType string `json:"title_type" validate:"max=100"`
	Year      int    `json:"year" validate:"omitempty,gte=1870,lte=2100"`
	Months    []int  `json:"month" validate:"max=12,dive,gte=1,lte=12"`
}

// paramError reports a query parameter that is not an integer.
type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be an integer, got %q", e.name, e.value)
}

// parseDashboardQuery reads q. Integer parameters that do not parse yield a
// *paramError; range checks are left to validateRequest.
func parseDashboardQuery(q url.Values) (*DashboardQuery, error) {
	dq := &DashboardQuery{
		Profile:   strings.TrimSpace(q.Get("profile")),
		Genre:     strings.TrimSpace(q.Get("genre")),
		TitleType: strings.TrimSpace(q.Get("title_type")),
	}

	if v := strings.TrimSpace(q.Get("year")); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil, &paramError{name: "year", value: v}
		}
		dq.Year = year
	}

	// Both month=3&month=4 and month=3,4 are accepted.
	for _, raw := range q["month"] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v == "" {
				continue
			}
			m, err := strconv.Atoi(v)
			if err != nil {
				return nil, &paramError{name: "month", value: v}
			}
			dq.Months = append(dq.Months, m)
		}
	}
	return dq, nil
}

// Filter converts the query to a dashboard filter.
func (q *DashboardQuery) Filter() dashboard.Filter {
	return dashboard.Filter{
		Profile:   q.Profile,
		Genre:     q.Genre,
		TitleType: q.TitleType,
		Year:      q.Year,
		Months:    q.Months,
	}
}
