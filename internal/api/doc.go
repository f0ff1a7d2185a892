// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

/*
Package api serves the dashboard data over HTTP.

Routes:

	GET /api/v1/health     liveness and loaded row count
	GET /api/v1/options    filter option lists
	GET /api/v1/dashboard  aggregated views and ratings for a filter
	GET /metrics           Prometheus metrics

Dashboard query parameters are profile, genre, title_type, year and month;
month may repeat for a multi-select. "All Genres" and "All Types" mean no
filter, as does an omitted parameter.

Every JSON response uses the models.APIResponse envelope:

	{"status":"success","data":{...},"metadata":{"timestamp":"..."}}
	{"status":"error","data":null,"metadata":{...},"error":{"code":"VALIDATION_ERROR",...}}
*/
package api
