// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

/*
Package middleware provides the HTTP middleware of the dashboard API.

All middleware use chi's func(http.Handler) http.Handler shape:

  - RequestID: X-Request-ID propagation and request-scoped logging
  - PrometheusMetrics: request counts, latency and in-flight gauge
  - CORS: browser origin allow-list (go-chi/cors)
  - RateLimit: per-IP request limiting (go-chi/httprate)

The typical stack is

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(origins))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.RateLimit(100, time.Minute))
*/
package middleware
