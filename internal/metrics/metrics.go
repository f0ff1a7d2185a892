// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Row outcomes for PipelineRows.
const (
	OutcomeRead    = "read"
	OutcomeKept    = "kept"
	OutcomeDropped = "dropped"
	OutcomeWritten = "written"
)

var (
	// Pipeline Metrics
	PipelineStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"stage"},
	)

	PipelineRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_rows_total",
			Help: "Rows handled by pipeline stages, by outcome",
		},
		[]string{"stage", "outcome"}, // outcome: read, kept, dropped, written
	)

	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total pipeline runs by status",
		},
		[]string{"status"}, // "success", "failure"
	)

	PipelineEmptyResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_empty_results_total",
			Help: "Stages that produced zero rows",
		},
		[]string{"stage"},
	)

	PipelineLastSuccess = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pipeline_last_success_timestamp",
			Help: "Unix timestamp of the last successful run of each stage",
		},
		[]string{"stage"},
	)

	// Merge Engine Metrics
	MergeStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "merge_step_duration_seconds",
			Help:    "Duration of merge engine steps in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"engine", "step"}, // step: join_catalog, argmax, join_activity
	)

	MergePartitions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "merge_parallel_partitions",
			Help: "Partition count used by the last parallel merge",
		},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Run History Metrics
	StateOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "runstate_operations_total",
			Help: "Run history store operations by result",
		},
		[]string{"operation", "result"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	DashboardRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_loaded_rows",
			Help: "Joined rows currently loaded by the dashboard",
		},
	)

	QueryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_query_cache_lookups_total",
			Help: "Dashboard query cache lookups by result",
		},
		[]string{"result"}, // hit, miss
	)
)

// RecordStage records a finished stage's duration, row counts and status.
func RecordStage(stage string, duration time.Duration, read, kept, dropped int, err error) {
	PipelineStageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	PipelineRows.WithLabelValues(stage, OutcomeRead).Add(float64(read))
	PipelineRows.WithLabelValues(stage, OutcomeKept).Add(float64(kept))
	PipelineRows.WithLabelValues(stage, OutcomeDropped).Add(float64(dropped))
	if err != nil {
		PipelineRuns.WithLabelValues("failure").Inc()
		return
	}
	PipelineRuns.WithLabelValues("success").Inc()
	PipelineLastSuccess.WithLabelValues(stage).Set(float64(time.Now().Unix()))
}

// RecordRowsWritten counts rows written to a stage's output file.
func RecordRowsWritten(stage string, rows int) {
	PipelineRows.WithLabelValues(stage, OutcomeWritten).Add(float64(rows))
}

// RecordEmptyResult counts a stage that produced no rows.
func RecordEmptyResult(stage string) {
	PipelineEmptyResults.WithLabelValues(stage).Inc()
}

// RecordMergeStep records one engine step.
func RecordMergeStep(engine, step string, duration time.Duration) {
	MergeStepDuration.WithLabelValues(engine, step).Observe(duration.Seconds())
}

// RecordDBQuery records a DuckDB statement.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordStateOperation records a run history store call.
func RecordStateOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StateOperations.WithLabelValues(operation, result).Inc()
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup records a dashboard query cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		QueryCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	QueryCacheLookups.WithLabelValues("miss").Inc()
}
