// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordStage(t *testing.T) {
	const stage = "test_stage_success"
	before := testutil.ToFloat64(PipelineRuns.WithLabelValues("success"))

	RecordStage(stage, 120*time.Millisecond, 10, 7, 3, nil)

	if got := testutil.ToFloat64(PipelineRows.WithLabelValues(stage, OutcomeRead)); got != 10 {
		t.Errorf("read rows = %v, want 10", got)
	}
	if got := testutil.ToFloat64(PipelineRows.WithLabelValues(stage, OutcomeKept)); got != 7 {
		t.Errorf("kept rows = %v, want 7", got)
	}
	if got := testutil.ToFloat64(PipelineRows.WithLabelValues(stage, OutcomeDropped)); got != 3 {
		t.Errorf("dropped rows = %v, want 3", got)
	}
	if got := testutil.ToFloat64(PipelineRuns.WithLabelValues("success")); got != before+1 {
		t.Errorf("success runs = %v, want %v", got, before+1)
	}
	if testutil.ToFloat64(PipelineLastSuccess.WithLabelValues(stage)) == 0 {
		t.Error("last success timestamp not set")
	}
}

func TestRecordStage_Failure(t *testing.T) {
	const stage = "test_stage_failure"
	before := testutil.ToFloat64(PipelineRuns.WithLabelValues("failure"))

	RecordStage(stage, time.Second, 1, 0, 0, errors.New("boom"))

	if got := testutil.ToFloat64(PipelineRuns.WithLabelValues("failure")); got != before+1 {
		t.Errorf("failure runs = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(PipelineLastSuccess.WithLabelValues(stage)); got != 0 {
		t.Errorf("last success = %v, want 0 after failure", got)
	}
}

func TestCounters(t *testing.T) {
	RecordEmptyResult("test_empty")
	RecordEmptyResult("test_empty")
	if got := testutil.ToFloat64(PipelineEmptyResults.WithLabelValues("test_empty")); got != 2 {
		t.Errorf("empty results = %v, want 2", got)
	}

	RecordRowsWritten("test_written", 42)
	if got := testutil.ToFloat64(PipelineRows.WithLabelValues("test_written", OutcomeWritten)); got != 42 {
		t.Errorf("written rows = %v, want 42", got)
	}

	RecordStateOperation("test_save", nil)
	RecordStateOperation("test_save", errors.New("closed"))
	if got := testutil.ToFloat64(StateOperations.WithLabelValues("test_save", "success")); got != 1 {
		t.Errorf("state success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(StateOperations.WithLabelValues("test_save", "error")); got != 1 {
		t.Errorf("state error = %v, want 1", got)
	}

	RecordDBQuery("INSERT", "test_table", time.Millisecond, errors.New("constraint"))
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("INSERT", "test_table")); got != 1 {
		t.Errorf("db errors = %v, want 1", got)
	}

	RecordAPIRequest("GET", "/test", "200", 5*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/test", "200")); got != 1 {
		t.Errorf("api requests = %v, want 1", got)
	}
}

func TestHistogramsCollect(t *testing.T) {
	RecordMergeStep("test_engine", "argmax", 3*time.Millisecond)
	PipelineStageDuration.WithLabelValues("test_hist").Observe(1)
	if n := testutil.CollectAndCount(MergeStepDuration); n == 0 {
		t.Error("merge step histogram has no series")
	}
	if n := testutil.CollectAndCount(PipelineStageDuration); n == 0 {
		t.Error("stage duration histogram has no series")
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
}
