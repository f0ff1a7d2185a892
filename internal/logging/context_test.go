// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateRunID(t *testing.T) {
	a, b := GenerateRunID(), GenerateRunID()
	if len(a) != 8 {
		t.Errorf("len(run id) = %d, want 8", len(a))
	}
	if a == b {
		t.Error("run IDs should differ")
	}
}

func TestRunIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := RunIDFromContext(ctx); got != "" {
		t.Errorf("empty context run id = %q", got)
	}
	ctx = ContextWithRunID(ctx, "abc12345")
	if got := RunIDFromContext(ctx); got != "abc12345" {
		t.Errorf("RunIDFromContext = %q", got)
	}
	if got := RunIDFromContext(ContextWithNewRunID(context.Background())); len(got) != 8 {
		t.Errorf("generated run id = %q", got)
	}
}

func TestCtxAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := ContextWithRunID(context.Background(), "run00001")
	ctx = ContextWithRequestID(ctx, "req-1")
	Ctx(ctx).Info().Msg("with ids")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["run_id"] != "run00001" {
		t.Errorf("run_id = %v", entry["run_id"])
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewTestLogger(&buf).With().Str("component", "ctxlogger").Logger()
	ctx := ContextWithLogger(context.Background(), l)

	Ctx(ctx).Warn().Msg("stored logger")
	if !strings.Contains(buf.String(), "ctxlogger") {
		t.Errorf("stored logger not used: %q", buf.String())
	}
}

func TestBadgerLogger(t *testing.T) {
	var buf bytes.Buffer
	bl := NewBadgerLoggerWith(zerolog.New(&buf).Level(zerolog.TraceLevel))
	orig := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(orig)

	bl.Errorf("compaction failed: %d\n", 7)
	bl.Warningf("slow write")
	bl.Infof("opened")
	bl.Debugf("level %d", 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), buf.String())
	}
	wantLevels := []string{"error", "warn", "debug", "trace"}
	for i, line := range lines {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d not JSON: %v", i, err)
		}
		if entry["level"] != wantLevels[i] {
			t.Errorf("line %d level = %v, want %s", i, entry["level"], wantLevels[i])
		}
	}
	if !strings.Contains(lines[0], `"compaction failed: 7"`) {
		t.Errorf("trailing newline not trimmed: %s", lines[0])
	}
}
