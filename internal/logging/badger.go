// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package logging

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// BadgerLogger adapts zerolog to badger's Logger interface
// (Errorf, Warningf, Infof, Debugf). Badger terminates its messages with a
// newline, which is trimmed.
type BadgerLogger struct {
	logger zerolog.Logger
}

// NewBadgerLogger returns an adapter writing through the global logger with
// component=badger.
func NewBadgerLogger() *BadgerLogger {
	return &BadgerLogger{logger: WithComponent("badger")}
}

// NewBadgerLoggerWith returns an adapter writing through logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBadgerLoggerWith(logger zerolog.Logger) *BadgerLogger {
	return &BadgerLogger{logger: logger}
}

func (b *BadgerLogger) Errorf(format string, args ...interface{}) {
	b.logger.Error().Msg(trimMsg(format, args))
}

func (b *BadgerLogger) Warningf(format string, args ...interface{}) {
	b.logger.Warn().Msg(trimMsg(format, args))
}

// Infof is logged at debug; badger is chatty at info during compaction.
func (b *BadgerLogger) Infof(format string, args ...interface{}) {
	b.logger.Debug().Msg(trimMsg(format, args))
}

func (b *BadgerLogger) Debugf(format string, args ...interface{}) {
	b.logger.Trace().Msg(trimMsg(format, args))
}

func trimMsg(format string, args []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
