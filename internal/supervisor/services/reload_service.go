// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package services

import (
	"context"
	"os"
	"time"

	"github.com/juan-28/entertainment-analysis/internal/logging"
)

// DefaultReloadInterval is how often the watched file is checked.
const DefaultReloadInterval = 30 * time.Second

// Reloader loads a file and swaps it in.
type Reloader interface {
	Reload(path string) error
}

// DashboardReloadService polls a file and calls Reload when its size or
// modification time changes. The pipeline replaces the file by rename, so a
// changed stat always means a complete file.
type DashboardReloadService struct {
	path     string
	interval time.Duration
	reloader Reloader

	lastMod  time.Time
	lastSize int64
}

// NewDashboardReloadService watches path. initial is the stat of the file
// already loaded, or nil to reload on the first change seen.
func NewDashboardReloadService(path string, interval time.Duration, reloader Reloader, initial os.FileInfo) *DashboardReloadService {
	if interval <= 0 {
		interval = DefaultReloadInterval
	}
	s := &DashboardReloadService{path: path, interval: interval, reloader: reloader}
	if initial != nil {
		s.lastMod = initial.ModTime()
		s.lastSize = initial.Size()
	}
	return s
}

// Serve implements suture.Service. Reload failures are logged and retried
// on the next change; they never stop the service.
func (s *DashboardReloadService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	log := logging.WithComponent("dashboard-reload")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.check(); err != nil {
				log.Warn().Err(err).Str("path", s.path).Msg("Dashboard reload failed")
			}
		}
	}
}

// check reloads once if the file changed since the last successful load.
func (s *DashboardReloadService) check() error {
	info, err := os.Stat(s.path)
	if err != nil {
		return err
	}
	if info.ModTime().Equal(s.lastMod) && info.Size() == s.lastSize {
		return nil
	}
	if err := s.reloader.Reload(s.path); err != nil {
		return err
	}
	s.lastMod = info.ModTime()
	s.lastSize = info.Size()
	return nil
}

// String names the service in supervisor events.
func (s *DashboardReloadService) String() string {
	return "dashboard-reload"
}
