// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/juan-28/entertainment-analysis/internal/cache"
	"github.com/juan-28/entertainment-analysis/internal/dashboard"
	"github.com/juan-28/entertainment-analysis/internal/logging"
	"github.com/juan-28/entertainment-analysis/internal/metrics"
)

// Handler serves the dashboard endpoints over a swappable dataset.
type Handler struct {
	snap      atomic.Pointer[snapshot]
	cacheSize int
	cacheTTL  time.Duration
	startTime time.Time
}

// snapshot pairs a dataset with the results cached for it. results is nil
// when caching is disabled.
type snapshot struct {
	data    *dashboard.Dataset
	results *cache.LRU[dashboard.Result]
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithQueryCache caches up to size dashboard results per dataset for ttl.
// A size of 0 disables the cache.
func WithQueryCache(size int, ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.cacheSize = size
		h.cacheTTL = ttl
	}
}

// NewHandler creates a Handler. data may be nil until the first Reload.
func NewHandler(data *dashboard.Dataset, opts ...HandlerOption) *Handler {
	h := &Handler{startTime: time.Now()}
	for _, opt := range opts {
		opt(h)
	}
	if data != nil {
		h.swap(data)
	}
	return h
}

func (h *Handler) swap(data *dashboard.Dataset) {
	s := &snapshot{data: data}
	if h.cacheSize > 0 {
		s.results = cache.NewLRU[dashboard.Result](h.cacheSize, h.cacheTTL)
	}
	h.snap.Store(s)
}

func (h *Handler) current() *snapshot {
	return h.snap.Load()
}

// Reload loads path and swaps it in. On error the current dataset stays.
func (h *Handler) Reload(path string) error {
	d, err := dashboard.Load(path)
	if err != nil {
		return err
	}
	h.swap(d)
	logging.Info().Str("path", path).Int("rows", d.Len()).Msg("Dashboard data loaded")
	return nil
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status   string     `json:"status"`
	Rows     int        `json:"rows"`
	Source   string     `json:"source,omitempty"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Uptime   float64    `json:"uptime_seconds"`
}

// Health reports liveness. Without data the status is "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := HealthStatus{
		Status: "degraded",
		Uptime: time.Since(h.startTime).Seconds(),
	}
	if s := h.current(); s != nil {
		d := s.data
		loaded := d.LoadedAt()
		status.Status = "healthy"
		status.Rows = d.Len()
		status.Source = d.Source()
		status.LoadedAt = &loaded
	}
	respondSuccess(w, r, status, status.Rows, start)
}

// Options returns the filter option lists.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s := h.current()
	if s == nil {
		respondError(w, r, http.StatusServiceUnavailable, codeUnavailable, "Dashboard data is not loaded", nil)
		return
	}
	respondSuccess(w, r, s.data.Options(), s.data.Len(), start)
}

// Dashboard aggregates the records matching the query parameters.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s := h.current()
	if s == nil {
		respondError(w, r, http.StatusServiceUnavailable, codeUnavailable, "Dashboard data is not loaded", nil)
		return
	}

	q, err := parseDashboardQuery(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, codeInvalidParameter, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(q); apiErr != nil {
		respondJSONError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	result := s.query(q.Filter())
	if result.Rows == 0 {
		metrics.RecordEmptyResult("dashboard")
	}
	respondSuccess(w, r, result, result.Rows, start)
}

func (s *snapshot) query(f dashboard.Filter) dashboard.Result {
	if s.results == nil {
		return s.data.Query(f)
	}
	key := f.Key()
	if res, ok := s.results.Get(key); ok {
		metrics.RecordCacheLookup(true)
		return res
	}
	metrics.RecordCacheLookup(false)
	res := s.data.Query(f)
	s.results.Add(key, res)
	return res
}
