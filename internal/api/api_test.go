// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/juan-28/entertainment-analysis/internal/catalog"
	"github.com/juan-28/entertainment-analysis/internal/dashboard"
	"github.com/juan-28/entertainment-analysis/internal/metrics"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

func record(profile, title, titleType string, rating float64, year, month int, genres ...string) models.JoinedRecord {
	return models.JoinedRecord{
		TitleType:      titleType,
		PrimaryTitle:   title,
		Genres:         genres,
		NumVotes:       10,
		AverageRating:  rating,
		ProfileName:    profile,
		Type:           models.ContentMovie,
		DurationHours:  1.5,
		DeviceCategory: models.DeviceWebBrowser,
		Year:           year,
		Month:          month,
	}
}

func testData() *dashboard.Dataset {
	return dashboard.New([]models.JoinedRecord{
		record("Home", "Dune", "movie", 8.0, 2023, 3, "Action", "Drama"),
		record("Home", "Dune", "movie", 8.0, 2023, 5, "Action", "Drama"),
		record("Priya", "The Office", "tvSeries", 9.0, 2024, 3, "Comedy"),
	})
}

func testRouter(h *Handler) http.Handler {
	return NewRouter(h, RouterConfig{RateLimitWindow: time.Minute})
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v (%s)", target, err, rec.Body.String())
		}
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	rec, env := get(t, testRouter(NewHandler(testData())), "/api/v1/health")
	if rec.Code != http.StatusOK || env.Status != "success" {
		t.Fatalf("status = %d %q", rec.Code, env.Status)
	}
	var hs HealthStatus
	if err := json.Unmarshal(env.Data, &hs); err != nil {
		t.Fatal(err)
	}
	if hs.Status != "healthy" || hs.Rows != 3 {
		t.Errorf("health = %+v", hs)
	}
	if rec.Header().Get("X-Request-ID") == "" || rec.Header().Get("ETag") == "" {
		t.Error("missing X-Request-ID or ETag header")
	}
}

func TestHealth_NoData(t *testing.T) {
	router := testRouter(NewHandler(nil))
	_, env := get(t, router, "/api/v1/health")
	var hs HealthStatus
	if err := json.Unmarshal(env.Data, &hs); err != nil {
		t.Fatal(err)
	}
	if hs.Status != "degraded" {
		t.Errorf("status = %q, want degraded", hs.Status)
	}

	rec, env := get(t, router, "/api/v1/dashboard")
	if rec.Code != http.StatusServiceUnavailable || env.Error == nil || env.Error.Code != codeUnavailable {
		t.Errorf("dashboard without data = %d %+v", rec.Code, env.Error)
	}
}

func TestOptions(t *testing.T) {
	_, env := get(t, testRouter(NewHandler(testData())), "/api/v1/options")
	var opts dashboard.Options
	if err := json.Unmarshal(env.Data, &opts); err != nil {
		t.Fatal(err)
	}
	if strings.Join(opts.Genres, ",") != "Action,Drama,Comedy" {
		t.Errorf("genres = %v", opts.Genres)
	}
	if len(opts.Years) != 2 || opts.Years[0] != 2023 {
		t.Errorf("years = %v", opts.Years)
	}
}

func TestDashboard(t *testing.T) {
	router := testRouter(NewHandler(testData()))
	tests := []struct {
		name    string
		query   url.Values
		rows    int
		watched string
	}{
		{"all", url.Values{}, 3, "Dune=2,The Office=1"},
		{"sentinels", url.Values{"genre": {"All Genres"}, "title_type": {"All Types"}}, 3, "Dune=2,The Office=1"},
		{"profile", url.Values{"profile": {"Priya"}}, 1, "The Office=1"},
		{"genre", url.Values{"genre": {"Drama"}}, 2, "Dune=2"},
		{"repeated months", url.Values{"month": {"3", "5"}, "year": {"2023"}}, 2, "Dune=2"},
		{"single month", url.Values{"month": {"3"}}, 2, "Dune=1,The Office=1"},
		{"comma months", url.Values{"month": {"3,5"}}, 3, "Dune=2,The Office=1"},
		{"no match", url.Values{"profile": {"Guest"}}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := get(t, router, "/api/v1/dashboard?"+tt.query.Encode())
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			var res dashboard.Result
			if err := json.Unmarshal(env.Data, &res); err != nil {
				t.Fatal(err)
			}
			if res.Rows != tt.rows || env.Metadata.RowCount != tt.rows {
				t.Errorf("rows = %d (metadata %d), want %d", res.Rows, env.Metadata.RowCount, tt.rows)
			}
			var parts []string
			for _, c := range res.TimesWatched {
				parts = append(parts, c.Title+"="+strconv.Itoa(c.TimesWatched))
			}
			if got := strings.Join(parts, ","); got != tt.watched {
				t.Errorf("times watched = %q, want %q", got, tt.watched)
			}
		})
	}
}

func TestDashboard_InvalidParameters(t *testing.T) {
	router := testRouter(NewHandler(testData()))
	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"year not a number", "year=twenty", codeInvalidParameter},
		{"month not a number", "month=march", codeInvalidParameter},
		{"year too early", "year=1700", "VALIDATION_ERROR"},
		{"year too late", "year=2300", "VALIDATION_ERROR"},
		{"month out of range", "month=13", "VALIDATION_ERROR"},
		{"month zero", "month=3&month=0", "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := get(t, router, "/api/v1/dashboard?"+tt.query)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if env.Status != "error" || env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want code %s", env.Error, tt.code)
			}
		})
	}
}

func TestParseDashboardQuery(t *testing.T) {
	q, err := parseDashboardQuery(url.Values{"month": {"1, 2", "4"}, "profile": {" Home "}})
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Months) != 3 || q.Months[2] != 4 || q.Profile != "Home" {
		t.Errorf("query = %+v", q)
	}
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final_merged_data.csv")
	if err := catalog.WriteJoined(path, []models.JoinedRecord{
		record("Home", "Arrival", "movie", 7.9, 2024, 1, "Sci-Fi"),
	}); err != nil {
		t.Fatal(err)
	}

	h := NewHandler(testData())
	if err := h.Reload(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("Reload() of a missing file should fail")
	}
	if h.current().data.Len() != 3 {
		t.Error("failed reload replaced the dataset")
	}
	if err := h.Reload(path); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := h.current().data.Len(); got != 1 {
		t.Errorf("rows after reload = %d, want 1", got)
	}
}

func TestDashboard_QueryCache(t *testing.T) {
	h := NewHandler(testData(), WithQueryCache(8, time.Minute))
	router := testRouter(h)
	hits := metrics.QueryCacheLookups.WithLabelValues("hit")
	before := testutil.ToFloat64(hits)

	_, first := get(t, router, "/api/v1/dashboard?genre=Drama")
	_, second := get(t, router, "/api/v1/dashboard?genre=Drama&title_type=All+Types")
	if got := testutil.ToFloat64(hits) - before; got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
	if string(first.Data) != string(second.Data) {
		t.Errorf("cached result differs:\n%s\n%s", first.Data, second.Data)
	}
	if n := h.current().results.Len(); n != 1 {
		t.Errorf("cached entries = %d, want 1", n)
	}

	path := filepath.Join(t.TempDir(), "final_merged_data.csv")
	if err := catalog.WriteJoined(path, []models.JoinedRecord{
		record("Home", "Arrival", "movie", 7.9, 2024, 1, "Drama"),
	}); err != nil {
		t.Fatal(err)
	}
	if err := h.Reload(path); err != nil {
		t.Fatal(err)
	}
	_, env := get(t, router, "/api/v1/dashboard?genre=Drama")
	var res dashboard.Result
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Rows != 1 || res.TimesWatched[0].Title != "Arrival" {
		t.Errorf("result after reload = %+v, want the reloaded dataset", res)
	}
}

func TestNewHandler_CacheDisabled(t *testing.T) {
	h := NewHandler(testData())
	if h.current().results != nil {
		t.Error("cache should be disabled without WithQueryCache")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(NewHandler(testData()))
	get(t, router, "/api/v1/health")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("api_requests_total missing from /metrics")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	if got := sanitizeLogValue("a\nb\x7f"); got != `a\x0ab\x7f` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}
