// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package config

import (
	"os"
	"runtime"
	"time"

	"github.com/juan-28/entertainment-analysis/internal/logging"
)

// Merge engine names accepted by MergeConfig.Engine.
const (
	EngineMemory   = "memory"
	EngineParallel = "parallel"
	EngineDuckDB   = "duckdb"
)

// Config holds all pipeline and dashboard configuration.
type Config struct {
	Inputs    InputsConfig    `koanf:"inputs"`
	Outputs   OutputsConfig   `koanf:"outputs"`
	Normalize NormalizeConfig `koanf:"normalize"`
	Merge     MergeConfig     `koanf:"merge"`
	Database  DatabaseConfig  `koanf:"database"`
	State     StateConfig     `koanf:"state"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// InputsConfig holds the raw input file locations.
type InputsConfig struct {
	ActivityPath string `koanf:"activity_path" validate:"required,datafile"`
	RatingsPath  string `koanf:"ratings_path" validate:"required,datafile"`
	BasicsPath   string `koanf:"basics_path" validate:"required,datafile"`
}

// OutputsConfig holds the locations of the files the pipeline writes.
type OutputsConfig struct {
	// ProcessedPath receives the normalized activity table.
	ProcessedPath string `koanf:"processed_path" validate:"required,datafile"`

	// FinalPath receives the joined table the dashboard reads.
	FinalPath string `koanf:"final_path" validate:"required,datafile"`
}

// NormalizeConfig holds activity normalization settings.
type NormalizeConfig struct {
	// Profiles is the allow-list of viewing profiles. PROFILES accepts a
	// comma-separated list.
	Profiles []string `koanf:"profiles"`
}

// MergeConfig holds catalog merge settings.
type MergeConfig struct {
	// StrictTypeMatch keeps a catalog entry only when some activity row with
	// the same title has the same coarse content type.
	StrictTypeMatch bool `koanf:"strict_type_match"`

	// Engine selects the merge backend: memory, parallel or duckdb.
	Engine string `koanf:"engine"`

	// Workers is the partition count for the parallel engine (0 = NumCPU).
	Workers int `koanf:"workers" validate:"gte=0,lte=256"`
}

// DatabaseConfig holds settings for the DuckDB merge engine.
type DatabaseConfig struct {
	// Path is the DuckDB file. Empty runs in memory.
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads" validate:"gte=0"` // 0 = DuckDB default
}

// StateConfig holds the run history store location.
type StateConfig struct {
	// Path is the BadgerDB directory. Empty keeps run history in memory.
	Path string `koanf:"path"`
}

// ServerConfig holds dashboard API settings.
type ServerConfig struct {
	Host    string        `koanf:"host" validate:"required"`
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// CORSOrigins lists origins allowed to call the API from a browser.
	// Empty disables cross-origin access.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitRequests per RateLimitWindow and client IP. 0 disables
	// rate limiting.
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`

	// ReloadInterval is how often serve checks the final table for a
	// newer version. 0 disables reloading.
	ReloadInterval time.Duration `koanf:"reload_interval" validate:"gte=0"`

	// QueryCacheSize bounds the number of cached dashboard results per
	// loaded dataset. 0 disables the cache.
	QueryCacheSize int           `koanf:"query_cache_size" validate:"gte=0"`
	QueryCacheTTL  time.Duration `koanf:"query_cache_ttl" validate:"gt=0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"loglevel"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller adds file:line to every entry.
	Caller bool `koanf:"caller"`
}

// ToLogging converts the settings for logging.Init.
func (l LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		Level:     l.Level,
		Format:    l.Format,
		Caller:    l.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// EffectiveWorkers resolves Workers, substituting NumCPU for 0.
func (m MergeConfig) EffectiveWorkers() int {
	if m.Workers > 0 {
		return m.Workers
	}
	return runtime.NumCPU()
}
