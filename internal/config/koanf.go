// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/entertainment-analysis/config.yaml",
	"/etc/entertainment-analysis/config.yml",
}

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			ActivityPath: "data/ViewingActivity.csv",
			RatingsPath:  "data/title.ratings.tsv",
			BasicsPath:   "data/title.basics.tsv",
		},
		Outputs: OutputsConfig{
			ProcessedPath: "data/processed_data.csv",
			FinalPath:     "data/final_merged_data.csv",
		},
		Normalize: NormalizeConfig{
			Profiles: []string{},
		},
		Merge: MergeConfig{
			StrictTypeMatch: true,
			Engine:          EngineMemory,
			Workers:         0,
		},
		Database: DatabaseConfig{
			Path:      "",
			MaxMemory: "1GB",
			Threads:   0,
		},
		State: StateConfig{
			Path: "",
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8050,
			Timeout:           30 * time.Second,
			CORSOrigins:       []string{},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			ReloadInterval:    30 * time.Second,
			QueryCacheSize:    256,
			QueryCacheTTL:     5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from three layers, later layers winning:
//
//  1. Defaults
//  2. YAML file: explicitPath if set, else CONFIG_PATH, else DefaultConfigPaths
//  3. Environment variables
//
// The result is validated before it is returned.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := resolveConfigFile(explicitPath)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// resolveConfigFile returns the file to load, or "" when none exists.
// An explicit path that does not exist is an error; searched paths are not.
func resolveConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// sliceConfigPaths are parsed from comma-separated strings when set by env.
var sliceConfigPaths = []string{
	"normalize.profiles",
	"server.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"activity_path":     "inputs.activity_path",
	"ratings_path":      "inputs.ratings_path",
	"basics_path":       "inputs.basics_path",
	"processed_path":    "outputs.processed_path",
	"output_path":       "outputs.final_path",
	"profiles":          "normalize.profiles",
	"strict_type_match": "merge.strict_type_match",
	"merge_engine":      "merge.engine",
	"merge_workers":     "merge.workers",
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",
	"state_path":        "state.path",
	"http_host":         "server.host",
	"http_port":         "server.port",
	"http_timeout":      "server.timeout",
	"cors_origins":      "server.cors_origins",
	"rate_limit":        "server.rate_limit_requests",
	"rate_limit_window": "server.rate_limit_window",
	"reload_interval":   "server.reload_interval",
	"query_cache_size":  "server.query_cache_size",
	"query_cache_ttl":   "server.query_cache_ttl",
	"log_level":         "logging.level",
	"log_format":        "logging.format",
	"log_caller":        "logging.caller",
}

// envTransformFunc maps an environment variable name to its config path,
// e.g. MERGE_ENGINE -> merge.engine. It returns "" for unmapped names.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
