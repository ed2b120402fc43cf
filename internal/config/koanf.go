// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

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

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/focusnest/config.yaml",
	"/etc/focusnest/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3858,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Dataset: DatasetConfig{
			Path:           "/data/survey.csv",
			TargetColumn:   "willing_to_subscribe",
			Encoding:       "",
			UploadMaxBytes: 16 << 20, // 16MB is generous for survey exports
		},
		Database: DatabaseConfig{
			Enabled:   true,
			Path:      "/data/focusnest.duckdb",
			MaxMemory: "1GB",
			Threads:   0, // DuckDB decides
		},
		Store: StoreConfig{
			Enabled:    true,
			Path:       "/data/runs",
			Retention:  7 * 24 * time.Hour,
			GCInterval: 10 * time.Minute,
		},
		Cache: CacheConfig{
			TTL:        5 * time.Minute,
			MaxEntries: 256,
		},
		Analysis: AnalysisConfig{
			TestFraction:  0.3,
			Seed:          42,
			Clusters:      3,
			MaxIterations: 300,
			MinSupport:    0.05,
			MinConfidence: 0.3,
			TopRules:      10,
		},
		API: APIConfig{
			DefaultRunLimit: 20,
			MaxRunLimit:     100,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// This function is the preferred way to load configuration and provides:
//   - Type-safe configuration unmarshaling
//   - Clear precedence: ENV > File > Defaults
//   - Support for nested configuration via koanf struct tags
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// DATASET_PATH -> dataset.path
	// ANALYSIS_MIN_SUPPORT -> analysis.min_support
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		// If it's a string, split by comma
		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DATASET_PATH -> dataset.path
//   - DUCKDB_PATH -> database.path
//   - HTTP_PORT -> server.port
//   - ANALYSIS_MIN_SUPPORT -> analysis.min_support
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_port":               "server.port",
		"http_host":               "server.host",
		"http_timeout":            "server.timeout",
		"server_shutdown_timeout": "server.shutdown_timeout",
		"environment":             "server.environment",

		// Dataset mappings
		"dataset_path":             "dataset.path",
		"dataset_target_column":    "dataset.target_column",
		"dataset_encoding":         "dataset.encoding",
		"dataset_upload_max_bytes": "dataset.upload_max_bytes",

		// Database mappings (DuckDB analytical mirror)
		"duckdb_enabled":    "database.enabled",
		"duckdb_path":       "database.path",
		"duckdb_max_memory": "database.max_memory",
		"duckdb_threads":    "database.threads",

		// Run archive mappings
		"runstore_enabled":     "store.enabled",
		"runstore_path":        "store.path",
		"runstore_retention":   "store.retention",
		"runstore_gc_interval": "store.gc_interval",

		// Cache mappings
		"cache_ttl":         "cache.ttl",
		"cache_max_entries": "cache.max_entries",

		// Analysis defaults
		"analysis_test_fraction":  "analysis.test_fraction",
		"analysis_seed":           "analysis.seed",
		"analysis_clusters":       "analysis.clusters",
		"analysis_max_iterations": "analysis.max_iterations",
		"analysis_min_support":    "analysis.min_support",
		"analysis_min_confidence": "analysis.min_confidence",
		"analysis_top_rules":      "analysis.top_rules",

		// API mappings
		"api_default_run_limit": "api.default_run_limit",
		"api_max_run_limit":     "api.max_run_limit",

		// Security mappings
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",
		"cors_origins":        "security.cors_origins",
		"trusted_proxies":     "security.trusted_proxies",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
