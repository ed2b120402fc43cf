// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	// Server defaults
	if cfg.Server.Port != 3858 {
		t.Errorf("Server.Port = %d, want 3858", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}

	// Dataset defaults
	if cfg.Dataset.Path != "/data/survey.csv" {
		t.Errorf("Dataset.Path = %q, want /data/survey.csv", cfg.Dataset.Path)
	}
	if cfg.Dataset.TargetColumn != "willing_to_subscribe" {
		t.Errorf("Dataset.TargetColumn = %q, want willing_to_subscribe", cfg.Dataset.TargetColumn)
	}
	if cfg.Dataset.UploadMaxBytes != 16<<20 {
		t.Errorf("Dataset.UploadMaxBytes = %d, want 16MB", cfg.Dataset.UploadMaxBytes)
	}

	// Database defaults
	if !cfg.Database.Enabled {
		t.Error("Database.Enabled should be true by default")
	}
	if cfg.Database.Path != "/data/focusnest.duckdb" {
		t.Errorf("Database.Path = %q, want /data/focusnest.duckdb", cfg.Database.Path)
	}
	if cfg.Database.MaxMemory != "1GB" {
		t.Errorf("Database.MaxMemory = %q, want 1GB", cfg.Database.MaxMemory)
	}

	// Run archive defaults
	if !cfg.Store.Enabled {
		t.Error("Store.Enabled should be true by default")
	}
	if cfg.Store.Retention != 7*24*time.Hour {
		t.Errorf("Store.Retention = %v, want 168h", cfg.Store.Retention)
	}
	if cfg.Store.GCInterval != 10*time.Minute {
		t.Errorf("Store.GCInterval = %v, want 10m", cfg.Store.GCInterval)
	}

	// Cache defaults
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
	}
	if cfg.Cache.MaxEntries != 256 {
		t.Errorf("Cache.MaxEntries = %d, want 256", cfg.Cache.MaxEntries)
	}

	// Analysis defaults
	if cfg.Analysis.TestFraction != 0.3 {
		t.Errorf("Analysis.TestFraction = %g, want 0.3", cfg.Analysis.TestFraction)
	}
	if cfg.Analysis.Seed != 42 {
		t.Errorf("Analysis.Seed = %d, want 42", cfg.Analysis.Seed)
	}
	if cfg.Analysis.Clusters != 3 {
		t.Errorf("Analysis.Clusters = %d, want 3", cfg.Analysis.Clusters)
	}
	if cfg.Analysis.MinSupport != 0.05 {
		t.Errorf("Analysis.MinSupport = %g, want 0.05", cfg.Analysis.MinSupport)
	}
	if cfg.Analysis.MinConfidence != 0.3 {
		t.Errorf("Analysis.MinConfidence = %g, want 0.3", cfg.Analysis.MinConfidence)
	}
	if cfg.Analysis.TopRules != 10 {
		t.Errorf("Analysis.TopRules = %d, want 10", cfg.Analysis.TopRules)
	}

	// API defaults
	if cfg.API.DefaultRunLimit != 20 {
		t.Errorf("API.DefaultRunLimit = %d, want 20", cfg.API.DefaultRunLimit)
	}
	if cfg.API.MaxRunLimit != 100 {
		t.Errorf("API.MaxRunLimit = %d, want 100", cfg.API.MaxRunLimit)
	}

	// Security defaults
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("Security.RateLimitReqs = %d, want 100", cfg.Security.RateLimitReqs)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Server
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"HTTP_TIMEOUT", "server.timeout"},
		{"SERVER_SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"ENVIRONMENT", "server.environment"},

		// Dataset
		{"DATASET_PATH", "dataset.path"},
		{"DATASET_TARGET_COLUMN", "dataset.target_column"},
		{"DATASET_ENCODING", "dataset.encoding"},
		{"DATASET_UPLOAD_MAX_BYTES", "dataset.upload_max_bytes"},

		// Database
		{"DUCKDB_ENABLED", "database.enabled"},
		{"DUCKDB_PATH", "database.path"},
		{"DUCKDB_MAX_MEMORY", "database.max_memory"},
		{"DUCKDB_THREADS", "database.threads"},

		// Run archive
		{"RUNSTORE_ENABLED", "store.enabled"},
		{"RUNSTORE_PATH", "store.path"},
		{"RUNSTORE_RETENTION", "store.retention"},
		{"RUNSTORE_GC_INTERVAL", "store.gc_interval"},

		// Cache
		{"CACHE_TTL", "cache.ttl"},
		{"CACHE_MAX_ENTRIES", "cache.max_entries"},

		// Analysis
		{"ANALYSIS_TEST_FRACTION", "analysis.test_fraction"},
		{"ANALYSIS_SEED", "analysis.seed"},
		{"ANALYSIS_CLUSTERS", "analysis.clusters"},
		{"ANALYSIS_MAX_ITERATIONS", "analysis.max_iterations"},
		{"ANALYSIS_MIN_SUPPORT", "analysis.min_support"},
		{"ANALYSIS_MIN_CONFIDENCE", "analysis.min_confidence"},
		{"ANALYSIS_TOP_RULES", "analysis.top_rules"},

		// API
		{"API_DEFAULT_RUN_LIMIT", "api.default_run_limit"},
		{"API_MAX_RUN_LIMIT", "api.max_run_limit"},

		// Security
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"RATE_LIMIT_WINDOW", "security.rate_limit_window"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"TRUSTED_PROXIES", "security.trusted_proxies"},

		// Logging
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},
		{"LOG_CALLER", "logging.caller"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	}()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Run("no config file exists", func(t *testing.T) {
		os.Unsetenv(ConfigPathEnvVar)
		result := findConfigFile()
		if result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("test: true"), 0644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		os.Unsetenv(ConfigPathEnvVar)
		result := findConfigFile()
		if result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("test: true"), 0644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		defer os.Remove(customPath)

		os.Setenv(ConfigPathEnvVar, customPath)
		defer os.Unsetenv(ConfigPathEnvVar)

		result := findConfigFile()
		if result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		os.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		defer os.Unsetenv(ConfigPathEnvVar)

		result := findConfigFile()
		if result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	os.Clearenv()

	os.Setenv("HTTP_PORT", "9000")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("DATASET_PATH", "/tmp/answers.csv")
	os.Setenv("ANALYSIS_CLUSTERS", "5")
	os.Setenv("ANALYSIS_MIN_SUPPORT", "0.1")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	// Verify custom overrides
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Dataset.Path != "/tmp/answers.csv" {
		t.Errorf("Dataset.Path = %q, want /tmp/answers.csv", cfg.Dataset.Path)
	}
	if cfg.Analysis.Clusters != 5 {
		t.Errorf("Analysis.Clusters = %d, want 5", cfg.Analysis.Clusters)
	}
	if cfg.Analysis.MinSupport != 0.1 {
		t.Errorf("Analysis.MinSupport = %g, want 0.1", cfg.Analysis.MinSupport)
	}

	// Verify defaults are still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Dataset.TargetColumn != "willing_to_subscribe" {
		t.Errorf("Dataset.TargetColumn = %q, want willing_to_subscribe (default)", cfg.Dataset.TargetColumn)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configContent := `
server:
  port: 8888
  host: "127.0.0.1"

dataset:
  path: "/srv/survey.csv"
  target_column: "willing_to_subscribe"

analysis:
  test_fraction: 0.25
  seed: 7

logging:
  level: "warn"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	os.Clearenv()
	os.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Dataset.Path != "/srv/survey.csv" {
		t.Errorf("Dataset.Path = %q, want /srv/survey.csv", cfg.Dataset.Path)
	}
	if cfg.Analysis.TestFraction != 0.25 {
		t.Errorf("Analysis.TestFraction = %g, want 0.25", cfg.Analysis.TestFraction)
	}
	if cfg.Analysis.Seed != 7 {
		t.Errorf("Analysis.Seed = %d, want 7", cfg.Analysis.Seed)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}

	// Verify defaults are still applied for unset values
	if cfg.Database.Path != "/data/focusnest.duckdb" {
		t.Errorf("Database.Path = %q, want /data/focusnest.duckdb (default)", cfg.Database.Path)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configContent := `
server:
  port: 8888

dataset:
  path: "/srv/survey.csv"

logging:
  level: "warn"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	os.Clearenv()
	os.Setenv(ConfigPathEnvVar, configPath)
	os.Setenv("HTTP_PORT", "9999")
	os.Setenv("LOG_LEVEL", "error")
	os.Setenv("DUCKDB_PATH", "/custom/db.duckdb")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	// Value from config file, not overridden by env
	if cfg.Dataset.Path != "/srv/survey.csv" {
		t.Errorf("Dataset.Path = %q, want /srv/survey.csv (from file)", cfg.Dataset.Path)
	}

	// Env vars override config file
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}

	// Env vars override defaults
	if cfg.Database.Path != "/custom/db.duckdb" {
		t.Errorf("Database.Path = %q, want /custom/db.duckdb (env override)", cfg.Database.Path)
	}
}

// TestLoadWithKoanfSliceFields tests comma-separated slice parsing from env vars
func TestLoadWithKoanfSliceFields(t *testing.T) {
	os.Clearenv()

	os.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	os.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	wantOrigins := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.Security.CORSOrigins) != len(wantOrigins) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
	for i, want := range wantOrigins {
		if cfg.Security.CORSOrigins[i] != want {
			t.Errorf("Security.CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want)
		}
	}

	wantProxies := []string{"10.0.0.1", "10.0.0.2"}
	if len(cfg.Security.TrustedProxies) != len(wantProxies) {
		t.Fatalf("Security.TrustedProxies = %v, want %v", cfg.Security.TrustedProxies, wantProxies)
	}
	for i, want := range wantProxies {
		if cfg.Security.TrustedProxies[i] != want {
			t.Errorf("Security.TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], want)
		}
	}
}

// TestLoadWithKoanfValidationFailure tests that invalid settings are rejected at load time
func TestLoadWithKoanfValidationFailure(t *testing.T) {
	os.Clearenv()
	os.Setenv("ANALYSIS_CLUSTERS", "50")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("LoadWithKoanf() = nil error, want validation failure for out-of-range clusters")
	}
}
