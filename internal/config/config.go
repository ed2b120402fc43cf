// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables and config files.
// Provides centralized configuration management for all application components: the survey
// dataset, the analytical mirror, the run archive, caching, analysis defaults, the HTTP
// server, and logging.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Example - Load configuration from environment:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Dataset.Path, cfg.Server.Port, etc. are now populated
//
// Thread Safety:
// Config is immutable after LoadWithKoanf() and safe for concurrent read access
// from multiple goroutines.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Database DatabaseConfig `koanf:"database"` // Optional: DuckDB analytical mirror
	Store    StoreConfig    `koanf:"store"`    // Optional: Badger run archive
	Cache    CacheConfig    `koanf:"cache"`
	Analysis AnalysisConfig `koanf:"analysis"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: Listen port (default: 3858)
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - SERVER_SHUTDOWN_TIMEOUT: Graceful shutdown window (default: 10s)
//   - ENVIRONMENT: "development" or "production"
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// DatasetConfig holds survey dataset settings.
//
// The dataset is loaded once at startup from Path and treated as immutable
// process-wide state; it is replaced only by an explicit reload or upload.
//
// Environment Variables:
//   - DATASET_PATH: CSV or XLSX file with the survey responses
//   - DATASET_TARGET_COLUMN: categorical subscription-willingness column
//   - DATASET_ENCODING: source charset for CSV files (utf-8, latin-1,
//     windows-1252, gbk); XLSX files are always UTF-8
//   - DATASET_UPLOAD_MAX_BYTES: upload size cap for replacement datasets
type DatasetConfig struct {
	Path           string `koanf:"path"`
	TargetColumn   string `koanf:"target_column"`
	Encoding       string `koanf:"encoding"`
	UploadMaxBytes int64  `koanf:"upload_max_bytes"`
}

// DatabaseConfig holds DuckDB settings for the analytical mirror.
//
// When enabled, dataset rows are mirrored into DuckDB on every load/reload and
// the summary endpoint serves SQL aggregates from it. The pipeline itself
// never reads from the mirror.
//
// Environment Variables:
//   - DUCKDB_ENABLED: Enable the mirror (default: true)
//   - DUCKDB_PATH: Database file path (":memory:" for ephemeral)
//   - DUCKDB_MAX_MEMORY: Memory limit passed to DuckDB (e.g. "1GB")
//   - DUCKDB_THREADS: Worker threads (0 = DuckDB default)
type DatabaseConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// StoreConfig holds Badger settings for the run archive.
//
// Environment Variables:
//   - RUNSTORE_ENABLED: Enable run archiving (default: true)
//   - RUNSTORE_PATH: Badger directory
//   - RUNSTORE_RETENTION: TTL applied to archived runs (default: 168h)
//   - RUNSTORE_GC_INTERVAL: Value-log GC cadence (default: 10m)
type StoreConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Path       string        `koanf:"path"`
	Retention  time.Duration `koanf:"retention"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// CacheConfig holds the in-memory result cache settings.
//
// The cache sits in the API layer and is keyed on run kind plus parameters;
// the pipeline never assumes it exists.
//
// Environment Variables:
//   - CACHE_TTL: Result lifetime (default: 5m)
//   - CACHE_MAX_ENTRIES: Eviction threshold (default: 256)
type CacheConfig struct {
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// AnalysisConfig holds default parameters for pipeline runs. All of these can
// be overridden per request; boundary validation enforces the same ranges.
//
// Environment Variables:
//   - ANALYSIS_TEST_FRACTION: held-out fraction for classification (default: 0.3)
//   - ANALYSIS_SEED: PRNG seed for splits and clustering (default: 42)
//   - ANALYSIS_CLUSTERS: default k for clustering, within [2,10] (default: 3)
//   - ANALYSIS_MAX_ITERATIONS: k-means iteration cap (default: 300)
//   - ANALYSIS_MIN_SUPPORT: default Apriori support, within [0.01,0.2] (default: 0.05)
//   - ANALYSIS_MIN_CONFIDENCE: default rule confidence, within [0.1,0.95] (default: 0.3)
//   - ANALYSIS_TOP_RULES: rules returned to callers, sorted by lift (default: 10)
type AnalysisConfig struct {
	TestFraction  float64 `koanf:"test_fraction"`
	Seed          int64   `koanf:"seed"`
	Clusters      int     `koanf:"clusters"`
	MaxIterations int     `koanf:"max_iterations"`
	MinSupport    float64 `koanf:"min_support"`
	MinConfidence float64 `koanf:"min_confidence"`
	TopRules      int     `koanf:"top_rules"`
}

// APIConfig holds response shaping limits.
//
// Environment Variables:
//   - API_DEFAULT_RUN_LIMIT: default page size for run listings (default: 20)
//   - API_MAX_RUN_LIMIT: hard cap for run listings (default: 100)
type APIConfig struct {
	DefaultRunLimit int `koanf:"default_run_limit"`
	MaxRunLimit     int `koanf:"max_run_limit"`
}

// SecurityConfig holds rate limiting and CORS settings.
//
// Environment Variables:
//   - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
//   - RATE_LIMIT_WINDOW: Window duration (default: 1m)
//   - DISABLE_RATE_LIMIT: Turn rate limiting off entirely
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - TRUSTED_PROXIES: Comma-separated proxy CIDRs for client IP resolution
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// supportedEncodings lists the charsets accepted for CSV ingestion.
// An empty encoding means UTF-8 passthrough.
var supportedEncodings = map[string]bool{
	"":             true,
	"utf-8":        true,
	"latin-1":      true,
	"iso-8859-1":   true,
	"windows-1252": true,
	"gbk":          true,
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	switch c.Server.Environment {
	case "development", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
}

func (c *Config) validateDataset() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if c.Dataset.TargetColumn == "" {
		return fmt.Errorf("DATASET_TARGET_COLUMN is required")
	}
	if !supportedEncodings[strings.ToLower(c.Dataset.Encoding)] {
		return fmt.Errorf("DATASET_ENCODING %q is not supported (use utf-8, latin-1, windows-1252 or gbk)", c.Dataset.Encoding)
	}
	if c.Dataset.UploadMaxBytes <= 0 {
		return fmt.Errorf("DATASET_UPLOAD_MAX_BYTES must be positive, got %d", c.Dataset.UploadMaxBytes)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if !c.Database.Enabled {
		return nil
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required when DUCKDB_ENABLED=true")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative, got %d", c.Database.Threads)
	}
	return nil
}

func (c *Config) validateStore() error {
	if !c.Store.Enabled {
		return nil
	}
	if c.Store.Path == "" {
		return fmt.Errorf("RUNSTORE_PATH is required when RUNSTORE_ENABLED=true")
	}
	if c.Store.Retention <= 0 {
		return fmt.Errorf("RUNSTORE_RETENTION must be positive, got %s", c.Store.Retention)
	}
	if c.Store.GCInterval <= 0 {
		return fmt.Errorf("RUNSTORE_GC_INTERVAL must be positive, got %s", c.Store.GCInterval)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.Cache.TTL)
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be positive, got %d", c.Cache.MaxEntries)
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	a := c.Analysis
	if a.TestFraction <= 0 || a.TestFraction >= 1 {
		return fmt.Errorf("ANALYSIS_TEST_FRACTION must be within (0,1), got %g", a.TestFraction)
	}
	if a.Clusters < 2 || a.Clusters > 10 {
		return fmt.Errorf("ANALYSIS_CLUSTERS must be within [2,10], got %d", a.Clusters)
	}
	if a.MaxIterations <= 0 {
		return fmt.Errorf("ANALYSIS_MAX_ITERATIONS must be positive, got %d", a.MaxIterations)
	}
	if a.MinSupport < 0.01 || a.MinSupport > 0.2 {
		return fmt.Errorf("ANALYSIS_MIN_SUPPORT must be within [0.01,0.2], got %g", a.MinSupport)
	}
	if a.MinConfidence < 0.1 || a.MinConfidence > 0.95 {
		return fmt.Errorf("ANALYSIS_MIN_CONFIDENCE must be within [0.1,0.95], got %g", a.MinConfidence)
	}
	if a.TopRules <= 0 {
		return fmt.Errorf("ANALYSIS_TOP_RULES must be positive, got %d", a.TopRules)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultRunLimit <= 0 {
		return fmt.Errorf("API_DEFAULT_RUN_LIMIT must be positive, got %d", c.API.DefaultRunLimit)
	}
	if c.API.MaxRunLimit < c.API.DefaultRunLimit {
		return fmt.Errorf("API_MAX_RUN_LIMIT (%d) must not be below API_DEFAULT_RUN_LIMIT (%d)",
			c.API.MaxRunLimit, c.API.DefaultRunLimit)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Load reads configuration from environment variables and optional config file.
// Configuration is loaded in the following order (later sources override earlier ones):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
