// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package config loads the discover service configuration in three
// layers with clear precedence: built-in defaults, then an optional
// YAML file, then environment variables.
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

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "DISCOVER_CONFIG"

// defaultConfigPaths are tried in order when no explicit path is set.
var defaultConfigPaths = []string{
	"discover.yaml",
	"config/discover.yaml",
	"/etc/culturepass/discover.yaml",
}

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	Search  SearchConfig  `koanf:"search"`
	Rollout RolloutConfig `koanf:"rollout"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RateLimit       int           `koanf:"rate_limit"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SearchConfig controls search caching.
type SearchConfig struct {
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	SuggestCacheTTL time.Duration `koanf:"suggest_cache_ttl"`
}

// RolloutConfig controls the feature rollout phase.
type RolloutConfig struct {
	Phase string `koanf:"phase"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       100,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Search: SearchConfig{
			CacheTTL:        45 * time.Second,
			SuggestCacheTTL: 30 * time.Second,
		},
		Rollout: RolloutConfig{
			Phase: "full",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file if one
// is found, then environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps known environment variable names to config
// paths. Unknown variables are ignored so unrelated process env never
// leaks into the configuration.
//
//	HTTP_PORT         -> server.port
//	LOG_LEVEL         -> logging.level
//	SEARCH_CACHE_TTL  -> search.cache_ttl
//	ROLLOUT_PHASE     -> rollout.phase
func envTransformFunc(key string) string {
	envMappings := map[string]string{
		"http_host":         "server.host",
		"http_port":         "server.port",
		"http_rate_limit":   "server.rate_limit",
		"shutdown_timeout":  "server.shutdown_timeout",
		"log_level":         "logging.level",
		"log_format":        "logging.format",
		"log_caller":        "logging.caller",
		"search_cache_ttl":  "search.cache_ttl",
		"suggest_cache_ttl": "search.suggest_cache_ttl",
		"rollout_phase":     "rollout.phase",
	}
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}

// Validate checks invariants the rest of the service relies on.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RateLimit < 1 {
		return fmt.Errorf("server.rate_limit must be positive, got %d", c.Server.RateLimit)
	}
	if c.Search.CacheTTL <= 0 {
		return fmt.Errorf("search.cache_ttl must be positive, got %s", c.Search.CacheTTL)
	}
	if c.Search.SuggestCacheTTL <= 0 {
		return fmt.Errorf("search.suggest_cache_ttl must be positive, got %s", c.Search.SuggestCacheTTL)
	}
	switch c.Rollout.Phase {
	case "internal", "pilot", "half", "full":
	default:
		return fmt.Errorf("rollout.phase %q not one of internal|pilot|half|full", c.Rollout.Phase)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
