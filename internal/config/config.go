package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/bump-my-version-sandbox/internal/version"
)

const (
	// DefaultModulePath is the module whose build info entry carries the version.
	DefaultModulePath = "github.com/eugenenazirov/bump-my-version-sandbox"

	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	ModulePath           string
	ManifestPath         string
	LogLevel             string
	Port                 string
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
}

type fileConfig struct {
	ModulePath           string        `yaml:"module_path"`
	ManifestPath         string        `yaml:"manifest_path"`
	LogLevel             string        `yaml:"log_level"`
	Port                 string        `yaml:"port"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging *bool         `yaml:"enable_request_logging"`
	RateLimit            fileRateLimit `yaml:"rate_limit"`
}

type fileRateLimit struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides. Nil fields were not set.
type CLIOverrides struct {
	ConfigFile     string
	ModulePath     *string
	ManifestPath   *string
	LogLevel       *string
	Port           *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		fc, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyFileConfig(&cfg, fc); err != nil {
			return Config{}, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		ModulePath:           DefaultModulePath,
		ManifestPath:         version.DefaultManifestPath,
		LogLevel:             defaultLogLevel,
		Port:                 defaultPort,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
	}
}

func loadFromFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &fc, nil
}

func applyFileConfig(cfg *Config, fc *fileConfig) error {
	if fc.ModulePath != "" {
		cfg.ModulePath = fc.ModulePath
	}
	if fc.ManifestPath != "" {
		cfg.ManifestPath = fc.ManifestPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(fc.LogLevel)
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"shutdown_grace_period", fc.ShutdownGracePeriod, &cfg.ShutdownGracePeriod},
		{"read_header_timeout", fc.ReadHeaderTimeout, &cfg.ReadHeaderTimeout},
		{"write_timeout", fc.WriteTimeout, &cfg.WriteTimeout},
		{"idle_timeout", fc.IdleTimeout, &cfg.IdleTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if fc.EnableRequestLogging != nil {
		cfg.EnableRequestLogging = *fc.EnableRequestLogging
	}
	if fc.RateLimit.RPS != nil {
		cfg.RateLimitRPS = *fc.RateLimit.RPS
	}
	if fc.RateLimit.Burst != nil {
		cfg.RateLimitBurst = *fc.RateLimit.Burst
	}

	return nil
}

func applyEnvConfig(cfg *Config) {
	if module := strings.TrimSpace(os.Getenv("MODULE_PATH")); module != "" {
		cfg.ModulePath = module
	}

	if manifest := strings.TrimSpace(os.Getenv("MANIFEST_PATH")); manifest != "" {
		cfg.ManifestPath = manifest
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}

	if rps := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.RateLimitBurst = value
		}
	}
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ModulePath != nil && *overrides.ModulePath != "" {
		cfg.ModulePath = *overrides.ModulePath
	}

	if overrides.ManifestPath != nil && *overrides.ManifestPath != "" {
		cfg.ManifestPath = *overrides.ManifestPath
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(*overrides.LogLevel)
	}

	if overrides.Port != nil && *overrides.Port != "" {
		cfg.Port = *overrides.Port
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}
}

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.ModulePath) == "" {
		return fmt.Errorf("module path cannot be empty")
	}
	if strings.TrimSpace(cfg.ManifestPath) == "" {
		return fmt.Errorf("manifest path cannot be empty")
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("rate limit rps must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit burst must be >= 0")
	}
	return nil
}
