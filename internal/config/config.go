// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/ocms-langmap/internal/util"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"LANGMAP_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"LANGMAP_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"LANGMAP_ENV" envDefault:"development"`
	LogLevel   string `env:"LANGMAP_LOG_LEVEL" envDefault:"info"`
	SiteURL    string `env:"LANGMAP_SITE_URL" envDefault:"http://localhost:8080"` // Absolute base for hreflang and sitemap links

	// Language configuration
	Languages       []string          `env:"LANGMAP_LANGUAGES" envDefault:"en,fr" envSeparator:","`
	DefaultLanguage string            `env:"LANGMAP_DEFAULT_LANGUAGE" envDefault:"en"`
	CategoryRoots   map[string]string `env:"LANGMAP_CATEGORY_ROOTS" envDefault:"en:category,fr:categorie"` // lang:segment pairs
	StaticPages     []string          `env:"LANGMAP_STATIC_PAGES" envDefault:"/about,/blog" envSeparator:","`

	// Data files; empty means the embedded samples
	ContentPath    string `env:"LANGMAP_CONTENT_PATH"`
	DictionaryPath string `env:"LANGMAP_DICTIONARY_PATH"`

	// API rate limiting (per client IP)
	RateLimitRPS   float64 `env:"LANGMAP_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"LANGMAP_RATE_LIMIT_BURST" envDefault:"20"`

	// Response cache
	CacheType    string        `env:"LANGMAP_CACHE_TYPE" envDefault:"memory"` // memory, redis or none
	CacheTTL     time.Duration `env:"LANGMAP_CACHE_TTL" envDefault:"10m"`
	CacheMaxSize int           `env:"LANGMAP_CACHE_MAX_SIZE" envDefault:"10000"`
	RedisURL     string        `env:"LANGMAP_REDIS_URL"`

	// In-memory event log served at /api/v1/events; 0 disables it
	EventLogSize int `env:"LANGMAP_EVENT_LOG_SIZE" envDefault:"500"`
}

// CacheEnabled reports whether responses are cached.
func (c Config) CacheEnabled() bool {
	return c.CacheType != "none"
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if the application is running in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// MappingDiagnostics reports whether URL mapping fallbacks are logged.
// Every environment other than production logs them.
func (c Config) MappingDiagnostics() bool {
	return !c.IsProduction()
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// SlogLevel maps LogLevel to a slog level. Unknown values map to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.ServerPort < 1 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("LANGMAP_SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("LANGMAP_LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel))
	}

	u, err := url.Parse(c.SiteURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("LANGMAP_SITE_URL %q must be an absolute http(s) URL", c.SiteURL))
	}

	seen := make(map[string]bool, len(c.Languages))
	for i, code := range c.Languages {
		code = strings.TrimSpace(code)
		c.Languages[i] = code
		if !util.IsValidLangCode(code) {
			errs = append(errs, fmt.Errorf("LANGMAP_LANGUAGES: invalid language code %q", code))
			continue
		}
		if seen[code] {
			errs = append(errs, fmt.Errorf("LANGMAP_LANGUAGES: duplicate language code %q", code))
		}
		seen[code] = true
	}
	if len(c.Languages) == 0 {
		errs = append(errs, errors.New("LANGMAP_LANGUAGES must list at least one language"))
	}
	if !seen[c.DefaultLanguage] {
		errs = append(errs, fmt.Errorf("LANGMAP_DEFAULT_LANGUAGE %q is not in LANGMAP_LANGUAGES", c.DefaultLanguage))
	}

	for lang, seg := range c.CategoryRoots {
		if !seen[lang] {
			errs = append(errs, fmt.Errorf("LANGMAP_CATEGORY_ROOTS: language %q is not in LANGMAP_LANGUAGES", lang))
		}
		if !util.IsValidSlug(seg) {
			errs = append(errs, fmt.Errorf("LANGMAP_CATEGORY_ROOTS: invalid segment %q for %s", seg, lang))
		}
	}

	for _, p := range c.StaticPages {
		if !strings.HasPrefix(p, "/") {
			errs = append(errs, fmt.Errorf("LANGMAP_STATIC_PAGES: path %q must start with /", p))
		}
	}

	if c.RateLimitRPS <= 0 {
		errs = append(errs, fmt.Errorf("LANGMAP_RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS))
	}
	if c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("LANGMAP_RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst))
	}

	switch c.CacheType {
	case "memory", "none":
	case "redis":
		if c.RedisURL == "" {
			errs = append(errs, errors.New("LANGMAP_REDIS_URL is required when LANGMAP_CACHE_TYPE is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("LANGMAP_CACHE_TYPE must be memory, redis or none, got %q", c.CacheType))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("LANGMAP_CACHE_TTL must be positive, got %s", c.CacheTTL))
	}
	if c.EventLogSize < 0 {
		errs = append(errs, fmt.Errorf("LANGMAP_EVENT_LOG_SIZE must not be negative, got %d", c.EventLogSize))
	}
	if c.CacheMaxSize < 0 {
		errs = append(errs, fmt.Errorf("LANGMAP_CACHE_MAX_SIZE must not be negative, got %d", c.CacheMaxSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
