// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/olegiv/ocms-langmap/internal/cache"
	"github.com/olegiv/ocms-langmap/internal/config"
	"github.com/olegiv/ocms-langmap/internal/content"
	"github.com/olegiv/ocms-langmap/internal/handler"
	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/logging"
	"github.com/olegiv/ocms-langmap/internal/page"
	"github.com/olegiv/ocms-langmap/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "langmap - multilingual page classification and URL equivalence service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_SERVER_HOST       Listen host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_SERVER_PORT       Listen port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_LOG_LEVEL         debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_SITE_URL          Absolute site URL for hreflang and sitemap links\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_LANGUAGES         Supported language codes (default: en,fr)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_DEFAULT_LANGUAGE  Unprefixed language (default: en)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_CATEGORY_ROOTS    Category list segments (default: en:category,fr:categorie)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_STATIC_PAGES      Sitemap static pages (default: /about,/blog)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_CONTENT_PATH      Article listing, JSON or YAML (default: embedded sample)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_DICTIONARY_PATH   Taxonomy dictionary, JSON or YAML (default: embedded)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_RATE_LIMIT_RPS    API requests per second per IP (default: 10)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_RATE_LIMIT_BURST  API burst per IP (default: 20)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_CACHE_TYPE        memory|redis|none (default: memory)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_CACHE_TTL         Cached document lifetime (default: 10m)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_CACHE_MAX_SIZE    Memory cache entry limit (default: 10000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_REDIS_URL         Redis URL for the redis cache\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LANGMAP_EVENT_LOG_SIZE    Events kept for /api/v1/events, 0 disables (default: 500)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Printf("langmap %s\n", versionInfo)
		os.Exit(0)
	}

	if err := run(versionInfo); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(versionInfo version.Info) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	var logHandler slog.Handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})

	// Keep recent warnings in memory; outside production also keep mapping diagnostics
	var events *logging.EventLog
	if cfg.EventLogSize > 0 {
		events = logging.NewEventLog(cfg.EventLogSize)
		level := slog.LevelWarn
		if cfg.MappingDiagnostics() {
			level = slog.LevelDebug
		}
		logHandler = logging.NewEventLogHandlerWithLevel(logHandler, events, level)
	}

	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	langs, err := i18n.NewSet(cfg.Languages, cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("building language set: %w", err)
	}

	catalog, err := loadCatalog(cfg.DictionaryPath)
	if err != nil {
		return err
	}
	if err := catalog.CheckLanguages(langs); err != nil {
		return fmt.Errorf("checking dictionary: %w", err)
	}
	for _, code := range langs.Codes() {
		if len(catalog.Categories.Lookup(code)) == 0 {
			slog.Warn("no category translations for language", "lang", code)
		}
	}

	store, err := content.Load(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	if err := store.Validate(langs); err != nil {
		return fmt.Errorf("validating content: %w", err)
	}
	slog.Info("content loaded", "articles", store.Len(), "languages", store.Languages())

	routes := page.DefaultRoutes()
	routes.Category = cfg.CategoryRoots

	manager, err := page.NewManager(page.Config{
		Languages:   langs,
		Categories:  catalog.Categories,
		Tags:        catalog.Tags,
		Routes:      routes,
		Logger:      logger,
		Diagnostics: cfg.MappingDiagnostics(),
	})
	if err != nil {
		return fmt.Errorf("creating page manager: %w", err)
	}
	slog.Info("page manager ready", "languages", langs.Codes(), "default", langs.Default())

	var responseCache cache.Cache
	if cfg.CacheEnabled() {
		responseCache, err = cache.New(context.Background(), cache.Config{
			Type:            cfg.CacheType,
			RedisURL:        cfg.RedisURL,
			Prefix:          cache.DefaultPrefix,
			DefaultTTL:      cfg.CacheTTL,
			MaxSize:         cfg.CacheMaxSize,
			CleanupInterval: time.Minute,
		})
		if err != nil {
			return fmt.Errorf("creating cache: %w", err)
		}
		defer func() {
			if err := responseCache.Close(); err != nil {
				slog.Error("failed to close cache", "error", err)
			}
		}()
		slog.Info("response cache ready", "type", cfg.CacheType, "ttl", cfg.CacheTTL)
	}

	r := handler.NewRouter(handler.RouterConfig{
		Manager:          manager,
		Content:          store,
		Catalog:          catalog,
		StaticPages:      cfg.StaticPages,
		SiteURL:          cfg.SiteURL,
		IsDevelopment:    cfg.IsDevelopment(),
		DisallowCrawlers: !cfg.IsProduction(),
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
		RequestLogging:   cfg.IsDevelopment(),
		Cache:            responseCache,
		Events:           events,
		Version:          versionInfo,
		Logger:           logger,
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// loadCatalog reads the taxonomy dictionary at path, or the embedded one.
func loadCatalog(path string) (*i18n.Catalog, error) {
	if path == "" {
		catalog, err := i18n.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("loading embedded dictionary: %w", err)
		}
		return catalog, nil
	}

	catalog, err := i18n.LoadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	slog.Info("dictionary loaded", "path", path, "languages", catalog.Languages())
	return catalog, nil
}
