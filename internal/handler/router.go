// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler wires the HTTP surface of the language map.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/ocms-langmap/internal/cache"
	"github.com/olegiv/ocms-langmap/internal/content"
	"github.com/olegiv/ocms-langmap/internal/handler/api"
	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/logging"
	"github.com/olegiv/ocms-langmap/internal/middleware"
	"github.com/olegiv/ocms-langmap/internal/page"
	"github.com/olegiv/ocms-langmap/internal/seo"
	"github.com/olegiv/ocms-langmap/internal/version"
)

// RouterConfig holds everything the router serves.
type RouterConfig struct {
	Manager     *page.Manager
	Content     *content.Store
	Catalog     *i18n.Catalog
	StaticPages []string
	SiteURL     string

	IsDevelopment bool
	// DisallowCrawlers blocks every crawler in robots.txt.
	DisallowCrawlers bool
	RateLimitRPS     float64
	RateLimitBurst   int
	RequestLogging   bool

	// Cache stores generated documents and hreflang responses.
	// Nil disables caching.
	Cache cache.Cache
	// Events backs /api/v1/events. Nil leaves the route unregistered.
	Events *logging.EventLog

	Version version.Info
	Logger  *slog.Logger
}

// NewRouter builds the chi router with the full middleware stack.
func NewRouter(cfg RouterConfig) chi.Router {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if cfg.RequestLogging {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5, "application/json", "application/xml", "text/plain"))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CanonicalPath)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment)))

	health := NewHealthHandler(cfg.Version)
	health.AddCheck("content", func() Check {
		return Check{Status: "healthy", Message: fmt.Sprintf("%d articles", cfg.Content.Len())}
	})
	health.AddCheck("languages", func() Check {
		return Check{Status: "healthy", Message: fmt.Sprintf("%d languages, default %s",
			len(cfg.Manager.Languages().Codes()), cfg.Manager.Languages().Default())}
	})
	if cfg.Cache != nil {
		health.AddCheck("cache", func() Check {
			return cacheCheck(cfg.Cache)
		})
	}
	r.Get(RouteHealth, health.Health)

	var docs *cache.Documents
	if cfg.Cache != nil {
		docs = cache.NewDocuments(cfg.Cache, 0)
	}
	seoHandler := NewSEOHandler(cfg.Manager, func() seo.SitemapSource {
		return seo.SitemapSource{
			StaticPages: cfg.StaticPages,
			Articles:    cfg.Content.Articles(),
			Categories:  cfg.Catalog.Categories,
			Tags:        cfg.Catalog.Tags,
		}
	}, cfg.SiteURL, cfg.DisallowCrawlers, docs, logger)
	r.Get(RouteSitemap, seoHandler.Sitemap)
	r.Get(RouteRobots, seoHandler.Robots)

	apiHandler := api.NewHandler(cfg.Manager, cfg.Content, cfg.SiteURL, cfg.Cache, logger)
	r.Route(RouteAPIPrefix, func(r chi.Router) {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).WithLogger(logger).Middleware())
		r.Use(middleware.Language(cfg.Manager.Languages()))

		r.Get(RouteAPIStatus, apiHandler.Status)
		r.Get(RouteAPILanguages, apiHandler.ListLanguages)
		r.Get(RouteAPIPages, apiHandler.ResolvePage)
		r.Get(RouteAPIHreflang, apiHandler.Hreflang)
		if cfg.Events != nil {
			r.Get(RouteAPIEvents, NewEventsHandler(cfg.Events).List)
		}
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		api.WriteError(w, http.StatusNotFound, "not_found", "Not found", nil)
	})

	return r
}

// cacheCheck pings remote backends and reports hit counters.
func cacheCheck(c cache.Cache) Check {
	if p, ok := c.(cache.Pinger); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return Check{Status: "unhealthy", Message: err.Error()}
		}
	}
	msg := "ok"
	if sp, ok := c.(cache.StatsProvider); ok {
		s := sp.Stats()
		msg = fmt.Sprintf("%s: %d hits, %d misses", s.Backend, s.Hits, s.Misses)
	}
	return Check{Status: "healthy", Message: msg}
}
