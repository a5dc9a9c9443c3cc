// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test fixtures for the language map.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/olegiv/ocms-langmap/internal/content"
	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/page"
)

// TestLoggerSilent creates a logger that discards everything.
func TestLoggerSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Languages returns the bilingual en/fr set with English as default.
func Languages() *i18n.Set {
	return i18n.MustNewSet([]string{"en", "fr"}, "en")
}

// NewManager creates an en/fr manager with the default routes and the
// given dictionaries. A nil logger is silent.
func NewManager(t *testing.T, categories, tags i18n.Dictionary, logger *slog.Logger) *page.Manager {
	t.Helper()
	if logger == nil {
		logger = TestLoggerSilent()
	}
	m, err := page.NewManager(page.Config{
		Languages:  Languages(),
		Categories: categories,
		Tags:       tags,
		Routes:     page.DefaultRoutes(),
		Logger:     logger,
	})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

// SampleCatalog loads the embedded taxonomy dictionary.
func SampleCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	return catalog
}

// SampleStore loads the embedded article listing.
func SampleStore(t *testing.T) *content.Store {
	t.Helper()
	store, err := content.Sample()
	if err != nil {
		t.Fatalf("content.Sample() error = %v", err)
	}
	return store
}
