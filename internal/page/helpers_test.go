// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-langmap/internal/i18n"
)

func testLanguages() *i18n.Set {
	return i18n.MustNewSet([]string{"en", "fr"}, "en")
}

func testCategories() i18n.Table {
	return i18n.Table{
		"en": {
			"framework": "Framework",
			"language":  "Language",
			"tooling":   "Tooling",
		},
		"fr": {
			"framework": "Framework",
			"language":  "Langage",
			"blank":     "",
			"cuisine":   "Cuisine",
		},
	}
}

func testTags() i18n.Table {
	return i18n.Table{
		"en": {
			"optimization": "Optimization",
			"astro":        "Astro",
		},
		"fr": {
			"optimization": "Optimisation",
			"astro":        "",
		},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		Languages:  testLanguages(),
		Categories: testCategories(),
		Tags:       testTags(),
		Routes:     DefaultRoutes(),
	})
	require.NoError(t, err)
	return m
}

// debugLogger returns a logger writing debug records to the returned buffer.
func debugLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}
