// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-langmap/internal/page"
)

func TestHreflangLinks(t *testing.T) {
	m := newTestManager(t)

	ctx, err := m.Assemble("/fr/tag/optimisation", nil)
	require.NoError(t, err)

	got := HreflangLinks("https://example.com", ctx)
	assert.Equal(t, []HreflangLink{
		{Hreflang: "en", Href: "https://example.com/tag/optimization"},
		{Hreflang: "fr", Href: "https://example.com/fr/tag/optimisation"},
		{Hreflang: "x-default", Href: "https://example.com/tag/optimization"},
	}, got)
}

func TestHreflangLinksFallback(t *testing.T) {
	ctx := &page.LanguageContext{
		Path:     "/category/unknown",
		Kind:     page.KindCategory,
		Fallback: true,
		Languages: []page.LanguageLink{
			{Code: "en", Path: "/", IsDefault: true, Untranslated: true},
			{Code: "fr", Path: "/fr", Untranslated: true},
		},
	}

	assert.Empty(t, HreflangLinks("https://example.com", ctx))
	assert.Nil(t, HreflangLinks("https://example.com", nil))
}

func TestHreflangLinksSkipUntranslated(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name string
		path string
		want []HreflangLink
	}{
		{"english-only category", "/category/tooling", []HreflangLink{
			{Hreflang: "en", Href: "https://example.com/category/tooling"},
			{Hreflang: "x-default", Href: "https://example.com/category/tooling"},
		}},
		{"french-only category", "/fr/categorie/cuisine", []HreflangLink{
			{Hreflang: "fr", Href: "https://example.com/fr/categorie/cuisine"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := m.Assemble(tt.path, nil)
			require.NoError(t, err)
			require.False(t, ctx.Fallback)

			assert.Equal(t, tt.want, HreflangLinks("https://example.com", ctx))
		})
	}
}

func TestHreflangTags(t *testing.T) {
	links := []HreflangLink{
		{Hreflang: "en", Href: "https://example.com/about"},
		{Hreflang: "fr", Href: "https://example.com/fr/about"},
	}
	assert.Equal(t,
		`<link rel="alternate" hreflang="en" href="https://example.com/about">`+"\n"+
			`<link rel="alternate" hreflang="fr" href="https://example.com/fr/about">`,
		HreflangTags(links))
	assert.Empty(t, HreflangTags(nil))
}

func TestHreflangLinkTag(t *testing.T) {
	l := HreflangLink{Hreflang: "fr", Href: "https://example.com/fr?a=1&b=2"}
	assert.Equal(t,
		`<link rel="alternate" hreflang="fr" href="https://example.com/fr?a=1&amp;b=2">`,
		l.Tag())
}
