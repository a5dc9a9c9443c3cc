// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/model"
)

func testArticles() []model.Article {
	return []model.Article{
		{Slug: "guide", Language: "en", TranslationID: "grp-guide", Title: "Guide"},
		{Slug: "guide-fr", Language: "fr", TranslationID: "grp-guide", Title: "Guide"},
		{Slug: "solo", Language: "en", Title: "Solo"},
		{Slug: "seul", Language: "fr", TranslationID: "grp-seul"},
	}
}

func TestBuildTranslationMapping(t *testing.T) {
	langs := testLanguages()

	tests := []struct {
		name     string
		articles []model.Article
		lang     string
		slug     string
		want     TranslationMapping
	}{
		{
			name:     "linked translation from english",
			articles: testArticles(),
			lang:     "en",
			slug:     "guide",
			want:     TranslationMapping{"en": "guide", "fr": "guide-fr"},
		},
		{
			name:     "linked translation from french",
			articles: testArticles(),
			lang:     "fr",
			slug:     "guide-fr",
			want:     TranslationMapping{"en": "guide", "fr": "guide-fr"},
		},
		{
			name:     "article without group",
			articles: testArticles(),
			lang:     "en",
			slug:     "solo",
			want:     TranslationMapping{"en": "solo", "fr": ""},
		},
		{
			name:     "group without siblings",
			articles: testArticles(),
			lang:     "fr",
			slug:     "seul",
			want:     TranslationMapping{"en": "", "fr": "seul"},
		},
		{
			name:     "article missing from listing",
			articles: nil,
			lang:     "en",
			slug:     "guide",
			want:     TranslationMapping{"en": "guide", "fr": ""},
		},
		{
			name:     "unrecognized language",
			articles: testArticles(),
			lang:     "",
			slug:     "guide",
			want:     TranslationMapping{"en": "", "fr": ""},
		},
		{
			name: "first sibling wins",
			articles: []model.Article{
				{Slug: "a", Language: "en", TranslationID: "g"},
				{Slug: "b", Language: "fr", TranslationID: "g"},
				{Slug: "c", Language: "fr", TranslationID: "g"},
			},
			lang: "en",
			slug: "a",
			want: TranslationMapping{"en": "a", "fr": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildTranslationMapping(langs, tt.articles, tt.lang, tt.slug)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildTranslationMappingUnsupportedLanguage(t *testing.T) {
	langs := testLanguages()

	_, err := BuildTranslationMapping(langs, nil, "de", "anleitung")
	assert.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)

	articles := append(testArticles(), model.Article{Slug: "anleitung", Language: "de", TranslationID: "grp-guide"})
	got, err := BuildTranslationMapping(langs, articles, "en", "guide")
	assert.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
	assert.Nil(t, got)
}

func TestTranslationMappingHas(t *testing.T) {
	tm := TranslationMapping{"en": "guide", "fr": ""}
	assert.True(t, tm.Has("en"))
	assert.False(t, tm.Has("fr"))
	assert.False(t, tm.Has("de"))
}
