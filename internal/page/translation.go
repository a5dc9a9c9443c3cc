// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"fmt"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/model"
)

// TranslationMapping maps every supported language to the kind-local slug
// of the article's translation in that language. An empty slug means no
// translation exists.
type TranslationMapping map[string]string

// Has reports whether a translation exists for lang.
func (t TranslationMapping) Has(lang string) bool {
	return t[lang] != ""
}

// BuildTranslationMapping links the article (lang, slug) to its
// translations. Translations are the articles sharing its TranslationID.
//
// The result always has one entry per supported language. The article
// itself is mapped even when missing from articles. Any article of the
// translation group written in a language outside langs is an error
// wrapping i18n.ErrUnsupportedLanguage.
func BuildTranslationMapping(langs *i18n.Set, articles []model.Article, lang, slug string) (TranslationMapping, error) {
	mapping := make(TranslationMapping, len(langs.Codes()))
	for _, code := range langs.Codes() {
		mapping[code] = ""
	}

	// An unrecognized content language cannot be linked to anything.
	if lang == "" {
		return mapping, nil
	}
	if err := langs.Validate(lang); err != nil {
		return nil, fmt.Errorf("article %q: %w", slug, err)
	}
	mapping[lang] = slug

	var groupID string
	for i := range articles {
		if articles[i].Language == lang && articles[i].Slug == slug {
			groupID = articles[i].TranslationID
			break
		}
	}
	if groupID == "" {
		return mapping, nil
	}

	for _, a := range articles {
		if a.TranslationID != groupID {
			continue
		}
		if err := langs.Validate(a.Language); err != nil {
			return nil, fmt.Errorf("article %q in translation group %q: %w", a.Slug, groupID, err)
		}
		if a.Language == lang || mapping[a.Language] != "" {
			continue
		}
		mapping[a.Language] = a.Slug
	}

	return mapping, nil
}
