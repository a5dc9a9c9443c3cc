// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"errors"

	"github.com/olegiv/ocms-langmap/internal/model"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// LanguageLink is one entry of the language switcher. Untranslated marks
// a link that points at the language home page because the page has no
// equivalent in that language.
type LanguageLink struct {
	Code         string `json:"code"`
	Path         string `json:"path"`
	Label        string `json:"label"`
	Name         string `json:"name"`
	Flag         string `json:"flag,omitempty"`
	Direction    string `json:"direction"`
	IsDefault    bool   `json:"is_default"`
	Active       bool   `json:"active"`
	Untranslated bool   `json:"untranslated,omitempty"`
}

// LanguageContext is everything header rendering needs to draw the
// language switcher and emit hreflang links for one request path.
type LanguageContext struct {
	Path        string `json:"path"`
	Kind        Kind   `json:"kind"`
	Info        Info   `json:"info"`
	CurrentLang string `json:"current_lang"`
	// Fallback is set when the page could not be mapped and every
	// language links to its home page instead.
	Fallback  bool           `json:"fallback"`
	Languages []LanguageLink `json:"languages"`
}

// Alternates returns the language -> path mapping of the context.
func (c *LanguageContext) Alternates() URLMapping {
	m := make(URLMapping, len(c.Languages))
	for _, l := range c.Languages {
		m[l.Code] = l.Path
	}
	return m
}

// Active returns the link of the current language.
func (c *LanguageContext) Active() (LanguageLink, bool) {
	for _, l := range c.Languages {
		if l.Active {
			return l, true
		}
	}
	return LanguageLink{}, false
}

// Assemble detects path, maps it to every language and merges the result
// with language display metadata. articles is the content listing used to
// link article translations.
//
// A category that cannot be mapped degrades to home page links with
// Fallback set. Only configuration violations, such as an article written
// in an unsupported language, are returned as errors.
func (m *Manager) Assemble(path string, articles []model.Article) (*LanguageContext, error) {
	path = util.CleanURLPath(path)

	det, ok := m.DetectPage(path)
	if !ok {
		det = m.detectNormal(path)
	}

	info := det.Info
	if ai, isArticle := info.(ArticleInfo); isArticle && ai.Translations == nil {
		t, err := BuildTranslationMapping(m.langs, articles, ai.DetectedLang, ai.Slug)
		if err != nil {
			return nil, err
		}
		ai.Translations = t
		info = ai
	}

	fallback := false
	mapping, err := m.CreateURLMapping(info, MappingContext{
		CurrentPath: m.langs.StripPrefix(path),
		Articles:    articles,
	})
	if err != nil {
		if !errors.Is(err, ErrUnmappedCategory) {
			return nil, err
		}
		m.logger.Warn("category mapping failed, linking language home pages",
			"path", path, "error", err)
		mapping = m.homeMapping()
		fallback = true
	}

	current := info.Language()
	if current == "" {
		current = m.langs.PrefixLanguage(path)
	}

	links := make([]LanguageLink, 0, len(mapping))
	for _, lang := range m.langs.Languages() {
		path := mapping[lang.Code]
		links = append(links, LanguageLink{
			Code:         lang.Code,
			Path:         path,
			Label:        lang.Label(),
			Name:         lang.Name,
			Flag:         lang.Flag,
			Direction:    lang.Direction,
			IsDefault:    lang.IsDefault,
			Active:       lang.Code == current,
			Untranslated: det.Kind != KindNormal && path == m.langs.HomePath(lang.Code),
		})
	}

	return &LanguageContext{
		Path:        path,
		Kind:        det.Kind,
		Info:        info,
		CurrentLang: current,
		Fallback:    fallback,
		Languages:   links,
	}, nil
}
