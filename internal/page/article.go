// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"fmt"
	"strings"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// ArticleDetector recognizes "/blog/{lang}/{slug...}", optionally reached
// through a site language prefix ("/fr/blog/en/guide"). The site prefix
// and the article's own language segment are independent.
type ArticleDetector struct {
	langs  *i18n.Set
	routes Routes
}

// NewArticleDetector creates an article detector.
func NewArticleDetector(langs *i18n.Set, routes Routes) *ArticleDetector {
	return &ArticleDetector{langs: langs, routes: routes.withDefaults()}
}

// Kind implements Detector.
func (d *ArticleDetector) Kind() Kind { return KindArticle }

func (d *ArticleDetector) match(path string) (lang, slug string, ok bool) {
	_, rest, _ := d.langs.SplitPrefix(path)
	segs := util.Segments(rest)
	if len(segs) < 3 || segs[0] != d.routes.Blog {
		return "", "", false
	}
	return segs[1], strings.Join(segs[2:], "/"), true
}

// IsPageKind implements Detector.
func (d *ArticleDetector) IsPageKind(path string) bool {
	_, _, ok := d.match(path)
	return ok
}

// ExtractPageInfo implements Detector. An unrecognized language segment
// still yields an article, with an empty DetectedLang.
func (d *ArticleDetector) ExtractPageInfo(path string) (Info, bool) {
	lang, slug, ok := d.match(path)
	if !ok {
		return nil, false
	}
	if !d.langs.IsSupported(lang) {
		lang = ""
	}
	return ArticleInfo{DetectedLang: lang, Slug: slug}, true
}

// DetectLanguage implements Detector.
func (d *ArticleDetector) DetectLanguage(path string) string {
	lang, _, ok := d.match(path)
	if !ok || !d.langs.IsSupported(lang) {
		return ""
	}
	return lang
}

// ArticleMapper links an article to its translations. Languages without a
// translation link to their home page.
type ArticleMapper struct {
	langs  *i18n.Set
	routes Routes
}

// NewArticleMapper creates an article mapper.
func NewArticleMapper(langs *i18n.Set, routes Routes) *ArticleMapper {
	return &ArticleMapper{langs: langs, routes: routes.withDefaults()}
}

// Kind implements Mapper.
func (m *ArticleMapper) Kind() Kind { return KindArticle }

// CreateURLMapping implements Mapper. info must carry its Translations.
func (m *ArticleMapper) CreateURLMapping(info Info, _ MappingContext) (URLMapping, error) {
	ai, ok := info.(ArticleInfo)
	if !ok {
		return nil, mismatch(KindArticle, info)
	}
	if ai.Translations == nil {
		return nil, fmt.Errorf("article %q: %w", ai.Slug, ErrMissingTranslations)
	}
	for lang := range ai.Translations {
		if err := m.langs.Validate(lang); err != nil {
			return nil, fmt.Errorf("translation table of article %q: %w", ai.Slug, err)
		}
	}

	mapping := make(URLMapping, len(m.langs.Codes()))
	for _, code := range m.langs.Codes() {
		if slug := ai.Translations[code]; slug != "" {
			mapping[code] = ArticlePath(m.routes, code, slug)
			continue
		}
		mapping[code] = m.langs.HomePath(code)
	}
	return mapping, nil
}

// ArticlePath returns the canonical path of an article.
func ArticlePath(routes Routes, lang, slug string) string {
	routes = routes.withDefaults()
	return util.JoinSegments(routes.Blog, lang) + "/" + strings.Trim(slug, "/")
}
