// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"fmt"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// CategoryDetector recognizes category listings. The list root segment is
// localized: "/category/{token}" in English, "/fr/categorie/{token}" in
// French.
type CategoryDetector struct {
	langs  *i18n.Set
	routes Routes
	dict   i18n.Dictionary
}

// NewCategoryDetector creates a category detector backed by dict.
func NewCategoryDetector(langs *i18n.Set, routes Routes, dict i18n.Dictionary) *CategoryDetector {
	return &CategoryDetector{langs: langs, routes: routes.withDefaults(), dict: dict}
}

// Kind implements Detector.
func (d *CategoryDetector) Kind() Kind { return KindCategory }

func (d *CategoryDetector) match(path string) (lang, token string, ok bool) {
	return taxonomyPath(d.langs, path, d.routes.CategoryRoot)
}

// IsPageKind implements Detector. Only the path shape is checked.
func (d *CategoryDetector) IsPageKind(path string) bool {
	_, _, ok := d.match(path)
	return ok
}

// ExtractPageInfo implements Detector. It fails when the token does not
// denormalize to a category of the detected language.
func (d *CategoryDetector) ExtractPageInfo(path string) (Info, bool) {
	lang, token, ok := d.match(path)
	if !ok {
		return nil, false
	}
	name, ok := util.Denormalize(token, i18n.Values(d.dict, lang))
	if !ok {
		return nil, false
	}
	return CategoryInfo{DetectedLang: lang, Name: name}, true
}

// DetectLanguage implements Detector.
func (d *CategoryDetector) DetectLanguage(path string) string {
	lang, _, _ := d.match(path)
	return lang
}

// CategoryMapper translates a category through its dictionary key. A name
// without a key in the source language fails the whole mapping with
// ErrUnmappedCategory. A target language where the key has no usable value
// links to that language's home page.
type CategoryMapper struct {
	langs  *i18n.Set
	routes Routes
	dict   i18n.Dictionary
}

// NewCategoryMapper creates a category mapper backed by dict.
func NewCategoryMapper(langs *i18n.Set, routes Routes, dict i18n.Dictionary) *CategoryMapper {
	return &CategoryMapper{langs: langs, routes: routes.withDefaults(), dict: dict}
}

// Kind implements Mapper.
func (m *CategoryMapper) Kind() Kind { return KindCategory }

// CreateURLMapping implements Mapper.
func (m *CategoryMapper) CreateURLMapping(info Info, _ MappingContext) (URLMapping, error) {
	ci, ok := info.(CategoryInfo)
	if !ok {
		return nil, mismatch(KindCategory, info)
	}
	src, err := sourceLanguage(m.langs, ci)
	if err != nil {
		return nil, err
	}

	key, ok := i18n.KeyFor(m.dict, src, ci.Name)
	if !ok {
		return nil, fmt.Errorf("category %q in %s: %w", ci.Name, src, ErrUnmappedCategory)
	}

	mapping := make(URLMapping, len(m.langs.Codes()))
	for _, code := range m.langs.Codes() {
		path, ok := m.categoryPath(code, key)
		if !ok {
			path = m.langs.HomePath(code)
		}
		mapping[code] = path
	}
	return mapping, nil
}

func (m *CategoryMapper) categoryPath(code, key string) (string, bool) {
	value, ok := i18n.Translate(m.dict, code, key)
	if !ok {
		return "", false
	}
	token := util.Normalize(value)
	if token == "" {
		return "", false
	}
	return m.langs.Localize(code, util.JoinSegments(m.routes.CategoryRoot(code), token)), true
}
