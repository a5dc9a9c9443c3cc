// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"log/slog"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// TagDetector recognizes "/tag/{token}" and "/{lang}/tag/{token}". The tag
// root segment is not localized.
type TagDetector struct {
	langs  *i18n.Set
	routes Routes
	dict   i18n.Dictionary
}

// NewTagDetector creates a tag detector backed by dict.
func NewTagDetector(langs *i18n.Set, routes Routes, dict i18n.Dictionary) *TagDetector {
	return &TagDetector{langs: langs, routes: routes.withDefaults(), dict: dict}
}

// Kind implements Detector.
func (d *TagDetector) Kind() Kind { return KindTag }

func (d *TagDetector) match(path string) (lang, token string, ok bool) {
	return taxonomyPath(d.langs, path, func(string) string { return d.routes.Tag })
}

// IsPageKind implements Detector.
func (d *TagDetector) IsPageKind(path string) bool {
	_, _, ok := d.match(path)
	return ok
}

// ExtractPageInfo implements Detector. A token that matches no tag of the
// detected language is kept as the name so untranslated tags stay
// reachable.
func (d *TagDetector) ExtractPageInfo(path string) (Info, bool) {
	lang, token, ok := d.match(path)
	if !ok {
		return nil, false
	}
	name, ok := util.Denormalize(token, i18n.Values(d.dict, lang))
	if !ok {
		name = token
	}
	return TagInfo{DetectedLang: lang, Name: name}, true
}

// DetectLanguage implements Detector.
func (d *TagDetector) DetectLanguage(path string) string {
	lang, _, _ := d.match(path)
	return lang
}

// TagMapper translates a tag through its dictionary key. It is lenient:
// when the key or a target value is missing, the normalized source name is
// reused as the token for that language.
type TagMapper struct {
	langs       *i18n.Set
	routes      Routes
	dict        i18n.Dictionary
	logger      *slog.Logger
	diagnostics bool
}

// NewTagMapper creates a tag mapper backed by dict. With diagnostics
// enabled every fallback is logged at debug level.
func NewTagMapper(langs *i18n.Set, routes Routes, dict i18n.Dictionary, logger *slog.Logger, diagnostics bool) *TagMapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &TagMapper{
		langs:       langs,
		routes:      routes.withDefaults(),
		dict:        dict,
		logger:      logger,
		diagnostics: diagnostics,
	}
}

// Kind implements Mapper.
func (m *TagMapper) Kind() Kind { return KindTag }

// CreateURLMapping implements Mapper. Data misses never fail the mapping.
// A language where neither the translation nor the name itself has a
// URL-safe character (e.g. "日本語") links to its tag index.
func (m *TagMapper) CreateURLMapping(info Info, _ MappingContext) (URLMapping, error) {
	ti, ok := info.(TagInfo)
	if !ok {
		return nil, mismatch(KindTag, info)
	}
	src, err := sourceLanguage(m.langs, ti)
	if err != nil {
		return nil, err
	}

	key, hasKey := i18n.KeyFor(m.dict, src, ti.Name)
	fallback := util.Normalize(ti.Name)

	mapping := make(URLMapping, len(m.langs.Codes()))
	for _, code := range m.langs.Codes() {
		var token string
		if hasKey {
			if value, ok := i18n.Translate(m.dict, code, key); ok {
				token = util.Normalize(value)
			}
		}
		if token == "" {
			token = fallback
			if m.diagnostics {
				m.logger.Debug("tag translation missing, reusing normalized name",
					"tag", ti.Name, "key", key, "source_lang", src, "target_lang", code)
			}
		}

		p := util.JoinSegments(m.routes.Tag)
		if token != "" {
			p = util.JoinSegments(m.routes.Tag, token)
		}
		mapping[code] = m.langs.Localize(code, p)
	}
	return mapping, nil
}
