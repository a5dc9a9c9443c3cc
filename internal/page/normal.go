// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// NormalDetector matches every path. It must be the last detector of a
// chain.
type NormalDetector struct {
	langs *i18n.Set
}

// NewNormalDetector creates the fallback detector.
func NewNormalDetector(langs *i18n.Set) *NormalDetector {
	return &NormalDetector{langs: langs}
}

// Kind implements Detector.
func (d *NormalDetector) Kind() Kind { return KindNormal }

// IsPageKind implements Detector. Always true.
func (d *NormalDetector) IsPageKind(string) bool { return true }

// ExtractPageInfo implements Detector.
func (d *NormalDetector) ExtractPageInfo(path string) (Info, bool) {
	return NormalInfo{DetectedLang: d.DetectLanguage(path)}, true
}

// DetectLanguage implements Detector. Paths without a recognized prefix
// belong to the default language.
func (d *NormalDetector) DetectLanguage(path string) string {
	return d.langs.PrefixLanguage(path)
}

// NormalMapper prefixes the current path for every non-default language.
type NormalMapper struct {
	langs *i18n.Set
}

// NewNormalMapper creates the normal page mapper.
func NewNormalMapper(langs *i18n.Set) *NormalMapper {
	return &NormalMapper{langs: langs}
}

// Kind implements Mapper.
func (m *NormalMapper) Kind() Kind { return KindNormal }

// CreateURLMapping implements Mapper. mc.CurrentPath must already have its
// language prefix stripped; an empty path maps the home page.
func (m *NormalMapper) CreateURLMapping(info Info, mc MappingContext) (URLMapping, error) {
	if _, ok := info.(NormalInfo); !ok {
		return nil, mismatch(KindNormal, info)
	}

	current := util.CleanURLPath(mc.CurrentPath)
	mapping := make(URLMapping, len(m.langs.Codes()))
	for _, code := range m.langs.Codes() {
		mapping[code] = m.langs.Localize(code, current)
	}
	return mapping, nil
}
