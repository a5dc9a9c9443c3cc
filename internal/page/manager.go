// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// Config holds the dependencies of a Manager.
type Config struct {
	Languages  *i18n.Set
	Categories i18n.Dictionary
	Tags       i18n.Dictionary
	Routes     Routes
	Logger     *slog.Logger
	// Diagnostics enables debug logging of tag translation fallbacks.
	// Intended for non-production environments.
	Diagnostics bool
}

// Manager runs the detector chain and delegates mapping to the mapper of
// the detected kind. It holds no per-request state and is safe for
// concurrent use.
type Manager struct {
	langs     *i18n.Set
	routes    Routes
	detectors []Detector
	normal    *NormalDetector
	mappers   map[Kind]Mapper
	logger    *slog.Logger
}

// NewManager validates cfg and registers the detectors in priority order:
// article, category, tag, normal.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Languages == nil {
		return nil, errors.New("page manager: language set is required")
	}
	if cfg.Categories == nil {
		return nil, errors.New("page manager: category dictionary is required")
	}
	if cfg.Tags == nil {
		return nil, errors.New("page manager: tag dictionary is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	routes := cfg.Routes.withDefaults()
	for lang := range routes.Category {
		if err := cfg.Languages.Validate(lang); err != nil {
			return nil, fmt.Errorf("page manager: category route: %w", err)
		}
	}

	langs := cfg.Languages
	normal := NewNormalDetector(langs)

	m := &Manager{
		langs:  langs,
		routes: routes,
		normal: normal,
		logger: logger,
		detectors: []Detector{
			NewArticleDetector(langs, routes),
			NewCategoryDetector(langs, routes, cfg.Categories),
			NewTagDetector(langs, routes, cfg.Tags),
			normal,
		},
		mappers: make(map[Kind]Mapper, 4),
	}

	for _, mp := range []Mapper{
		NewArticleMapper(langs, routes),
		NewCategoryMapper(langs, routes, cfg.Categories),
		NewTagMapper(langs, routes, cfg.Tags, logger, cfg.Diagnostics),
		NewNormalMapper(langs),
	} {
		m.mappers[mp.Kind()] = mp
	}

	return m, nil
}

// Languages returns the manager's language set.
func (m *Manager) Languages() *i18n.Set {
	return m.langs
}

// Routes returns the route segment names in use.
func (m *Manager) Routes() Routes {
	return m.routes
}

// DetectPage classifies path. Detectors are tried in priority order and the
// first one whose IsPageKind and ExtractPageInfo both succeed wins; an
// extraction failure falls through to the next detector. With the normal
// detector last the result is always found.
func (m *Manager) DetectPage(path string) (Detection, bool) {
	return detect(m.detectors, path)
}

func detect(chain []Detector, path string) (Detection, bool) {
	for _, d := range chain {
		if !d.IsPageKind(path) {
			continue
		}
		info, ok := d.ExtractPageInfo(path)
		if !ok {
			continue
		}
		return Detection{Kind: info.Kind(), Info: info}, true
	}
	return Detection{}, false
}

// detectNormal runs the normal detector explicitly.
func (m *Manager) detectNormal(path string) Detection {
	info, _ := m.normal.ExtractPageInfo(path)
	return Detection{Kind: KindNormal, Info: info}
}

// CreateURLMapping delegates to the mapper registered for info's kind.
// Article info without translations gets them built from mc.Articles.
func (m *Manager) CreateURLMapping(info Info, mc MappingContext) (URLMapping, error) {
	switch i := info.(type) {
	case ArticleInfo:
		if i.Translations == nil {
			t, err := BuildTranslationMapping(m.langs, mc.Articles, i.DetectedLang, i.Slug)
			if err != nil {
				return nil, err
			}
			i.Translations = t
			info = i
		}
	case CategoryInfo, TagInfo, NormalInfo:
	default:
		return nil, ErrUnknownInfo
	}

	mapper, ok := m.mappers[info.Kind()]
	if !ok {
		return nil, fmt.Errorf("no mapper for %s: %w", info.Kind(), ErrUnknownInfo)
	}
	return mapper.CreateURLMapping(info, mc)
}

// MapPath detects path and maps it in one call.
func (m *Manager) MapPath(path string, mc MappingContext) (Detection, URLMapping, error) {
	path = util.CleanURLPath(path)
	det, ok := m.DetectPage(path)
	if !ok {
		det = m.detectNormal(path)
	}
	if mc.CurrentPath == "" {
		mc.CurrentPath = m.langs.StripPrefix(path)
	}
	mapping, err := m.CreateURLMapping(det.Info, mc)
	return det, mapping, err
}

// homeMapping links every language to its home page.
func (m *Manager) homeMapping() URLMapping {
	mapping := make(URLMapping, len(m.langs.Codes()))
	for _, code := range m.langs.Codes() {
		mapping[code] = m.langs.HomePath(code)
	}
	return mapping
}
