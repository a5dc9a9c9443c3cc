// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"errors"
	"fmt"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/model"
)

var (
	// ErrKindMismatch is returned when a mapper receives info of another kind.
	ErrKindMismatch = errors.New("page info does not match mapper kind")
	// ErrMissingTranslations is returned when article info carries no
	// translation mapping and none can be built.
	ErrMissingTranslations = errors.New("article info has no translation mapping")
	// ErrUnmappedCategory is returned when a category name has no
	// dictionary key in its source language.
	ErrUnmappedCategory = errors.New("category has no dictionary key")
	// ErrUnknownInfo is returned for nil or foreign Info values.
	ErrUnknownInfo = errors.New("unknown page info")
)

// URLMapping maps every supported language code to the equivalent path.
type URLMapping map[string]string

// Complete reports whether m holds exactly one non-empty path per
// language of langs and nothing else.
func (m URLMapping) Complete(langs *i18n.Set) bool {
	codes := langs.Codes()
	if len(m) != len(codes) {
		return false
	}
	for _, code := range codes {
		if m[code] == "" {
			return false
		}
	}
	return true
}

// MappingContext carries per-request data some mappers need.
type MappingContext struct {
	// CurrentPath is the request path with its site language prefix
	// stripped. Used by the normal mapper.
	CurrentPath string
	// Articles is the content listing used to link article translations.
	Articles []model.Article
}

// Mapper produces the cross-language URL mapping for one page kind.
// A non-nil error always comes with a nil mapping.
type Mapper interface {
	Kind() Kind
	CreateURLMapping(info Info, mc MappingContext) (URLMapping, error)
}

// sourceLanguage returns the language info was detected in, falling back to
// the default language when it was not recognized.
func sourceLanguage(langs *i18n.Set, info Info) (string, error) {
	lang := info.Language()
	if lang == "" {
		return langs.Default(), nil
	}
	if err := langs.Validate(lang); err != nil {
		return "", fmt.Errorf("%s page: %w", info.Kind(), err)
	}
	return lang, nil
}

func mismatch(want Kind, info Info) error {
	if info == nil {
		return fmt.Errorf("%s mapper: %w", want, ErrUnknownInfo)
	}
	return fmt.Errorf("%s mapper got %s info: %w", want, info.Kind(), ErrKindMismatch)
}
