// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n provides the supported-language set and the translation
// dictionaries used to resolve localized category and tag URLs.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/olegiv/ocms-langmap/internal/model"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// ErrUnsupportedLanguage is returned when a language code is not a member
// of the configured language set.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Set is the closed, ordered set of supported languages with exactly one
// default. The default language's paths carry no prefix; every other
// language prefixes its paths with "/{code}".
//
// A Set is immutable after NewSet and safe for concurrent use.
type Set struct {
	languages   []model.Language
	byCode      map[string]model.Language
	defaultCode string
	matcher     language.Matcher
	tags        []language.Tag
}

// NewSet builds a language set from codes in switcher order.
// Display metadata comes from model.CommonLanguages.
func NewSet(codes []string, defaultCode string) (*Set, error) {
	if len(codes) == 0 {
		return nil, errors.New("language set must not be empty")
	}

	defaultCode = strings.ToLower(strings.TrimSpace(defaultCode))
	s := &Set{
		languages:   make([]model.Language, 0, len(codes)),
		byCode:      make(map[string]model.Language, len(codes)),
		defaultCode: defaultCode,
	}

	for i, raw := range codes {
		code := strings.ToLower(strings.TrimSpace(raw))
		if !util.IsValidLangCode(code) {
			return nil, fmt.Errorf("invalid language code %q", raw)
		}
		if _, dup := s.byCode[code]; dup {
			return nil, fmt.Errorf("duplicate language code %q", code)
		}

		lang := model.LookupLanguage(code)
		lang.Position = i
		lang.IsDefault = code == defaultCode
		s.languages = append(s.languages, lang)
		s.byCode[code] = lang

		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("parsing language tag %q: %w", code, err)
		}
		s.tags = append(s.tags, tag)
	}

	if _, ok := s.byCode[defaultCode]; !ok {
		return nil, fmt.Errorf("default language %q: %w", defaultCode, ErrUnsupportedLanguage)
	}

	s.matcher = language.NewMatcher(s.tags)
	return s, nil
}

// MustNewSet is like NewSet but panics on error. Intended for tests and
// package-level fixtures.
func MustNewSet(codes []string, defaultCode string) *Set {
	s, err := NewSet(codes, defaultCode)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the default language code.
func (s *Set) Default() string {
	return s.defaultCode
}

// Codes returns the supported codes in switcher order.
func (s *Set) Codes() []string {
	codes := make([]string, len(s.languages))
	for i, l := range s.languages {
		codes[i] = l.Code
	}
	return codes
}

// Languages returns a copy of the supported languages in switcher order.
func (s *Set) Languages() []model.Language {
	out := make([]model.Language, len(s.languages))
	copy(out, s.languages)
	return out
}

// Get returns the language for code.
func (s *Set) Get(code string) (model.Language, bool) {
	l, ok := s.byCode[code]
	return l, ok
}

// IsSupported reports whether code is a member of the set.
func (s *Set) IsSupported(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// IsDefault reports whether code is the default language.
func (s *Set) IsDefault(code string) bool {
	return code == s.defaultCode
}

// Validate returns an error wrapping ErrUnsupportedLanguage when code is
// not in the set.
func (s *Set) Validate(code string) error {
	if !s.IsSupported(code) {
		return fmt.Errorf("language %q: %w", code, ErrUnsupportedLanguage)
	}
	return nil
}

// Localize returns p as seen from language code: unchanged for the default
// language, prefixed with "/{code}" otherwise. The root maps to "/{code}".
// p must be rooted and must not carry a language prefix.
func (s *Set) Localize(code, p string) string {
	if p == "" {
		p = "/"
	}
	if s.IsDefault(code) {
		return p
	}
	if p == "/" {
		return "/" + code
	}
	return "/" + code + p
}

// HomePath returns the home page path for language code.
func (s *Set) HomePath(code string) string {
	return s.Localize(code, "/")
}

// SplitPrefix reads a leading language segment from p. When the first
// segment is a supported code (the default code included) it returns that
// code, the rooted remainder, and true. Otherwise it returns "", p, false.
func (s *Set) SplitPrefix(p string) (string, string, bool) {
	segs := util.Segments(p)
	if len(segs) == 0 || !s.IsSupported(segs[0]) {
		return "", p, false
	}
	return segs[0], util.JoinSegments(segs[1:]...), true
}

// StripPrefix removes a leading language segment from p, if any.
func (s *Set) StripPrefix(p string) string {
	_, rest, _ := s.SplitPrefix(p)
	return rest
}

// PrefixLanguage returns the language named by the path prefix, or the
// default language when p carries no recognized prefix.
func (s *Set) PrefixLanguage(p string) string {
	if code, _, ok := s.SplitPrefix(p); ok {
		return code
	}
	return s.defaultCode
}

// Match finds the best supported language for an Accept-Language header
// value or a single language code. Returns the default on no match.
func (s *Set) Match(acceptLang string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		// Try as a single language code
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return s.defaultCode
		}
		tags = []language.Tag{tag}
	}

	_, idx, conf := s.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(s.languages) {
		return s.defaultCode
	}
	return s.languages[idx].Code
}
