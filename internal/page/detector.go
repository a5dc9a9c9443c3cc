// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// Detector recognizes one page kind.
type Detector interface {
	Kind() Kind
	// IsPageKind reports whether path has the shape of this kind.
	IsPageKind(path string) bool
	// ExtractPageInfo returns the typed info for path. It reports false
	// when the shape matched but the identifying data could not be
	// resolved.
	ExtractPageInfo(path string) (Info, bool)
	// DetectLanguage returns the language this detector reads from path,
	// or "" when it is not recognized.
	DetectLanguage(path string) string
}

// taxonomyPath matches the two listing shapes shared by categories and tags:
// "/{root(default)}/{token}" for the default language and
// "/{lang}/{root(lang)}/{token}" for every other supported language. An
// explicit default prefix ("/en/category/x") is read like the unprefixed
// form, as ArticleDetector does.
func taxonomyPath(langs *i18n.Set, path string, root func(lang string) string) (lang, token string, ok bool) {
	segs := util.Segments(path)
	switch len(segs) {
	case 2:
		def := langs.Default()
		if segs[0] == root(def) {
			return def, segs[1], true
		}
	case 3:
		code := segs[0]
		if langs.IsSupported(code) && segs[1] == root(code) {
			return code, segs[2], true
		}
	}
	return "", "", false
}
