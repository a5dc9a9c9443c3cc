// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"html"
	"strings"

	"github.com/olegiv/ocms-langmap/internal/page"
)

// HreflangLink is one alternate-language link of a page.
type HreflangLink struct {
	Hreflang string `json:"hreflang"`
	Href     string `json:"href"`
}

// Tag renders the link as an HTML <link> element.
func (l HreflangLink) Tag() string {
	return `<link rel="alternate" hreflang="` + html.EscapeString(l.Hreflang) +
		`" href="` + html.EscapeString(l.Href) + `">`
}

// HreflangLinks returns the absolute alternate links of ctx in language
// order, followed by the x-default link pointing at the default language.
// Languages without an equivalent page are left out, as is x-default when
// the default language is one of them.
//
// A context in fallback mode links home pages, which are not equivalents of
// the requested page, so it yields no links.
func HreflangLinks(siteURL string, ctx *page.LanguageContext) []HreflangLink {
	if ctx == nil || ctx.Fallback {
		return nil
	}

	links := make([]HreflangLink, 0, len(ctx.Languages)+1)
	var def string
	for _, l := range ctx.Languages {
		if l.Untranslated {
			continue
		}
		href := AbsoluteURL(siteURL, l.Path)
		links = append(links, HreflangLink{Hreflang: l.Code, Href: href})
		if l.IsDefault {
			def = href
		}
	}
	if def != "" {
		links = append(links, HreflangLink{Hreflang: XDefault, Href: def})
	}
	return links
}

// HreflangTags renders links as HTML <link> elements, one per line.
func HreflangTags(links []HreflangLink) string {
	tags := make([]string, len(links))
	for i, l := range links {
		tags[i] = l.Tag()
	}
	return strings.Join(tags, "\n")
}
