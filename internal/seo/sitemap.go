// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds the search-engine facing views of the language map:
// sitemaps with per-language alternates, hreflang links, and robots.txt.
package seo

import (
	"encoding/xml"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/model"
	"github.com/olegiv/ocms-langmap/internal/page"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// XML namespaces used by the sitemap document.
const (
	XMLNamespace   = "http://www.sitemaps.org/schemas/sitemap/0.9"
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
)

// XDefault is the hreflang value of the language-neutral alternate.
const XDefault = "x-default"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// AlternateLink is an xhtml:link element pointing to a translation.
type AlternateLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string          `xml:"loc"`
	LastMod    string          `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq      `xml:"changefreq,omitempty"`
	Priority   string          `xml:"priority,omitempty"`
	Alternates []AlternateLink `xml:"xhtml:link"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName    xml.Name     `xml:"urlset"`
	XMLNS      string       `xml:"xmlns,attr"`
	XMLNSXHTML string       `xml:"xmlns:xhtml,attr"`
	URLs       []SitemapURL `xml:"url"`
}

// SitemapPage contains data needed to add a static page to the sitemap.
// Path is given in the default language, without prefix.
type SitemapPage struct {
	Path      string
	UpdatedAt time.Time
}

// SitemapBuilder builds sitemap XML. Every logical page contributes one
// entry per language, each listing all language versions as alternates.
type SitemapBuilder struct {
	siteURL string
	manager *page.Manager
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder resolving paths with m.
func NewSitemapBuilder(siteURL string, m *page.Manager) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		manager: m,
		urls:    make([]SitemapURL, 0),
	}
}

// URLs returns the entries added so far.
func (b *SitemapBuilder) URLs() []SitemapURL {
	return b.urls
}

// AddHomepage adds every language home page.
func (b *SitemapBuilder) AddHomepage() error {
	_, mapping, err := b.manager.MapPath("/", page.MappingContext{})
	if err != nil {
		return err
	}
	b.addGroup(mapping, b.manager.Languages().Codes(), ChangeFreqDaily, "1.0", time.Time{})
	return nil
}

// AddPage adds a static page in every language.
func (b *SitemapBuilder) AddPage(p SitemapPage) error {
	_, mapping, err := b.manager.MapPath(p.Path, page.MappingContext{})
	if err != nil {
		return fmt.Errorf("sitemap page %q: %w", p.Path, err)
	}
	b.addGroup(mapping, b.manager.Languages().Codes(), ChangeFreqWeekly, "0.8", p.UpdatedAt)
	return nil
}

// AddPages adds multiple static pages.
func (b *SitemapBuilder) AddPages(pages []SitemapPage) error {
	for _, p := range pages {
		if err := b.AddPage(p); err != nil {
			return err
		}
	}
	return nil
}

// AddArticles adds every article of the listing. Only existing translations
// are listed as alternates; a missing translation is not linked to a home
// page here.
func (b *SitemapBuilder) AddArticles(articles []model.Article) error {
	langs := b.manager.Languages()
	routes := b.manager.Routes()

	for _, a := range articles {
		translations, err := page.BuildTranslationMapping(langs, articles, a.Language, a.Slug)
		if err != nil {
			return fmt.Errorf("sitemap article %q: %w", a.Slug, err)
		}
		if !translations.Has(a.Language) {
			continue
		}

		var alternates []AlternateLink
		for _, code := range langs.Codes() {
			if !translations.Has(code) {
				continue
			}
			alternates = append(alternates, b.alternate(code, page.ArticlePath(routes, code, translations[code])))
		}
		if def := langs.Default(); translations.Has(def) {
			alternates = append(alternates, b.alternate(XDefault, page.ArticlePath(routes, def, translations[def])))
		}

		url := SitemapURL{
			Loc:        b.absolute(page.ArticlePath(routes, a.Language, a.Slug)),
			ChangeFreq: ChangeFreqMonthly,
			Priority:   "0.7",
			Alternates: alternates,
		}
		if !a.UpdatedAt.IsZero() {
			url.LastMod = a.UpdatedAt.Format(time.RFC3339)
		}
		b.urls = append(b.urls, url)
	}
	return nil
}

// AddCategories adds the listing page of every category of dict, in
// language order. A category is listed only in the languages where it has
// a name; the languages it maps to a home page are left out.
func (b *SitemapBuilder) AddCategories(dict i18n.Dictionary) error {
	langs := b.manager.Languages()
	seen := make(map[string]bool)

	for _, lang := range langs.Codes() {
		for _, name := range i18n.Values(dict, lang) {
			key, _ := i18n.KeyFor(dict, lang, name)
			if seen[key] {
				continue
			}
			seen[key] = true

			mapping, err := b.manager.CreateURLMapping(page.CategoryInfo{DetectedLang: lang, Name: name}, page.MappingContext{})
			if err != nil {
				return fmt.Errorf("sitemap category %q: %w", name, err)
			}
			var codes []string
			for _, code := range langs.Codes() {
				if mapping[code] != langs.HomePath(code) {
					codes = append(codes, code)
				}
			}
			b.addGroup(mapping, codes, ChangeFreqWeekly, "0.6", time.Time{})
		}
	}
	return nil
}

// AddTags adds the listing page of every tag named in the default language
// of dict. A name without URL-safe characters would map to the tag index
// and is skipped.
func (b *SitemapBuilder) AddTags(dict i18n.Dictionary) error {
	def := b.manager.Languages().Default()

	for _, name := range i18n.Values(dict, def) {
		if util.Normalize(name) == "" {
			continue
		}
		mapping, err := b.manager.CreateURLMapping(page.TagInfo{DetectedLang: def, Name: name}, page.MappingContext{})
		if err != nil {
			return fmt.Errorf("sitemap tag %q: %w", name, err)
		}
		b.addGroup(mapping, b.manager.Languages().Codes(), ChangeFreqWeekly, "0.5", time.Time{})
	}
	return nil
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS:      XMLNamespace,
		XMLNSXHTML: XHTMLNamespace,
		URLs:       b.urls,
	}

	// Add XML header
	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// addGroup adds one entry for each of codes, each listing the others as
// alternates.
func (b *SitemapBuilder) addGroup(mapping page.URLMapping, codes []string, freq ChangeFreq, priority string, updatedAt time.Time) {
	alternates := b.alternates(mapping, codes)
	for _, code := range codes {
		url := SitemapURL{
			Loc:        b.absolute(mapping[code]),
			ChangeFreq: freq,
			Priority:   priority,
			Alternates: alternates,
		}
		if !updatedAt.IsZero() {
			url.LastMod = updatedAt.Format(time.RFC3339)
		}
		b.urls = append(b.urls, url)
	}
}

func (b *SitemapBuilder) alternates(mapping page.URLMapping, codes []string) []AlternateLink {
	def := b.manager.Languages().Default()
	links := make([]AlternateLink, 0, len(codes)+1)
	for _, code := range codes {
		links = append(links, b.alternate(code, mapping[code]))
	}
	if slices.Contains(codes, def) {
		links = append(links, b.alternate(XDefault, mapping[def]))
	}
	return links
}

func (b *SitemapBuilder) alternate(hreflang, path string) AlternateLink {
	return AlternateLink{Rel: "alternate", Hreflang: hreflang, Href: b.absolute(path)}
}

func (b *SitemapBuilder) absolute(path string) string {
	return AbsoluteURL(b.siteURL, path)
}

// AbsoluteURL joins siteURL and a rooted path.
func AbsoluteURL(siteURL, path string) string {
	siteURL = strings.TrimSuffix(siteURL, "/")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return siteURL + path
}

// SitemapSource is everything GenerateSitemap lists.
type SitemapSource struct {
	StaticPages []string
	Articles    []model.Article
	Categories  i18n.Dictionary
	Tags        i18n.Dictionary
}

// GenerateSitemap is a convenience function to generate a sitemap from
// content. Static pages are emitted in sorted order.
func GenerateSitemap(siteURL string, m *page.Manager, src SitemapSource) ([]byte, error) {
	builder := NewSitemapBuilder(siteURL, m)
	if err := builder.AddHomepage(); err != nil {
		return nil, err
	}

	paths := append([]string(nil), src.StaticPages...)
	sort.Strings(paths)
	pages := make([]SitemapPage, 0, len(paths))
	for _, p := range paths {
		pages = append(pages, SitemapPage{Path: p})
	}
	if err := builder.AddPages(pages); err != nil {
		return nil, err
	}

	if err := builder.AddArticles(src.Articles); err != nil {
		return nil, err
	}
	if src.Categories != nil {
		if err := builder.AddCategories(src.Categories); err != nil {
			return nil, err
		}
	}
	if src.Tags != nil {
		if err := builder.AddTags(src.Tags); err != nil {
			return nil, err
		}
	}
	return builder.Build()
}
