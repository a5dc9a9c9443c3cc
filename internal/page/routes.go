// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

// Default route segment names.
const (
	DefaultBlogSegment     = "blog"
	DefaultTagSegment      = "tag"
	DefaultCategorySegment = "category"
)

// Routes names the path segments that identify page kinds. The category
// list root is localized per language; blog and tag roots are not.
type Routes struct {
	Blog string
	Tag  string
	// Category maps a language code to its category list root.
	// Languages without an entry use DefaultCategorySegment.
	Category map[string]string
}

// DefaultRoutes returns the routes of the bilingual sample site.
func DefaultRoutes() Routes {
	return Routes{
		Blog: DefaultBlogSegment,
		Tag:  DefaultTagSegment,
		Category: map[string]string{
			"en": "category",
			"fr": "categorie",
		},
	}
}

// CategoryRoot returns the category list root segment for lang.
func (r Routes) CategoryRoot(lang string) string {
	if seg, ok := r.Category[lang]; ok && seg != "" {
		return seg
	}
	return DefaultCategorySegment
}

// withDefaults fills empty segments.
func (r Routes) withDefaults() Routes {
	if r.Blog == "" {
		r.Blog = DefaultBlogSegment
	}
	if r.Tag == "" {
		r.Tag = DefaultTagSegment
	}
	return r
}
