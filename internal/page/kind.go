// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package page classifies request paths into page kinds and maps each
// classified page to its equivalent path in every supported language.
//
// Detection runs a fixed chain of detectors (article, category, tag,
// normal); the first one that both recognizes the path and extracts its
// info wins. The normal detector always matches, so detection is total.
// Mapping delegates to the mapper registered for the detected kind.
package page

import "fmt"

// Kind identifies the logical page kind of a path.
type Kind int

// Page kinds, in detection priority order.
const (
	KindArticle Kind = iota
	KindCategory
	KindTag
	KindNormal
)

func (k Kind) String() string {
	switch k {
	case KindArticle:
		return "article"
	case KindCategory:
		return "category"
	case KindTag:
		return "tag"
	case KindNormal:
		return "normal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Info is the typed result of detecting a page. It is implemented only by
// ArticleInfo, CategoryInfo, TagInfo and NormalInfo.
type Info interface {
	Kind() Kind
	// Language returns the detected language, or "" when the path's
	// language segment was not recognized.
	Language() string
	pageInfo()
}

// ArticleInfo describes a blog article page.
type ArticleInfo struct {
	DetectedLang string             `json:"detected_lang"`
	Slug         string             `json:"slug"`
	Translations TranslationMapping `json:"translations,omitempty"`
}

// CategoryInfo describes a category listing page. Name is the
// human-readable category name in the detected language.
type CategoryInfo struct {
	DetectedLang string `json:"detected_lang"`
	Name         string `json:"name"`
}

// TagInfo describes a tag listing page. Name is the human-readable tag
// name in the detected language.
type TagInfo struct {
	DetectedLang string `json:"detected_lang"`
	Name         string `json:"name"`
}

// NormalInfo describes any other page.
type NormalInfo struct {
	DetectedLang string `json:"detected_lang"`
}

func (ArticleInfo) Kind() Kind  { return KindArticle }
func (CategoryInfo) Kind() Kind { return KindCategory }
func (TagInfo) Kind() Kind      { return KindTag }
func (NormalInfo) Kind() Kind   { return KindNormal }

func (i ArticleInfo) Language() string  { return i.DetectedLang }
func (i CategoryInfo) Language() string { return i.DetectedLang }
func (i TagInfo) Language() string      { return i.DetectedLang }
func (i NormalInfo) Language() string   { return i.DetectedLang }

func (ArticleInfo) pageInfo()  {}
func (CategoryInfo) pageInfo() {}
func (TagInfo) pageInfo()      {}
func (NormalInfo) pageInfo()   {}

// Detection pairs a detected kind with its info.
type Detection struct {
	Kind Kind `json:"kind"`
	Info Info `json:"info"`
}
