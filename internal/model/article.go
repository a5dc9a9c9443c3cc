// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Article is one entry of the content listing used to link translations.
// Articles that are translations of one another share a TranslationID.
// Slug is kind-local: it carries neither the blog segment nor the language.
type Article struct {
	Slug          string    `json:"slug" yaml:"slug"`
	Language      string    `json:"language" yaml:"language"`
	TranslationID string    `json:"translation_id,omitempty" yaml:"translation_id,omitempty"`
	Title         string    `json:"title,omitempty" yaml:"title,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// HasTranslationGroup reports whether the article belongs to a translation group.
func (a *Article) HasTranslationGroup() bool {
	return a.TranslationID != ""
}
