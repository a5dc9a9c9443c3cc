// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "strings"

// Language text directions
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Language represents a site language offered in the language switcher.
type Language struct {
	Code       string `json:"code"`        // ISO 639-1: en, fr, de
	Name       string `json:"name"`        // English, French, German
	NativeName string `json:"native_name"` // English, Français, Deutsch
	Flag       string `json:"flag"`        // emoji flag for the switcher
	Direction  string `json:"direction"`   // ltr, rtl
	IsDefault  bool   `json:"is_default"`  // only one can be default
	Position   int    `json:"position"`    // sort order in language switcher
}

// IsRTL returns true if the language is right-to-left.
func (l *Language) IsRTL() bool {
	return l.Direction == DirectionRTL
}

// Label returns the name shown in the language switcher.
func (l *Language) Label() string {
	if l.NativeName != "" {
		return l.NativeName
	}
	if l.Name != "" {
		return l.Name
	}
	return strings.ToUpper(l.Code)
}

// CommonLanguages provides display metadata for commonly used languages.
var CommonLanguages = []struct {
	Code       string
	Name       string
	NativeName string
	Flag       string
	Direction  string
}{
	{"en", "English", "English", "🇬🇧", "ltr"},
	{"fr", "French", "Français", "🇫🇷", "ltr"},
	{"de", "German", "Deutsch", "🇩🇪", "ltr"},
	{"es", "Spanish", "Español", "🇪🇸", "ltr"},
	{"it", "Italian", "Italiano", "🇮🇹", "ltr"},
	{"pt", "Portuguese", "Português", "🇵🇹", "ltr"},
	{"nl", "Dutch", "Nederlands", "🇳🇱", "ltr"},
	{"pl", "Polish", "Polski", "🇵🇱", "ltr"},
	{"ru", "Russian", "Русский", "🇷🇺", "ltr"},
	{"uk", "Ukrainian", "Українська", "🇺🇦", "ltr"},
	{"zh", "Chinese", "中文", "🇨🇳", "ltr"},
	{"ja", "Japanese", "日本語", "🇯🇵", "ltr"},
	{"ko", "Korean", "한국어", "🇰🇷", "ltr"},
	{"ar", "Arabic", "العربية", "🇸🇦", "rtl"},
	{"he", "Hebrew", "עברית", "🇮🇱", "rtl"},
	{"fa", "Persian", "فارسی", "🇮🇷", "rtl"},
	{"tr", "Turkish", "Türkçe", "🇹🇷", "ltr"},
}

// LookupLanguage builds a Language for code from CommonLanguages.
// Unknown codes get the upper-cased code as name and left-to-right direction.
func LookupLanguage(code string) Language {
	code = strings.ToLower(code)
	for _, l := range CommonLanguages {
		if l.Code == code {
			return Language{
				Code:       l.Code,
				Name:       l.Name,
				NativeName: l.NativeName,
				Flag:       l.Flag,
				Direction:  l.Direction,
			}
		}
	}
	return Language{
		Code:      code,
		Name:      strings.ToUpper(code),
		Direction: DirectionLTR,
	}
}
