// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides URL slug normalization and URL path helpers.
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks matches nonspacing marks (accents) after NFD decomposition.
var combiningMarks = runes.In(unicode.Mn)

// Normalize converts a human-readable category or tag name to a URL token.
//
// The name is lowercased, every accented character is dropped entirely
// ("é" contributes nothing, it is not transliterated to "e"), runs of
// characters outside [a-z0-9] become a single hyphen, and leading and
// trailing hyphens are trimmed. Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if hasDiacritic(r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// hasDiacritic reports whether r is a combining mark or a precomposed
// character whose canonical decomposition carries one.
func hasDiacritic(r rune) bool {
	if r < utf8.RuneSelf {
		return false
	}
	if combiningMarks.Contains(r) {
		return true
	}
	for _, d := range norm.NFD.String(string(r)) {
		if combiningMarks.Contains(d) {
			return true
		}
	}
	return false
}

// Denormalize maps a URL token back to a human-readable name.
// It returns the first candidate whose normalized form equals token,
// compared case-insensitively. It never returns a name outside candidates.
func Denormalize(token string, candidates []string) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, c := range candidates {
		if strings.EqualFold(Normalize(c), token) {
			return c, true
		}
	}
	return "", false
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	// Check if it only contains lowercase letters, numbers, and hyphens
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	// Check that it doesn't start or end with a hyphen
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	// Check for consecutive hyphens
	if strings.Contains(s, "--") {
		return false
	}

	return true
}

// IsValidLangCode checks if s looks like a two-letter ISO 639-1 code.
func IsValidLangCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
