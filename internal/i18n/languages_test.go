// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"errors"
	"testing"
)

func TestNewSet(t *testing.T) {
	tests := []struct {
		name        string
		codes       []string
		defaultCode string
		wantErr     bool
	}{
		{"two languages", []string{"en", "fr"}, "en", false},
		{"mixed case and spaces", []string{" EN ", "Fr"}, "en", false},
		{"default not french", []string{"en", "fr"}, "fr", false},
		{"empty set", nil, "en", true},
		{"default missing", []string{"en", "fr"}, "de", true},
		{"invalid code", []string{"en", "fra"}, "en", true},
		{"duplicate code", []string{"en", "en"}, "en", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSet(tt.codes, tt.defaultCode)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSet() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSetDefaultMissingIsUnsupported(t *testing.T) {
	_, err := NewSet([]string{"en"}, "fr")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("NewSet() error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestSetMetadata(t *testing.T) {
	s := MustNewSet([]string{"en", "fr"}, "en")

	if s.Default() != "en" {
		t.Errorf("Default() = %q, want %q", s.Default(), "en")
	}
	codes := s.Codes()
	if len(codes) != 2 || codes[0] != "en" || codes[1] != "fr" {
		t.Errorf("Codes() = %v, want [en fr]", codes)
	}

	fr, ok := s.Get("fr")
	if !ok {
		t.Fatal("Get(fr) not found")
	}
	if fr.NativeName != "Français" || fr.Position != 1 || fr.IsDefault {
		t.Errorf("Get(fr) = %+v", fr)
	}
	en, _ := s.Get("en")
	if !en.IsDefault {
		t.Error("en should be default")
	}

	if !s.IsSupported("fr") || s.IsSupported("de") {
		t.Error("IsSupported() mismatch")
	}
	if err := s.Validate("de"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Validate(de) = %v, want ErrUnsupportedLanguage", err)
	}
	if err := s.Validate("en"); err != nil {
		t.Errorf("Validate(en) = %v, want nil", err)
	}
}

func TestSetLocalize(t *testing.T) {
	s := MustNewSet([]string{"en", "fr"}, "en")

	tests := []struct {
		code string
		path string
		want string
	}{
		{"en", "/about", "/about"},
		{"fr", "/about", "/fr/about"},
		{"en", "/", "/"},
		{"fr", "/", "/fr"},
		{"fr", "", "/fr"},
		{"fr", "/tag/go", "/fr/tag/go"},
	}

	for _, tt := range tests {
		t.Run(tt.code+tt.path, func(t *testing.T) {
			if got := s.Localize(tt.code, tt.path); got != tt.want {
				t.Errorf("Localize(%q, %q) = %q, want %q", tt.code, tt.path, got, tt.want)
			}
		})
	}

	if got := s.HomePath("fr"); got != "/fr" {
		t.Errorf("HomePath(fr) = %q, want /fr", got)
	}
}

func TestSetSplitPrefix(t *testing.T) {
	s := MustNewSet([]string{"en", "fr"}, "en")

	tests := []struct {
		path     string
		wantCode string
		wantRest string
		wantOK   bool
	}{
		{"/fr/about", "fr", "/about", true},
		{"/fr", "fr", "/", true},
		{"/fr/", "fr", "/", true},
		{"/en/about", "en", "/about", true},
		{"/about", "", "/about", false},
		{"/de/about", "", "/de/about", false},
		{"/", "", "/", false},
		{"/blog/fr/guide", "", "/blog/fr/guide", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, rest, ok := s.SplitPrefix(tt.path)
			if code != tt.wantCode || rest != tt.wantRest || ok != tt.wantOK {
				t.Errorf("SplitPrefix(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.path, code, rest, ok, tt.wantCode, tt.wantRest, tt.wantOK)
			}
		})
	}

	if got := s.StripPrefix("/fr/contact"); got != "/contact" {
		t.Errorf("StripPrefix() = %q, want /contact", got)
	}
	if got := s.PrefixLanguage("/contact"); got != "en" {
		t.Errorf("PrefixLanguage() = %q, want en", got)
	}
	if got := s.PrefixLanguage("/fr/contact"); got != "fr" {
		t.Errorf("PrefixLanguage() = %q, want fr", got)
	}
}

func TestSetMatch(t *testing.T) {
	s := MustNewSet([]string{"en", "fr"}, "en")

	tests := []struct {
		name       string
		acceptLang string
		want       string
	}{
		{"exact", "fr", "fr"},
		{"regional", "fr-CA", "fr"},
		{"quality list", "de-DE,fr;q=0.8,en;q=0.5", "fr"},
		{"english first", "en-US,en;q=0.9,fr;q=0.8", "en"},
		{"no match", "de,es", "en"},
		{"empty", "", "en"},
		{"garbage", "!!!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Match(tt.acceptLang); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.acceptLang, got, tt.want)
			}
		})
	}
}
