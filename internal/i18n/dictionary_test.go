// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testTable() Table {
	return Table{
		"en": {"language": "Language", "framework": "Framework", "empty": ""},
		"fr": {"language": "Langage", "framework": "Framework"},
	}
}

func TestTableLookup(t *testing.T) {
	table := testTable()

	if got := table.Lookup("fr")["language"]; got != "Langage" {
		t.Errorf("Lookup(fr)[language] = %q, want Langage", got)
	}
	missing := table.Lookup("de")
	if missing == nil || len(missing) != 0 {
		t.Errorf("Lookup(de) = %v, want empty map", missing)
	}
}

func TestValues(t *testing.T) {
	got := Values(testTable(), "en")
	want := []string{"Framework", "Language"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values(en) = %v, want %v", got, want)
	}
}

func TestKeyFor(t *testing.T) {
	table := testTable()

	if key, ok := KeyFor(table, "fr", "Langage"); !ok || key != "language" {
		t.Errorf("KeyFor(fr, Langage) = %q, %v", key, ok)
	}
	if _, ok := KeyFor(table, "en", "Langage"); ok {
		t.Error("KeyFor(en, Langage) should not match")
	}
	if _, ok := KeyFor(table, "de", "Language"); ok {
		t.Error("KeyFor on missing language should not match")
	}
}

func TestTranslate(t *testing.T) {
	table := testTable()

	tests := []struct {
		name   string
		lang   string
		key    string
		want   string
		wantOK bool
	}{
		{"present", "fr", "language", "Langage", true},
		{"missing key", "fr", "tooling", "", false},
		{"empty value", "en", "empty", "", false},
		{"missing language", "de", "language", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(table, tt.lang, tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Translate() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error: %v", err)
	}

	if got := c.Categories.Lookup("fr")["language"]; got != "Langage" {
		t.Errorf("fr category language = %q, want Langage", got)
	}
	if got := c.Tags.Lookup("fr")["optimization"]; got != "Optimisation" {
		t.Errorf("fr tag optimization = %q, want Optimisation", got)
	}
	if _, ok := c.Tags.Lookup("fr")["astro"]; ok {
		t.Error("astro tag should only exist in English")
	}
	if langs := c.Languages(); !reflect.DeepEqual(langs, []string{"en", "fr"}) {
		t.Errorf("Languages() = %v, want [en fr]", langs)
	}
	if err := c.CheckLanguages(MustNewSet([]string{"en", "fr"}, "en")); err != nil {
		t.Errorf("CheckLanguages() = %v", err)
	}
}

func TestCatalogCheckLanguagesRejectsUnknown(t *testing.T) {
	c := NewCatalog()
	if err := c.Add(TaxonomyFile{Language: "de", Tags: map[string]string{"go": "Go"}}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	err := c.CheckLanguages(MustNewSet([]string{"en", "fr"}, "en"))
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("CheckLanguages() = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestCatalogAddRequiresLanguage(t *testing.T) {
	if err := NewCatalog().Add(TaxonomyFile{}); err == nil {
		t.Error("Add() without language should fail")
	}
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "taxonomy.yaml")
	yamlData := `
- language: en
  categories:
    language: Language
  tags:
    go: Go
- language: fr
  categories:
    language: Langage
`
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalogFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadCatalogFile(yaml) error: %v", err)
	}
	if got := c.Categories.Lookup("fr")["language"]; got != "Langage" {
		t.Errorf("fr language = %q, want Langage", got)
	}
	if got := c.Tags.Lookup("en")["go"]; got != "Go" {
		t.Errorf("en go = %q, want Go", got)
	}

	jsonPath := filepath.Join(dir, "taxonomy.json")
	jsonData := `[{"language":"en","tags":{"go":"Go"}}]`
	if err := os.WriteFile(jsonPath, []byte(jsonData), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalogFile(jsonPath); err != nil {
		t.Errorf("LoadCatalogFile(json) error: %v", err)
	}

	txtPath := filepath.Join(dir, "taxonomy.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalogFile(txtPath); err == nil {
		t.Error("LoadCatalogFile(txt) should fail")
	}

	if _, err := LoadCatalogFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadCatalogFile(missing) should fail")
	}
}
