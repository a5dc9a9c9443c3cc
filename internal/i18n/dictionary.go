// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales
var localesFS embed.FS

// Dictionary maps an internal key to a language's display name.
// A language without entries yields an empty map. Key sets are not
// guaranteed to be identical across languages.
type Dictionary interface {
	Lookup(lang string) map[string]string
}

// Table is a static Dictionary: lang -> key -> display name.
type Table map[string]map[string]string

// Lookup implements Dictionary.
func (t Table) Lookup(lang string) map[string]string {
	if m, ok := t[lang]; ok {
		return m
	}
	return map[string]string{}
}

// Values returns the display names of a dictionary sorted alphabetically.
func Values(d Dictionary, lang string) []string {
	m := d.Lookup(lang)
	values := make([]string, 0, len(m))
	for _, v := range m {
		if v != "" {
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// KeyFor finds the key whose display name in lang equals name.
// Keys are scanned in sorted order so duplicates resolve deterministically.
func KeyFor(d Dictionary, lang, name string) (string, bool) {
	m := d.Lookup(lang)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if m[k] == name {
			return k, true
		}
	}
	return "", false
}

// Translate returns the display name of key in lang. A missing key and a
// key present with an empty value both report false.
func Translate(d Dictionary, lang, key string) (string, bool) {
	v, ok := d.Lookup(lang)[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// TaxonomyFile is the on-disk structure of one language's dictionaries.
type TaxonomyFile struct {
	Language   string            `json:"language" yaml:"language"`
	Categories map[string]string `json:"categories" yaml:"categories"`
	Tags       map[string]string `json:"tags" yaml:"tags"`
}

// Catalog holds the category and tag dictionaries for every language.
type Catalog struct {
	Categories Table
	Tags       Table
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Categories: make(Table),
		Tags:       make(Table),
	}
}

// Add merges one language's taxonomy into the catalog.
func (c *Catalog) Add(f TaxonomyFile) error {
	lang := strings.ToLower(strings.TrimSpace(f.Language))
	if lang == "" {
		return fmt.Errorf("taxonomy file has no language")
	}
	if c.Categories[lang] == nil {
		c.Categories[lang] = make(map[string]string, len(f.Categories))
	}
	if c.Tags[lang] == nil {
		c.Tags[lang] = make(map[string]string, len(f.Tags))
	}
	for k, v := range f.Categories {
		c.Categories[lang][k] = v
	}
	for k, v := range f.Tags {
		c.Tags[lang][k] = v
	}
	return nil
}

// Languages returns the languages present in the catalog, sorted.
func (c *Catalog) Languages() []string {
	seen := make(map[string]struct{})
	for lang := range c.Categories {
		seen[lang] = struct{}{}
	}
	for lang := range c.Tags {
		seen[lang] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// CheckLanguages verifies that every language in the catalog is in set.
func (c *Catalog) CheckLanguages(set *Set) error {
	for _, lang := range c.Languages() {
		if err := set.Validate(lang); err != nil {
			return fmt.Errorf("dictionary: %w", err)
		}
	}
	return nil
}

// DefaultCatalog loads the taxonomy dictionaries embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	c := NewCatalog()
	err := fs.WalkDir(localesFS, "locales", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		data, err := localesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		var f TaxonomyFile
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return c.Add(f)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// LoadCatalogFile loads dictionaries from a JSON or YAML file holding a
// list of taxonomy files, one per language.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary file: %w", err)
	}

	var files []TaxonomyFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &files)
	case ".json":
		err = json.Unmarshal(data, &files)
	default:
		return nil, fmt.Errorf("unsupported dictionary file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing dictionary file %s: %w", path, err)
	}

	c := NewCatalog()
	for _, f := range files {
		if err := c.Add(f); err != nil {
			return nil, err
		}
	}
	return c, nil
}
