// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content holds the article listing used to link translations.
package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/olegiv/ocms-langmap/internal/model"
)

//go:embed sample/articles.yaml
var sampleListing []byte

// Format is the encoding of a listing file.
type Format string

// Supported listing formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the listing format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported content file type %q", filepath.Ext(path))
	}
}

// Listing is the on-disk document.
type Listing struct {
	Version  string          `json:"version" yaml:"version"`
	Articles []model.Article `json:"articles" yaml:"articles"`
}

// Store is an immutable, in-memory article listing.
type Store struct {
	articles []model.Article
	index    map[string]int
}

// NewStore creates a store over a copy of articles. Later duplicates of a
// (language, slug) pair are kept in the listing but not indexed.
func NewStore(articles []model.Article) *Store {
	s := &Store{
		articles: slices.Clone(articles),
		index:    make(map[string]int, len(articles)),
	}
	for i, a := range s.articles {
		k := key(a.Language, a.Slug)
		if _, ok := s.index[k]; !ok {
			s.index[k] = i
		}
	}
	return s
}

func key(lang, slug string) string {
	return lang + "/" + slug
}

// Articles returns a copy of the listing in file order.
func (s *Store) Articles() []model.Article {
	return slices.Clone(s.articles)
}

// Len returns the number of articles.
func (s *Store) Len() int {
	return len(s.articles)
}

// Find returns the article written in lang with the given slug.
func (s *Store) Find(lang, slug string) (model.Article, bool) {
	i, ok := s.index[key(lang, slug)]
	if !ok {
		return model.Article{}, false
	}
	return s.articles[i], true
}

// Languages returns the distinct article languages, sorted.
func (s *Store) Languages() []string {
	seen := make(map[string]bool)
	var langs []string
	for _, a := range s.articles {
		if !seen[a.Language] {
			seen[a.Language] = true
			langs = append(langs, a.Language)
		}
	}
	sort.Strings(langs)
	return langs
}

// Decode reads a listing from r.
func Decode(r io.Reader, format Format) (*Store, error) {
	var listing Listing
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&listing)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&listing)
	default:
		return nil, fmt.Errorf("unsupported content format %q", format)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding content listing: %w", err)
	}
	return NewStore(listing.Articles), nil
}

// LoadFile reads a JSON or YAML listing from path.
func LoadFile(path string) (*Store, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, format)
}

// Load reads the listing at path, or the embedded sample listing when path
// is empty.
func Load(path string) (*Store, error) {
	if path == "" {
		return Sample()
	}
	return LoadFile(path)
}

// Sample returns the embedded sample listing.
func Sample() (*Store, error) {
	return Decode(bytes.NewReader(sampleListing), FormatYAML)
}
