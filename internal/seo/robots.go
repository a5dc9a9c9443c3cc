// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"fmt"
	"slices"
	"strings"
)

// Paths every robots.txt disallows.
var alwaysDisallowed = []string{"/api"}

// RobotsConfig describes the robots.txt of the site.
type RobotsConfig struct {
	SiteURL       string   // Sitemap line is omitted when empty
	DisallowAll   bool     // Non-production sites block every crawler
	DisallowPaths []string // Added to alwaysDisallowed
}

// RobotsBuilder renders robots.txt.
type RobotsBuilder struct {
	config RobotsConfig
}

// NewRobotsBuilder creates a new robots.txt builder.
func NewRobotsBuilder(config RobotsConfig) *RobotsBuilder {
	return &RobotsBuilder{config: config}
}

// disallowed returns the deduplicated disallow rules in declaration order.
func (b *RobotsBuilder) disallowed() []string {
	rules := make([]string, 0, len(alwaysDisallowed)+len(b.config.DisallowPaths))
	for _, p := range slices.Concat(alwaysDisallowed, b.config.DisallowPaths) {
		p = strings.TrimSpace(p)
		if p != "" && !slices.Contains(rules, p) {
			rules = append(rules, p)
		}
	}
	return rules
}

// Build renders the file. With DisallowAll the sitemap is not advertised.
func (b *RobotsBuilder) Build() string {
	var sb strings.Builder
	line := func(directive, value string) {
		fmt.Fprintf(&sb, "%s: %s\n", directive, value)
	}

	line("User-agent", "*")
	if b.config.DisallowAll {
		line("Disallow", "/")
		return sb.String()
	}

	for _, p := range b.disallowed() {
		line("Disallow", p)
	}
	line("Allow", "/")

	if b.config.SiteURL != "" {
		sb.WriteString("\n")
		line("Sitemap", AbsoluteURL(b.config.SiteURL, "/sitemap.xml"))
	}
	return sb.String()
}

// GenerateRobots renders robots.txt for siteURL.
func GenerateRobots(siteURL string, disallowAll bool) string {
	return NewRobotsBuilder(RobotsConfig{SiteURL: siteURL, DisallowAll: disallowAll}).Build()
}
