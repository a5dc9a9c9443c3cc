// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"path"
	"strings"
)

// Segments splits a URL path into its non-empty segments.
// Query strings and fragments are ignored.
func Segments(p string) []string {
	p = stripQuery(p)
	parts := strings.Split(p, "/")
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segs = append(segs, part)
		}
	}
	return segs
}

// JoinSegments builds a rooted URL path from segments.
// No segments yields "/".
func JoinSegments(segs ...string) string {
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}

// CleanURLPath returns the canonical form of a request path: rooted,
// without query or fragment, duplicate slashes collapsed and no trailing
// slash except for the root itself.
func CleanURLPath(p string) string {
	return CleanPath(stripQuery(p))
}

// CleanPath is CleanURLPath for an already decoded path: "?" and "#" are
// ordinary characters and are kept.
func CleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	// Use path.Clean (not filepath.Clean) for URL paths
	return path.Clean(p)
}

func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}
