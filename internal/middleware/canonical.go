// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/url"

	"github.com/olegiv/ocms-langmap/internal/util"
)

// CanonicalPath redirects non-canonical request paths (HTTP 301): trailing
// slashes are stripped, duplicate slashes collapsed and dot segments
// resolved. The root path "/" is left alone. The query string is kept.
func CanonicalPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		clean := util.CleanPath(path)
		if path != "" && clean != path {
			target := url.URL{Path: clean, RawQuery: r.URL.RawQuery}
			http.Redirect(w, r, target.String(), http.StatusMovedPermanently)
			return
		}
		next.ServeHTTP(w, r)
	})
}
