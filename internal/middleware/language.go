// Package middleware provides HTTP middleware for language negotiation,
// path canonicalization, rate limiting, and response headers.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/olegiv/ocms-langmap/internal/i18n"
)

// ContextKey is the type of request context keys set by this package.
type ContextKey string

// Context keys for language data.
const (
	ContextKeyLanguage     ContextKey = "language"
	ContextKeyLanguageCode ContextKey = "language_code"
)

// LanguageCookieName is the cookie name for language preference.
const LanguageCookieName = "langmap_lang"

// Language sources, in priority order.
const (
	SourceQuery          = "query"
	SourcePrefix         = "prefix"
	SourceCookie         = "cookie"
	SourceAcceptLanguage = "accept-language"
	SourceDefault        = "default"
)

// LanguageInfo holds language data for the request context.
type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Direction  string `json:"direction"`
	IsDefault  bool   `json:"is_default"`
	// Source names where the language was read from.
	Source string `json:"source"`
}

// Language creates middleware that detects and sets the preferred language.
// Priority order:
//  1. Query parameter ?lang=XX (explicit language switch, updates cookie)
//  2. Language prefix of the page path: the path query parameter of API
//     requests (?path=/fr/about), else the request path
//  3. Cookie preference
//  4. Accept-Language header
//  5. Default language
func Language(langs *i18n.Set) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code, source := negotiate(langs, r)
			if source == SourceQuery {
				SetLanguageCookie(w, code)
			}
			ctx := setLanguageContext(r.Context(), langs, code, source)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func negotiate(langs *i18n.Set, r *http.Request) (string, string) {
	if q := strings.ToLower(r.URL.Query().Get("lang")); q != "" && langs.IsSupported(q) {
		return q, SourceQuery
	}

	if code, _, ok := langs.SplitPrefix(pagePath(r)); ok {
		return code, SourcePrefix
	}

	if cookie, err := r.Cookie(LanguageCookieName); err == nil {
		if code := strings.ToLower(cookie.Value); langs.IsSupported(code) {
			return code, SourceCookie
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		// Match falls back to the default on no match; only a real match
		// counts as coming from the header.
		if code := langs.Match(accept); code != langs.Default() || acceptsDefault(accept, code) {
			return code, SourceAcceptLanguage
		}
	}

	return langs.Default(), SourceDefault
}

// pagePath returns the path of the page a request is about.
func pagePath(r *http.Request) string {
	if p := strings.TrimSpace(r.URL.Query().Get("path")); p != "" {
		return p
	}
	return r.URL.Path
}

// acceptsDefault reports whether the header names the default language itself.
func acceptsDefault(accept, def string) bool {
	for _, part := range strings.Split(accept, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.Split(part, ";")[0]))
		if tag == def || strings.HasPrefix(tag, def+"-") {
			return true
		}
	}
	return false
}

// setLanguageContext adds language info to the context.
func setLanguageContext(ctx context.Context, langs *i18n.Set, code, source string) context.Context {
	lang, _ := langs.Get(code)
	info := LanguageInfo{
		Code:       lang.Code,
		Name:       lang.Name,
		NativeName: lang.NativeName,
		Direction:  lang.Direction,
		IsDefault:  lang.IsDefault,
		Source:     source,
	}
	ctx = context.WithValue(ctx, ContextKeyLanguage, info)
	ctx = context.WithValue(ctx, ContextKeyLanguageCode, lang.Code)
	return ctx
}

// GetLanguage retrieves the current language from the request context.
// Returns nil if no language is in context.
func GetLanguage(r *http.Request) *LanguageInfo {
	info, ok := r.Context().Value(ContextKeyLanguage).(LanguageInfo)
	if !ok {
		return nil
	}
	return &info
}

// GetLanguageCode returns the current language code, or "" outside the
// Language middleware.
func GetLanguageCode(r *http.Request) string {
	code, _ := r.Context().Value(ContextKeyLanguageCode).(string)
	return code
}

// SetLanguageCookie sets the language preference cookie.
func SetLanguageCookie(w http.ResponseWriter, langCode string) {
	cookie := &http.Cookie{
		Name:     LanguageCookieName,
		Value:    langCode,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
