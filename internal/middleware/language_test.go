package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/ocms-langmap/internal/i18n"
)

func TestLanguage(t *testing.T) {
	langs := i18n.MustNewSet([]string{"en", "fr"}, "en")

	tests := []struct {
		name       string
		target     string
		cookie     string
		acceptLang string
		wantCode   string
		wantSource string
		wantCookie bool
	}{
		{name: "default", target: "/api/v1/languages", wantCode: "en", wantSource: SourceDefault},
		{name: "query", target: "/?lang=fr", wantCode: "fr", wantSource: SourceQuery, wantCookie: true},
		{name: "query upper case", target: "/?lang=FR", wantCode: "fr", wantSource: SourceQuery, wantCookie: true},
		{name: "unsupported query ignored", target: "/?lang=de", wantCode: "en", wantSource: SourceDefault},
		{name: "query beats cookie", target: "/?lang=en", cookie: "fr", wantCode: "en", wantSource: SourceQuery, wantCookie: true},
		{name: "path prefix", target: "/fr/about", wantCode: "fr", wantSource: SourcePrefix},
		{name: "prefix beats cookie", target: "/fr/about", cookie: "en", wantCode: "fr", wantSource: SourcePrefix},
		{name: "page path prefix", target: "/api/v1/pages?path=/fr/about", wantCode: "fr", wantSource: SourcePrefix},
		{name: "page path beats cookie", target: "/api/v1/pages/hreflang?path=/fr/tag/x", cookie: "en", wantCode: "fr", wantSource: SourcePrefix},
		{name: "unprefixed page path", target: "/api/v1/pages?path=/about", cookie: "fr", wantCode: "fr", wantSource: SourceCookie},
		{name: "cookie", target: "/about", cookie: "fr", wantCode: "fr", wantSource: SourceCookie},
		{name: "bad cookie ignored", target: "/about", cookie: "xx", wantCode: "en", wantSource: SourceDefault},
		{name: "accept-language", target: "/", acceptLang: "fr-CA,fr;q=0.9,en;q=0.5", wantCode: "fr", wantSource: SourceAcceptLanguage},
		{name: "accept-language default", target: "/", acceptLang: "en-US", wantCode: "en", wantSource: SourceAcceptLanguage},
		{name: "accept-language no match", target: "/", acceptLang: "ja", wantCode: "en", wantSource: SourceDefault},
		{name: "cookie beats accept-language", target: "/", cookie: "en", acceptLang: "fr", wantCode: "en", wantSource: SourceCookie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *LanguageInfo
			var gotCode string
			handler := Language(langs)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetLanguage(r)
				gotCode = GetLanguageCode(r)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LanguageCookieName, Value: tt.cookie})
			}
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got == nil {
				t.Fatal("GetLanguage() returned nil")
			}
			if got.Code != tt.wantCode || gotCode != tt.wantCode {
				t.Errorf("code = %q/%q, want %q", got.Code, gotCode, tt.wantCode)
			}
			if got.Source != tt.wantSource {
				t.Errorf("source = %q, want %q", got.Source, tt.wantSource)
			}
			if got.Name == "" {
				t.Error("language name should be filled from metadata")
			}

			setCookie := rec.Header().Get("Set-Cookie")
			if tt.wantCookie && setCookie == "" {
				t.Error("expected language cookie to be set")
			}
			if !tt.wantCookie && setCookie != "" {
				t.Errorf("unexpected Set-Cookie: %s", setCookie)
			}
		})
	}
}

func TestGetLanguageOutsideMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetLanguage(req) != nil {
		t.Error("GetLanguage() should be nil without middleware")
	}
	if GetLanguageCode(req) != "" {
		t.Error("GetLanguageCode() should be empty without middleware")
	}
}
