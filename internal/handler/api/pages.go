package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/page"
	"github.com/olegiv/ocms-langmap/internal/seo"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// maxPathLength bounds the path query parameter.
const maxPathLength = 2048

// HreflangResponse is the response of the hreflang endpoint.
type HreflangResponse struct {
	Path     string             `json:"path"`
	Lang     string             `json:"lang"`
	Fallback bool               `json:"fallback"`
	Links    []seo.HreflangLink `json:"links"`
	// HTML holds the links rendered as <link> elements.
	HTML string `json:"html"`
}

// requirePath reads the path query parameter. Returns false if invalid
// (response already written).
func requirePath(w http.ResponseWriter, r *http.Request) (string, bool) {
	p := strings.TrimSpace(r.URL.Query().Get("path"))
	if p == "" {
		WriteBadRequest(w, "Query parameter path is required", map[string]string{"path": "required"})
		return "", false
	}
	if len(p) > maxPathLength {
		WriteBadRequest(w, "Query parameter path is too long", map[string]string{"path": "too long"})
		return "", false
	}
	return p, true
}

// assemble resolves p and writes an error response on failure.
func (h *Handler) assemble(w http.ResponseWriter, p string) (*page.LanguageContext, bool) {
	ctx, err := h.manager.Assemble(p, h.articles.Articles())
	if err != nil {
		h.writeAssembleError(w, p, err)
		return nil, false
	}
	return ctx, true
}

func (h *Handler) writeAssembleError(w http.ResponseWriter, p string, err error) {
	h.logger.Error("failed to resolve page languages", "path", p, "error", err)
	if errors.Is(err, i18n.ErrUnsupportedLanguage) {
		WriteError(w, http.StatusInternalServerError, "unsupported_language", "Content references an unsupported language", nil)
		return
	}
	WriteInternalError(w, "Failed to resolve page languages")
}

// hreflangKey identifies a cached hreflang response.
func hreflangKey(site, p string) string {
	return "hreflang:" + site + "|" + util.CleanURLPath(p)
}

func (h *Handler) buildHreflang(site, p string) (HreflangResponse, error) {
	ctx, err := h.manager.Assemble(p, h.articles.Articles())
	if err != nil {
		return HreflangResponse{}, err
	}
	links := seo.HreflangLinks(site, ctx)
	if links == nil {
		links = []seo.HreflangLink{}
	}
	resp := HreflangResponse{
		Path:     ctx.Path,
		Fallback: ctx.Fallback,
		Links:    links,
		HTML:     seo.HreflangTags(links),
	}
	if active, ok := ctx.Active(); ok {
		resp.Lang = active.Code
	}
	return resp, nil
}

// ResolvePage handles GET /api/v1/pages?path=.
// Returns the page kind, its info and the equivalent path in every language.
func (h *Handler) ResolvePage(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePath(w, r)
	if !ok {
		return
	}

	ctx, ok := h.assemble(w, p)
	if !ok {
		return
	}
	WriteSuccess(w, ctx, nil)
}

// Hreflang handles GET /api/v1/pages/hreflang?path=&site=.
// site overrides the configured site URL.
func (h *Handler) Hreflang(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePath(w, r)
	if !ok {
		return
	}

	site := h.siteURL
	if s := strings.TrimSpace(r.URL.Query().Get("site")); s != "" {
		u, err := url.Parse(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			WriteBadRequest(w, "Query parameter site must be an absolute http(s) URL", map[string]string{"site": "invalid"})
			return
		}
		site = s
	}

	build := func() (HreflangResponse, error) { return h.buildHreflang(site, p) }
	var (
		resp HreflangResponse
		err  error
	)
	if h.hreflang != nil {
		resp, err = h.hreflang.GetOrSet(r.Context(), hreflangKey(site, p), build)
	} else {
		resp, err = build()
	}
	if err != nil {
		h.writeAssembleError(w, p, err)
		return
	}
	WriteSuccess(w, resp, &Meta{Total: len(resp.Links)})
}
