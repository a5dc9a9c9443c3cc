package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/ocms-langmap/internal/cache"
	"github.com/olegiv/ocms-langmap/internal/page"
	"github.com/olegiv/ocms-langmap/internal/seo"
)

// Document cache keys.
const (
	docKeySitemap = "doc:sitemap.xml"
	docKeyRobots  = "doc:robots.txt"
)

// SEOHandler serves the sitemap and robots.txt.
type SEOHandler struct {
	manager     *page.Manager
	source      func() seo.SitemapSource
	siteURL     string
	disallowAll bool
	docs        *cache.Documents
	logger      *slog.Logger
}

// NewSEOHandler creates a new SEO handler. source is called whenever the
// sitemap is rebuilt. disallowAll blocks every crawler in robots.txt.
// A nil docs rebuilds both documents on every request.
func NewSEOHandler(manager *page.Manager, source func() seo.SitemapSource, siteURL string, disallowAll bool, docs *cache.Documents, logger *slog.Logger) *SEOHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SEOHandler{
		manager:     manager,
		source:      source,
		siteURL:     siteURL,
		disallowAll: disallowAll,
		docs:        docs,
		logger:      logger,
	}
}

func (h *SEOHandler) document(r *http.Request, key string, build func() ([]byte, error)) ([]byte, error) {
	if h.docs == nil {
		return build()
	}
	return h.docs.Get(r.Context(), key, build)
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := h.document(r, docKeySitemap, func() ([]byte, error) {
		h.logger.Debug("building sitemap")
		return seo.GenerateSitemap(h.siteURL, h.manager, h.source())
	})
	if err != nil {
		h.logger.Error("failed to generate sitemap", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(data)
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	data, err := h.document(r, docKeyRobots, func() ([]byte, error) {
		return []byte(seo.GenerateRobots(h.siteURL, h.disallowAll)), nil
	})
	if err != nil {
		h.logger.Error("failed to generate robots.txt", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(data)
}
