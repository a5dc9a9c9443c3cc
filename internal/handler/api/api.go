// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON API handlers of the language map.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/olegiv/ocms-langmap/internal/cache"
	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/model"
	"github.com/olegiv/ocms-langmap/internal/page"
)

// ArticleSource supplies the content listing used to link translations.
type ArticleSource interface {
	Articles() []model.Article
}

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	manager  *page.Manager
	articles ArticleSource
	siteURL  string
	cache    cache.Cache
	hreflang *cache.Typed[HreflangResponse]
	logger   *slog.Logger
}

// NewHandler creates a new API handler. A nil c disables response caching.
func NewHandler(manager *page.Manager, articles ArticleSource, siteURL string, c cache.Cache, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		manager:  manager,
		articles: articles,
		siteURL:  siteURL,
		cache:    c,
		logger:   logger,
	}
	if c != nil {
		h.hreflang = cache.NewTyped[HreflangResponse](c, 0)
	}
	return h
}

func (h *Handler) languages() *i18n.Set {
	return h.manager.Languages()
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains list metadata.
type Meta struct {
	Total int `json:"total,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	WriteJSON(w, statusCode, resp)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string       `json:"status"`
	Version string       `json:"version"`
	Cache   *cache.Stats `json:"cache,omitempty"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	resp := StatusResponse{
		Status:  "ok",
		Version: "v1",
	}
	if sp, ok := h.cache.(cache.StatsProvider); ok {
		stats := sp.Stats()
		resp.Cache = &stats
	}
	WriteSuccess(w, resp, nil)
}
