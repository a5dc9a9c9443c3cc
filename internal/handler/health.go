// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/olegiv/ocms-langmap/internal/version"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	version   version.Info
	checks    map[string]func() Check
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(v version.Info) *HealthHandler {
	return &HealthHandler{
		version:   v,
		checks:    make(map[string]func() Check),
		startTime: time.Now(),
	}
}

// AddCheck registers a named health check.
func (h *HealthHandler) AddCheck(name string, fn func() Check) {
	h.checks[name] = fn
}

// StartTime returns when the handler (and application) was started.
func (h *HealthHandler) StartTime() time.Time {
	return h.startTime
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   version.Info     `json:"version"`
	GoVersion string           `json:"go_version"`
	Checks    map[string]Check `json:"checks,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		GoVersion: runtime.Version(),
		Checks:    make(map[string]Check, len(h.checks)),
	}
	for name, fn := range h.checks {
		c := fn()
		status.Checks[name] = c
		if c.Status != "healthy" {
			status.Status = "degraded"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if status.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}
