package model

import "time"

// Event levels
const (
	EventLevelDebug   = "debug"
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories
const (
	EventCategoryMapping = "mapping"
	EventCategoryContent = "content"
	EventCategorySEO     = "seo"
	EventCategoryCache   = "cache"
	EventCategoryHTTP    = "http"
	EventCategorySystem  = "system"
)

// Event is one entry of the in-memory event log.
type Event struct {
	ID        int64             `json:"id"`
	Level     string            `json:"level"`
	Category  string            `json:"category"`
	Message   string            `json:"message"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
