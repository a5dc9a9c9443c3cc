package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/olegiv/ocms-langmap/internal/model"
)

// CategoryKey is the record attribute that sets an event category
// explicitly. Without it the category is inferred from the message.
const CategoryKey = "category"

// EventLogHandler is a slog.Handler that forwards every record to an
// inner handler and also copies records at or above its level into an
// EventLog.
type EventLogHandler struct {
	inner  slog.Handler
	events *EventLog
	level  slog.Level
	attrs  []slog.Attr
	group  string
}

// NewEventLogHandler records WARN and above.
func NewEventLogHandler(inner slog.Handler, events *EventLog) *EventLogHandler {
	return NewEventLogHandlerWithLevel(inner, events, slog.LevelWarn)
}

// NewEventLogHandlerWithLevel records level and above. level may be
// lower than the inner handler's level.
func NewEventLogHandlerWithLevel(inner slog.Handler, events *EventLog, level slog.Level) *EventLogHandler {
	return &EventLogHandler{inner: inner, events: events, level: level}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level || h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		h.record(r)
	}
	if !h.inner.Enabled(ctx, r.Level) {
		return nil
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	c.inner = h.inner.WithAttrs(attrs)
	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a))
	}
	return c
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.inner = h.inner.WithGroup(name)
	c.group = h.qualifyKey(name)
	return c
}

func (h *EventLogHandler) clone() *EventLogHandler {
	return &EventLogHandler{
		inner:  h.inner,
		events: h.events,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		group:  h.group,
	}
}

func (h *EventLogHandler) qualifyKey(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func (h *EventLogHandler) qualify(a slog.Attr) slog.Attr {
	return slog.Attr{Key: h.qualifyKey(a.Key), Value: a.Value}
}

func (h *EventLogHandler) record(r slog.Record) {
	attrs := make(map[string]string, len(h.attrs)+r.NumAttrs())
	var category string

	add := func(a slog.Attr) {
		if a.Key == CategoryKey {
			category = a.Value.String()
			return
		}
		attrs[a.Key] = a.Value.Resolve().String()
	}
	for _, a := range h.attrs {
		add(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		add(h.qualify(a))
		return true
	})

	if category == "" {
		category = inferCategory(r.Message)
	}
	if len(attrs) == 0 {
		attrs = nil
	}

	h.events.Add(model.Event{
		Level:     eventLevel(r.Level),
		Category:  category,
		Message:   r.Message,
		Attrs:     attrs,
		CreatedAt: r.Time,
	})
}

func eventLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.EventLevelError
	case level >= slog.LevelWarn:
		return model.EventLevelWarning
	case level >= slog.LevelInfo:
		return model.EventLevelInfo
	default:
		return model.EventLevelDebug
	}
}

// inferCategory guesses a category from common message wording.
func inferCategory(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "mapping") || strings.Contains(msg, "translation") || strings.Contains(msg, "resolve"):
		return model.EventCategoryMapping
	case strings.Contains(msg, "sitemap") || strings.Contains(msg, "robots") || strings.Contains(msg, "hreflang"):
		return model.EventCategorySEO
	case strings.Contains(msg, "content") || strings.Contains(msg, "article"):
		return model.EventCategoryContent
	case strings.Contains(msg, "cache"):
		return model.EventCategoryCache
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "request"):
		return model.EventCategoryHTTP
	default:
		return model.EventCategorySystem
	}
}
