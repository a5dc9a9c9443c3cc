package handler

import (
	"net/http"
	"strconv"

	"github.com/olegiv/ocms-langmap/internal/handler/api"
	"github.com/olegiv/ocms-langmap/internal/logging"
	"github.com/olegiv/ocms-langmap/internal/model"
)

// Event list limits.
const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

var eventLevels = map[string]bool{
	model.EventLevelDebug:   true,
	model.EventLevelInfo:    true,
	model.EventLevelWarning: true,
	model.EventLevelError:   true,
}

// EventsHandler serves the in-memory event log.
type EventsHandler struct {
	events *logging.EventLog
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(events *logging.EventLog) *EventsHandler {
	return &EventsHandler{events: events}
}

// List handles GET /api/v1/events?level=&category=&limit=.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := logging.Filter{
		Level:    q.Get("level"),
		Category: q.Get("category"),
		Limit:    defaultEventLimit,
	}

	if filter.Level != "" && !eventLevels[filter.Level] {
		api.WriteBadRequest(w, "Unknown event level", map[string]string{"level": "must be debug, info, warning or error"})
		return
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxEventLimit {
			api.WriteBadRequest(w, "Invalid limit", map[string]string{"limit": "must be between 1 and " + strconv.Itoa(maxEventLimit)})
			return
		}
		filter.Limit = n
	}

	events := h.events.List(filter)
	api.WriteSuccess(w, events, &api.Meta{Total: len(events)})
}
