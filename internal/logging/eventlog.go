// Package logging keeps recent warnings and errors in memory so mapping
// problems can be inspected over the API without shell access.
package logging

import (
	"sync"

	"github.com/olegiv/ocms-langmap/internal/model"
)

// DefaultCapacity is the event log size used when none is configured.
const DefaultCapacity = 500

// EventLog is a fixed-size ring of events. The oldest event is dropped
// when the log is full.
type EventLog struct {
	mu     sync.RWMutex
	events []model.Event
	next   int // index of the next write
	full   bool
	lastID int64
}

// NewEventLog creates an event log holding up to capacity events.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &EventLog{events: make([]model.Event, capacity)}
}

// Add stores e and assigns its ID.
func (l *EventLog) Add(e model.Event) model.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastID++
	e.ID = l.lastID
	l.events[l.next] = e
	l.next = (l.next + 1) % len(l.events)
	if l.next == 0 {
		l.full = true
	}
	return e
}

// Len returns the number of stored events.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.full {
		return len(l.events)
	}
	return l.next
}

// Filter selects events. Empty fields match everything.
type Filter struct {
	Level    string
	Category string
	Limit    int // 0 = no limit
}

func (f Filter) match(e model.Event) bool {
	if f.Level != "" && e.Level != f.Level {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	return true
}

// List returns matching events, newest first.
func (l *EventLog) List(f Filter) []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := l.next
	if l.full {
		n = len(l.events)
	}

	out := make([]model.Event, 0, min(n, max(f.Limit, 0)))
	for i := range n {
		idx := (l.next - 1 - i + len(l.events)) % len(l.events)
		e := l.events[idx]
		if !f.match(e) {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}

// Clear removes every event. IDs keep increasing.
func (l *EventLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.events)
	l.next = 0
	l.full = false
}
