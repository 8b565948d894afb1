package notify

import (
	"sync"
	"time"

	"printshop/internal/model"
)

// EventOrderCreated is the only event kind the hub carries today.
const EventOrderCreated = "order-created"

// sessionBuffer is how many undelivered events a session may lag behind
// before further events are dropped for it. Delivery is best-effort and
// at-most-once; dashboards re-fetch the order list on every event anyway.
const sessionBuffer = 16

// Event is a notification pushed to connected admin dashboards. Dashboards
// treat it as an invalidation signal, not as the source of truth.
type Event struct {
	Kind         string            `json:"-"`
	OrderID      string            `json:"orderId"`
	CustomerName string            `json:"customerName"`
	ServiceType  model.ServiceType `json:"serviceType"`
	Timestamp    time.Time         `json:"timestamp"`
}

// Session is one connected dashboard's subscription.
type Session struct {
	events chan Event
}

// Events is the channel the subscriber drains.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Hub broadcasts events to every currently connected admin session.
// There is no replay: a session subscribed after an event was published
// never sees it.
type Hub struct {
	mu       sync.Mutex
	sessions map[*Session]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[*Session]struct{})}
}

// Subscribe registers a new session and returns it together with its
// unsubscribe function. Unsubscribe is idempotent.
func (h *Hub) Subscribe() (*Session, func()) {
	s := &Session{events: make(chan Event, sessionBuffer)}

	h.mu.Lock()
	h.sessions[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.sessions, s)
			h.mu.Unlock()
		})
	}
	return s, unsubscribe
}

// Publish delivers the event to a snapshot of the current sessions. A
// session whose buffer is full misses the event rather than blocking the
// publisher.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	snapshot := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		snapshot = append(snapshot, s)
	}
	h.mu.Unlock()

	for _, s := range snapshot {
		select {
		case s.events <- event:
		default:
		}
	}
}

// SessionCount reports how many sessions are currently connected.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
