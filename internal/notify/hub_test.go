package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"printshop/internal/model"
)

func testEvent(orderID string) Event {
	return Event{
		Kind:         EventOrderCreated,
		OrderID:      orderID,
		CustomerName: "Jordan Lee",
		ServiceType:  model.ServiceType3DPrinting,
		Timestamp:    time.Now(),
	}
}

func TestHub_BroadcastReachesAllConnectedSessions(t *testing.T) {
	hub := NewHub()

	a, cancelA := hub.Subscribe()
	defer cancelA()
	b, cancelB := hub.Subscribe()
	defer cancelB()

	hub.Publish(testEvent("ORD-1"))

	for _, session := range []*Session{a, b} {
		select {
		case event := <-session.Events():
			assert.Equal(t, "ORD-1", event.OrderID)
		case <-time.After(time.Second):
			t.Fatal("session did not receive the event")
		}
	}
}

func TestHub_AtMostOncePerSession(t *testing.T) {
	hub := NewHub()
	session, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(testEvent("ORD-1"))

	<-session.Events()
	select {
	case event := <-session.Events():
		t.Fatalf("unexpected second delivery: %v", event.OrderID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_NoReplayForLateSubscribers(t *testing.T) {
	hub := NewHub()

	hub.Publish(testEvent("ORD-early"))

	session, cancel := hub.Subscribe()
	defer cancel()

	select {
	case event := <-session.Events():
		t.Fatalf("late subscriber received replayed event %v", event.OrderID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnsubscribedSessionReceivesNothing(t *testing.T) {
	hub := NewHub()

	session, cancel := hub.Subscribe()
	cancel()
	assert.Equal(t, 0, hub.SessionCount())

	hub.Publish(testEvent("ORD-1"))

	select {
	case <-session.Events():
		t.Fatal("unsubscribed session received an event")
	case <-time.After(50 * time.Millisecond):
	}

	// cancel is idempotent
	cancel()
}

func TestHub_SlowSessionDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	session, cancel := hub.Subscribe()
	defer cancel()

	// Nobody drains the session; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < sessionBuffer*2; i++ {
			hub.Publish(testEvent("ORD-flood"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow session")
	}

	// The buffer holds at most sessionBuffer events; the rest were dropped.
	received := 0
	for {
		select {
		case <-session.Events():
			received++
		default:
			assert.Equal(t, sessionBuffer, received)
			return
		}
	}
}
