package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"printshop/internal/auth"
	"printshop/internal/model"
	"printshop/internal/notify"
)

// stubAdminRepo satisfies repository.AdminRepository with a single fixed admin.
type stubAdminRepo struct {
	admin *model.Admin
}

func (s *stubAdminRepo) Create(ctx context.Context, admin *model.Admin) error { return nil }
func (s *stubAdminRepo) Update(ctx context.Context, admin *model.Admin) error { return nil }
func (s *stubAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	if s.admin != nil && s.admin.ID == id {
		return s.admin, nil
	}
	return nil, echo.ErrNotFound
}
func (s *stubAdminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return nil, echo.ErrNotFound
}
func (s *stubAdminRepo) FindActiveByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*model.Admin, error) {
	return nil, echo.ErrNotFound
}
func (s *stubAdminRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return false, nil
}
func (s *stubAdminRepo) List(ctx context.Context) ([]model.Admin, error) { return nil, nil }

func TestEventsHandler_RejectsMissingToken(t *testing.T) {
	e := echo.New()
	handler := NewEventsHandler(notify.NewHub(), auth.NewJWTService("test-secret"), &stubAdminRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Stream(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestEventsHandler_StreamsOrderCreatedEvents(t *testing.T) {
	e := echo.New()
	hub := notify.NewHub()
	jwtService := auth.NewJWTService("test-secret")

	admin := &model.Admin{
		ID:       uuid.New(),
		Username: "ops",
		Role:     model.RoleAdmin,
		Active:   true,
	}
	token, err := jwtService.GenerateToken(admin)
	assert.NoError(t, err)

	handler := NewEventsHandler(hub, jwtService, &stubAdminRepo{admin: admin})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events?token="+token, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	done := make(chan error, 1)
	go func() {
		done <- handler.Stream(c)
	}()

	// Wait for the subscription before publishing; events published before
	// the session exists are not replayed.
	deadline := time.Now().Add(time.Second)
	for hub.SessionCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("stream never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.Publish(notify.Event{
		Kind:         notify.EventOrderCreated,
		OrderID:      "ORD-1-bbbbbbbb",
		CustomerName: "Jordan Lee",
		ServiceType:  model.ServiceTypePCBPrinting,
		Timestamp:    time.Now(),
	})

	// Give the loop a moment to write the frame, then close the stream.
	// The body is only inspected after the handler has returned.
	time.Sleep(100 * time.Millisecond)
	cancel()

	assert.NoError(t, <-done)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.Contains(t, body, "event: order-created\n")
	assert.Contains(t, body, `"orderId":"ORD-1-bbbbbbbb"`)
	assert.Contains(t, body, `"customerName":"Jordan Lee"`)
}
