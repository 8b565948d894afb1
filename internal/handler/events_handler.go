package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"printshop/internal/auth"
	"printshop/internal/errors"
	"printshop/internal/notify"
	"printshop/internal/repository"
)

// heartbeatInterval is how often a comment frame is written so proxies do
// not drop an otherwise quiet stream.
const heartbeatInterval = 30 * time.Second

// EventsHandler streams order events to admin dashboards over SSE.
//
// EventSource cannot set an Authorization header, so this endpoint checks
// the token itself and also accepts it as a query parameter.
type EventsHandler struct {
	hub        *notify.Hub
	jwtService *auth.JWTService
	adminRepo  repository.AdminRepository
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(hub *notify.Hub, jwtService *auth.JWTService, adminRepo repository.AdminRepository) *EventsHandler {
	return &EventsHandler{hub: hub, jwtService: jwtService, adminRepo: adminRepo}
}

// Stream godoc
// @Summary Subscribe to order events
// @Description Server-Sent Events stream of order-created notifications. Events published before the connection opened are not replayed.
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Param token query string false "Bearer token (alternative to the Authorization header)"
// @Success 200 {string} string "event stream"
// @Failure 401 {object} errors.ErrorResponse
// @Router /events [get]
func (h *EventsHandler) Stream(c echo.Context) error {
	if err := h.authenticate(c); err != nil {
		return err
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	session, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fmt.Fprint(res, ": ping\n\n")
			res.Flush()
		case event := <-session.Events():
			data, err := json.Marshal(event)
			if err != nil {
				c.Logger().Errorf("marshal event: %v", err)
				continue
			}
			fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Kind, data)
			res.Flush()
		}
	}
}

func (h *EventsHandler) authenticate(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token = strings.TrimPrefix(header, "Bearer ")
	}
	if token == "" {
		return unauthorizedEvent()
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		return unauthorizedEvent()
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return unauthorizedEvent()
	}
	admin, err := h.adminRepo.FindByID(c.Request().Context(), adminID)
	if err != nil || !admin.Active {
		return unauthorizedEvent()
	}
	return nil
}

func unauthorizedEvent() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: errors.ErrInvalidToken.Error(),
		Code:  "INVALID_TOKEN",
	})
}
