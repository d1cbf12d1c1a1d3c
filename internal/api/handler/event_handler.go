package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumopress/user-directory/internal/core/ports"
)

// EventDispatcher is the interface the handler uses to enqueue events.
type EventDispatcher interface {
	Enqueue(event ports.AccountEvent)
}

// EventHandler ingests account lifecycle events from the identity store.
// Delivery is a trusted source: the shared-secret check happens in the
// router middleware, and there is no per-event caller to report
// processing failures to.
type EventHandler struct {
	dispatcher EventDispatcher
}

// NewEventHandler creates an EventHandler backed by the given dispatcher.
func NewEventHandler(dispatcher EventDispatcher) *EventHandler {
	return &EventHandler{dispatcher: dispatcher}
}

// Receive handles POST /v1/events/accounts — enqueues one event, returns 202.
//
// @Summary      Ingest an account lifecycle event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      accountEventRequest  true  "Lifecycle event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/events/accounts [post]
func (h *EventHandler) Receive(c echo.Context) error {
	var req accountEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toAccountEvent(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// toAccountEvent maps the HTTP request to the service DTO.
func toAccountEvent(r accountEventRequest) ports.AccountEvent {
	e := ports.AccountEvent{
		Type: ports.AccountEventType(r.Type),
		ID:   r.Account.ID,
	}
	if r.Type == string(ports.AccountCreated) {
		e.DisplayName = r.Account.DisplayName
		e.Email = r.Account.Email
		e.AvatarURL = r.Account.AvatarURL
	}
	return e
}
