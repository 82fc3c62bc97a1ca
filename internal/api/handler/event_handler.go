package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

// EventDispatcher is the interface the handler uses to enqueue events.
type EventDispatcher interface {
	Enqueue(event ports.ReturnEventInput)
	EnqueueBatch(events []ports.ReturnEventInput)
}

// EventHandler handles carrier tracking event ingestion and the audit
// trail read side.
type EventHandler struct {
	dispatcher EventDispatcher
	events     ports.EventService
}

// NewEventHandler creates an EventHandler. Writes go through the
// dispatcher; reads hit the event service directly.
func NewEventHandler(dispatcher EventDispatcher, events ports.EventService) *EventHandler {
	return &EventHandler{dispatcher: dispatcher, events: events}
}

// Receive handles POST /v1/events — enqueues a single event, returns 202.
//
// @Summary      Ingest a single carrier event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      returnEventRequest  true  "Carrier status event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/events [post]
func (h *EventHandler) Receive(c echo.Context) error {
	var req returnEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch handles POST /v1/events/batch — enqueues a batch of events, returns 202.
//
// @Summary      Ingest a batch of carrier events
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []returnEventRequest  true  "Array of carrier status events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/events/batch [post]
func (h *EventHandler) ReceiveBatch(c echo.Context) error {
	var reqs []returnEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.ReturnEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toEventInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}

// History handles GET /v1/events/:id — the audit trail of one return.
//
// @Summary      Audit trail of a return request
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Return request id"
// @Success      200  {object}  listEventsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/events/{id} [get]
func (h *EventHandler) History(c echo.Context) error {
	role, email, err := ctxClaims(c)
	if err != nil {
		return err
	}

	events, err := h.events.History(c.Request().Context(), c.Param("id"), role, email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventsResponse(events))
}

func toEventsResponse(events []*domain.ReturnEvent) listEventsResponse {
	data := make([]returnEventResponse, len(events))
	for i, e := range events {
		data[i] = returnEventResponse{
			ID:          e.ID,
			ReturnID:    e.ReturnID,
			Status:      string(e.Status),
			StatusLabel: e.Status.Label(),
			Timestamp:   e.Timestamp.UTC(),
			Source:      e.Source,
		}
	}
	return listEventsResponse{Data: data, Count: len(data)}
}

// toEventInput maps the HTTP request to the service DTO.
func toEventInput(r returnEventRequest) ports.ReturnEventInput {
	return ports.ReturnEventInput{
		ReturnID:  r.ReturnID,
		Status:    r.Status,
		Timestamp: r.Timestamp,
		Source:    r.Source,
	}
}
