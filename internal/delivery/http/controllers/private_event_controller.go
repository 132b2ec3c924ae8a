package controllers

import (
	"log/slog"
	"net/http"

	"eventlisting/internal/delivery/http/helpers"
	"eventlisting/internal/domain"
)

// PrivateEventController serves the routes under /users/{userId}/events.
type PrivateEventController struct {
	Logger  *slog.Logger
	Service domain.PrivateEventService
}

func NewPrivateEventController(logger *slog.Logger, svc domain.PrivateEventService) *PrivateEventController {
	return &PrivateEventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events created by a user
// @Tags private
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param from query int false "Offset of the first row" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.EventShort
// @Failure 400 {object} helpers.ApiError "status: BAD_REQUEST"
// @Failure 401 {object} helpers.ApiError "status: UNAUTHORIZED"
// @Failure 403 {object} helpers.ApiError "status: FORBIDDEN"
// @Router /users/{userId}/events [get]
func (c *PrivateEventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathInt64(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePage(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	events, err := c.Service.ListEvents(r.Context(), userID, page)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a PENDING event. The event date must be at least two hours ahead.
// @Tags private
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param event body NewEventRequest true "Event data"
// @Success 201 {object} domain.EventFull
// @Failure 400 {object} helpers.ApiError "status: BAD_REQUEST"
// @Failure 404 {object} helpers.ApiError "status: NOT_FOUND (user or category)"
// @Router /users/{userId}/events [post]
func (c *PrivateEventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathInt64(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req NewEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), userID, draft)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Applies the provided fields. Published events and other users' events cannot be updated.
// @Tags private
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param event body UpdateEventRequest true "Fields to change; eventId is required"
// @Success 200 {object} domain.EventFull
// @Failure 400 {object} helpers.ApiError "status: BAD_REQUEST"
// @Failure 404 {object} helpers.ApiError "status: NOT_FOUND"
// @Router /users/{userId}/events [patch]
func (c *PrivateEventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathInt64(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch, err := req.ToDomain()
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), userID, patch)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// GetEvent godoc
// @Summary Get one of the user's events
// @Tags private
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} domain.EventFull
// @Failure 403 {object} helpers.ApiError "status: FORBIDDEN"
// @Failure 404 {object} helpers.ApiError "status: NOT_FOUND"
// @Router /users/{userId}/events/{eventId} [get]
func (c *PrivateEventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	event, err := c.Service.ReadEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// CancelEvent godoc
// @Summary Cancel one of the user's events
// @Tags private
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} domain.EventFull
// @Failure 403 {object} helpers.ApiError "status: FORBIDDEN"
// @Failure 404 {object} helpers.ApiError "status: NOT_FOUND"
// @Router /users/{userId}/events/{eventId} [patch]
func (c *PrivateEventController) CancelEvent(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	event, err := c.Service.CancelEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

func (c *PrivateEventController) userAndEvent(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, err := helpers.PathInt64(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return 0, 0, false
	}
	eventID, err := helpers.PathInt64(r, "eventId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return 0, 0, false
	}
	return userID, eventID, true
}
