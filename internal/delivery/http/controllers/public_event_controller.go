package controllers

import (
	"log/slog"
	"net/http"

	"eventlisting/internal/delivery/http/helpers"
	"eventlisting/internal/domain"
)

type PublicEventController struct {
	Logger   *slog.Logger
	Events   domain.PublicEventService
	Comments domain.CommentService
}

func NewPublicEventController(logger *slog.Logger, events domain.PublicEventService, comments domain.CommentService) *PublicEventController {
	return &PublicEventController{
		Logger:   logger,
		Events:   events,
		Comments: comments,
	}
}

func hitFrom(r *http.Request) domain.Hit {
	return domain.Hit{URI: r.URL.Path, IP: helpers.ClientIP(r)}
}

// ListEvents godoc
// @Summary Search published events
// @Description Returns published events matching the filters. Each call is reported to the statistics service.
// @Tags public
// @Produce json
// @Param text query string false "Case-insensitive text searched in annotation and description"
// @Param categories query []int false "Category IDs (repeated or comma separated)" collectionFormat(multi)
// @Param paid query bool false "Only paid or only free events"
// @Param rangeStart query string false "Earliest event date, yyyy-MM-dd HH:mm:ss (default now)"
// @Param rangeEnd query string false "Latest event date, yyyy-MM-dd HH:mm:ss"
// @Param onlyAvailable query bool false "Drop events whose confirmed requests exceed the participant limit" default(false)
// @Param sort query string false "EVENT_DATE or VIEWS" Enums(EVENT_DATE, VIEWS)
// @Param from query int false "Offset of the first row" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.EventShort
// @Failure 400 {object} helpers.ApiError "status: BAD_REQUEST"
// @Failure 500 {object} helpers.ApiError "status: INTERNAL_SERVER_ERROR"
// @Router /events [get]
func (c *PublicEventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	search, err := parseEventSearch(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	events, err := c.Events.ListEvents(r.Context(), search, hitFrom(r))
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

func parseEventSearch(r *http.Request) (domain.EventSearch, error) {
	q := r.URL.Query()
	search := domain.EventSearch{
		Text:       q.Get("text"),
		RangeStart: q.Get("rangeStart"),
		RangeEnd:   q.Get("rangeEnd"),
	}
	var err error
	if search.CategoryIDs, err = helpers.QueryInt64List(r, "categories"); err != nil {
		return search, err
	}
	if search.Paid, err = helpers.QueryBool(r, "paid"); err != nil {
		return search, err
	}
	onlyAvailable, err := helpers.QueryBool(r, "onlyAvailable")
	if err != nil {
		return search, err
	}
	search.OnlyAvailable = onlyAvailable != nil && *onlyAvailable
	if search.Sort, err = domain.ParseSortKey(q.Get("sort")); err != nil {
		return search, err
	}
	if search.Page, err = helpers.ParsePage(r); err != nil {
		return search, err
	}
	return search, nil
}

// GetEvent godoc
// @Summary Get a published event
// @Description Returns the full event with confirmed requests and views. Each call is reported to the statistics service.
// @Tags public
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.EventFull
// @Failure 400 {object} helpers.ApiError "status: BAD_REQUEST (event not published)"
// @Failure 404 {object} helpers.ApiError "status: NOT_FOUND"
// @Failure 500 {object} helpers.ApiError "status: INTERNAL_SERVER_ERROR"
// @Router /events/{id} [get]
func (c *PublicEventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathInt64(r, "id")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	event, err := c.Events.ReadEvent(r.Context(), id, hitFrom(r))
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// ListComments godoc
// @Summary List comments of an event
// @Tags public
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} domain.CommentDTO
// @Failure 400 {object} helpers.ApiError "status: BAD_REQUEST"
// @Failure 404 {object} helpers.ApiError "status: NOT_FOUND"
// @Router /events/{eventId}/comments [get]
func (c *PublicEventController) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathInt64(r, "eventId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	comments, err := c.Comments.ReadEventComments(r.Context(), id)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comments)
}
