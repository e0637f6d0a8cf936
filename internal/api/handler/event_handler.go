package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lucamusic/event-platform/internal/core/domain"
	"github.com/lucamusic/event-platform/internal/core/ports"
)

// EventHandler handles event catalog operations.
type EventHandler struct {
	eventService ports.EventService
}

func NewEventHandler(eventService ports.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create adds a new event to the catalog. Admin only.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.eventService.Create(c.Request().Context(), toEventInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// GetByID returns a single event.
//
// @Summary      Get an event by id
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  map[string]string
// @Router       /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	event, err := h.eventService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// GetByMusicStyle lists the events tagged with a music style.
//
// @Summary      List events by music style
// @Tags         events
// @Produce      json
// @Param        style  path      string  true  "Music style"
// @Success      200    {array}   domain.Event
// @Failure      400    {object}  map[string]string
// @Router       /events/music-style/{style} [get]
func (h *EventHandler) GetByMusicStyle(c echo.Context) error {
	events, err := h.eventService.GetByMusicStyle(c.Request().Context(), c.Param("style"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Update replaces an event's catalog entry. Admin only.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Event id"
// @Param        body  body      eventRequest  true  "Event details"
// @Success      200   {object}  domain.Event
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.eventService.Update(c.Request().Context(), c.Param("id"), toEventInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete removes an event from the catalog. Admin only.
//
// @Summary      Delete an event
// @Tags         events
// @Security     BearerAuth
// @Param        id  path  string  true  "Event id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.eventService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// toEventInput maps the HTTP request to the service DTO.
func toEventInput(r eventRequest) ports.EventInput {
	return ports.EventInput{
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		MusicStyle:       r.MusicStyle,
		PhotoURL:         r.PhotoURL,
		StartDate:        r.StartDate,
		Price:            r.Price,
		Location: domain.Location{
			Name:     r.Location.Name,
			Address:  r.Location.Address,
			Capacity: r.Location.Capacity,
		},
	}
}
