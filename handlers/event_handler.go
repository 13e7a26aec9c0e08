package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	"alumni-portal/internal/status"
	"alumni-portal/models"
	"alumni-portal/monitoring"
	"alumni-portal/services"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List serves GET /api/events. With ?upcoming=true only future events are
// returned, earliest first; otherwise the full set in insertion order.
func (h *EventHandler) List(c echo.Context) error {
	var (
		events []models.Event
		err    error
	)
	if upcoming := c.QueryParam("upcoming"); upcoming == "true" || upcoming == "1" {
		events, err = h.events.Upcoming(c.Request().Context())
	} else {
		events, err = h.events.List(c.Request().Context())
	}
	if err != nil {
		slog.Error("failed to list events", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Error fetching events",
		})
	}

	// Zero events is a valid result; never serialize it as null.
	if events == nil {
		events = []models.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

type createEventRequest struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	Location     string      `json:"location"`
	Type         string      `json:"type"`
	Attendees    json.Number `json:"attendees"`
	MaxAttendees json.Number `json:"maxAttendees"`
	Organizer    string      `json:"organizer"`
	Image        string      `json:"image"`
	Price        float64     `json:"price"`
}

// Create serves POST /api/events. Required fields are enforced here as well
// as in the form; a malformed attendees value silently defaults to 0.
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	event, err := h.events.Create(c.Request().Context(), services.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Type:         req.Type,
		Attendees:    coerceCount(req.Attendees),
		MaxAttendees: coerceCount(req.MaxAttendees),
		Organizer:    req.Organizer,
		Image:        req.Image,
		Price:        req.Price,
	})
	if err != nil {
		if isValidationError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": err.Error(),
			})
		}
		slog.Error("failed to create event", "title", req.Title, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Error creating event",
		})
	}

	monitoring.TrackEventCreated(event.Type.Label())
	return c.JSON(http.StatusCreated, event)
}

// coerceCount turns the wire value into a non-negative int, defaulting to 0
// for anything missing or unparsable.
func coerceCount(value json.Number) int {
	n, err := value.Int64()
	if err != nil {
		if f, ferr := value.Float64(); ferr == nil {
			n = int64(f)
		} else {
			return 0
		}
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

func isValidationError(err error) bool {
	return errors.Is(err, status.ErrTitleRequired) ||
		errors.Is(err, status.ErrDateRequired) ||
		errors.Is(err, status.ErrInvalidDate) ||
		errors.Is(err, status.ErrInvalidEventType)
}
