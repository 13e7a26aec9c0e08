package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	"alumni-portal/models"
	"alumni-portal/services"
)

type ActivityHandler struct {
	activities *services.ActivityService
}

func NewActivityHandler(activities *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// Recent serves GET /api/activities: the five newest entries.
func (h *ActivityHandler) Recent(c echo.Context) error {
	activities, err := h.activities.Recent(c.Request().Context())
	if err != nil {
		slog.Error("failed to list activities", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Error fetching activities",
		})
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return c.JSON(http.StatusOK, activities)
}
