package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	"alumni-portal/services"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview serves GET /api/stats.
func (h *StatsHandler) Overview(c echo.Context) error {
	stats, err := h.stats.Overview(c.Request().Context())
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Error fetching stats",
		})
	}
	return c.JSON(http.StatusOK, stats)
}
