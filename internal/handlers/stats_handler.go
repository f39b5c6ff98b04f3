package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skill-tracker/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats returns aggregate study statistics
// @Summary Get study statistics
// @Description Get the daily streak, weekly/monthly hours, skill counts per status and recent activity
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} models.Stats "Aggregate statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsService.GetStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
