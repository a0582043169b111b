package handlers

import (
	"log"

	"fraudeye/internal/services/dashboard"
	"fraudeye/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats returns the headline totals and the seven day chart
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		log.Printf("Dashboard error: %v", err)
		return response.ServerError(c, "Failed to get dashboard data")
	}

	return response.Success(c, "Dashboard data retrieved successfully", stats)
}
