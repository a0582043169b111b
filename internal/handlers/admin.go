package handlers

import (
	"time"

	"fraudeye/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SystemInfo describes how the running engine is wired.
type SystemInfo struct {
	Classifier  string   `json:"classifier"`
	Model       string   `json:"model,omitempty"`
	FailPolicy  string   `json:"fail_policy"`
	Store       string   `json:"store"`
	AlertSinks  []string `json:"alert_sinks"`
	Environment string   `json:"environment"`
}

type AdminHandler struct {
	info    SystemInfo
	started time.Time
}

func NewAdminHandler(info SystemInfo) *AdminHandler {
	if info.AlertSinks == nil {
		info.AlertSinks = []string{}
	}
	return &AdminHandler{info: info, started: time.Now()}
}

func (h *AdminHandler) GetSystem(c *fiber.Ctx) error {
	body := fiber.Map{
		"system":         h.info,
		"version":        version,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	}
	if user, err := utils.GetSessionUser(c); err == nil {
		body["viewer"] = user
	}
	return c.JSON(body)
}
