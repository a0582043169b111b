package handlers

import (
	"errors"
	"log"

	"fraudeye/internal/models"
	"fraudeye/internal/repositories"
	"fraudeye/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AlertHandler struct {
	store repositories.SessionStore
}

func NewAlertHandler(store repositories.SessionStore) *AlertHandler {
	return &AlertHandler{store: store}
}

func (h *AlertHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.store.ListAlerts(c.Context())
	if err != nil {
		log.Printf("Alert list error: %v", err)
		return response.ServerError(c, "Failed to retrieve alerts")
	}

	unread := 0
	for _, a := range alerts {
		if !a.Read {
			unread++
		}
	}

	if c.QueryBool("unread") {
		filtered := make([]models.Alert, 0, unread)
		for _, a := range alerts {
			if !a.Read {
				filtered = append(filtered, a)
			}
		}
		alerts = filtered
	}

	return c.JSON(fiber.Map{
		"alerts": alerts,
		"unread": unread,
	})
}

// MarkAlertRead sets the read flag. An empty body marks the alert read.
func (h *AlertHandler) MarkAlertRead(c *fiber.Ctx) error {
	input := struct {
		Read *bool `json:"read"`
	}{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}
	read := true
	if input.Read != nil {
		read = *input.Read
	}

	alert, err := h.store.MarkAlertRead(c.Context(), c.Params("id"), read)
	if err != nil {
		if errors.Is(err, repositories.ErrAlertNotFound) {
			return response.NotFound(c, "Alert not found")
		}
		return response.ServerError(c, "Failed to update alert")
	}

	return c.JSON(alert)
}
