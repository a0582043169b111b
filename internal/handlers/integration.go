package handlers

import (
	"errors"

	"fraudeye/internal/models"
	"fraudeye/internal/services/integration"
	"fraudeye/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type IntegrationHandler struct {
	service *integration.Service
}

func NewIntegrationHandler(service *integration.Service) *IntegrationHandler {
	return &IntegrationHandler{service: service}
}

func (h *IntegrationHandler) GetConfig(c *fiber.Ctx) error {
	return response.Success(c, "Integration config retrieved successfully", h.service.Get().Masked())
}

func (h *IntegrationHandler) UpdateConfig(c *fiber.Ctx) error {
	var input models.IntegrationConfig
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cfg, err := h.service.Update(input)
	if err != nil {
		if errors.Is(err, integration.ErrInvalidCallbackURL) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to update integration config")
	}

	return response.Success(c, "Integration config updated successfully", cfg.Masked())
}
