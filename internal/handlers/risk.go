package handlers

import (
	"errors"

	"fraudeye/internal/models"
	"fraudeye/internal/services/transaction"
	"fraudeye/internal/utils/response"
	"fraudeye/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

const invalidJSONMessage = "Invalid JSON format in request body"

type RiskHandler struct {
	txService transaction.Service
}

func NewRiskHandler(txService transaction.Service) *RiskHandler {
	return &RiskHandler{
		txService: txService,
	}
}

// FraudCheck classifies the submitted attributes. Nothing is recorded.
func (h *RiskHandler) FraudCheck(c *fiber.Ctx) error {
	var attrs models.TransactionAttributes
	if err := c.BodyParser(&attrs); err != nil {
		return payloadError(c, transaction.DecodeError(err))
	}

	return c.JSON(h.txService.Check(c.Context(), attrs))
}

// SandboxTransaction runs a raw API payload through the full pipeline and
// answers the way the engine answers a client bank.
func (h *RiskHandler) SandboxTransaction(c *fiber.Ctx) error {
	resp, err := h.txService.Sandbox(c.Context(), c.Body())
	if err != nil {
		var fieldErr *transaction.FieldError
		switch {
		case errors.As(err, &fieldErr), errors.Is(err, transaction.ErrInvalidPayload):
			return payloadError(c, err)
		case errors.Is(err, transaction.ErrRequestCancelled):
			return response.Error(c, fiber.StatusRequestTimeout, "Request cancelled")
		}
		return response.ServerError(c, "Failed to process transaction")
	}

	return c.JSON(resp)
}

// payloadError answers 400 for an undecodable body, naming the field when
// the JSON was well-formed but mistyped.
func payloadError(c *fiber.Ctx, err error) error {
	var fieldErr *transaction.FieldError
	if errors.As(err, &fieldErr) {
		v := validation.New()
		v.AddError(fieldErr.Field, fieldErr.Message)
		return response.ValidationError(c, v.Errors)
	}
	return response.BadRequest(c, invalidJSONMessage)
}
