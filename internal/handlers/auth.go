package handlers

import (
	"strings"

	"fraudeye/internal/services/auth"
	"fraudeye/internal/utils"
	"fraudeye/internal/utils/response"
	"fraudeye/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

const maxNameLength = 100

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginUser signs in without a password check and returns a session token.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.Email = strings.TrimSpace(input.Email)
	v := validation.New()
	v.Email("email", input.Email)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	session, err := h.authService.Login(input.Email)
	if err != nil {
		return response.ServerError(c, "Authentication failed")
	}

	return c.JSON(session)
}

func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.Email = strings.TrimSpace(input.Email)
	v := validation.New()
	v.Email("email", input.Email)
	v.MaxLength("name", strings.TrimSpace(input.Name), maxNameLength)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	session, err := h.authService.Register(input.Name, input.Email)
	if err != nil {
		return response.ServerError(c, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession returns the user restored by the session middleware.
func (h *AuthHandler) GetSession(c *fiber.Ctx) error {
	user, err := utils.GetSessionUser(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	return c.JSON(fiber.Map{"user": user})
}
