package utils

import (
	"errors"

	"fraudeye/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SessionUserKey is the Fiber locals key holding the restored session user.
const SessionUserKey = "user"

var ErrNoSession = errors.New("no session user in context")

// GetSessionUser extracts the session user from the Fiber context.
func GetSessionUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(SessionUserKey).(*models.User)
	if !ok || user == nil {
		return nil, ErrNoSession
	}
	return user, nil
}
