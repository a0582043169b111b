// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"log"
	"strings"

	"fraudeye/internal/services/auth"
	"fraudeye/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware restores the dashboard user from a bearer token when
// one is sent. It never rejects a request; handlers decide what a missing
// user means.
type SessionMiddleware struct {
	authService auth.Service
}

func NewSessionMiddleware(authService auth.Service) *SessionMiddleware {
	return &SessionMiddleware{
		authService: authService,
	}
}

func (m *SessionMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Next()
	}

	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		log.Println("Ignoring Authorization header without Bearer prefix")
		return c.Next()
	}

	user, err := m.authService.Parse(strings.TrimSpace(tokenString))
	if err != nil {
		log.Printf("Ignoring session token: %v", err)
		return c.Next()
	}

	c.Locals(utils.SessionUserKey, user)
	return c.Next()
}
