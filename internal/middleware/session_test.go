package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"fraudeye/internal/services/auth"
	"fraudeye/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	authService := auth.NewService("test-secret", time.Hour)
	session, err := authService.Login("admin@bank.com")
	require.NoError(t, err)

	app := fiber.New()
	app.Use(NewSessionMiddleware(authService).Handler)
	app.Get("/", func(c *fiber.Ctx) error {
		user, err := utils.GetSessionUser(c)
		if err != nil {
			return c.SendString("anonymous")
		}
		return c.SendString(user.Role)
	})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", "anonymous"},
		{"valid token", "Bearer " + session.Token, "ADMIN"},
		{"wrong scheme", "Basic " + session.Token, "anonymous"},
		{"bad token", "Bearer nope", "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			body := make([]byte, 16)
			n, _ := resp.Body.Read(body)
			assert.Equal(t, tt.want, string(body[:n]))
		})
	}
}
