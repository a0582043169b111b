package handlers

import (
	"context"
	"time"

	"fraudeye/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const version = "1.0.0"

type HealthHandler struct {
	strategy string
	backend  string
	redis    *redis.Client
}

// NewHealthHandler reports on the classifier strategy and session store.
// redisClient may be nil when Redis is not in use.
func NewHealthHandler(strategy, backend string, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		strategy: strategy,
		backend:  backend,
		redis:    redisClient,
	}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	services := fiber.Map{
		"classifier": h.strategy,
		"store":      h.backend,
	}
	status := "ok"

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := cache.HealthCheck(ctx, h.redis); err != nil {
			services["redis"] = err.Error()
			status = "degraded"
		} else {
			services["redis"] = "connected"
		}
	}

	return c.JSON(fiber.Map{
		"status":   status,
		"version":  version,
		"services": services,
	})
}
