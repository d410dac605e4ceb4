package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler answers load balancer probes. Redis is optional, so its
// state is reported but never fails the probe.
type HealthHandler struct {
	Redis *redis.Client
}

func NewHealthHandler(rdb *redis.Client) *HealthHandler {
	return &HealthHandler{Redis: rdb}
}

func (h *HealthHandler) Health(c echo.Context) error {
	state := "disabled"
	if h.Redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
		defer cancel()
		state = "up"
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			state = "down"
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "redis": state})
}
