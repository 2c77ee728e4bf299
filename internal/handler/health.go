package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb/internal/server"
)

// HealthHandler serves the service health endpoint.
type HealthHandler struct {
	server    *server.Server
	startedAt time.Time
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		server:    s,
		startedAt: time.Now(),
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
	Env      string `json:"env"`
}

// CheckHealth reports service status, including database reachability. The
// endpoint answers 503 when the database ping fails so load balancers can
// pull the instance.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	response := healthResponse{
		Status:   "ok",
		Database: "ok",
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
		Env:      h.server.Config.Primary.Env,
	}

	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		h.server.Logger.Error().Err(err).Msg("health check database ping failed")
		response.Status = "degraded"
		response.Database = "unreachable"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
