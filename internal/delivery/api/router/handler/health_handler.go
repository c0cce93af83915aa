package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"grocery/internal/delivery/api/response"
	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams collects every registered dependency probe.
type HealthHandlerParams struct {
	fx.In

	Checkers []service.HealthChecker `group:"health"`
	Logger   *slog.Logger
}

// HealthHandler reports whether the service and its backing stores are reachable.
type HealthHandler struct {
	checkers []service.HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{checkers: params.Checkers, logger: params.Logger}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Check probes all dependencies concurrently; any failure yields 503.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	results := make([]error, len(h.checkers))

	var g errgroup.Group
	for i, checker := range h.checkers {
		g.Go(func() error {
			results[i] = checker.Check(ctx)

			return nil
		})
	}
	_ = g.Wait()

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checkers))}
	for i, checker := range h.checkers {
		if err := results[i]; err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Health check failed",
				slog.String("dependency", checker.Name()),
				slog.Any("error", err),
			)
			resp.Status = "degraded"
			resp.Checks[checker.Name()] = "unavailable"

			continue
		}
		resp.Checks[checker.Name()] = "ok"
	}

	if resp.Status != "ok" {
		return response.Success(c, http.StatusServiceUnavailable, resp)
	}

	return response.OK(c, resp)
}
