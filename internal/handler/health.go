package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/org-directory/internal/middleware"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/labstack/echo/v4"
)

// Pinger is the part of the connection pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service and its database are usable.
type HealthHandler struct {
	Handler
	db Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	var db Pinger
	if s.DB != nil && s.DB.Pool != nil {
		db = s.DB.Pool
	}
	return newHealthHandler(s, db)
}

func newHealthHandler(s *server.Server, db Pinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      db,
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth runs the configured dependency checks and answers 200 when
// all pass, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	if cfg.Enabled && cfg.Has("database") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Timeout)
		defer cancel()

		dbStart := time.Now()
		err := h.pingDatabase(ctx)
		elapsed := time.Since(dbStart)

		if err != nil {
			response.Status = "unhealthy"
			response.Checks["database"] = checkResult{
				Status:       "unhealthy",
				ResponseTime: elapsed.String(),
				Error:        "database unreachable",
			}

			logger.Error().
				Err(err).
				Dur("response_time", elapsed).
				Msg("database health check failed")

			h.recordFailure("database", elapsed, err)
		} else {
			response.Checks["database"] = checkResult{
				Status:       "healthy",
				ResponseTime: elapsed.String(),
			}

			logger.Debug().
				Dur("response_time", elapsed).
				Msg("database health check passed")
		}
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return errors.New("database pool not initialized")
	}
	return h.db.Ping(ctx)
}

func (h *HealthHandler) recordFailure(check string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent(
		"HealthCheckError",
		map[string]any{
			"check_type":       check,
			"operation":        "health_check",
			"error_type":       check + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		},
	)
}
