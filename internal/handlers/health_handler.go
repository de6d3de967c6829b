package handlers

import (
	"net/http"
	"time"

	"invoice-status-api/internal/config"
	"invoice-status-api/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	cfg *config.Config
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(cfg *config.Config) *HealthCheckHandler {
	return &HealthCheckHandler{cfg: cfg}
}

// HealthCheck adds the health check endpoint
//
// Method: GET /health
// Authentication: None
//
// Success Response: 200 OK
//   - status: "healthy"
//   - time: ISO 8601 timestamp
//
// Error Responses:
//   - 503: SYSTEM_005 - Ledger data source not configured
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.cfg.Upstream.DataURL == "" {
		traceID := getTraceIDFromContext(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Ledger data source not configured"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		if tid, ok := c.Get(TraceIDContextKey).(string); ok {
			traceID = tid
		}
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
