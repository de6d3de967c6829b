package handlers

import (
	"fmt"
	"net/http"

	"invoice-status-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	generator services.LedgerGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler() *DevHandler {
	return &DevHandler{generator: services.NewLedgerGenerator()}
}

// GetLedgerData serves a freshly generated fake ledger in the upstream
// data source's wire format, so the service can be pointed at itself
// during local development
//
// Method: GET /dev/data
// Authentication: None
// Environment: Development only
//
// Query parameters:
//   - accounts: Number of supplier accounts (default: 5, max: 50)
//   - invoices: Invoices per account (default: 10, max: 200)
//   - days: Days of ledger history (default: 90, max: 730)
//
// Success Response: 200 OK
//   - JSON array of ledger rows
func (h *DevHandler) GetLedgerData(c echo.Context) error {
	accounts := getIntQueryParam(c, "accounts", 5)
	if accounts < 1 {
		accounts = 1
	}
	if accounts > 50 {
		accounts = 50
	}

	invoices := getIntQueryParam(c, "invoices", 10)
	if invoices < 1 {
		invoices = 1
	}
	if invoices > 200 {
		invoices = 200
	}

	days := getIntQueryParam(c, "days", 90)
	if days < 1 {
		days = 1
	}
	if days > 730 {
		days = 730
	}

	rows := h.generator.GenerateLedger(accounts, invoices, days)
	return c.JSON(http.StatusOK, rows)
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
