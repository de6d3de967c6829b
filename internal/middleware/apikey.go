package middleware

import (
	"crypto/subtle"

	"invoice-status-api/internal/errors"
	"invoice-status-api/internal/handlers"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader is the request header carrying the client credential
const APIKeyHeader = "x-api-key"

// RequireAPIKey creates a middleware that requires a valid API key in the
// x-api-key header. The comparison is constant-time so response timing
// leaks nothing about the configured key.
func RequireAPIKey(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(APIKeyHeader)
			if provided == "" {
				return handlers.SendError(c, errors.AuthMissingAPIKey)
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				return handlers.SendError(c, errors.AuthInvalidAPIKey)
			}

			return next(c)
		}
	}
}
