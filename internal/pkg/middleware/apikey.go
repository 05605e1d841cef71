package middleware

import (
	"crypto/subtle"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	// APIKeyHeader carries the pre-shared secret for non-user callers
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates pre-shared keys for machine-to-machine endpoints
type APIKeyMiddleware struct {
	cfg *models.APIKeyConfig
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// JobsHandler validates the shared secret that authorizes background-job
// triggers. Authorization here is by secret, not end-user identity.
func (m *APIKeyMiddleware) JobsHandler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			if m.cfg.JobsKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.JobsKey)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
