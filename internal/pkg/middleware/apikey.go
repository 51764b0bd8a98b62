package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for service-to-service communication
type APIKeyMiddleware struct {
	serviceKeys map[string]string
}

// NewAPIKeyMiddleware creates a middleware instance from the configured service keys
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		serviceKeys: map[string]string{
			"dispatch-service": cfg.DispatchService,
			"trips-service":    cfg.TripsService,
			"billing-service":  cfg.BillingService,
		},
	}
}

// ValidateAPIKey restricts an endpoint to the named caller services
func (m *APIKeyMiddleware) ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			// Check if the API key belongs to any of the allowed services
			validKey := false
			for _, service := range allowedServices {
				if m.serviceKeys[service] != "" && strings.EqualFold(apiKey, m.serviceKeys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
