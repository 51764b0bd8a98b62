package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/angkutin/angkutin/internal/pkg/middleware"
	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
	"github.com/angkutin/angkutin/services/billing"
	httpHandler "github.com/angkutin/angkutin/services/billing/handler/http"
	natsHandler "github.com/angkutin/angkutin/services/billing/handler/nats"
)

// Handler combines all handlers for the billing service
type Handler struct {
	cfg         *models.Config
	billingHTTP *httpHandler.BillingHandler
	billingNATS *natsHandler.BillingHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	cfg *models.Config,
	billingUC billing.BillingUC,
	natsClient *natspkg.Client,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		cfg:         cfg,
		billingHTTP: httpHandler.NewBillingHandler(billingUC),
		billingNATS: natsHandler.NewBillingHandler(billingUC, natsClient, nrApp),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("trips-service"))

	internal.GET("/payments/:requestID", h.billingHTTP.GetPayment)
	internal.POST("/fare/quote", h.billingHTTP.QuoteFare)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.billingNATS.InitNATSConsumers()
}
