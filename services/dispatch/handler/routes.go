package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/angkutin/angkutin/internal/pkg/middleware"
	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
	"github.com/angkutin/angkutin/services/dispatch"
	httpHandler "github.com/angkutin/angkutin/services/dispatch/handler/http"
	natsHandler "github.com/angkutin/angkutin/services/dispatch/handler/nats"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	cfg          *models.Config
	dispatchHTTP *httpHandler.DispatchHandler
	dispatchNATS *natsHandler.DispatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	cfg *models.Config,
	dispatchUC dispatch.DispatchUC,
	natsClient *natspkg.Client,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		cfg:          cfg,
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
		dispatchNATS: natsHandler.NewDispatchHandler(dispatchUC, natsClient, nrApp),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("trips-service"))

	internal.POST("/dispatch", h.dispatchHTTP.DispatchRequest)
	internal.GET("/providers/nearby", h.dispatchHTTP.FindNearbyProviders)
	internal.GET("/providers/:providerID", h.dispatchHTTP.GetProvider)
	internal.POST("/providers/:providerID/assign", h.dispatchHTTP.AssignProvider)
	internal.POST("/providers/:providerID/release", h.dispatchHTTP.ReleaseProvider)
	internal.POST("/groups/join", h.dispatchHTTP.JoinGroup)
	internal.POST("/groups/:groupID/leave", h.dispatchHTTP.LeaveGroup)
	internal.POST("/groups/:groupID/status", h.dispatchHTTP.UpdateGroupStatus)

	// Provider-facing beacon ingestion (JWT authenticated)
	providerGroup := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	providerGroup.POST("/beacon", h.dispatchHTTP.PostBeacon)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.dispatchNATS.InitNATSConsumers()
}
