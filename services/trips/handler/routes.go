package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/angkutin/angkutin/internal/pkg/middleware"
	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
	"github.com/angkutin/angkutin/services/trips"
	httpHandler "github.com/angkutin/angkutin/services/trips/handler/http"
	natsHandler "github.com/angkutin/angkutin/services/trips/handler/nats"
)

// Handler combines all handlers for the trips service
type Handler struct {
	cfg       *models.Config
	tripsHTTP *httpHandler.TripsHandler
	tripsNATS *natsHandler.TripsHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	cfg *models.Config,
	tripsUC trips.TripsUC,
	natsClient *natspkg.Client,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		cfg:       cfg,
		tripsHTTP: httpHandler.NewTripsHandler(tripsUC),
		tripsNATS: natsHandler.NewTripsHandler(tripsUC, natsClient, nrApp),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// All trips routes are actor-facing and JWT authenticated
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	v1.POST("/requests", h.tripsHTTP.CreateRequest)
	v1.GET("/requests", h.tripsHTTP.ListRequests)
	v1.GET("/requests/:requestID", h.tripsHTTP.GetRequest)
	v1.POST("/requests/:requestID/transition", h.tripsHTTP.Transition)
	v1.POST("/requests/:requestID/cancel", h.tripsHTTP.Cancel)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.tripsNATS.InitNATSConsumers()
}
