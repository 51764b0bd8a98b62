package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/angkutin/angkutin/internal/pkg/constants"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
	nrpkg "github.com/angkutin/angkutin/internal/pkg/newrelic"
	"github.com/angkutin/angkutin/services/trips"
)

// TripsHandler handles NATS messages for the trips service
type TripsHandler struct {
	tripsUC    trips.TripsUC
	natsClient *natspkg.Client
	nrApp      *newrelic.Application
	subs       []*nats.Subscription
}

// NewTripsHandler creates a new trips NATS handler
func NewTripsHandler(tripsUC trips.TripsUC, natsClient *natspkg.Client, nrApp *newrelic.Application) *TripsHandler {
	return &TripsHandler{
		tripsUC:    tripsUC,
		natsClient: natsClient,
		nrApp:      nrApp,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to match events from dispatch. A queue group
// ensures one trips instance handles each match.
func (h *TripsHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectMatchFound, constants.QueueTrips, h.handleMatchFound)
	if err != nil {
		return fmt.Errorf("failed to subscribe to match events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleMatchFound binds the provider dispatch matched to the request. Each
// message runs inside its own background transaction.
func (h *TripsHandler) handleMatchFound(msg *nats.Msg) {
	txn := h.nrApp.StartTransaction("NATS.Trips.HandleMatchFound")
	defer txn.End()
	nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject)
	ctx := newrelic.NewContext(context.Background(), txn)

	var event models.AssignmentEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to unmarshal assignment event", logger.Err(err))
		return
	}

	if err := h.tripsUC.HandleMatchFound(ctx, event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to handle assignment event",
			logger.String("request_id", event.RequestID),
			logger.String("provider_id", event.ProviderID),
			logger.Err(err))
	}
}
