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
	"github.com/angkutin/angkutin/services/dispatch"
)

// DispatchHandler handles NATS subscriptions for the dispatch service
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
	natsClient *natspkg.Client
	nrApp      *newrelic.Application
	subs       []*nats.Subscription
}

// NewDispatchHandler creates a new dispatch NATS handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC, client *natspkg.Client, nrApp *newrelic.Application) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
		natsClient: client,
		nrApp:      nrApp,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the dispatch service
func (h *DispatchHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectProviderBeacon, constants.QueueDispatch, h.handleBeaconEvent)
	if err != nil {
		return fmt.Errorf("failed to subscribe to beacon events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleBeaconEvent processes provider availability beacons. Each message
// runs inside its own background transaction.
func (h *DispatchHandler) handleBeaconEvent(msg *nats.Msg) {
	txn := h.nrApp.StartTransaction("NATS.Dispatch.HandleBeacon")
	defer txn.End()
	nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject)
	ctx := newrelic.NewContext(context.Background(), txn)

	var event models.BeaconEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to unmarshal beacon event", logger.Err(err))
		return
	}

	logger.Debug("Received beacon event",
		logger.String("provider_id", event.ProviderID),
		logger.String("availability", string(event.Availability)))

	if err := h.dispatchUC.HandleBeaconEvent(ctx, event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Error handling beacon event",
			logger.String("provider_id", event.ProviderID),
			logger.Err(err))
	}
}
