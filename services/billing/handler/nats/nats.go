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
	"github.com/angkutin/angkutin/services/billing"
)

// BillingHandler handles NATS messages for the billing service
type BillingHandler struct {
	billingUC  billing.BillingUC
	natsClient *natspkg.Client
	nrApp      *newrelic.Application
	subs       []*nats.Subscription
}

// NewBillingHandler creates a new billing NATS handler
func NewBillingHandler(billingUC billing.BillingUC, natsClient *natspkg.Client, nrApp *newrelic.Application) *BillingHandler {
	return &BillingHandler{
		billingUC:  billingUC,
		natsClient: natsClient,
		nrApp:      nrApp,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to settlement events from the trips service
func (h *BillingHandler) InitNATSConsumers() error {
	completed, err := h.natsClient.QueueSubscribe(constants.SubjectTripCompleted, constants.QueueBilling, h.handleTripSettled)
	if err != nil {
		return fmt.Errorf("failed to subscribe to completion events: %w", err)
	}
	h.subs = append(h.subs, completed)

	cancelled, err := h.natsClient.QueueSubscribe(constants.SubjectTripCancelled, constants.QueueBilling, h.handleTripSettled)
	if err != nil {
		return fmt.Errorf("failed to subscribe to cancellation events: %w", err)
	}
	h.subs = append(h.subs, cancelled)

	return nil
}

// handleTripSettled settles a completed or cancelled trip. Each message
// runs inside its own background transaction.
func (h *BillingHandler) handleTripSettled(msg *nats.Msg) {
	txn := h.nrApp.StartTransaction("NATS.Billing.HandleTripSettled")
	defer txn.End()
	nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject)
	ctx := newrelic.NewContext(context.Background(), txn)

	var event models.TripSettledEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to unmarshal settlement event", logger.Err(err))
		return
	}

	if err := h.billingUC.HandleTripSettled(ctx, event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to settle trip",
			logger.String("request_id", event.RequestID),
			logger.Err(err))
	}
}
