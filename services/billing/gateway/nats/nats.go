package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/angkutin/angkutin/internal/pkg/constants"
	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
)

// NATSGateway handles NATS event publication for the billing service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishPaymentProcessed publishes a processed payment event
func (g *NATSGateway) PublishPaymentProcessed(_ context.Context, event models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}
	return g.client.Publish(constants.SubjectPaymentProcessed, data)
}
