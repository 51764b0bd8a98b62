package gateway

import (
	"context"

	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
	"github.com/angkutin/angkutin/services/billing"
	gateway_nats "github.com/angkutin/angkutin/services/billing/gateway/nats"
)

// BillingGW handles billing gateway operations
type BillingGW struct {
	natsGateway *gateway_nats.NATSGateway
}

// NewBillingGW creates a new unified gateway instance
func NewBillingGW(natsClient *natspkg.Client) billing.BillingGW {
	return &BillingGW{
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
	}
}

// PublishPaymentProcessed publishes a processed payment event
func (g *BillingGW) PublishPaymentProcessed(ctx context.Context, event models.PaymentEvent) error {
	return g.natsGateway.PublishPaymentProcessed(ctx, event)
}
