package gateway

import (
	"context"

	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
	"github.com/angkutin/angkutin/services/dispatch"
	gateway_nats "github.com/angkutin/angkutin/services/dispatch/gateway/nats"
)

// DispatchGW handles dispatch gateway operations
type DispatchGW struct {
	natsGateway *gateway_nats.NATSGateway
}

// NewDispatchGW creates a new unified gateway instance
func NewDispatchGW(natsClient *natspkg.Client) dispatch.DispatchGW {
	return &DispatchGW{
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
	}
}

// PublishMatchFound publishes a provider assignment event
func (g *DispatchGW) PublishMatchFound(ctx context.Context, event models.AssignmentEvent) error {
	return g.natsGateway.PublishMatchFound(ctx, event)
}

// PublishGroupUpdated publishes a shared-ride group membership event
func (g *DispatchGW) PublishGroupUpdated(ctx context.Context, event models.GroupEvent) error {
	return g.natsGateway.PublishGroupUpdated(ctx, event)
}
