package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
	"github.com/angkutin/angkutin/services/trips"
	gateway_http "github.com/angkutin/angkutin/services/trips/gateway/http"
	gateway_nats "github.com/angkutin/angkutin/services/trips/gateway/nats"
)

// TripsGW handles trips gateway operations
type TripsGW struct {
	natsGateway     *gateway_nats.NATSGateway
	dispatchGateway *gateway_http.DispatchGateway
	resolverGateway *gateway_http.ResolverGateway
}

// NewTripsGW creates a new unified gateway instance
func NewTripsGW(cfg *models.Config, natsClient *natspkg.Client) trips.TripsGW {
	return &TripsGW{
		natsGateway:     gateway_nats.NewNATSGateway(natsClient),
		dispatchGateway: gateway_http.NewDispatchGateway(cfg),
		resolverGateway: gateway_http.NewResolverGateway(cfg),
	}
}

// PublishLifecycleEvent publishes a status transition event
func (g *TripsGW) PublishLifecycleEvent(ctx context.Context, event models.LifecycleEvent) error {
	return g.natsGateway.PublishLifecycleEvent(ctx, event)
}

// PublishTripCompleted publishes a completed-trip settlement event
func (g *TripsGW) PublishTripCompleted(ctx context.Context, event models.TripSettledEvent) error {
	return g.natsGateway.PublishTripCompleted(ctx, event)
}

// PublishTripCancelled publishes a cancelled-trip settlement event
func (g *TripsGW) PublishTripCancelled(ctx context.Context, event models.TripSettledEvent) error {
	return g.natsGateway.PublishTripCancelled(ctx, event)
}

// DispatchRequest asks the dispatch service for the best provider
func (g *TripsGW) DispatchRequest(ctx context.Context, req *models.ServiceRequest) (*models.NearbyProvider, error) {
	return g.dispatchGateway.DispatchRequest(ctx, req)
}

// AssignProvider binds a provider to a request in dispatch
func (g *TripsGW) AssignProvider(ctx context.Context, providerID, requestID string) error {
	return g.dispatchGateway.AssignProvider(ctx, providerID, requestID)
}

// ReleaseProvider returns a provider to the online pool
func (g *TripsGW) ReleaseProvider(ctx context.Context, providerID string) error {
	return g.dispatchGateway.ReleaseProvider(ctx, providerID)
}

// JoinGroup runs join-or-create for a shared-ride request
func (g *TripsGW) JoinGroup(ctx context.Context, req *models.ServiceRequest, maxDetourPct float64, maxWaitMin int) (*models.GroupJoinResult, error) {
	return g.dispatchGateway.JoinGroup(ctx, req, maxDetourPct, maxWaitMin)
}

// LeaveGroup removes a request from its shared-ride group
func (g *TripsGW) LeaveGroup(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) error {
	return g.dispatchGateway.LeaveGroup(ctx, groupID, requestID, passengerCount)
}

// UpdateGroupStatus mirrors a member leg's lifecycle status onto its group
func (g *TripsGW) UpdateGroupStatus(ctx context.Context, groupID uuid.UUID, status models.RequestStatus) error {
	return g.dispatchGateway.UpdateGroupStatus(ctx, groupID, status)
}

// ResolveAddress resolves address text to a coordinate
func (g *TripsGW) ResolveAddress(ctx context.Context, text string) (*models.ResolveResult, error) {
	return g.resolverGateway.ResolveAddress(ctx, text)
}
