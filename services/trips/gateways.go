package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// TripsGW defines the trips gateways interface: NATS event publication plus
// the dispatch service's internal HTTP surface and the address resolver.
type TripsGW interface {
	// Event publication (fire-and-forget from the caller's perspective)
	PublishLifecycleEvent(ctx context.Context, event models.LifecycleEvent) error
	PublishTripCompleted(ctx context.Context, event models.TripSettledEvent) error
	PublishTripCancelled(ctx context.Context, event models.TripSettledEvent) error

	// Dispatch service internal API
	DispatchRequest(ctx context.Context, req *models.ServiceRequest) (*models.NearbyProvider, error)
	AssignProvider(ctx context.Context, providerID, requestID string) error
	ReleaseProvider(ctx context.Context, providerID string) error
	JoinGroup(ctx context.Context, req *models.ServiceRequest, maxDetourPct float64, maxWaitMin int) (*models.GroupJoinResult, error)
	LeaveGroup(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) error
	UpdateGroupStatus(ctx context.Context, groupID uuid.UUID, status models.RequestStatus) error

	// Address resolver
	ResolveAddress(ctx context.Context, text string) (*models.ResolveResult, error)
}
