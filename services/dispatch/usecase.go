package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// DispatchUC defines the interface for dispatch business logic
type DispatchUC interface {
	// Provider registry
	HandleBeaconEvent(ctx context.Context, event models.BeaconEvent) error
	GetProvider(ctx context.Context, providerID string) (*models.Provider, error)

	// Matching. FindBestProvider is a pure query: an empty candidate set
	// returns (nil, nil), never an error.
	FindBestProvider(ctx context.Context, pickup models.Coordinate, serviceType string) (*models.NearbyProvider, error)
	FindNearbyProviders(ctx context.Context, pickup models.Coordinate, serviceType string) ([]*models.NearbyProvider, error)
	DispatchRequest(ctx context.Context, req *models.ServiceRequest) (*models.NearbyProvider, error)

	// Provider assignment ownership
	AssignProvider(ctx context.Context, providerID, requestID string) error
	ReleaseProvider(ctx context.Context, providerID string) error

	// Shared-ride grouping
	JoinOrCreateGroup(ctx context.Context, req *models.ServiceRequest, maxDetourPct float64, maxWaitMin int) (*models.GroupJoinResult, error)
	LeaveGroup(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) (*models.RideGroup, error)
	UpdateGroupStatus(ctx context.Context, groupID uuid.UUID, status models.RequestStatus) error
}
