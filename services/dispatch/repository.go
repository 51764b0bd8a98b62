package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// DispatchRepo defines the interface for dispatch data access operations
type DispatchRepo interface {
	// Provider registry operations (Redis)
	UpsertProvider(ctx context.Context, provider *models.Provider) error
	GetProvider(ctx context.Context, providerID string) (*models.Provider, error)
	ListProviders(ctx context.Context) ([]*models.Provider, error)
	SetAvailability(ctx context.Context, providerID string, availability models.AvailabilityStatus) error
	SetActiveRequest(ctx context.Context, providerID, requestID string) error
	ClearActiveRequest(ctx context.Context, providerID string) error
	RemoveProvider(ctx context.Context, providerID string) error

	// Shared-ride group operations (Postgres)
	CreateGroup(ctx context.Context, group *models.RideGroup) error
	GetGroup(ctx context.Context, groupID uuid.UUID) (*models.RideGroup, error)
	ListOpenGroups(ctx context.Context, openedAfter time.Time) ([]*models.RideGroup, error)
	AddGroupMember(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) (*models.RideGroup, error)
	RemoveGroupMember(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) (*models.RideGroup, error)
	UpdateGroupStatus(ctx context.Context, groupID uuid.UUID, status models.RequestStatus) error
	DeleteGroup(ctx context.Context, groupID uuid.UUID) error
}
