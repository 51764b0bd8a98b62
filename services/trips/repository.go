package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// TripsRepo defines the interface for trips data access operations
type TripsRepo interface {
	CreateRequest(ctx context.Context, req *models.ServiceRequest) error
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.ServiceRequest, error)
	UpdateRequest(ctx context.Context, req *models.ServiceRequest) error
	ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.ServiceRequest, error)

	// Reference data
	GetServiceType(ctx context.Context, serviceTypeID string) (*models.ServiceType, error)
	GetZoneByLocality(ctx context.Context, locality string) (*models.Zone, error)
}
