package trips

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// CreateRequestInput carries everything needed to open a service request.
// Addresses are resolved to coordinates when the caller has no coordinates
// of its own; requests whose addresses cannot be resolved are rejected
// before they reach dispatch.
type CreateRequestInput struct {
	RequesterID    uuid.UUID              `json:"requester_id"`
	Vertical       models.ServiceVertical `json:"vertical"`
	ServiceType    string                 `json:"service_type"`
	PickupAddress  string                 `json:"pickup_address,omitempty"`
	DropoffAddress string                 `json:"dropoff_address,omitempty"`
	Pickup         *models.Coordinate     `json:"pickup,omitempty"`
	Dropoff        *models.Coordinate     `json:"dropoff,omitempty"`
	PassengerCount int                    `json:"passenger_count,omitempty"`
	ScheduledAt    *time.Time             `json:"scheduled_at,omitempty"`
	MaxDetourPct   float64                `json:"max_detour_pct,omitempty"`
	MaxWaitMin     int                    `json:"max_wait_min,omitempty"`
	DurationMin    float64                `json:"duration_min,omitempty"`
	DeliveryItems  []models.DeliveryItem  `json:"delivery_items,omitempty"`
	MoveItems      []models.MoveItem      `json:"move_items,omitempty"`
	Helpers        int                    `json:"helpers,omitempty"`
}

// TripsUC defines the interface for trips business logic
type TripsUC interface {
	CreateRequest(ctx context.Context, input *CreateRequestInput) (*models.ServiceRequest, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.ServiceRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.ServiceRequest, error)

	// ApplyTransition is the single mutation path for request status.
	// Invalid transitions and unauthorized actors are rejected atomically.
	ApplyTransition(ctx context.Context, requestID uuid.UUID, target models.RequestStatus, actor models.Actor) (*models.ServiceRequest, error)

	// HandleMatchFound binds the provider chosen by dispatch
	HandleMatchFound(ctx context.Context, event models.AssignmentEvent) error
}
