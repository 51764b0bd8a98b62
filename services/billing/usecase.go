package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// BillingUC defines the interface for billing business logic
type BillingUC interface {
	// HandleTripSettled turns a settlement event into a payment: the
	// commission split for completed trips, the cancellation fee for
	// cancelled ones. Settlement is idempotent per request.
	HandleTripSettled(ctx context.Context, event models.TripSettledEvent) error

	GetPaymentByRequest(ctx context.Context, requestID uuid.UUID) (*models.Payment, error)

	// QuoteFare prices a hypothetical trip without creating anything
	QuoteFare(ctx context.Context, input *QuoteInput) (*models.FareBreakdown, error)
}

// QuoteInput describes the trip to price
type QuoteInput struct {
	Vertical      models.ServiceVertical `json:"vertical"`
	ServiceType   string                 `json:"service_type"`
	DistanceKm    float64                `json:"distance_km"`
	DurationMin   float64                `json:"duration_min,omitempty"`
	DiscountPct   float64                `json:"discount_pct,omitempty"`
	DeliveryItems []models.DeliveryItem  `json:"delivery_items,omitempty"`
	MoveItems     []models.MoveItem      `json:"move_items,omitempty"`
	Helpers       int                    `json:"helpers,omitempty"`
	OriginZoneID  string                 `json:"origin_zone_id,omitempty"`
	DestZoneID    string                 `json:"dest_zone_id,omitempty"`
}
