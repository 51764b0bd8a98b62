package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// BillingRepo defines the interface for billing data access operations
type BillingRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	CreateCommission(ctx context.Context, commission *models.Commission) error
	GetPaymentByRequest(ctx context.Context, requestID uuid.UUID) (*models.Payment, error)

	// Reference data
	GetServiceType(ctx context.Context, serviceTypeID string) (*models.ServiceType, error)
	GetZone(ctx context.Context, zoneID string) (*models.Zone, error)
}
