package billing

import (
	"context"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// BillingGW defines the billing gateways interface
type BillingGW interface {
	PublishPaymentProcessed(ctx context.Context, event models.PaymentEvent) error
}
