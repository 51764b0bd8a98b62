package usecase

import (
	"context"
	"fmt"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/services/billing"
)

// QuoteFare prices a hypothetical trip without persisting anything
func (uc *BillingUC) QuoteFare(ctx context.Context, input *billing.QuoteInput) (*models.FareBreakdown, error) {
	if !input.Vertical.IsValid() {
		return nil, apperrors.Validationf("unknown service vertical: %s", input.Vertical)
	}
	if input.DistanceKm < 0 {
		return nil, apperrors.Validation("distance cannot be negative")
	}

	serviceType, err := uc.billingRepo.GetServiceType(ctx, input.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("failed to load service type: %w", err)
	}

	var breakdown models.FareBreakdown
	switch input.Vertical {
	case models.VerticalDelivery:
		breakdown = uc.fareCalc.DeliveryFare(serviceType, input.DeliveryItems, input.DistanceKm)
	case models.VerticalMoving:
		breakdown = uc.fareCalc.MovingFare(serviceType, input.DistanceKm, input.MoveItems, input.Helpers)
	case models.VerticalSharedRide:
		breakdown = uc.fareCalc.SharedRideFare(serviceType, input.DistanceKm, input.DiscountPct)
	case models.VerticalTaxi:
		originZone, destZone, err := uc.lookupZones(ctx, input)
		if err != nil {
			return nil, err
		}
		breakdown = uc.fareCalc.RideFare(serviceType, input.DistanceKm, input.DurationMin, originZone, destZone)
	default:
		breakdown = uc.fareCalc.RideFare(serviceType, input.DistanceKm, input.DurationMin, nil, nil)
	}

	return &breakdown, nil
}

func (uc *BillingUC) lookupZones(ctx context.Context, input *billing.QuoteInput) (*models.Zone, *models.Zone, error) {
	if input.OriginZoneID == "" || input.DestZoneID == "" {
		return nil, nil, nil
	}

	originZone, err := uc.billingRepo.GetZone(ctx, input.OriginZoneID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load origin zone: %w", err)
	}
	destZone, err := uc.billingRepo.GetZone(ctx, input.DestZoneID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load destination zone: %w", err)
	}
	return originZone, destZone, nil
}
