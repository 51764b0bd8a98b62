package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
)

// HandleBeaconEvent processes a provider availability beacon: it registers
// unknown providers, refreshes the live location and flips availability.
func (uc *DispatchUC) HandleBeaconEvent(ctx context.Context, event models.BeaconEvent) error {
	if event.ProviderID == "" {
		return apperrors.Validation("beacon is missing provider_id")
	}

	uc.providerLocks.Lock(event.ProviderID)
	defer uc.providerLocks.Unlock(event.ProviderID)

	provider, err := uc.dispatchRepo.GetProvider(ctx, event.ProviderID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			return fmt.Errorf("failed to load provider: %w", err)
		}
		// First beacon registers the provider. Approval is managed out of
		// band; beacon-registered providers start approved.
		provider = &models.Provider{
			ID:       event.ProviderID,
			Approval: models.ApprovalApproved,
		}
	}

	provider.Availability = event.Availability
	provider.Location = &models.Coordinate{
		Latitude:  event.Location.Latitude,
		Longitude: event.Location.Longitude,
	}
	if len(event.ServiceTypes) > 0 {
		provider.ServiceTypes = event.ServiceTypes
	}
	provider.UpdatedAt = event.Timestamp
	if provider.UpdatedAt.IsZero() {
		provider.UpdatedAt = time.Now()
	}

	if err := uc.dispatchRepo.UpsertProvider(ctx, provider); err != nil {
		return fmt.Errorf("failed to upsert provider: %w", err)
	}

	logger.Info("Processed provider beacon",
		logger.String("provider_id", provider.ID),
		logger.String("availability", string(provider.Availability)),
		logger.Strings("service_types", provider.ServiceTypes))
	return nil
}

// GetProvider fetches a provider from the registry
func (uc *DispatchUC) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	return uc.dispatchRepo.GetProvider(ctx, providerID)
}
