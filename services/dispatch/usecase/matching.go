package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/geo"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/internal/pkg/newrelic"
)

// FindNearbyProviders scans the registry for providers that are online,
// approved, eligible for the service type and located, sorted by
// great-circle distance to the pickup. Distance ties keep registration
// order so repeated scans over the same registry are deterministic.
func (uc *DispatchUC) FindNearbyProviders(ctx context.Context, pickup models.Coordinate, serviceType string) ([]*models.NearbyProvider, error) {
	return newrelic.WithSegmentAndReturn(ctx, "dispatch.FindNearbyProviders", func() ([]*models.NearbyProvider, error) {
		providers, err := uc.dispatchRepo.ListProviders(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list providers: %w", err)
		}

		candidates := make([]*models.NearbyProvider, 0, len(providers))
		for _, provider := range providers {
			if !provider.Dispatchable() || !provider.EligibleFor(serviceType) {
				continue
			}
			candidates = append(candidates, &models.NearbyProvider{
				Provider:   *provider,
				DistanceKm: geo.DistanceKm(*provider.Location, pickup),
			})
		}

		// ListProviders returns registration order, so a stable sort keeps
		// the earliest-registered provider first among equal distances
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		})

		return candidates, nil
	})
}

// FindBestProvider returns the closest dispatchable provider for the
// pickup, or (nil, nil) when no candidate exists. An empty registry is a
// valid answer, not a failure: the caller queues the request unassigned.
func (uc *DispatchUC) FindBestProvider(ctx context.Context, pickup models.Coordinate, serviceType string) (*models.NearbyProvider, error) {
	candidates, err := uc.FindNearbyProviders(ctx, pickup, serviceType)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[0], nil
}

// DispatchRequest finds the best provider for a request and binds it,
// falling through to the next candidate when a concurrent dispatch grabs
// the same provider first. Returns (nil, nil) when no provider can be
// bound.
func (uc *DispatchUC) DispatchRequest(ctx context.Context, req *models.ServiceRequest) (*models.NearbyProvider, error) {
	if req.Pickup == nil {
		return nil, apperrors.Validation("request has no resolved pickup coordinate")
	}

	candidates, err := uc.FindNearbyProviders(ctx, *req.Pickup, req.ServiceType)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if err := uc.AssignProvider(ctx, candidate.Provider.ID, req.ID.String()); err != nil {
			if _, isApp := apperrors.AsAppError(err); isApp {
				// Lost the race for this provider; try the next one
				logger.Debug("Provider no longer assignable, trying next candidate",
					logger.String("provider_id", candidate.Provider.ID),
					logger.String("request_id", req.ID.String()))
				continue
			}
			return nil, err
		}

		uc.publishMatchFound(ctx, req, candidate)
		return candidate, nil
	}

	logger.Info("No dispatchable provider for request",
		logger.String("request_id", req.ID.String()),
		logger.String("service_type", req.ServiceType))
	return nil, nil
}

// AssignProvider binds a provider to a request. The per-provider lock plus
// the re-read makes the check-then-set atomic: at most one active
// assignment per provider.
func (uc *DispatchUC) AssignProvider(ctx context.Context, providerID, requestID string) error {
	uc.providerLocks.Lock(providerID)
	defer uc.providerLocks.Unlock(providerID)

	provider, err := uc.dispatchRepo.GetProvider(ctx, providerID)
	if err != nil {
		return err
	}
	if provider.ActiveRequestID != "" && provider.ActiveRequestID != requestID {
		return apperrors.Validation(fmt.Sprintf("provider %s already has an active assignment", providerID))
	}
	if provider.Availability != models.AvailabilityOnline && provider.ActiveRequestID != requestID {
		return apperrors.Validation(fmt.Sprintf("provider %s is not available for assignment", providerID))
	}

	if err := uc.dispatchRepo.SetActiveRequest(ctx, providerID, requestID); err != nil {
		return fmt.Errorf("failed to set active request: %w", err)
	}

	logger.Info("Assigned provider to request",
		logger.String("provider_id", providerID),
		logger.String("request_id", requestID))
	return nil
}

// ReleaseProvider clears the provider's active assignment and returns it
// to the online pool
func (uc *DispatchUC) ReleaseProvider(ctx context.Context, providerID string) error {
	uc.providerLocks.Lock(providerID)
	defer uc.providerLocks.Unlock(providerID)

	if err := uc.dispatchRepo.ClearActiveRequest(ctx, providerID); err != nil {
		return err
	}

	logger.Info("Released provider", logger.String("provider_id", providerID))
	return nil
}

// publishMatchFound emits the match event. Emission is fire-and-forget: a
// publish failure never rolls back the assignment.
func (uc *DispatchUC) publishMatchFound(ctx context.Context, req *models.ServiceRequest, match *models.NearbyProvider) {
	event := models.AssignmentEvent{
		RequestID:  req.ID.String(),
		ProviderID: match.Provider.ID,
		Vertical:   string(req.Vertical),
		Timestamp:  time.Now(),
	}
	if err := uc.dispatchGW.PublishMatchFound(ctx, event); err != nil {
		logger.Warn("Failed to publish match found event",
			logger.String("request_id", event.RequestID),
			logger.String("provider_id", event.ProviderID),
			logger.Err(err))
	}
}
