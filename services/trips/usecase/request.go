package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/geo"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/internal/pkg/newrelic"
	"github.com/angkutin/angkutin/services/trips"
)

// Verticals dispatched immediately on creation. Emergencies dispatch once
// an operator acknowledges the call, deliveries once the store marks them
// ready, moves and day-bookings wait for their schedule.
var immediateDispatch = map[models.ServiceVertical]bool{
	models.VerticalRide: true,
	models.VerticalTaxi: true,
}

// CreateRequest validates and prices a new service request, joins it to a
// shared-ride group when poolable, persists it in its vertical's initial
// status and hands immediate verticals to dispatch.
func (uc *TripsUC) CreateRequest(ctx context.Context, input *trips.CreateRequestInput) (*models.ServiceRequest, error) {
	return newrelic.WithSegmentAndReturn(ctx, "trips.CreateRequest", func() (*models.ServiceRequest, error) {
		if !input.Vertical.IsValid() {
			return nil, apperrors.Validationf("unknown service vertical: %s", input.Vertical)
		}
		if input.ServiceType == "" {
			return nil, apperrors.Validation("service type is required")
		}
		if input.RequesterID == uuid.Nil {
			return nil, apperrors.Validation("requester id is required")
		}
		if input.PassengerCount <= 0 {
			input.PassengerCount = 1
		}

		pickup, dropoff, err := uc.resolveEndpoints(ctx, input)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		req := &models.ServiceRequest{
			ID:             uuid.New(),
			RequesterID:    input.RequesterID,
			Vertical:       input.Vertical,
			ServiceType:    input.ServiceType,
			Status:         input.Vertical.InitialStatus(),
			Pickup:         pickup,
			Dropoff:        dropoff,
			ScheduledAt:    input.ScheduledAt,
			PassengerCount: input.PassengerCount,
			ItemCount:      len(input.DeliveryItems) + len(input.MoveItems),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if pickup != nil && dropoff != nil {
			req.DistanceKm = geo.DistanceKm(*pickup, *dropoff)
		}

		discountPct := 0.0
		if input.Vertical == models.VerticalSharedRide {
			result, err := uc.tripsGW.JoinGroup(ctx, req, input.MaxDetourPct, input.MaxWaitMin)
			if err != nil {
				return nil, fmt.Errorf("failed to join shared-ride group: %w", err)
			}
			groupID := result.Group.ID
			req.GroupID = &groupID
			discountPct = result.DiscountPct
		}

		estimate, err := uc.estimateFare(ctx, req, input, discountPct)
		if err != nil {
			return nil, err
		}
		req.EstimatedPrice = estimate.Total

		if err := uc.tripsRepo.CreateRequest(ctx, req); err != nil {
			return nil, fmt.Errorf("failed to persist request: %w", err)
		}

		logger.Info("Created service request",
			logger.String("request_id", req.ID.String()),
			logger.String("vertical", string(req.Vertical)),
			logger.String("status", string(req.Status)),
			logger.Float64("estimated_price", req.EstimatedPrice))

		if immediateDispatch[req.Vertical] {
			uc.queueForDispatch(ctx, req)
		}

		return req, nil
	})
}

// queueForDispatch hands the request to dispatch. Dispatch binds the
// provider through the match.found event; a dispatch failure leaves the
// request queued unassigned.
func (uc *TripsUC) queueForDispatch(ctx context.Context, req *models.ServiceRequest) {
	if _, err := uc.tripsGW.DispatchRequest(ctx, req); err != nil {
		logger.Warn("Dispatch failed, request stays queued",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}
}

// GetRequest fetches a request by ID
func (uc *TripsUC) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.ServiceRequest, error) {
	return uc.tripsRepo.GetRequest(ctx, requestID)
}

// ListRequestsByRequester lists a requester's requests, newest first
func (uc *TripsUC) ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.ServiceRequest, error) {
	return uc.tripsRepo.ListRequestsByRequester(ctx, requesterID)
}

// resolveEndpoints fills in missing coordinates from the address resolver.
// A request whose addresses cannot be resolved never reaches dispatch.
func (uc *TripsUC) resolveEndpoints(ctx context.Context, input *trips.CreateRequestInput) (pickup, dropoff *models.Coordinate, err error) {
	pickup = input.Pickup
	if pickup == nil && input.PickupAddress != "" {
		resolved, err := uc.tripsGW.ResolveAddress(ctx, input.PickupAddress)
		if err != nil {
			return nil, nil, apperrors.Validationf("cannot resolve pickup address %q", input.PickupAddress)
		}
		coord := resolved.Coordinate
		coord.Address = input.PickupAddress
		coord.Locality = resolved.Locality
		pickup = &coord
	}

	dropoff = input.Dropoff
	if dropoff == nil && input.DropoffAddress != "" {
		resolved, err := uc.tripsGW.ResolveAddress(ctx, input.DropoffAddress)
		if err != nil {
			return nil, nil, apperrors.Validationf("cannot resolve dropoff address %q", input.DropoffAddress)
		}
		coord := resolved.Coordinate
		coord.Address = input.DropoffAddress
		coord.Locality = resolved.Locality
		dropoff = &coord
	}

	// Verticals that move something need both endpoints
	switch input.Vertical {
	case models.VerticalRide, models.VerticalTaxi, models.VerticalSharedRide, models.VerticalDelivery, models.VerticalMoving:
		if pickup == nil || dropoff == nil {
			return nil, nil, apperrors.Validation("pickup and dropoff locations are required")
		}
	case models.VerticalEmergency:
		if pickup == nil {
			return nil, nil, apperrors.Validation("emergency request needs a location")
		}
	case models.VerticalDayBooking:
		if input.ScheduledAt == nil {
			return nil, nil, apperrors.Validation("day-booking needs a scheduled time")
		}
	}

	return pickup, dropoff, nil
}

// estimateFare prices the request with the vertical's formula
func (uc *TripsUC) estimateFare(ctx context.Context, req *models.ServiceRequest, input *trips.CreateRequestInput, discountPct float64) (models.FareBreakdown, error) {
	serviceType, err := uc.tripsRepo.GetServiceType(ctx, req.ServiceType)
	if err != nil {
		return models.FareBreakdown{}, fmt.Errorf("failed to load service type: %w", err)
	}

	switch req.Vertical {
	case models.VerticalDelivery:
		return uc.fareCalc.DeliveryFare(serviceType, input.DeliveryItems, req.DistanceKm), nil
	case models.VerticalMoving:
		return uc.fareCalc.MovingFare(serviceType, req.DistanceKm, input.MoveItems, input.Helpers), nil
	case models.VerticalSharedRide:
		return uc.fareCalc.SharedRideFare(serviceType, req.DistanceKm, discountPct), nil
	case models.VerticalTaxi:
		originZone, destZone := uc.lookupZones(ctx, req)
		return uc.fareCalc.RideFare(serviceType, req.DistanceKm, input.DurationMin, originZone, destZone), nil
	default:
		return uc.fareCalc.RideFare(serviceType, req.DistanceKm, input.DurationMin, nil, nil), nil
	}
}

// lookupZones maps the endpoints' localities to metered-taxi zones. Taxi
// trips outside any zone fall back to service-type pricing.
func (uc *TripsUC) lookupZones(ctx context.Context, req *models.ServiceRequest) (*models.Zone, *models.Zone) {
	if req.Pickup == nil || req.Dropoff == nil {
		return nil, nil
	}

	originZone, err := uc.tripsRepo.GetZoneByLocality(ctx, req.Pickup.Locality)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			logger.Warn("Zone lookup failed", logger.String("locality", req.Pickup.Locality), logger.Err(err))
		}
		return nil, nil
	}
	destZone, err := uc.tripsRepo.GetZoneByLocality(ctx, req.Dropoff.Locality)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			logger.Warn("Zone lookup failed", logger.String("locality", req.Dropoff.Locality), logger.Err(err))
		}
		return nil, nil
	}

	return originZone, destZone
}
