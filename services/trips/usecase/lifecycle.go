package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/fare"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/internal/pkg/newrelic"
)

// Statuses that start the clock on active work
var startWorkStatuses = map[models.RequestStatus]bool{
	models.StatusInProgress:     true,
	models.StatusOutForDelivery: true,
	models.StatusInTransit:      true,
}

// Statuses whose entry hands the request to dispatch: an acknowledged
// emergency call and a delivery the store marked ready
var dispatchOnEntry = map[models.ServiceVertical]models.RequestStatus{
	models.VerticalEmergency: models.StatusAcknowledged,
	models.VerticalDelivery:  models.StatusReadyForPickup,
}

// Statuses a shared-ride leg mirrors onto its group, closing the group to
// new members once a driver accepts
var groupMirrorStatuses = map[models.RequestStatus]bool{
	models.StatusDriverAccepted: true,
	models.StatusInProgress:     true,
	models.StatusCompleted:      true,
}

// ApplyTransition moves a request to the target status. The transition is
// checked against the vertical's graph and the actor's role before any side
// effect runs; side effects that bind shared state (provider assignment)
// are synchronous and veto the transition on failure, while event
// publication is fire-and-forget.
func (uc *TripsUC) ApplyTransition(ctx context.Context, requestID uuid.UUID, target models.RequestStatus, actor models.Actor) (*models.ServiceRequest, error) {
	return newrelic.WithSegmentAndReturn(ctx, "trips.ApplyTransition", func() (*models.ServiceRequest, error) {
		lockKey := requestID.String()
		uc.requestLocks.Lock(lockKey)
		defer uc.requestLocks.Unlock(lockKey)

		req, err := uc.tripsRepo.GetRequest(ctx, requestID)
		if err != nil {
			return nil, err
		}

		if err := uc.authorizeTransition(req, target, actor); err != nil {
			return nil, err
		}

		if !req.Vertical.CanTransition(req.Status, target) {
			return nil, apperrors.InvalidTransition(string(req.Status), string(target))
		}

		fromStatus := req.Status
		now := time.Now()

		if models.IsAcceptedStatus(target) {
			if err := uc.bindProvider(ctx, req, actor); err != nil {
				return nil, err
			}
		}
		if startWorkStatuses[target] && req.StartedAt == nil {
			req.StartedAt = &now
		}
		if models.IsCompletionStatus(target) {
			uc.completeRequest(ctx, req, now)
		}
		if target == models.StatusCancelled {
			uc.cancelRequest(ctx, req, now)
		}

		req.Status = target
		req.UpdatedAt = now
		if err := uc.tripsRepo.UpdateRequest(ctx, req); err != nil {
			return nil, fmt.Errorf("failed to persist transition: %w", err)
		}

		uc.publishLifecycleEvent(ctx, req, fromStatus, actor)
		if dispatchOnEntry[req.Vertical] == target {
			uc.queueForDispatch(ctx, req)
		}
		if req.Vertical == models.VerticalSharedRide && req.GroupID != nil && groupMirrorStatuses[target] {
			uc.mirrorGroupStatus(ctx, req, target)
		}
		if models.IsCompletionStatus(target) {
			uc.publishSettlement(ctx, req, false)
		}
		if target == models.StatusCancelled {
			uc.publishSettlement(ctx, req, true)
		}

		logger.Info("Applied transition",
			logger.String("request_id", req.ID.String()),
			logger.String("from", string(fromStatus)),
			logger.String("to", string(target)),
			logger.String("actor_id", actor.ID))

		return req, nil
	})
}

// HandleMatchFound accepts a dispatch match by transitioning the request to
// its vertical's accepted status on behalf of the matched provider. Dispatch
// marks the provider busy before publishing the match, so a rejected
// acceptance must hand the provider back or they stay stranded on-trip.
func (uc *TripsUC) HandleMatchFound(ctx context.Context, event models.AssignmentEvent) error {
	requestID, err := uuid.Parse(event.RequestID)
	if err != nil {
		return apperrors.Validationf("malformed request id in assignment event: %s", event.RequestID)
	}

	vertical := models.ServiceVertical(event.Vertical)
	if !vertical.IsValid() {
		return apperrors.Validationf("unknown vertical in assignment event: %s", event.Vertical)
	}

	actor := models.Actor{ID: event.ProviderID, Role: models.RoleProvider}
	if _, err := uc.ApplyTransition(ctx, requestID, vertical.AcceptedStatus(), actor); err != nil {
		if relErr := uc.tripsGW.ReleaseProvider(ctx, event.ProviderID); relErr != nil {
			logger.Warn("Failed to release provider after rejected match",
				logger.String("request_id", event.RequestID),
				logger.String("provider_id", event.ProviderID),
				logger.Err(relErr))
		}
		return err
	}
	return nil
}

// authorizeTransition enforces who may drive which transition. Operators
// may do anything; requesters may only cancel their own requests; providers
// may advance requests assigned to them, or accept unassigned ones.
func (uc *TripsUC) authorizeTransition(req *models.ServiceRequest, target models.RequestStatus, actor models.Actor) error {
	switch actor.Role {
	case models.RoleOperator:
		return nil
	case models.RoleRequester:
		if actor.ID != req.RequesterID.String() {
			return apperrors.UnauthorizedActor("request belongs to a different requester")
		}
		if target != models.StatusCancelled {
			return apperrors.UnauthorizedActor("requesters may only cancel their requests")
		}
		return nil
	case models.RoleProvider:
		if target == models.StatusCancelled {
			return apperrors.UnauthorizedActor("providers cannot cancel requests")
		}
		if models.IsAcceptedStatus(target) && !req.IsAssigned() {
			return nil
		}
		if req.ProviderID == nil || actor.ID != req.ProviderID.String() {
			return apperrors.UnauthorizedActor("request is assigned to a different provider")
		}
		return nil
	default:
		return apperrors.UnauthorizedActor(fmt.Sprintf("unknown actor role: %s", actor.Role))
	}
}

// bindProvider records the accepting provider and marks them busy in
// dispatch. The assignment is synchronous: if dispatch rejects it (the
// provider grabbed another request first) the transition fails.
func (uc *TripsUC) bindProvider(ctx context.Context, req *models.ServiceRequest, actor models.Actor) error {
	providerID := actor.ID
	if req.ProviderID != nil {
		providerID = req.ProviderID.String()
	}

	if err := uc.tripsGW.AssignProvider(ctx, providerID, req.ID.String()); err != nil {
		return fmt.Errorf("failed to assign provider %s: %w", providerID, err)
	}

	parsed, err := uuid.Parse(providerID)
	if err != nil {
		return apperrors.Validationf("malformed provider id: %s", providerID)
	}
	req.ProviderID = &parsed
	return nil
}

// completeRequest locks the final price and returns the provider to the
// available pool
func (uc *TripsUC) completeRequest(ctx context.Context, req *models.ServiceRequest, now time.Time) {
	req.CompletedAt = &now
	if req.FinalPrice == nil {
		finalPrice := req.EstimatedPrice
		req.FinalPrice = &finalPrice
	}
	uc.releaseProvider(ctx, req)
}

// cancelRequest charges the day-booking cancellation fee when applicable,
// frees the provider and removes the request from any shared-ride group
func (uc *TripsUC) cancelRequest(ctx context.Context, req *models.ServiceRequest, now time.Time) {
	if req.Vertical == models.VerticalDayBooking && req.ScheduledAt != nil {
		hoursUntil := req.ScheduledAt.Sub(now).Hours()
		req.CancellationFee = fare.DayBookingCancellationFee(req.EstimatedPrice, hoursUntil)
	}

	uc.releaseProvider(ctx, req)

	if req.Vertical == models.VerticalSharedRide && req.GroupID != nil {
		if err := uc.tripsGW.LeaveGroup(ctx, *req.GroupID, req.ID, req.PassengerCount); err != nil {
			logger.Warn("Failed to leave shared-ride group on cancel",
				logger.String("request_id", req.ID.String()),
				logger.String("group_id", req.GroupID.String()),
				logger.Err(err))
		}
	}
}

// mirrorGroupStatus propagates a shared-ride leg's status to its group so
// dispatch stops pooling new members into a departed group
func (uc *TripsUC) mirrorGroupStatus(ctx context.Context, req *models.ServiceRequest, status models.RequestStatus) {
	if err := uc.tripsGW.UpdateGroupStatus(ctx, *req.GroupID, status); err != nil {
		logger.Warn("Failed to mirror status onto shared-ride group",
			logger.String("request_id", req.ID.String()),
			logger.String("group_id", req.GroupID.String()),
			logger.String("status", string(status)),
			logger.Err(err))
	}
}

func (uc *TripsUC) releaseProvider(ctx context.Context, req *models.ServiceRequest) {
	if req.ProviderID == nil {
		return
	}
	if err := uc.tripsGW.ReleaseProvider(ctx, req.ProviderID.String()); err != nil {
		logger.Warn("Failed to release provider",
			logger.String("request_id", req.ID.String()),
			logger.String("provider_id", req.ProviderID.String()),
			logger.Err(err))
	}
}

func (uc *TripsUC) publishLifecycleEvent(ctx context.Context, req *models.ServiceRequest, from models.RequestStatus, actor models.Actor) {
	event := models.LifecycleEvent{
		RequestID:  req.ID.String(),
		Vertical:   string(req.Vertical),
		FromStatus: from,
		ToStatus:   req.Status,
		ActorID:    actor.ID,
		Timestamp:  time.Now(),
	}
	if err := uc.tripsGW.PublishLifecycleEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish lifecycle event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}
}

func (uc *TripsUC) publishSettlement(ctx context.Context, req *models.ServiceRequest, cancelled bool) {
	event := models.TripSettledEvent{
		RequestID:   req.ID.String(),
		Vertical:    string(req.Vertical),
		ServiceType: req.ServiceType,
		Cancelled:   cancelled,
		Timestamp:   time.Now(),
	}
	if req.ProviderID != nil {
		event.ProviderID = req.ProviderID.String()
	}
	if cancelled {
		event.Fee = req.CancellationFee
	} else if req.FinalPrice != nil {
		event.FinalPrice = *req.FinalPrice
	}

	var err error
	if cancelled {
		err = uc.tripsGW.PublishTripCancelled(ctx, event)
	} else {
		err = uc.tripsGW.PublishTripCompleted(ctx, event)
	}
	if err != nil {
		logger.Warn("Failed to publish settlement event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}
}
