package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/geo"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/internal/pkg/newrelic"
)

// JoinOrCreateGroup finds the open shared-ride group with the minimum total
// detour that can still fit the request, or opens a new group when none
// qualifies. Joins are greedy best-fit, not first-fit. The rider's wait
// tolerance narrows the pooling window, and scheduled rides only pool with
// groups scheduled for the same window.
func (uc *DispatchUC) JoinOrCreateGroup(ctx context.Context, req *models.ServiceRequest, maxDetourPct float64, maxWaitMin int) (*models.GroupJoinResult, error) {
	return newrelic.WithSegmentAndReturn(ctx, "dispatch.JoinOrCreateGroup", func() (*models.GroupJoinResult, error) {
		if req.Pickup == nil || req.Dropoff == nil {
			return nil, apperrors.Validation("shared-ride request needs resolved pickup and dropoff coordinates")
		}
		if req.PassengerCount < 1 {
			return nil, apperrors.Validation("passenger count must be at least 1")
		}
		if maxDetourPct <= 0 {
			maxDetourPct = uc.cfg.Shared.DefaultDetourPct
		}
		if maxWaitMin <= 0 {
			maxWaitMin = uc.cfg.Shared.DefaultMaxWaitMin
		}

		directDistance := geo.DistanceKm(*req.Pickup, *req.Dropoff)
		maxDetourDistance := directDistance * (1 + maxDetourPct/100)

		window := time.Duration(uc.cfg.Shared.GroupWindowMin) * time.Minute
		if wait := time.Duration(maxWaitMin) * time.Minute; wait < window {
			window = wait
		}
		candidates, err := uc.dispatchRepo.ListOpenGroups(ctx, time.Now().Add(-window))
		if err != nil {
			return nil, fmt.Errorf("failed to list open groups: %w", err)
		}

		best := uc.selectBestGroup(candidates, req, maxDetourDistance, window)
		if best == nil {
			return uc.openGroup(ctx, req, directDistance)
		}

		uc.groupLocks.Lock(best.ID.String())
		defer uc.groupLocks.Unlock(best.ID.String())

		updated, err := uc.dispatchRepo.AddGroupMember(ctx, best.ID, req.ID, req.PassengerCount)
		if err != nil {
			if _, isApp := apperrors.AsAppError(err); isApp {
				// A concurrent join filled the chosen group; open a fresh one
				logger.Debug("Best-fit group filled concurrently, opening new group",
					logger.String("group_id", best.ID.String()),
					logger.String("request_id", req.ID.String()))
				return uc.openGroup(ctx, req, directDistance)
			}
			return nil, err
		}

		uc.publishGroupUpdated(ctx, updated, req.ID, "joined")

		return &models.GroupJoinResult{
			Group:       *updated,
			IsNew:       false,
			DiscountPct: PoolingDiscountPct(updated.CurrentCapacity, uc.cfg.Shared.MaxDiscountPct, uc.cfg.Shared.DiscountPerSeat),
		}, nil
	})
}

// LeaveGroup removes a request from its group before pickup. The group is
// deleted once the last member leaves; otherwise remaining members are
// notified of the freed capacity.
func (uc *DispatchUC) LeaveGroup(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) (*models.RideGroup, error) {
	uc.groupLocks.Lock(groupID.String())
	defer uc.groupLocks.Unlock(groupID.String())

	group, err := uc.dispatchRepo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.PrePickup() {
		return nil, apperrors.New(apperrors.CodeInvalidTransition,
			fmt.Sprintf("cannot leave a group in status %s", group.Status))
	}

	updated, err := uc.dispatchRepo.RemoveGroupMember(ctx, groupID, requestID, passengerCount)
	if err != nil {
		return nil, err
	}

	if updated.CurrentCapacity <= 0 {
		if err := uc.dispatchRepo.DeleteGroup(ctx, groupID); err != nil {
			return nil, fmt.Errorf("failed to delete emptied group: %w", err)
		}
		logger.Info("Deleted emptied shared-ride group",
			logger.String("group_id", groupID.String()))
		return nil, nil
	}

	uc.publishGroupUpdated(ctx, updated, requestID, "left")
	return updated, nil
}

// UpdateGroupStatus mirrors a member leg's lifecycle onto its group. Once
// the group moves past SEARCHING_DRIVER it stops accepting new members.
func (uc *DispatchUC) UpdateGroupStatus(ctx context.Context, groupID uuid.UUID, status models.RequestStatus) error {
	uc.groupLocks.Lock(groupID.String())
	defer uc.groupLocks.Unlock(groupID.String())

	if err := uc.dispatchRepo.UpdateGroupStatus(ctx, groupID, status); err != nil {
		return err
	}

	logger.Info("Updated shared-ride group status",
		logger.String("group_id", groupID.String()),
		logger.String("status", string(status)))
	return nil
}

// selectBestGroup filters candidates on capacity, status, schedule and
// detour bound, returning the one with minimum total detour. Candidates
// arrive in creation order, so the earliest-created group wins detour ties.
func (uc *DispatchUC) selectBestGroup(candidates []*models.RideGroup, req *models.ServiceRequest, maxDetourDistance float64, window time.Duration) *models.RideGroup {
	var best *models.RideGroup
	bestDetour := math.MaxFloat64

	for _, group := range candidates {
		if !group.Joinable() || group.SeatsLeft() < req.PassengerCount {
			continue
		}
		if !scheduleCompatible(group.ScheduledAt, req.ScheduledAt, window) {
			continue
		}
		detour := geo.DistanceKm(group.Origin, *req.Pickup) + geo.DistanceKm(group.Destination, *req.Dropoff)
		if detour > maxDetourDistance {
			continue
		}
		if detour < bestDetour {
			best = group
			bestDetour = detour
		}
	}

	return best
}

// scheduleCompatible rejects pooling an immediate request into a scheduled
// group and vice versa; two scheduled requests pool only when their
// departure times fall within the same wait window.
func scheduleCompatible(groupAt, reqAt *time.Time, window time.Duration) bool {
	if groupAt == nil && reqAt == nil {
		return true
	}
	if groupAt == nil || reqAt == nil {
		return false
	}
	diff := groupAt.Sub(*reqAt)
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

func (uc *DispatchUC) openGroup(ctx context.Context, req *models.ServiceRequest, directDistance float64) (*models.GroupJoinResult, error) {
	now := time.Now()
	group := &models.RideGroup{
		ID:               uuid.New(),
		Origin:           *req.Pickup,
		Destination:      *req.Dropoff,
		RouteDistanceKm:  directDistance,
		MaxCapacity:      uc.cfg.Shared.MaxGroupCapacity,
		CurrentCapacity:  req.PassengerCount,
		Status:           models.StatusSearchingDriver,
		ScheduledAt:      req.ScheduledAt,
		MemberRequestIDs: []uuid.UUID{req.ID},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.dispatchRepo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create ride group: %w", err)
	}

	logger.Info("Opened new shared-ride group",
		logger.String("group_id", group.ID.String()),
		logger.String("request_id", req.ID.String()),
		logger.Int("passenger_count", req.PassengerCount))

	return &models.GroupJoinResult{
		Group:       *group,
		IsNew:       true,
		DiscountPct: PoolingDiscountPct(group.CurrentCapacity, uc.cfg.Shared.MaxDiscountPct, uc.cfg.Shared.DiscountPerSeat),
	}, nil
}

func (uc *DispatchUC) publishGroupUpdated(ctx context.Context, group *models.RideGroup, requestID uuid.UUID, change string) {
	event := models.GroupEvent{
		GroupID:         group.ID.String(),
		RequestID:       requestID.String(),
		CurrentCapacity: group.CurrentCapacity,
		MaxCapacity:     group.MaxCapacity,
		Change:          change,
		Timestamp:       time.Now(),
	}
	if err := uc.dispatchGW.PublishGroupUpdated(ctx, event); err != nil {
		logger.Warn("Failed to publish group updated event",
			logger.String("group_id", event.GroupID),
			logger.Err(err))
	}
}

// PoolingDiscountPct computes the shared-ride discount from the occupied
// capacity after a join: discountPerSeat percent per occupied seat, capped
// at maxDiscountPct.
func PoolingDiscountPct(capacityAfterJoin int, maxDiscountPct, discountPerSeat float64) float64 {
	return math.Min(maxDiscountPct, discountPerSeat*float64(capacityAfterJoin))
}
