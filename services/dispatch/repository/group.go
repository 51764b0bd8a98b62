package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/models"
)

// CreateGroup opens a new shared-ride group with its founding member
func (r *DispatchRepo) CreateGroup(ctx context.Context, group *models.RideGroup) error {
	dto := group.ToDTO()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO ride_groups (
			id, origin_latitude, origin_longitude,
			dest_latitude, dest_longitude, route_distance_km,
			max_capacity, current_capacity, status, scheduled_at,
			created_at, updated_at
		) VALUES (
			:id, :origin_latitude, :origin_longitude,
			:dest_latitude, :dest_longitude, :route_distance_km,
			:max_capacity, :current_capacity, :status, :scheduled_at,
			:created_at, :updated_at
		)`

	if _, err = tx.NamedExecContext(ctx, insertQuery, dto); err != nil {
		return fmt.Errorf("failed to insert ride group: %w", err)
	}

	for _, requestID := range group.MemberRequestIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO ride_group_members (group_id, request_id, passenger_count, joined_at) VALUES ($1, $2, $3, $4)`,
			group.ID, requestID, group.CurrentCapacity, group.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGroup fetches a group and its member request IDs
func (r *DispatchRepo) GetGroup(ctx context.Context, groupID uuid.UUID) (*models.RideGroup, error) {
	var dto models.GroupDTO
	err := r.db.GetContext(ctx, &dto, `
		SELECT id, origin_latitude, origin_longitude,
		       dest_latitude, dest_longitude, route_distance_km,
		       max_capacity, current_capacity, status, scheduled_at,
		       created_at, updated_at
		FROM ride_groups
		WHERE id = $1`, groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("ride group %s", groupID))
		}
		return nil, fmt.Errorf("failed to get ride group: %w", err)
	}

	if err := r.loadGroupMembers(ctx, &dto); err != nil {
		return nil, err
	}

	return dto.ToGroup(), nil
}

// ListOpenGroups returns joinable groups opened after the given cutoff, in
// creation order
func (r *DispatchRepo) ListOpenGroups(ctx context.Context, openedAfter time.Time) ([]*models.RideGroup, error) {
	var dtos []models.GroupDTO
	err := r.db.SelectContext(ctx, &dtos, `
		SELECT id, origin_latitude, origin_longitude,
		       dest_latitude, dest_longitude, route_distance_km,
		       max_capacity, current_capacity, status, scheduled_at,
		       created_at, updated_at
		FROM ride_groups
		WHERE status = ANY($1) AND created_at >= $2
		ORDER BY created_at ASC`,
		pq.Array([]string{string(models.StatusRequested), string(models.StatusSearchingDriver)}),
		openedAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to list open groups: %w", err)
	}

	groups := make([]*models.RideGroup, 0, len(dtos))
	for i := range dtos {
		if err := r.loadGroupMembers(ctx, &dtos[i]); err != nil {
			return nil, err
		}
		groups = append(groups, dtos[i].ToGroup())
	}
	return groups, nil
}

// AddGroupMember adds a request to a group, guarding the capacity and
// joinability invariants inside the database so that concurrent joins
// cannot overrun MaxCapacity or slip into a group that already departed.
func (r *DispatchRepo) AddGroupMember(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) (*models.RideGroup, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE ride_groups
		SET current_capacity = current_capacity + $1, updated_at = $2
		WHERE id = $3 AND current_capacity + $1 <= max_capacity AND status = ANY($4)`,
		passengerCount, time.Now(), groupID,
		pq.Array([]string{string(models.StatusRequested), string(models.StatusSearchingDriver)}))
	if err != nil {
		return nil, fmt.Errorf("failed to update group capacity: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.CapacityExceeded(fmt.Sprintf("ride group %s is full or no longer joinable", groupID))
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO ride_group_members (group_id, request_id, passenger_count, joined_at) VALUES ($1, $2, $3, $4)`,
		groupID, requestID, passengerCount, time.Now(),
	); err != nil {
		return nil, fmt.Errorf("failed to insert group member: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetGroup(ctx, groupID)
}

// RemoveGroupMember removes a request from a group and decrements the
// occupied capacity
func (r *DispatchRepo) RemoveGroupMember(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) (*models.RideGroup, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM ride_group_members WHERE group_id = $1 AND request_id = $2`,
		groupID, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete group member: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("request %s in group %s", requestID, groupID))
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE ride_groups
		SET current_capacity = current_capacity - $1, updated_at = $2
		WHERE id = $3`,
		passengerCount, time.Now(), groupID,
	); err != nil {
		return nil, fmt.Errorf("failed to update group capacity: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetGroup(ctx, groupID)
}

// UpdateGroupStatus moves a group to a new status
func (r *DispatchRepo) UpdateGroupStatus(ctx context.Context, groupID uuid.UUID, status models.RequestStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE ride_groups SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), groupID)
	if err != nil {
		return fmt.Errorf("failed to update group status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound(fmt.Sprintf("ride group %s", groupID))
	}
	return nil
}

// DeleteGroup removes an emptied group and its membership rows
func (r *DispatchRepo) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM ride_group_members WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to delete group members: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM ride_groups WHERE id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to delete ride group: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *DispatchRepo) loadGroupMembers(ctx context.Context, dto *models.GroupDTO) error {
	var memberIDs []uuid.UUID
	err := r.db.SelectContext(ctx, &memberIDs,
		`SELECT request_id FROM ride_group_members WHERE group_id = $1 ORDER BY joined_at ASC`,
		dto.ID)
	if err != nil {
		return fmt.Errorf("failed to load group members: %w", err)
	}
	dto.MemberRequestIDs = memberIDs
	return nil
}
