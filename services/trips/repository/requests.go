package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/models"
)

// TripsRepo implements trips data access over Postgres
type TripsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripsRepository creates a new trips repository
func NewTripsRepository(cfg *models.Config, db *sqlx.DB) *TripsRepo {
	return &TripsRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRequest inserts a new service request
func (r *TripsRepo) CreateRequest(ctx context.Context, req *models.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (
			id, requester_id, vertical, service_type, status,
			pickup_latitude, pickup_longitude, pickup_address, pickup_locality,
			dropoff_latitude, dropoff_longitude, dropoff_address, dropoff_locality,
			provider_id, group_id, scheduled_at, passenger_count, item_count,
			distance_km, estimated_price, final_price, cancellation_fee,
			created_at, started_at, completed_at, updated_at
		) VALUES (
			:id, :requester_id, :vertical, :service_type, :status,
			:pickup_latitude, :pickup_longitude, :pickup_address, :pickup_locality,
			:dropoff_latitude, :dropoff_longitude, :dropoff_address, :dropoff_locality,
			:provider_id, :group_id, :scheduled_at, :passenger_count, :item_count,
			:distance_km, :estimated_price, :final_price, :cancellation_fee,
			:created_at, :started_at, :completed_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, req.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert service request: %w", err)
	}
	return nil
}

// GetRequest fetches a service request by ID
func (r *TripsRepo) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.ServiceRequest, error) {
	var dto models.RequestDTO
	query := `SELECT * FROM service_requests WHERE id = $1`

	if err := r.db.GetContext(ctx, &dto, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("service request")
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}
	return dto.ToRequest(), nil
}

// UpdateRequest persists the mutable fields of a service request
func (r *TripsRepo) UpdateRequest(ctx context.Context, req *models.ServiceRequest) error {
	query := `
		UPDATE service_requests SET
			status = :status,
			provider_id = :provider_id,
			group_id = :group_id,
			estimated_price = :estimated_price,
			final_price = :final_price,
			cancellation_fee = :cancellation_fee,
			started_at = :started_at,
			completed_at = :completed_at,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, req.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to update service request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("service request")
	}
	return nil
}

// ListRequestsByRequester lists a requester's requests, newest first
func (r *TripsRepo) ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.ServiceRequest, error) {
	var dtos []models.RequestDTO
	query := `SELECT * FROM service_requests WHERE requester_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &dtos, query, requesterID); err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}

	requests := make([]*models.ServiceRequest, 0, len(dtos))
	for i := range dtos {
		requests = append(requests, dtos[i].ToRequest())
	}
	return requests, nil
}
