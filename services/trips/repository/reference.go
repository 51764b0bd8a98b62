package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/models"
)

// GetServiceType fetches a service type by ID
func (r *TripsRepo) GetServiceType(ctx context.Context, serviceTypeID string) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	query := `SELECT id, vertical, name, base_price, per_km_rate, per_minute_rate, commission_rate
		FROM service_types WHERE id = $1`

	if err := r.db.GetContext(ctx, &serviceType, query, serviceTypeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("service type")
		}
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}
	return &serviceType, nil
}

// GetZoneByLocality fetches the metered-taxi zone covering a locality
func (r *TripsRepo) GetZoneByLocality(ctx context.Context, locality string) (*models.Zone, error) {
	if locality == "" {
		return nil, apperrors.NotFound("zone")
	}

	var zone models.Zone
	query := `SELECT z.id, z.name, z.base_price
		FROM zones z
		JOIN zone_localities zl ON zl.zone_id = z.id
		WHERE zl.locality = $1`

	if err := r.db.GetContext(ctx, &zone, query, locality); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("zone")
		}
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	return &zone, nil
}
