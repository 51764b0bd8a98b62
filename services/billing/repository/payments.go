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

// BillingRepo implements billing data access over Postgres
type BillingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(cfg *models.Config, db *sqlx.DB) *BillingRepo {
	return &BillingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreatePayment inserts a payment record
func (r *BillingRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (
			id, request_id, amount, platform_fee, provider_earnings,
			currency, status, created_at
		) VALUES (
			:id, :request_id, :amount, :platform_fee, :provider_earnings,
			:currency, :status, :created_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// CreateCommission inserts a commission split record
func (r *BillingRepo) CreateCommission(ctx context.Context, commission *models.Commission) error {
	query := `
		INSERT INTO commissions (
			request_id, platform_fee, provider_earnings, partner_fee, created_at
		) VALUES (
			:request_id, :platform_fee, :provider_earnings, :partner_fee, :created_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, commission); err != nil {
		return fmt.Errorf("failed to insert commission: %w", err)
	}
	return nil
}

// GetPaymentByRequest fetches the payment settled for a request
func (r *BillingRepo) GetPaymentByRequest(ctx context.Context, requestID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	query := `SELECT id, request_id, amount, platform_fee, provider_earnings, currency, status, created_at
		FROM payments WHERE request_id = $1`

	if err := r.db.GetContext(ctx, &payment, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment")
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// GetServiceType fetches a service type by ID
func (r *BillingRepo) GetServiceType(ctx context.Context, serviceTypeID string) (*models.ServiceType, error) {
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

// GetZone fetches a metered-taxi zone by ID
func (r *BillingRepo) GetZone(ctx context.Context, zoneID string) (*models.Zone, error) {
	var zone models.Zone
	query := `SELECT id, name, base_price FROM zones WHERE id = $1`

	if err := r.db.GetContext(ctx, &zone, query, zoneID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("zone")
		}
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	return &zone, nil
}
