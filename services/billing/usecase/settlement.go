package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
)

// HandleTripSettled records the payment for a settled trip. Completed trips
// pay the locked final price split between platform and provider; cancelled
// trips pay only the cancellation fee, kept entirely by the platform.
// Re-delivered events settle nothing: the first payment per request wins.
func (uc *BillingUC) HandleTripSettled(ctx context.Context, event models.TripSettledEvent) error {
	requestID, err := uuid.Parse(event.RequestID)
	if err != nil {
		return apperrors.Validationf("malformed request id in settlement event: %s", event.RequestID)
	}

	uc.settleLocks.Lock(event.RequestID)
	defer uc.settleLocks.Unlock(event.RequestID)

	if existing, err := uc.billingRepo.GetPaymentByRequest(ctx, requestID); err == nil && existing != nil {
		logger.Warn("Duplicate settlement event ignored",
			logger.String("request_id", event.RequestID),
			logger.String("payment_id", existing.ID.String()))
		return nil
	} else if err != nil && !apperrors.IsNotFound(err) {
		return fmt.Errorf("failed to check existing payment: %w", err)
	}

	var payment *models.Payment
	if event.Cancelled {
		payment = uc.cancellationPayment(requestID, event)
	} else {
		payment, err = uc.completionPayment(ctx, requestID, event)
		if err != nil {
			return err
		}
	}
	if payment == nil {
		// Cancelled without a fee: nothing to settle
		return nil
	}

	if err := uc.billingRepo.CreatePayment(ctx, payment); err != nil {
		return fmt.Errorf("failed to persist payment: %w", err)
	}
	commission := &models.Commission{
		RequestID:        requestID,
		PlatformFee:      payment.PlatformFee,
		ProviderEarnings: payment.ProviderEarnings,
		CreatedAt:        payment.CreatedAt,
	}
	if err := uc.billingRepo.CreateCommission(ctx, commission); err != nil {
		return fmt.Errorf("failed to persist commission: %w", err)
	}

	uc.publishPaymentProcessed(ctx, payment)

	logger.Info("Settled trip",
		logger.String("request_id", event.RequestID),
		logger.String("payment_id", payment.ID.String()),
		logger.Float64("amount", payment.Amount),
		logger.Bool("cancelled", event.Cancelled))

	return nil
}

// GetPaymentByRequest fetches the payment settled for a request
func (uc *BillingUC) GetPaymentByRequest(ctx context.Context, requestID uuid.UUID) (*models.Payment, error) {
	return uc.billingRepo.GetPaymentByRequest(ctx, requestID)
}

// completionPayment splits the final price between platform and provider
func (uc *BillingUC) completionPayment(ctx context.Context, requestID uuid.UUID, event models.TripSettledEvent) (*models.Payment, error) {
	serviceType, err := uc.billingRepo.GetServiceType(ctx, event.ServiceType)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load service type: %w", err)
		}
		// Unknown service type settles at the configured default rate
		serviceType = nil
	}

	platformFee, providerEarnings := uc.fareCalc.CommissionSplit(event.FinalPrice, serviceType)
	return &models.Payment{
		ID:               uuid.New(),
		RequestID:        requestID,
		Amount:           event.FinalPrice,
		PlatformFee:      platformFee,
		ProviderEarnings: providerEarnings,
		Currency:         uc.cfg.Pricing.Currency,
		Status:           models.PaymentProcessed,
		CreatedAt:        time.Now(),
	}, nil
}

// cancellationPayment charges the cancellation fee, all of it platform fee
func (uc *BillingUC) cancellationPayment(requestID uuid.UUID, event models.TripSettledEvent) *models.Payment {
	if event.Fee <= 0 {
		return nil
	}
	return &models.Payment{
		ID:          uuid.New(),
		RequestID:   requestID,
		Amount:      event.Fee,
		PlatformFee: event.Fee,
		Currency:    uc.cfg.Pricing.Currency,
		Status:      models.PaymentProcessed,
		CreatedAt:   time.Now(),
	}
}

func (uc *BillingUC) publishPaymentProcessed(ctx context.Context, payment *models.Payment) {
	event := models.PaymentEvent{
		PaymentID:        payment.ID.String(),
		RequestID:        payment.RequestID.String(),
		Amount:           payment.Amount,
		PlatformFee:      payment.PlatformFee,
		ProviderEarnings: payment.ProviderEarnings,
		Status:           payment.Status,
		Timestamp:        time.Now(),
	}
	if err := uc.billingGW.PublishPaymentProcessed(ctx, event); err != nil {
		logger.Warn("Failed to publish payment event",
			logger.String("payment_id", payment.ID.String()),
			logger.Err(err))
	}
}
