package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/services/billing/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			Currency:       "USD",
			TaxRate:        0.05,
			CommissionRate: 0.18,
		},
	}
}

func completedEvent(requestID uuid.UUID, finalPrice float64) models.TripSettledEvent {
	return models.TripSettledEvent{
		RequestID:   requestID.String(),
		Vertical:    string(models.VerticalRide),
		ServiceType: "RIDE",
		ProviderID:  uuid.New().String(),
		FinalPrice:  finalPrice,
		Timestamp:   time.Now(),
	}
}

func TestHandleTripSettled_SplitsFinalPrice(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	requestID := uuid.New()
	event := completedEvent(requestID, 100)

	mockRepo.EXPECT().
		GetPaymentByRequest(gomock.Any(), requestID).
		Return(nil, apperrors.NotFound("payment"))
	mockRepo.EXPECT().
		GetServiceType(gomock.Any(), "RIDE").
		Return(&models.ServiceType{ID: "RIDE", CommissionRate: 0.20}, nil)
	mockRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payment *models.Payment) error {
			assert.Equal(t, requestID, payment.RequestID)
			assert.Equal(t, 100.0, payment.Amount)
			assert.Equal(t, 20.0, payment.PlatformFee)
			assert.Equal(t, 80.0, payment.ProviderEarnings)
			assert.Equal(t, models.PaymentProcessed, payment.Status)
			return nil
		})
	mockRepo.EXPECT().
		CreateCommission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, commission *models.Commission) error {
			assert.Equal(t, 20.0, commission.PlatformFee)
			assert.Equal(t, 80.0, commission.ProviderEarnings)
			return nil
		})
	mockGW.EXPECT().
		PublishPaymentProcessed(gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	err := uc.HandleTripSettled(context.Background(), event)

	// Assert
	require.NoError(t, err)
}

func TestHandleTripSettled_DefaultRateWhenServiceTypeUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	requestID := uuid.New()
	event := completedEvent(requestID, 50)

	mockRepo.EXPECT().
		GetPaymentByRequest(gomock.Any(), requestID).
		Return(nil, apperrors.NotFound("payment"))
	mockRepo.EXPECT().
		GetServiceType(gomock.Any(), "RIDE").
		Return(nil, apperrors.NotFound("service type"))
	mockRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payment *models.Payment) error {
			assert.Equal(t, 9.0, payment.PlatformFee)
			assert.Equal(t, 41.0, payment.ProviderEarnings)
			return nil
		})
	mockRepo.EXPECT().CreateCommission(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPaymentProcessed(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.HandleTripSettled(context.Background(), event)

	require.NoError(t, err)
}

func TestHandleTripSettled_DuplicateEventIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	requestID := uuid.New()
	event := completedEvent(requestID, 100)

	mockRepo.EXPECT().
		GetPaymentByRequest(gomock.Any(), requestID).
		Return(&models.Payment{ID: uuid.New(), RequestID: requestID}, nil)

	// No CreatePayment, no publication: the first settlement won
	err := uc.HandleTripSettled(context.Background(), event)

	require.NoError(t, err)
}

func TestHandleTripSettled_CancellationFeeGoesToPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	requestID := uuid.New()
	event := models.TripSettledEvent{
		RequestID:   requestID.String(),
		Vertical:    string(models.VerticalDayBooking),
		ServiceType: "DAY_DRIVER",
		Fee:         25,
		Cancelled:   true,
		Timestamp:   time.Now(),
	}

	mockRepo.EXPECT().
		GetPaymentByRequest(gomock.Any(), requestID).
		Return(nil, apperrors.NotFound("payment"))
	mockRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payment *models.Payment) error {
			assert.Equal(t, 25.0, payment.Amount)
			assert.Equal(t, 25.0, payment.PlatformFee)
			assert.Equal(t, 0.0, payment.ProviderEarnings)
			return nil
		})
	mockRepo.EXPECT().CreateCommission(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPaymentProcessed(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.HandleTripSettled(context.Background(), event)

	require.NoError(t, err)
}

func TestHandleTripSettled_FreeCancellationSettlesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	requestID := uuid.New()
	event := models.TripSettledEvent{
		RequestID: requestID.String(),
		Vertical:  string(models.VerticalRide),
		Cancelled: true,
		Timestamp: time.Now(),
	}

	mockRepo.EXPECT().
		GetPaymentByRequest(gomock.Any(), requestID).
		Return(nil, apperrors.NotFound("payment"))

	err := uc.HandleTripSettled(context.Background(), event)

	require.NoError(t, err)
}

func TestHandleTripSettled_MalformedRequestIDRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	err := uc.HandleTripSettled(context.Background(), models.TripSettledEvent{RequestID: "not-a-uuid"})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}
