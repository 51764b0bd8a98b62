package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/services/billing"
	"github.com/angkutin/angkutin/services/billing/mocks"
)

func quoteConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			Currency:          "USD",
			SharedBaseFare:    3,
			SharedPerKmRate:   1,
			DeliveryBaseFee:   4,
			DeliveryPerKmRate: 1.5,
			TaxRate:           0.10,
			CommissionRate:    0.18,
		},
	}
}

func TestQuoteFare_TaxiZoneCrossingAddsSurcharge(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(quoteConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		GetServiceType(gomock.Any(), "TAXI_METERED").
		Return(&models.ServiceType{ID: "TAXI_METERED", BasePrice: 5, PerKmRate: 2, PerMinuteRate: 0.5, CommissionRate: 0.20}, nil)
	mockRepo.EXPECT().
		GetZone(gomock.Any(), "ZONE_NORTH").
		Return(&models.Zone{ID: "ZONE_NORTH", BasePrice: 10}, nil)
	mockRepo.EXPECT().
		GetZone(gomock.Any(), "ZONE_SOUTH").
		Return(&models.Zone{ID: "ZONE_SOUTH", BasePrice: 20}, nil)

	// Act
	breakdown, err := uc.QuoteFare(context.Background(), &billing.QuoteInput{
		Vertical:     models.VerticalTaxi,
		ServiceType:  "TAXI_METERED",
		DistanceKm:   10,
		DurationMin:  20,
		OriginZoneID: "ZONE_NORTH",
		DestZoneID:   "ZONE_SOUTH",
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, breakdown)
	assert.Equal(t, 10.0, breakdown.Base)
	assert.Equal(t, 20.0, breakdown.DistanceCharge)
	assert.Equal(t, 10.0, breakdown.TimeCharge)
	assert.Equal(t, 10.0, breakdown.ZoneSurcharge)
	assert.Equal(t, 50.0, breakdown.Total)
	assert.Equal(t, 10.0, breakdown.PlatformFee)
	assert.Equal(t, 40.0, breakdown.ProviderEarnings)
}

func TestQuoteFare_DeliveryIncludesItemsAndTax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(quoteConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		GetServiceType(gomock.Any(), "STORE_DELIVERY").
		Return(&models.ServiceType{ID: "STORE_DELIVERY", CommissionRate: 0.20}, nil)

	breakdown, err := uc.QuoteFare(context.Background(), &billing.QuoteInput{
		Vertical:    models.VerticalDelivery,
		ServiceType: "STORE_DELIVERY",
		DistanceKm:  4,
		DeliveryItems: []models.DeliveryItem{
			{Name: "groceries", UnitPrice: 10, Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 20.0, breakdown.ItemsSubtotal)
	assert.Equal(t, 4.0, breakdown.Base)
	assert.Equal(t, 6.0, breakdown.DistanceCharge)
	assert.Equal(t, 30.0, breakdown.Subtotal)
	assert.Equal(t, 3.0, breakdown.Tax)
	assert.Equal(t, 33.0, breakdown.Total)
}

func TestQuoteFare_UnknownVerticalRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(quoteConfig(), mockRepo, mockGW)

	breakdown, err := uc.QuoteFare(context.Background(), &billing.QuoteInput{
		Vertical:   models.ServiceVertical("submarine"),
		DistanceKm: 1,
	})

	assert.Nil(t, breakdown)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestQuoteFare_NegativeDistanceRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(quoteConfig(), mockRepo, mockGW)

	breakdown, err := uc.QuoteFare(context.Background(), &billing.QuoteInput{
		Vertical:   models.VerticalRide,
		DistanceKm: -2,
	})

	assert.Nil(t, breakdown)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}
