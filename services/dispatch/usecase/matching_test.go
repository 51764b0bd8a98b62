package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/services/dispatch/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Shared: models.SharedRideConfig{
			MaxGroupCapacity:  4,
			GroupWindowMin:    30,
			MaxDiscountPct:    40,
			DiscountPerSeat:   10,
			DefaultDetourPct:  20,
			DefaultMaxWaitMin: 30,
		},
	}
}

func onlineProvider(id string, lat, lng float64, seq int64, serviceTypes ...string) *models.Provider {
	return &models.Provider{
		ID:           id,
		Availability: models.AvailabilityOnline,
		Approval:     models.ApprovalApproved,
		Location:     &models.Coordinate{Latitude: lat, Longitude: lng},
		ServiceTypes: serviceTypes,
		RegisteredSeq: seq,
		UpdatedAt:    time.Now(),
	}
}

func TestFindBestProvider_NearestWins(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	providerX := onlineProvider("provider-x", 0, 0, 1, "RIDE")
	providerY := onlineProvider("provider-y", 1, 1, 2, "RIDE")

	mockRepo.EXPECT().
		ListProviders(gomock.Any()).
		Return([]*models.Provider{providerX, providerY}, nil)

	// Act
	best, err := uc.FindBestProvider(context.Background(), models.Coordinate{Latitude: 0.1, Longitude: 0.1}, "RIDE")

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "provider-x", best.Provider.ID)
	assert.Greater(t, best.DistanceKm, 0.0)
}

func TestFindBestProvider_TieBrokenByRegistrationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	// Both providers on the same coordinate; the repo returns them in
	// registration order
	early := onlineProvider("provider-early", 0.5, 0.5, 1, "RIDE")
	late := onlineProvider("provider-late", 0.5, 0.5, 2, "RIDE")

	mockRepo.EXPECT().
		ListProviders(gomock.Any()).
		Return([]*models.Provider{early, late}, nil)

	best, err := uc.FindBestProvider(context.Background(), models.Coordinate{Latitude: 0.5, Longitude: 0.5}, "RIDE")

	assert.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "provider-early", best.Provider.ID)
}

func TestFindBestProvider_EmptyRegistryIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		ListProviders(gomock.Any()).
		Return([]*models.Provider{}, nil)

	best, err := uc.FindBestProvider(context.Background(), models.Coordinate{Latitude: 0, Longitude: 0}, "RIDE")

	assert.NoError(t, err)
	assert.Nil(t, best)
}

func TestFindNearbyProviders_FiltersIneligibleCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	eligible := onlineProvider("provider-eligible", 0, 0, 1, "RIDE")

	wrongService := onlineProvider("provider-delivery", 0, 0, 2, "DELIVERY")

	offline := onlineProvider("provider-offline", 0, 0, 3, "RIDE")
	offline.Availability = models.AvailabilityOffline

	unapproved := onlineProvider("provider-pending", 0, 0, 4, "RIDE")
	unapproved.Approval = models.ApprovalPending

	noLocation := onlineProvider("provider-dark", 0, 0, 5, "RIDE")
	noLocation.Location = nil

	mockRepo.EXPECT().
		ListProviders(gomock.Any()).
		Return([]*models.Provider{eligible, wrongService, offline, unapproved, noLocation}, nil)

	candidates, err := uc.FindNearbyProviders(context.Background(), models.Coordinate{Latitude: 0, Longitude: 0}, "RIDE")

	assert.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "provider-eligible", candidates[0].Provider.ID)
}

func TestDispatchRequest_AssignsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	provider := onlineProvider("provider-x", 0, 0, 1, "RIDE")
	req := &models.ServiceRequest{
		ID:          uuid.New(),
		Vertical:    models.VerticalRide,
		ServiceType: "RIDE",
		Pickup:      &models.Coordinate{Latitude: 0.1, Longitude: 0.1},
	}

	mockRepo.EXPECT().
		ListProviders(gomock.Any()).
		Return([]*models.Provider{provider}, nil)
	// AssignProvider re-reads the provider under the lock
	mockRepo.EXPECT().
		GetProvider(gomock.Any(), "provider-x").
		Return(provider, nil)
	mockRepo.EXPECT().
		SetActiveRequest(gomock.Any(), "provider-x", req.ID.String()).
		Return(nil)
	mockGW.EXPECT().
		PublishMatchFound(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.AssignmentEvent) error {
			assert.Equal(t, req.ID.String(), event.RequestID)
			assert.Equal(t, "provider-x", event.ProviderID)
			assert.Equal(t, "ride", event.Vertical)
			return nil
		})

	match, err := uc.DispatchRequest(context.Background(), req)

	assert.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "provider-x", match.Provider.ID)
}

func TestDispatchRequest_FallsThroughToNextCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	taken := onlineProvider("provider-taken", 0, 0, 1, "RIDE")
	taken.ActiveRequestID = uuid.New().String()
	free := onlineProvider("provider-free", 0.2, 0.2, 2, "RIDE")

	req := &models.ServiceRequest{
		ID:          uuid.New(),
		Vertical:    models.VerticalRide,
		ServiceType: "RIDE",
		Pickup:      &models.Coordinate{Latitude: 0, Longitude: 0},
	}

	mockRepo.EXPECT().
		ListProviders(gomock.Any()).
		Return([]*models.Provider{taken, free}, nil)
	mockRepo.EXPECT().
		GetProvider(gomock.Any(), "provider-taken").
		Return(taken, nil)
	mockRepo.EXPECT().
		GetProvider(gomock.Any(), "provider-free").
		Return(free, nil)
	mockRepo.EXPECT().
		SetActiveRequest(gomock.Any(), "provider-free", req.ID.String()).
		Return(nil)
	mockGW.EXPECT().
		PublishMatchFound(gomock.Any(), gomock.Any()).
		Return(nil)

	match, err := uc.DispatchRequest(context.Background(), req)

	assert.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "provider-free", match.Provider.ID)
}

func TestDispatchRequest_PublishFailureDoesNotRollBackAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	provider := onlineProvider("provider-x", 0, 0, 1, "RIDE")
	req := &models.ServiceRequest{
		ID:          uuid.New(),
		Vertical:    models.VerticalRide,
		ServiceType: "RIDE",
		Pickup:      &models.Coordinate{Latitude: 0, Longitude: 0},
	}

	mockRepo.EXPECT().ListProviders(gomock.Any()).Return([]*models.Provider{provider}, nil)
	mockRepo.EXPECT().GetProvider(gomock.Any(), "provider-x").Return(provider, nil)
	mockRepo.EXPECT().SetActiveRequest(gomock.Any(), "provider-x", req.ID.String()).Return(nil)
	mockGW.EXPECT().PublishMatchFound(gomock.Any(), gomock.Any()).Return(errors.New("nats unavailable"))

	match, err := uc.DispatchRequest(context.Background(), req)

	assert.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "provider-x", match.Provider.ID)
}

func TestDispatchRequest_NoPickupRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	req := &models.ServiceRequest{ID: uuid.New(), ServiceType: "RIDE"}

	match, err := uc.DispatchRequest(context.Background(), req)

	assert.Nil(t, match)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestAssignProvider_RejectsSecondAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	provider := onlineProvider("provider-x", 0, 0, 1, "RIDE")
	provider.ActiveRequestID = "some-other-request"

	mockRepo.EXPECT().
		GetProvider(gomock.Any(), "provider-x").
		Return(provider, nil)

	err := uc.AssignProvider(context.Background(), "provider-x", uuid.New().String())

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestReleaseProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		ClearActiveRequest(gomock.Any(), "provider-x").
		Return(nil)

	assert.NoError(t, uc.ReleaseProvider(context.Background(), "provider-x"))
}
