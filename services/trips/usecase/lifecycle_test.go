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
	"github.com/angkutin/angkutin/services/trips/mocks"
)

func rideRequest(status models.RequestStatus) *models.ServiceRequest {
	return &models.ServiceRequest{
		ID:             uuid.New(),
		RequesterID:    uuid.New(),
		Vertical:       models.VerticalRide,
		ServiceType:    "RIDE",
		Status:         status,
		Pickup:         &models.Coordinate{Latitude: -6.2, Longitude: 106.8},
		Dropoff:        &models.Coordinate{Latitude: -6.3, Longitude: 106.9},
		PassengerCount: 1,
		DistanceKm:     10,
		EstimatedPrice: 25,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func assignedRideRequest(status models.RequestStatus) (*models.ServiceRequest, uuid.UUID) {
	req := rideRequest(status)
	providerID := uuid.New()
	req.ProviderID = &providerID
	return req, providerID
}

func operator() models.Actor {
	return models.Actor{ID: uuid.New().String(), Role: models.RoleOperator}
}

func TestApplyTransition_SkippingStatesRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusRequested)
	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

	// Act
	_, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusInProgress, operator())

	// Assert
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
}

func TestApplyTransition_TerminalStatusIsFinal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req, _ := assignedRideRequest(models.StatusCompleted)
	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

	// No update, no release, no events: the transition is rejected outright
	_, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusCompleted, operator())

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
}

func TestApplyTransition_AcceptBindsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusSearchingDriver)
	providerID := uuid.New()
	actor := models.Actor{ID: providerID.String(), Role: models.RoleProvider}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockGW.EXPECT().AssignProvider(gomock.Any(), providerID.String(), req.ID.String()).Return(nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusDriverAccepted, actor)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDriverAccepted, updated.Status)
	require.NotNil(t, updated.ProviderID)
	assert.Equal(t, providerID, *updated.ProviderID)
}

func TestApplyTransition_AcceptFailsWhenAssignRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusSearchingDriver)
	providerID := uuid.New()
	actor := models.Actor{ID: providerID.String(), Role: models.RoleProvider}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockGW.EXPECT().
		AssignProvider(gomock.Any(), providerID.String(), req.ID.String()).
		Return(apperrors.Validation("provider already on a trip"))

	// The request is not persisted when the provider cannot be bound
	_, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusDriverAccepted, actor)

	require.Error(t, err)
	assert.Equal(t, models.StatusSearchingDriver, req.Status)
}

func TestApplyTransition_CompletionReleasesProviderAndLocksPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req, providerID := assignedRideRequest(models.StatusInProgress)
	actor := models.Actor{ID: providerID.String(), Role: models.RoleProvider}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockGW.EXPECT().ReleaseProvider(gomock.Any(), providerID.String()).Return(nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		PublishTripCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.TripSettledEvent) error {
			assert.Equal(t, req.ID.String(), event.RequestID)
			assert.Equal(t, 25.0, event.FinalPrice)
			assert.False(t, event.Cancelled)
			return nil
		})

	updated, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusCompleted, actor)

	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.FinalPrice)
	assert.Equal(t, 25.0, *updated.FinalPrice)
	assert.NotNil(t, updated.CompletedAt)
}

func TestApplyTransition_EventFailureDoesNotRollBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req, providerID := assignedRideRequest(models.StatusDriverAccepted)
	actor := models.Actor{ID: providerID.String(), Role: models.RoleProvider}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		PublishLifecycleEvent(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	updated, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusDriverArrived, actor)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDriverArrived, updated.Status)
}

func TestApplyTransition_RequesterMayOnlyCancelOwnRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusRequested)

	stranger := models.Actor{ID: uuid.New().String(), Role: models.RoleRequester}
	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

	_, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusCancelled, stranger)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorizedActor, appErr.Code)
}

func TestApplyTransition_RequesterCannotAdvanceTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req, _ := assignedRideRequest(models.StatusDriverAccepted)
	owner := models.Actor{ID: req.RequesterID.String(), Role: models.RoleRequester}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

	_, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusDriverArrived, owner)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorizedActor, appErr.Code)
}

func TestApplyTransition_WrongProviderRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req, _ := assignedRideRequest(models.StatusDriverAccepted)
	other := models.Actor{ID: uuid.New().String(), Role: models.RoleProvider}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

	_, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusDriverArrived, other)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorizedActor, appErr.Code)
}

func TestApplyTransition_MovingCannotCancelAfterLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req, _ := assignedRideRequest(models.StatusLoading)
	req.Vertical = models.VerticalMoving
	req.ServiceType = "MOVING"

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

	_, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusCancelled, operator())

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
}

func TestApplyTransition_EmergencyCannotCancelAfterArrival(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req, _ := assignedRideRequest(models.StatusArrived)
	req.Vertical = models.VerticalEmergency
	req.ServiceType = "AMBULANCE"

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

	_, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusCancelled, operator())

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
}

func TestApplyTransition_DayBookingCancellationFeeTiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	scheduled := time.Now().Add(10 * time.Hour)
	req := rideRequest(models.StatusScheduled)
	req.Vertical = models.VerticalDayBooking
	req.ServiceType = "DAY_DRIVER"
	req.ScheduledAt = &scheduled
	req.EstimatedPrice = 100
	owner := models.Actor{ID: req.RequesterID.String(), Role: models.RoleRequester}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		PublishTripCancelled(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.TripSettledEvent) error {
			assert.True(t, event.Cancelled)
			assert.Equal(t, 50.0, event.Fee)
			return nil
		})

	updated, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusCancelled, owner)

	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.CancellationFee)
}

func TestApplyTransition_SharedRideCancelLeavesGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusSearchingDriver)
	req.Vertical = models.VerticalSharedRide
	req.ServiceType = "SHARED"
	req.PassengerCount = 2
	groupID := uuid.New()
	req.GroupID = &groupID
	owner := models.Actor{ID: req.RequesterID.String(), Role: models.RoleRequester}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockGW.EXPECT().LeaveGroup(gomock.Any(), groupID, req.ID, 2).Return(nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTripCancelled(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusCancelled, owner)

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
}

func TestHandleMatchFound_AcceptsForMatchedProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusSearchingDriver)
	providerID := uuid.New()

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockGW.EXPECT().AssignProvider(gomock.Any(), providerID.String(), req.ID.String()).Return(nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.HandleMatchFound(context.Background(), models.AssignmentEvent{
		RequestID:  req.ID.String(),
		ProviderID: providerID.String(),
		Vertical:   string(models.VerticalRide),
		Timestamp:  time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusDriverAccepted, req.Status)
}

func TestApplyTransition_EmergencyAcknowledgedQueuesDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusRequested)
	req.Vertical = models.VerticalEmergency
	req.ServiceType = "AMBULANCE"

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)
	// Acknowledging the call hands it to dispatch
	mockGW.EXPECT().DispatchRequest(gomock.Any(), req).Return(nil, nil)

	updated, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusAcknowledged, operator())

	require.NoError(t, err)
	assert.Equal(t, models.StatusAcknowledged, updated.Status)
}

func TestApplyTransition_DeliveryReadyForPickupQueuesDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusPreparing)
	req.Vertical = models.VerticalDelivery
	req.ServiceType = "FOOD"

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().DispatchRequest(gomock.Any(), req).Return(nil, nil)

	updated, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusReadyForPickup, operator())

	require.NoError(t, err)
	assert.Equal(t, models.StatusReadyForPickup, updated.Status)
}

func TestApplyTransition_SharedRideAcceptClosesGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusSearchingDriver)
	req.Vertical = models.VerticalSharedRide
	req.ServiceType = "SHARED"
	groupID := uuid.New()
	req.GroupID = &groupID
	providerID := uuid.New()
	actor := models.Actor{ID: providerID.String(), Role: models.RoleProvider}

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockGW.EXPECT().AssignProvider(gomock.Any(), providerID.String(), req.ID.String()).Return(nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)
	// The group mirrors the accepted leg and stops pooling new members
	mockGW.EXPECT().UpdateGroupStatus(gomock.Any(), groupID, models.StatusDriverAccepted).Return(nil)

	updated, err := uc.ApplyTransition(context.Background(), req.ID, models.StatusDriverAccepted, actor)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDriverAccepted, updated.Status)
}

func TestHandleMatchFound_EmergencyDispatchBindsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	req := rideRequest(models.StatusAcknowledged)
	req.Vertical = models.VerticalEmergency
	req.ServiceType = "AMBULANCE"
	providerID := uuid.New()

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockGW.EXPECT().AssignProvider(gomock.Any(), providerID.String(), req.ID.String()).Return(nil)
	mockRepo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLifecycleEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.HandleMatchFound(context.Background(), models.AssignmentEvent{
		RequestID:  req.ID.String(),
		ProviderID: providerID.String(),
		Vertical:   string(models.VerticalEmergency),
		Timestamp:  time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, req.Status)
	require.NotNil(t, req.ProviderID)
	assert.Equal(t, providerID, *req.ProviderID)
}

func TestHandleMatchFound_RejectedAcceptReleasesProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripsRepo(ctrl)
	mockGW := mocks.NewMockTripsGW(ctrl)
	uc := NewTripsUC(testConfig(), mockRepo, mockGW)

	// A stale match event arrives for an emergency call that was never
	// acknowledged; the accept transition must fail without stranding the
	// provider dispatch already marked busy
	req := rideRequest(models.StatusRequested)
	req.Vertical = models.VerticalEmergency
	req.ServiceType = "AMBULANCE"
	providerID := uuid.New()

	mockRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
	mockGW.EXPECT().ReleaseProvider(gomock.Any(), providerID.String()).Return(nil)

	err := uc.HandleMatchFound(context.Background(), models.AssignmentEvent{
		RequestID:  req.ID.String(),
		ProviderID: providerID.String(),
		Vertical:   string(models.VerticalEmergency),
		Timestamp:  time.Now(),
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
	assert.Equal(t, models.StatusRequested, req.Status)
	assert.Nil(t, req.ProviderID)
}
