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
	"github.com/angkutin/angkutin/services/dispatch/mocks"
)

func openGroupAt(originLat, originLng, destLat, destLng float64, current, max int) *models.RideGroup {
	return &models.RideGroup{
		ID:              uuid.New(),
		Origin:          models.Coordinate{Latitude: originLat, Longitude: originLng},
		Destination:     models.Coordinate{Latitude: destLat, Longitude: destLng},
		MaxCapacity:     max,
		CurrentCapacity: current,
		Status:          models.StatusSearchingDriver,
		CreatedAt:       time.Now().Add(-5 * time.Minute),
	}
}

func sharedRequest(passengers int) *models.ServiceRequest {
	return &models.ServiceRequest{
		ID:             uuid.New(),
		Vertical:       models.VerticalSharedRide,
		ServiceType:    "SHARED_RIDE",
		PassengerCount: passengers,
		Pickup:         &models.Coordinate{Latitude: 0, Longitude: 0},
		Dropoff:        &models.Coordinate{Latitude: 1, Longitude: 0},
	}
}

func TestJoinOrCreateGroup_JoinsMinimumDetourGroup(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	req := sharedRequest(1)

	// Near group: endpoints almost on the request's route. Far group is
	// feasible too but with a larger total detour.
	nearGroup := openGroupAt(0.01, 0, 1.01, 0, 1, 4)
	farGroup := openGroupAt(0.05, 0, 1.05, 0, 1, 4)

	mockRepo.EXPECT().
		ListOpenGroups(gomock.Any(), gomock.Any()).
		Return([]*models.RideGroup{farGroup, nearGroup}, nil)

	joined := *nearGroup
	joined.CurrentCapacity = 2
	mockRepo.EXPECT().
		AddGroupMember(gomock.Any(), nearGroup.ID, req.ID, 1).
		Return(&joined, nil)
	mockGW.EXPECT().
		PublishGroupUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	result, err := uc.JoinOrCreateGroup(context.Background(), req, 20, 0)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsNew)
	assert.Equal(t, nearGroup.ID, result.Group.ID)
	assert.Equal(t, 20.0, result.DiscountPct) // 10% per occupied seat, 2 seats
}

func TestJoinOrCreateGroup_CapacityOverrunCreatesNewGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	// Group has 3 of 4 seats taken; a two-passenger request cannot fit
	fullish := openGroupAt(0, 0, 1, 0, 3, 4)
	req := sharedRequest(2)

	mockRepo.EXPECT().
		ListOpenGroups(gomock.Any(), gomock.Any()).
		Return([]*models.RideGroup{fullish}, nil)
	mockRepo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, group *models.RideGroup) error {
			assert.Equal(t, 2, group.CurrentCapacity)
			assert.Equal(t, 4, group.MaxCapacity)
			assert.Equal(t, models.StatusSearchingDriver, group.Status)
			assert.Equal(t, []uuid.UUID{req.ID}, group.MemberRequestIDs)
			return nil
		})

	result, err := uc.JoinOrCreateGroup(context.Background(), req, 20, 0)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsNew)
	assert.Equal(t, 2, result.Group.CurrentCapacity)
	assert.Equal(t, 20.0, result.DiscountPct)
}

func TestJoinOrCreateGroup_DetourBoundRejectsDistantGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	// The group's endpoints are far enough that its total detour exceeds
	// directDistance * (1 + 20/100)
	distant := openGroupAt(2, 2, 3, 3, 1, 4)
	req := sharedRequest(1)

	mockRepo.EXPECT().
		ListOpenGroups(gomock.Any(), gomock.Any()).
		Return([]*models.RideGroup{distant}, nil)
	mockRepo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := uc.JoinOrCreateGroup(context.Background(), req, 20, 0)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsNew)
}

func TestJoinOrCreateGroup_ConcurrentFillFallsBackToNewGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	group := openGroupAt(0.01, 0, 1.01, 0, 1, 4)
	req := sharedRequest(1)

	mockRepo.EXPECT().
		ListOpenGroups(gomock.Any(), gomock.Any()).
		Return([]*models.RideGroup{group}, nil)
	// The database capacity guard rejects the join
	mockRepo.EXPECT().
		AddGroupMember(gomock.Any(), group.ID, req.ID, 1).
		Return(nil, apperrors.CapacityExceeded("ride group"))
	mockRepo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := uc.JoinOrCreateGroup(context.Background(), req, 20, 0)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsNew)
}

func TestJoinOrCreateGroup_DiscountCappedAtMax(t *testing.T) {
	assert.Equal(t, 10.0, PoolingDiscountPct(1, 40, 10))
	assert.Equal(t, 30.0, PoolingDiscountPct(3, 40, 10))
	assert.Equal(t, 40.0, PoolingDiscountPct(4, 40, 10))
	assert.Equal(t, 40.0, PoolingDiscountPct(7, 40, 10))
}

func TestLeaveGroup_NotifiesRemainingMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	groupID := uuid.New()
	requestID := uuid.New()
	remaining := &models.RideGroup{
		ID:              groupID,
		MaxCapacity:     4,
		CurrentCapacity: 2,
		Status:          models.StatusSearchingDriver,
	}

	mockRepo.EXPECT().
		GetGroup(gomock.Any(), groupID).
		Return(remaining, nil)
	mockRepo.EXPECT().
		RemoveGroupMember(gomock.Any(), groupID, requestID, 1).
		Return(remaining, nil)
	mockGW.EXPECT().
		PublishGroupUpdated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.GroupEvent) error {
			assert.Equal(t, "left", event.Change)
			assert.Equal(t, 2, event.CurrentCapacity)
			return nil
		})

	group, err := uc.LeaveGroup(context.Background(), groupID, requestID, 1)

	assert.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, 2, group.CurrentCapacity)
}

func TestLeaveGroup_LastMemberDeletesGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	groupID := uuid.New()
	requestID := uuid.New()
	before := &models.RideGroup{ID: groupID, MaxCapacity: 4, CurrentCapacity: 2, Status: models.StatusSearchingDriver}
	emptied := &models.RideGroup{ID: groupID, MaxCapacity: 4, CurrentCapacity: 0}

	mockRepo.EXPECT().
		GetGroup(gomock.Any(), groupID).
		Return(before, nil)
	mockRepo.EXPECT().
		RemoveGroupMember(gomock.Any(), groupID, requestID, 2).
		Return(emptied, nil)
	mockRepo.EXPECT().
		DeleteGroup(gomock.Any(), groupID).
		Return(nil)

	group, err := uc.LeaveGroup(context.Background(), groupID, requestID, 2)

	assert.NoError(t, err)
	assert.Nil(t, group)
}

func TestLeaveGroup_DepartedGroupRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	groupID := uuid.New()
	departed := &models.RideGroup{ID: groupID, MaxCapacity: 4, CurrentCapacity: 3, Status: models.StatusInProgress}

	mockRepo.EXPECT().
		GetGroup(gomock.Any(), groupID).
		Return(departed, nil)

	group, err := uc.LeaveGroup(context.Background(), groupID, uuid.New(), 1)

	assert.Nil(t, group)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
}

func TestLeaveGroup_AllowedWhileDriverAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	groupID := uuid.New()
	requestID := uuid.New()
	accepted := &models.RideGroup{
		ID:              groupID,
		MaxCapacity:     4,
		CurrentCapacity: 3,
		Status:          models.StatusDriverAccepted,
	}

	mockRepo.EXPECT().
		GetGroup(gomock.Any(), groupID).
		Return(accepted, nil)
	mockRepo.EXPECT().
		RemoveGroupMember(gomock.Any(), groupID, requestID, 1).
		Return(accepted, nil)
	mockGW.EXPECT().
		PublishGroupUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	group, err := uc.LeaveGroup(context.Background(), groupID, requestID, 1)

	assert.NoError(t, err)
	require.NotNil(t, group)
}

func TestJoinOrCreateGroup_MissingCoordinatesRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	req := sharedRequest(1)
	req.Dropoff = nil

	result, err := uc.JoinOrCreateGroup(context.Background(), req, 20, 0)

	assert.Nil(t, result)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestJoinOrCreateGroup_ScheduledRideSkipsImmediateGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	// An immediate group on the exact same route must not absorb a ride
	// scheduled for later tonight
	immediate := openGroupAt(0.01, 0, 1.01, 0, 1, 4)
	scheduled := time.Now().Add(6 * time.Hour)
	req := sharedRequest(1)
	req.ScheduledAt = &scheduled

	mockRepo.EXPECT().
		ListOpenGroups(gomock.Any(), gomock.Any()).
		Return([]*models.RideGroup{immediate}, nil)
	mockRepo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, group *models.RideGroup) error {
			require.NotNil(t, group.ScheduledAt)
			assert.True(t, group.ScheduledAt.Equal(scheduled))
			return nil
		})

	result, err := uc.JoinOrCreateGroup(context.Background(), req, 20, 0)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsNew)
}

func TestJoinOrCreateGroup_PoolsWithGroupInSameScheduleWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	groupTime := time.Now().Add(6 * time.Hour)
	reqTime := groupTime.Add(10 * time.Minute)
	group := openGroupAt(0.01, 0, 1.01, 0, 1, 4)
	group.ScheduledAt = &groupTime
	req := sharedRequest(1)
	req.ScheduledAt = &reqTime

	mockRepo.EXPECT().
		ListOpenGroups(gomock.Any(), gomock.Any()).
		Return([]*models.RideGroup{group}, nil)

	joined := *group
	joined.CurrentCapacity = 2
	mockRepo.EXPECT().
		AddGroupMember(gomock.Any(), group.ID, req.ID, 1).
		Return(&joined, nil)
	mockGW.EXPECT().
		PublishGroupUpdated(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := uc.JoinOrCreateGroup(context.Background(), req, 20, 0)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsNew)
	assert.Equal(t, group.ID, result.Group.ID)
}

func TestJoinOrCreateGroup_WaitToleranceNarrowsWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	req := sharedRequest(1)

	// A 5-minute wait tolerance must trim the 30-minute pooling window
	mockRepo.EXPECT().
		ListOpenGroups(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) ([]*models.RideGroup, error) {
			assert.WithinDuration(t, time.Now().Add(-5*time.Minute), cutoff, time.Second)
			return nil, nil
		})
	mockRepo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := uc.JoinOrCreateGroup(context.Background(), req, 20, 5)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsNew)
}

func TestScheduleCompatible(t *testing.T) {
	now := time.Now()
	later := now.Add(10 * time.Minute)
	tonight := now.Add(6 * time.Hour)
	window := 30 * time.Minute

	assert.True(t, scheduleCompatible(nil, nil, window))
	assert.False(t, scheduleCompatible(nil, &tonight, window))
	assert.False(t, scheduleCompatible(&tonight, nil, window))
	assert.True(t, scheduleCompatible(&now, &later, window))
	assert.True(t, scheduleCompatible(&later, &now, window))
	assert.False(t, scheduleCompatible(&now, &tonight, window))
}

func TestUpdateGroupStatus_PersistsNewStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	groupID := uuid.New()
	mockRepo.EXPECT().
		UpdateGroupStatus(gomock.Any(), groupID, models.StatusDriverAccepted).
		Return(nil)

	err := uc.UpdateGroupStatus(context.Background(), groupID, models.StatusDriverAccepted)

	assert.NoError(t, err)
}
