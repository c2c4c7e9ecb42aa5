package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/internal/repository/mocks"
	"github.com/astralune/trackstar/internal/service"
	"github.com/astralune/trackstar/pkg/entity"
)

func TestListActivities(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	activitiesRepo := mocks.NewMockActivitiesRepositoryI(ctrl)
	serv := service.NewActivitiesService(activitiesRepo)
	ctx := context.Background()

	uid := userID
	expected := []entity.ActivityType{
		{ID: uuid.New(), UserID: nil, Name: "Running"},
		{ID: uuid.New(), UserID: &uid, Name: "Swimming"},
	}
	activitiesRepo.EXPECT().ListForUser(gomock.Any(), userID).Return(expected, nil)

	activities, err := serv.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, activities)
}

func TestDeleteActivity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	activitiesRepo := mocks.NewMockActivitiesRepositoryI(ctrl)
	serv := service.NewActivitiesService(activitiesRepo)
	ctx := context.Background()
	activityID := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				activitiesRepo.EXPECT().DeleteUserActivity(gomock.Any(), userID, activityID).Return(nil)
			},
		},
		{
			Desc:  "unknown or foreign activity",
			Error: errorvalues.ErrActivityNotFound,
			MockPrepFunc: func() {
				activitiesRepo.EXPECT().DeleteUserActivity(gomock.Any(), userID, activityID).Return(errorvalues.ErrActivityNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.Delete(ctx, userID, activityID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}

	t.Run("repository error wrapped", func(t *testing.T) {
		activitiesRepo.EXPECT().DeleteUserActivity(gomock.Any(), userID, activityID).Return(errors.New("db down"))
		err := serv.Delete(ctx, userID, activityID)
		assert.EqualError(t, err, "activities repository error: db down")
	})
}
