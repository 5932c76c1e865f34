package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/fitstar/internal/repository/mocks"
	"github.com/limbo/fitstar/internal/service"
	"github.com/limbo/fitstar/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	serv := service.NewWorkoutPlanService(mocks.NewMockWorkoutSessionsRepositoryI(ctrl))
	catalog := serv.Catalog()
	require.Len(t, catalog, 5)
	assert.Equal(t, "pilates-1", catalog[0].ID)
	assert.Equal(t, 300, catalog[4].Calories)

	catalog[0].Name = "changed"
	assert.Equal(t, "普拉提核心训练", serv.Catalog()[0].Name)
}

func TestPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	serv := service.NewWorkoutPlanService(mocks.NewMockWorkoutSessionsRepositoryI(ctrl))
	plan := serv.Plan("苹果型")
	require.Len(t, plan, 2)
	assert.Equal(t, 1, plan[0].Week)
	assert.Equal(t, "hiit-1", plan[1].Workouts[1].ID)
	for _, week := range plan {
		for _, w := range week.Workouts {
			assert.NotEmpty(t, w.Schedule)
			assert.NotEmpty(t, w.Name)
		}
	}
	assert.Equal(t, "ballet-1", serv.Plan("unknown")[1].Workouts[1].ID)
}

func TestToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionsRepo := mocks.NewMockWorkoutSessionsRepositoryI(ctrl)
	serv := service.NewWorkoutPlanServiceWithClock(sessionsRepo, func() time.Time { return fixedNow })
	dayStart := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	sessionsRepo.EXPECT().ListByUserBetween(gomock.Any(), int64(1), dayStart, dayStart.AddDate(0, 0, 1)).
		Return([]entity.WorkoutSession{{WorkoutName: "轻度有氧运动"}}, nil)
	today, err := serv.Today(ctx, 1)
	require.NoError(t, err)
	require.Len(t, today, 5)
	for _, w := range today {
		assert.Equal(t, w.ID == "cardio-1", w.Completed, w.ID)
	}

	sessionsRepo.EXPECT().ListByUserBetween(gomock.Any(), int64(1), dayStart, dayStart.AddDate(0, 0, 1)).
		Return(nil, errors.New("db error"))
	_, err = serv.Today(ctx, 1)
	assert.Error(t, err)
}
