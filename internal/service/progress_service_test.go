package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/internal/repository"
	"github.com/limbo/fitstar/internal/repository/mocks"
	"github.com/limbo/fitstar/internal/service"
	"github.com/limbo/fitstar/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var fixedNow = time.Date(2025, 3, 5, 18, 30, 0, 0, time.UTC)

func TestNextStreak(t *testing.T) {
	at := func(days int, hour int) *time.Time {
		v := time.Date(2025, 3, 5+days, hour, 0, 0, 0, time.UTC)
		return &v
	}
	testCases := []struct {
		Desc     string
		Last     *time.Time
		Current  int
		Expected int
	}{
		{Desc: "first workout", Last: nil, Current: 0, Expected: 1},
		{Desc: "same day keeps streak", Last: at(0, 7), Current: 4, Expected: 4},
		{Desc: "yesterday extends", Last: at(-1, 23), Current: 4, Expected: 5},
		{Desc: "gap restarts", Last: at(-2, 12), Current: 9, Expected: 1},
		{Desc: "same day with zero streak", Last: at(0, 7), Current: 0, Expected: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.NextStreak(tc.Last, fixedNow, tc.Current))
		})
	}
	t.Run("stored date in a western zone", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		today := time.Date(2025, 3, 5, 18, 30, 0, 0, loc)
		stored := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 3, service.NextStreak(&stored, today, 2))
	})
}

func TestWeekStart(t *testing.T) {
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), service.WeekStart(fixedNow))
	sunday := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), service.WeekStart(sunday))
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, service.WeekStart(monday))
}

func TestLogWorkout(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	sessionsRepo := mocks.NewMockWorkoutSessionsRepositoryI(ctrl)
	serv := service.NewProgressServiceWithClock(usersRepo, sessionsRepo, func() time.Time { return fixedNow })
	ctx := context.Background()
	req := service.LogWorkoutRequest{UserID: 1, WorkoutPlanID: 1, WorkoutName: "瑜伽拉伸", Duration: 20, CaloriesBurned: 80}

	t.Run("success applies streak rule", func(t *testing.T) {
		yesterday := fixedNow.AddDate(0, 0, -1)
		sessionsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *entity.WorkoutSession, streak repository.StreakFunc) (*entity.User, error) {
				assert.Equal(t, fixedNow, s.CompletedAt)
				assert.Equal(t, 4, streak(&yesterday, 3))
				s.ID = 9
				return &entity.User{ID: 1, CurrentStreak: 4}, nil
			})
		r := req
		session, err := serv.LogWorkout(ctx, &r)
		require.NoError(t, err)
		assert.Equal(t, int64(9), session.ID)
		assert.Equal(t, "瑜伽拉伸", session.WorkoutName)
	})
	t.Run("unknown user", func(t *testing.T) {
		sessionsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
		r := req
		_, err := serv.LogWorkout(ctx, &r)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("invalid request", func(t *testing.T) {
		r := req
		r.WorkoutName = ""
		r.Duration = -5
		_, err := serv.LogWorkout(ctx, &r)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestWeeklyProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	sessionsRepo := mocks.NewMockWorkoutSessionsRepositoryI(ctrl)
	serv := service.NewProgressServiceWithClock(usersRepo, sessionsRepo, func() time.Time { return fixedNow })
	ctx := context.Background()
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("buckets by weekday", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&entity.User{ID: 1}, nil)
		sessionsRepo.EXPECT().ListByUserBetween(gomock.Any(), int64(1), monday, monday.AddDate(0, 0, 7)).Return([]entity.WorkoutSession{
			{Duration: 30, CaloriesBurned: 180, CompletedAt: monday.Add(9 * time.Hour)},
			{Duration: 20, CaloriesBurned: 80, CompletedAt: monday.Add(20 * time.Hour)},
			{Duration: 20, CaloriesBurned: 300, CompletedAt: monday.AddDate(0, 0, 2).Add(7 * time.Hour)},
		}, nil)
		progress, err := serv.WeeklyProgress(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, progress.WeeklyWorkouts)
		assert.Equal(t, 560, progress.WeeklyCalories)
		require.Len(t, progress.Sessions, 7)
		assert.Equal(t, entity.SessionPoint{Day: "周一", Duration: 50, Calories: 260}, progress.Sessions[0])
		assert.Equal(t, entity.SessionPoint{Day: "周三", Duration: 20, Calories: 300}, progress.Sessions[2])
		assert.Equal(t, entity.SessionPoint{Day: "周日"}, progress.Sessions[6])
	})
	t.Run("idle week", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&entity.User{ID: 1}, nil)
		sessionsRepo.EXPECT().ListByUserBetween(gomock.Any(), int64(1), monday, monday.AddDate(0, 0, 7)).Return(nil, nil)
		progress, err := serv.WeeklyProgress(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, progress.WeeklyWorkouts)
		assert.Len(t, progress.Sessions, 7)
	})
	t.Run("unknown user", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, errorvalues.ErrUserNotFound)
		_, err := serv.WeeklyProgress(ctx, 2)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
