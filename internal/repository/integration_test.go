package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/internal/repository"
	"github.com/limbo/fitstar/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fitstar"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	require.NoError(t, err)
	conn, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, goose.Up(conn, "../../migrations"))
	return &testPGConfig{
		connStr: connStr,
	}
}

func TestRepositoriesIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	pool := repository.NewPool(cfg)
	defer pool.Close()
	users := repository.NewUsersRepoWithConn(pool)
	analyses := repository.NewBodyAnalysisRepoWithConn(pool)
	sessions := repository.NewWorkoutSessionsRepoWithConn(pool)
	ctx := context.Background()

	user := entity.User{Username: "lena", Email: "lena@fitstar.com", TargetProgress: 30}
	require.NoError(t, users.Create(ctx, &user))
	assert.ErrorIs(t, users.Create(ctx, &entity.User{Username: "lena", Email: "other@fitstar.com"}), errorvalues.ErrUserExists)

	_, err := analyses.Latest(ctx, user.ID)
	assert.ErrorIs(t, err, errorvalues.ErrAnalysisNotFound)
	for _, match := range []string{"杨幂", "刘诗诗"} {
		a := entity.BodyAnalysis{UserID: user.ID, PhotoURL: "p.jpg", CelebrityMatch: match, MatchPercentage: 80,
			BodyType: "沙漏型", ShoulderRatio: 70, WaistHipRatio: 75, LegRatio: 88}
		require.NoError(t, analyses.Create(ctx, &a))
	}
	latest, err := analyses.Latest(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "刘诗诗", latest.CelebrityMatch)
	list, err := analyses.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.ErrorIs(t, analyses.Create(ctx, &entity.BodyAnalysis{UserID: user.ID + 100, BodyType: "x"}), errorvalues.ErrUserNotFound)

	day := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	plusOne := func(_ *time.Time, current int) int { return current + 1 }
	for i := range 2 {
		s := entity.WorkoutSession{UserID: user.ID, WorkoutPlanID: 1, WorkoutName: "瑜伽拉伸", Duration: 20,
			CaloriesBurned: 80, CompletedAt: day.AddDate(0, 0, i)}
		updated, err := sessions.Create(ctx, &s, plusOne)
		require.NoError(t, err)
		assert.Equal(t, i+1, updated.TotalWorkouts)
	}
	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentStreak)
	require.NotNil(t, stored.LastWorkoutDate)

	week, err := sessions.ListByUserBetween(ctx, user.ID, day, day.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Len(t, week, 2)

	_, err = sessions.Create(ctx, &entity.WorkoutSession{UserID: user.ID + 100, CompletedAt: day}, plusOne)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}
