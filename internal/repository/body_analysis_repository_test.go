package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/internal/repository"
	"github.com/limbo/fitstar/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analysisColumns = []string{"id", "user_id", "photo_url", "celebrity_match", "match_percentage", "body_type", "shoulder_ratio", "waist_hip_ratio", "leg_ratio", "created_at"}

func testAnalysis(id int64, createdAt time.Time) entity.BodyAnalysis {
	return entity.BodyAnalysis{
		ID:              id,
		UserID:          1,
		PhotoURL:        "https://cdn.fitstar.com/p/1.jpg",
		CelebrityMatch:  "刘诗诗",
		MatchPercentage: 87,
		BodyType:        "沙漏型",
		ShoulderRatio:   72,
		WaistHipRatio:   81,
		LegRatio:        90,
		CreatedAt:       createdAt,
	}
}

func analysisRow(rows *pgxmock.Rows, a entity.BodyAnalysis) *pgxmock.Rows {
	return rows.AddRow(a.ID, a.UserID, a.PhotoURL, a.CelebrityMatch, a.MatchPercentage, a.BodyType,
		a.ShoulderRatio, a.WaistHipRatio, a.LegRatio, a.CreatedAt)
}

func TestCreateAnalysis(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBodyAnalysisRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO body_analyses (user_id, photo_url, celebrity_match, match_percentage, body_type, shoulder_ratio, waist_hip_ratio, leg_ratio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`)
	analysis := testAnalysis(0, time.Time{})
	args := []any{analysis.UserID, analysis.PhotoURL, analysis.CelebrityMatch, analysis.MatchPercentage,
		analysis.BodyType, analysis.ShoulderRatio, analysis.WaistHipRatio, analysis.LegRatio}
	createdAt := time.Now()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), createdAt))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating body analysis error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			a := analysis
			err := repo.Create(ctx, &a)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(5), a.ID)
			assert.Equal(t, createdAt, a.CreatedAt)
		})
	}
}

func TestListAnalysesByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBodyAnalysisRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, photo_url, celebrity_match, match_percentage, body_type, shoulder_ratio, waist_hip_ratio, leg_ratio, created_at FROM body_analyses WHERE user_id = $1 ORDER BY created_at DESC, id DESC;`)
	now := time.Now()
	newer := testAnalysis(2, now)
	older := testAnalysis(1, now.Add(-time.Hour))
	ctx := context.Background()
	t.Run("newest first", func(t *testing.T) {
		rows := analysisRow(analysisRow(pgxmock.NewRows(analysisColumns), newer), older)
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)
		result, err := repo.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, newer, *result[0])
		assert.Equal(t, older, *result[1])
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(pgxmock.NewRows(analysisColumns))
		result, err := repo.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, 1)
		assert.EqualError(t, err, "listing body analyses error: db error")
	})
}

func TestLatestAnalysis(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBodyAnalysisRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, photo_url, celebrity_match, match_percentage, body_type, shoulder_ratio, waist_hip_ratio, leg_ratio, created_at FROM body_analyses WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1;`)
	latest := testAnalysis(3, time.Now())
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(analysisRow(pgxmock.NewRows(analysisColumns), latest))
		result, err := repo.Latest(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, latest, *result)
	})
	t.Run("no analyses", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Latest(ctx, 1)
		assert.ErrorIs(t, err, errorvalues.ErrAnalysisNotFound)
	})
}
