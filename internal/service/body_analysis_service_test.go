package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/internal/repository/mocks"
	"github.com/limbo/fitstar/internal/service"
	"github.com/limbo/fitstar/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnalysis(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBodyAnalysisRepositoryI(ctrl)
	serv := service.NewBodyAnalysisService(repo)
	valid := service.CreateAnalysisRequest{
		UserID: 1, PhotoURL: "p.jpg", CelebrityMatch: "刘诗诗", MatchPercentage: 87,
		BodyType: "沙漏型", ShoulderRatio: 72, WaistHipRatio: 81, LegRatio: 90,
	}
	outOfRange := valid
	outOfRange.LegRatio = 130
	testCases := []struct {
		Desc         string
		Error        error
		Request      service.CreateAnalysisRequest
		MockPrepFunc func()
	}{
		{
			Desc:    "success",
			Request: valid,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "ratio out of range",
			Error:        errorvalues.ErrValidation,
			Request:      outOfRange,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "unknown user",
			Error:   errorvalues.ErrUserNotFound,
			Request: valid,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			req := tc.Request
			analysis, err := serv.Create(ctx, &req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, req.CelebrityMatch, analysis.CelebrityMatch)
			assert.Equal(t, req.LegRatio, analysis.LegRatio)
		})
	}
}

func TestLatestAnalysis(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBodyAnalysisRepositoryI(ctrl)
	serv := service.NewBodyAnalysisService(repo)
	ctx := context.Background()

	repo.EXPECT().Latest(gomock.Any(), int64(1)).Return(nil, errorvalues.ErrAnalysisNotFound)
	_, err := serv.Latest(ctx, 1)
	assert.ErrorIs(t, err, errorvalues.ErrAnalysisNotFound)

	repo.EXPECT().Latest(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
	_, err = serv.Latest(ctx, 1)
	assert.EqualError(t, err, "body analysis repository error: db error")

	repo.EXPECT().ListByUser(gomock.Any(), int64(1)).Return([]*entity.BodyAnalysis{{ID: 2}, {ID: 1}}, nil)
	list, err := serv.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
