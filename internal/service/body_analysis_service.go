package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/internal/repository"
	"github.com/limbo/fitstar/pkg/entity"
)

type BodyAnalysisService struct {
	repo repository.BodyAnalysisRepositoryI
}

func NewBodyAnalysisService(repo repository.BodyAnalysisRepositoryI) *BodyAnalysisService {
	if repo == nil {
		log.Fatal("provided nil bodyAnalysisRepo")
	}
	return &BodyAnalysisService{
		repo: repo,
	}
}

func (bs *BodyAnalysisService) Create(ctx context.Context, req *CreateAnalysisRequest) (*entity.BodyAnalysis, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	analysis := entity.BodyAnalysis{
		UserID:          req.UserID,
		PhotoURL:        req.PhotoURL,
		CelebrityMatch:  req.CelebrityMatch,
		MatchPercentage: req.MatchPercentage,
		BodyType:        req.BodyType,
		ShoulderRatio:   req.ShoulderRatio,
		WaistHipRatio:   req.WaistHipRatio,
		LegRatio:        req.LegRatio,
	}
	if err := bs.repo.Create(ctx, &analysis); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("body analysis repository error: " + err.Error())
	}
	return &analysis, nil
}

func (bs *BodyAnalysisService) ListByUser(ctx context.Context, userID int64) ([]*entity.BodyAnalysis, error) {
	analyses, err := bs.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.New("body analysis repository error: " + err.Error())
	}
	return analyses, nil
}

func (bs *BodyAnalysisService) Latest(ctx context.Context, userID int64) (*entity.BodyAnalysis, error) {
	analysis, err := bs.repo.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAnalysisNotFound) {
			return nil, err
		}
		return nil, errors.New("body analysis repository error: " + err.Error())
	}
	return analysis, nil
}
