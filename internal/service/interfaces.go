package service

import (
	"context"

	"github.com/limbo/fitstar/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type CreateUserRequest struct {
	Username       string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email          string `validate:"required,email,max=255"`
	TargetProgress int    `validate:"min=0,max=100"`
}

// CreateAnalysisRequest carries a record already computed by the external analyser.
type CreateAnalysisRequest struct {
	UserID          int64  `validate:"required,gt=0"`
	PhotoURL        string `validate:"required,max=2048"`
	CelebrityMatch  string `validate:"required,max=100"`
	MatchPercentage int    `validate:"min=0,max=100"`
	BodyType        string `validate:"required,max=100"`
	ShoulderRatio   int    `validate:"min=0,max=100"`
	WaistHipRatio   int    `validate:"min=0,max=100"`
	LegRatio        int    `validate:"min=0,max=100"`
}

type LogWorkoutRequest struct {
	UserID         int64  `validate:"required,gt=0"`
	WorkoutPlanID  int64  `validate:"min=0"`
	WorkoutName    string `validate:"required,max=255"`
	Duration       int    `validate:"min=0,max=1440"`
	CaloriesBurned int    `validate:"min=0"`
}

type UserServiceI interface {
	// Validates request and stores new user. Returns user's data with ID
	Create(ctx context.Context, req *CreateUserRequest) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}

type BodyAnalysisServiceI interface {
	Create(ctx context.Context, req *CreateAnalysisRequest) (*entity.BodyAnalysis, error)
	// Newest first. Unknown users simply have no analyses
	ListByUser(ctx context.Context, userID int64) ([]*entity.BodyAnalysis, error)
	Latest(ctx context.Context, userID int64) (*entity.BodyAnalysis, error)
}

type ProgressServiceI interface {
	// Appends session and advances the user's streak and total
	LogWorkout(ctx context.Context, req *LogWorkoutRequest) (*entity.WorkoutSession, error)
	// Aggregate of the current Monday-based week
	WeeklyProgress(ctx context.Context, userID int64) (*entity.ProgressData, error)
}

type WorkoutPlanServiceI interface {
	Catalog() []entity.WorkoutTemplate
	// Two-week plan for a body type label
	Plan(bodyType string) []entity.WeeklyWorkout
	// Catalog marked with what the user already completed today
	Today(ctx context.Context, userID int64) ([]entity.TodayWorkout, error)
}
