package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/internal/repository"
	"github.com/limbo/fitstar/pkg/entity"
)

// Monday first.
var weekdayLabels = [7]string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

type ProgressService struct {
	users    repository.UsersRepositoryI
	sessions repository.WorkoutSessionsRepositoryI
	now      func() time.Time
}

func NewProgressService(users repository.UsersRepositoryI, sessions repository.WorkoutSessionsRepositoryI) *ProgressService {
	return NewProgressServiceWithClock(users, sessions, time.Now)
}

func NewProgressServiceWithClock(users repository.UsersRepositoryI, sessions repository.WorkoutSessionsRepositoryI, now func() time.Time) *ProgressService {
	if users == nil || sessions == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		users:    users,
		sessions: sessions,
		now:      now,
	}
}

func (ps *ProgressService) LogWorkout(ctx context.Context, req *LogWorkoutRequest) (*entity.WorkoutSession, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := ps.now()
	session := entity.WorkoutSession{
		UserID:         req.UserID,
		WorkoutPlanID:  req.WorkoutPlanID,
		WorkoutName:    req.WorkoutName,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		CompletedAt:    now,
	}
	_, err := ps.sessions.Create(ctx, &session, func(last *time.Time, current int) int {
		return NextStreak(last, now, current)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("workout sessions repository error: " + err.Error())
	}
	return &session, nil
}

func (ps *ProgressService) WeeklyProgress(ctx context.Context, userID int64) (*entity.ProgressData, error) {
	if _, err := ps.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	from := WeekStart(ps.now())
	sessions, err := ps.sessions.ListByUserBetween(ctx, userID, from, from.AddDate(0, 0, 7))
	if err != nil {
		return nil, errors.New("workout sessions repository error: " + err.Error())
	}
	return aggregateWeek(sessions, from.Location()), nil
}

func aggregateWeek(sessions []entity.WorkoutSession, loc *time.Location) *entity.ProgressData {
	progress := entity.ProgressData{
		Sessions: make([]entity.SessionPoint, 7),
	}
	for i, label := range weekdayLabels {
		progress.Sessions[i].Day = label
	}
	for _, s := range sessions {
		point := &progress.Sessions[weekdayIndex(s.CompletedAt.In(loc))]
		point.Duration += s.Duration
		point.Calories += s.CaloriesBurned
		progress.WeeklyWorkouts++
		progress.WeeklyCalories += s.CaloriesBurned
	}
	return &progress
}

// WeekStart returns Monday 00:00 of t's week in t's location.
func WeekStart(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -weekdayIndex(day))
}

func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextStreak applies the daily streak rule: a second workout on the same day keeps
// the streak, a workout on the day after the previous one extends it, anything else restarts it.
func NextStreak(last *time.Time, today time.Time, current int) int {
	if last == nil {
		return 1
	}
	todayStart := startOfDay(today)
	// last_workout_date is a DATE, so only its calendar day counts
	y, m, d := last.Date()
	lastStart := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	switch {
	case !lastStart.Before(todayStart):
		return max(current, 1)
	case lastStart.Equal(todayStart.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}
