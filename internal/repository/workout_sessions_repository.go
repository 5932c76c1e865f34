package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/pkg/entity"
)

type WorkoutSessionsRepository struct {
	conn PgConnection
}

func NewWorkoutSessionsRepo(cfg DBConfig) *WorkoutSessionsRepository {
	return NewWorkoutSessionsRepoWithConn(NewPool(cfg))
}

func NewWorkoutSessionsRepoWithConn(conn PgConnection) *WorkoutSessionsRepository {
	mustPing(conn, "workoutSessionsRepo")
	return &WorkoutSessionsRepository{
		conn: conn,
	}
}

func (wr *WorkoutSessionsRepository) Create(ctx context.Context, session *entity.WorkoutSession, streak StreakFunc) (*entity.User, error) {
	if session == nil {
		return nil, errors.New("session is nil")
	}
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning transaction error: " + err.Error())
	}
	user, err := createSessionTx(ctx, tx, session, streak)
	if err != nil {
		tx.Rollback(ctx)
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing workout session error: " + err.Error())
	}
	return user, nil
}

func createSessionTx(ctx context.Context, tx pgx.Tx, session *entity.WorkoutSession, streak StreakFunc) (*entity.User, error) {
	var user entity.User
	// Row lock serialises concurrent workouts of one user
	row := tx.QueryRow(ctx, `SELECT id, username, email, current_streak, total_workouts, target_progress, last_workout_date, created_at FROM users WHERE id = $1 FOR UPDATE;`, session.UserID)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("locking user error: " + err.Error())
	}
	row = tx.QueryRow(ctx,
		`INSERT INTO workout_sessions (user_id, workout_plan_id, workout_name, duration, calories_burned, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		session.UserID,
		session.WorkoutPlanID,
		session.WorkoutName,
		session.Duration,
		session.CaloriesBurned,
		session.CompletedAt,
	)
	if err := row.Scan(&session.ID); err != nil {
		return nil, errors.New("inserting workout session error: " + err.Error())
	}
	user.CurrentStreak = streak(user.LastWorkoutDate, user.CurrentStreak)
	user.TotalWorkouts++
	completed := session.CompletedAt
	user.LastWorkoutDate = &completed
	_, err := tx.Exec(ctx,
		`UPDATE users SET current_streak = $1, total_workouts = $2, last_workout_date = $3 WHERE id = $4;`,
		user.CurrentStreak,
		user.TotalWorkouts,
		completed,
		user.ID,
	)
	if err != nil {
		return nil, errors.New("updating user stats error: " + err.Error())
	}
	return &user, nil
}

func (wr *WorkoutSessionsRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]entity.WorkoutSession, error) {
	rows, err := wr.conn.Query(ctx,
		`SELECT id, user_id, workout_plan_id, workout_name, duration, calories_burned, completed_at
		FROM workout_sessions WHERE user_id = $1 AND completed_at >= $2 AND completed_at < $3 ORDER BY completed_at;`,
		userID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting workout sessions for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.WorkoutSession, 0, 7)
	for rows.Next() {
		s := entity.WorkoutSession{}
		err = rows.Scan(&s.ID, &s.UserID, &s.WorkoutPlanID, &s.WorkoutName, &s.Duration, &s.CaloriesBurned, &s.CompletedAt)
		if err != nil {
			return nil, errors.New("workout session row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout session rows error: " + err.Error())
	}
	return result, nil
}
