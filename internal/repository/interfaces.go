package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitstar/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user and fills its ID and CreatedAt
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by id
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}

type BodyAnalysisRepositoryI interface {
	// Stores analysis produced by the external analyser. Fills ID and CreatedAt
	Create(ctx context.Context, analysis *entity.BodyAnalysis) error
	// Lists user's analyses, newest first
	ListByUser(ctx context.Context, userID int64) ([]*entity.BodyAnalysis, error)
	// Most recent analysis by created_at
	Latest(ctx context.Context, userID int64) (*entity.BodyAnalysis, error)
}

// StreakFunc computes the new streak from the previous workout date (nil if none) and the current streak.
type StreakFunc func(last *time.Time, current int) int

type WorkoutSessionsRepositoryI interface {
	// Appends session and advances user's counters in one transaction. Returns updated user
	Create(ctx context.Context, session *entity.WorkoutSession, streak StreakFunc) (*entity.User, error)
	// Sessions completed in [from, to), oldest first
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]entity.WorkoutSession, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
