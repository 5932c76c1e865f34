package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/pkg/entity"
)

const analysisColumns = `id, user_id, photo_url, celebrity_match, match_percentage, body_type, shoulder_ratio, waist_hip_ratio, leg_ratio, created_at`

type BodyAnalysisRepository struct {
	conn PgConnection
}

func NewBodyAnalysisRepo(cfg DBConfig) *BodyAnalysisRepository {
	return NewBodyAnalysisRepoWithConn(NewPool(cfg))
}

func NewBodyAnalysisRepoWithConn(conn PgConnection) *BodyAnalysisRepository {
	mustPing(conn, "bodyAnalysisRepo")
	return &BodyAnalysisRepository{
		conn: conn,
	}
}

func (br *BodyAnalysisRepository) Create(ctx context.Context, analysis *entity.BodyAnalysis) error {
	if analysis == nil {
		return errors.New("analysis is nil")
	}
	row := br.conn.QueryRow(ctx,
		`INSERT INTO body_analyses (user_id, photo_url, celebrity_match, match_percentage, body_type, shoulder_ratio, waist_hip_ratio, leg_ratio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`,
		analysis.UserID,
		analysis.PhotoURL,
		analysis.CelebrityMatch,
		analysis.MatchPercentage,
		analysis.BodyType,
		analysis.ShoulderRatio,
		analysis.WaistHipRatio,
		analysis.LegRatio,
	)
	if err := row.Scan(&analysis.ID, &analysis.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating body analysis error: " + err.Error())
	}
	return nil
}

func (br *BodyAnalysisRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.BodyAnalysis, error) {
	rows, err := br.conn.Query(ctx,
		`SELECT `+analysisColumns+` FROM body_analyses WHERE user_id = $1 ORDER BY created_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, errors.New("listing body analyses error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.BodyAnalysis, 0)
	for rows.Next() {
		a := entity.BodyAnalysis{}
		if err = scanAnalysis(rows, &a); err != nil {
			return nil, errors.New("body analysis row parsing error: " + err.Error())
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected body analysis rows error: " + err.Error())
	}
	return result, nil
}

func (br *BodyAnalysisRepository) Latest(ctx context.Context, userID int64) (*entity.BodyAnalysis, error) {
	var a entity.BodyAnalysis
	row := br.conn.QueryRow(ctx,
		`SELECT `+analysisColumns+` FROM body_analyses WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1;`,
		userID,
	)
	if err := scanAnalysis(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAnalysisNotFound
		}
		return nil, errors.New("getting latest body analysis error: " + err.Error())
	}
	return &a, nil
}

func scanAnalysis(row pgx.Row, a *entity.BodyAnalysis) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.PhotoURL,
		&a.CelebrityMatch,
		&a.MatchPercentage,
		&a.BodyType,
		&a.ShoulderRatio,
		&a.WaistHipRatio,
		&a.LegRatio,
		&a.CreatedAt,
	)
}
