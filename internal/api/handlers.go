package api

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/limbo/fitstar/internal/chart"
	"github.com/limbo/fitstar/internal/display"
	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/internal/service"
	"github.com/limbo/fitstar/pkg/httputil"
)

type CreateUserRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	TargetProgress int    `json:"targetProgress"`
}

type CreateAnalysisRequest struct {
	UserID          int64  `json:"userId"`
	PhotoURL        string `json:"photoUrl"`
	CelebrityMatch  string `json:"celebrityMatch"`
	MatchPercentage int    `json:"matchPercentage"`
	BodyType        string `json:"bodyType"`
	ShoulderRatio   int    `json:"shoulderRatio"`
	WaistHipRatio   int    `json:"waistHipRatio"`
	LegRatio        int    `json:"legRatio"`
}

type LogWorkoutRequest struct {
	UserID         int64  `json:"userId"`
	WorkoutPlanID  int64  `json:"workoutPlanId"`
	WorkoutName    string `json:"workoutName"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

// userIDParam reads {id} from the route, falling back to chi's context.
func userIDParam(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	if raw == "" {
		raw = chi.URLParam(r, "id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid user id")
	}
	return id, nil
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateUserRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create user error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.Create(ctx, &service.CreateUserRequest{
		Username:       req.Username,
		Email:          req.Email,
		TargetProgress: req.TargetProgress,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create user error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user data", err)
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("create user error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name or email already exists", nil)
		default:
			logger.Error("create user error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating user", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, user)
	logger.Info("user created", slog.Int64("user_id", user.ID))
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := userIDParam(r)
	if err != nil {
		logger.Error("get user error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get user error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateAnalysisRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create analysis error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	analysis, err := s.analysisService.Create(ctx, &service.CreateAnalysisRequest{
		UserID:          req.UserID,
		PhotoURL:        req.PhotoURL,
		CelebrityMatch:  req.CelebrityMatch,
		MatchPercentage: req.MatchPercentage,
		BodyType:        req.BodyType,
		ShoulderRatio:   req.ShoulderRatio,
		WaistHipRatio:   req.WaistHipRatio,
		LegRatio:        req.LegRatio,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create analysis error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid analysis data", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create analysis error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't store analysis: user doesn't exist", nil)
		default:
			logger.Error("create analysis error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while storing analysis", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, analysis)
	logger.Info("body analysis stored", slog.Int64("analysis_id", analysis.ID))
}

func (s *Server) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := userIDParam(r)
	if err != nil {
		logger.Error("list analyses error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	analyses, err := s.analysisService.ListByUser(ctx, id)
	if err != nil {
		logger.Error("list analyses error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing analyses", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, analyses)
}

func (s *Server) LatestAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := userIDParam(r)
	if err != nil {
		logger.Error("latest analysis error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	analysis, err := s.analysisService.Latest(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAnalysisNotFound) {
			logger.Info("latest analysis: user has no analyses")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no body analysis yet", nil)
			return
		}
		logger.Error("latest analysis error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting analysis", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, analysis)
}

func (s *Server) LatestComparison(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := userIDParam(r)
	if err != nil {
		logger.Error("comparison error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	analysis, err := s.analysisService.Latest(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAnalysisNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no body analysis yet", nil)
			return
		}
		logger.Error("comparison error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building comparison", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.presenter.Compare(analysis))
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := userIDParam(r)
	if err != nil {
		logger.Error("get progress error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	progress, err := s.progressService.WeeklyProgress(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := userIDParam(r)
	if err != nil {
		logger.Error("achievements error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("achievements error: user service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting achievements", nil)
		return
	}
	progress, err := s.progressService.WeeklyProgress(ctx, id)
	if err != nil {
		logger.Error("achievements error: progress service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.presenter.Achievements(display.Loaded(user), display.Loaded(progress)))
}

func (s *Server) GetProgressChart(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := userIDParam(r)
	if err != nil {
		logger.Error("progress chart error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	progress, err := s.progressService.WeeklyProgress(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("progress chart error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting progress", nil)
		return
	}
	var buf bytes.Buffer
	if err = chart.RenderWeekly(&buf, progress); err != nil {
		logger.Error("progress chart error: rendering", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error rendering chart", nil)
		return
	}
	httputil.WriteBlobResponse(w, http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) LogWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LogWorkoutRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log workout error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	logger = logger.With(slog.Int64("uid", req.UserID))
	ctx, cancel := s.requestContext(r)
	defer cancel()
	session, err := s.progressService.LogWorkout(ctx, &service.LogWorkoutRequest{
		UserID:         req.UserID,
		WorkoutPlanID:  req.WorkoutPlanID,
		WorkoutName:    req.WorkoutName,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("log workout error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout session", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("log workout error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't log workout: user doesn't exist", nil)
		default:
			logger.Error("log workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("workout logged", slog.Int64("session_id", session.ID))
}

func (s *Server) GetWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.workoutService.Plan(r.URL.Query().Get("bodyType")))
}

func (s *Server) GetTodayWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := userIDParam(r)
	if err != nil {
		logger.Error("today workouts error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	workouts, err := s.workoutService.Today(ctx, id)
	if err != nil {
		logger.Error("today workouts error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting workouts", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workouts)
}
