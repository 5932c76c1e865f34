package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fitstar/internal/display"
	"github.com/limbo/fitstar/internal/service"
	"github.com/rs/cors"
)

const defaultRequestTimeout = 10 * time.Second

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	analysisService service.BodyAnalysisServiceI
	progressService service.ProgressServiceI
	workoutService  service.WorkoutPlanServiceI
	presenter       Presenter
	allowedOrigins  []string
	requestTimeout  time.Duration
}

type ServicesList struct {
	UserService     service.UserServiceI
	AnalysisService service.BodyAnalysisServiceI
	ProgressService service.ProgressServiceI
	WorkoutService  service.WorkoutPlanServiceI
	// Defaults to display.New(display.DefaultConfig())
	Presenter      Presenter
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		analysisService: servicesOptions.AnalysisService,
		progressService: servicesOptions.ProgressService,
		workoutService:  servicesOptions.WorkoutService,
		presenter:       servicesOptions.Presenter,
		allowedOrigins:  servicesOptions.AllowedOrigins,
		requestTimeout:  servicesOptions.RequestTimeout,
	}
	if s.presenter == nil {
		s.presenter = display.New(display.DefaultConfig())
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	if len(s.allowedOrigins) == 0 {
		s.allowedOrigins = []string{"*"}
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)
	s.mx.Get("/healthz", s.Health)
	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/user", s.CreateUser)
		r.With(s.LoggerExtensionMiddleware).Get("/user/{id}", s.GetUser)

		r.Post("/body-analysis", s.CreateAnalysis)
		r.Route("/body-analysis/user/{id}", func(r chi.Router) {
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/", s.ListAnalyses)
			r.Get("/latest", s.LatestAnalysis)
			r.Get("/latest/comparison", s.LatestComparison)
		})

		r.Route("/progress/user/{id}", func(r chi.Router) {
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/", s.GetProgress)
			r.Get("/achievements", s.GetAchievements)
			r.Get("/chart.png", s.GetProgressChart)
		})

		r.Post("/workout-session", s.LogWorkout)
		r.Get("/workout-plan", s.GetWorkoutPlan)
		r.With(s.LoggerExtensionMiddleware).Get("/workout/user/{id}/today", s.GetTodayWorkouts)
	})
}

// Handler is the router wrapped with CORS for browser clients.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler(s.mx)
}

// Run serves until SIGINT or SIGTERM and then shuts down gracefully.
func (s *Server) Run(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", slog.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	slog.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
