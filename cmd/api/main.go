package main

import (
	"database/sql"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/limbo/fitstar/internal/api"
	"github.com/limbo/fitstar/internal/display"
	"github.com/limbo/fitstar/internal/repository"
	"github.com/limbo/fitstar/internal/service"
	"github.com/limbo/fitstar/pkg/cleanup"
	"github.com/limbo/fitstar/pkg/config"
	"github.com/pressly/goose"
)

func init() {
	service.InitValidator()
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	migrate(dbCfg.ConnString(), cfg.GetStringOr("MIGRATIONS_DIR", "./migrations"))

	pool := repository.NewPool(&dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	sessionsRepo := repository.NewWorkoutSessionsRepoWithConn(pool)
	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(usersRepo),
		AnalysisService: service.NewBodyAnalysisService(repository.NewBodyAnalysisRepoWithConn(pool)),
		ProgressService: service.NewProgressService(usersRepo, sessionsRepo),
		WorkoutService:  service.NewWorkoutPlanService(sessionsRepo),
		Presenter:       display.New(display.ConfigFromEnv(cfg)),
		AllowedOrigins:  splitList(cfg.GetString("CORS_ALLOWED_ORIGINS")),
		RequestTimeout:  cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}

func migrate(connStr, dir string) {
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("opening migrations connection error: " + err.Error())
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	if err = goose.Up(conn, dir); err != nil {
		log.Fatal("applying migrations error: " + err.Error())
	}
}

func splitList(v string) []string {
	var res []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
