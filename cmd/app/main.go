package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/task-tracker/internal/config"
	"github.com/bagdasarian/task-tracker/internal/db"
	"github.com/bagdasarian/task-tracker/internal/handler"
	"github.com/bagdasarian/task-tracker/internal/handler/server"
	"github.com/bagdasarian/task-tracker/internal/logging"
	"github.com/bagdasarian/task-tracker/internal/repository"
	"github.com/bagdasarian/task-tracker/internal/repository/jsonfile"
	"github.com/bagdasarian/task-tracker/internal/repository/postgres"
	"github.com/bagdasarian/task-tracker/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	var (
		taskRepo repository.TaskRepository
		teamRepo repository.TeamRepository
		userRepo repository.UserRepository
		database *sql.DB
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		database = db.MustLoad(cfg)
		logger.Info("Successfully connected to database!")

		taskRepo = postgres.NewTaskRepository(database)
		teamRepo = postgres.NewTeamRepository(database)
		userRepo = postgres.NewUserRepository(database)
	default:
		if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
			logger.Fatalf("Failed to create data dir: %v", err)
		}
		logger.WithField("data_dir", cfg.Storage.DataDir).Info("Using JSON file storage")

		taskRepo = jsonfile.NewTaskRepository(cfg.Storage.DataDir)
		teamRepo = jsonfile.NewTeamRepository(cfg.Storage.DataDir)
		userRepo = jsonfile.NewUserRepository(cfg.Storage.DataDir)
	}
	if database != nil {
		defer database.Close()
	}

	taskService := service.NewTaskService(taskRepo, teamRepo, userRepo, logger)
	reportService := service.NewReportService(taskRepo, teamRepo)
	teamService := service.NewTeamService(teamRepo)
	userService := service.NewUserService(userRepo)

	h := handler.NewHandler(taskService, reportService, teamService, userService, logger)
	srv := server.NewServer(h, cfg.Server.Addr, cfg.Auth.JWTSecret, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}
}
