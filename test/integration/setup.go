//go:build integration

package integration

import (
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bagdasarian/task-tracker/internal/repository/postgres"
	"github.com/bagdasarian/task-tracker/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type services struct {
	tasks   service.TaskService
	reports service.ReportService
	teams   service.TeamService
	users   service.UserService
}

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, container.Terminate(ctx))
	})

	return db
}

func setupServices(t *testing.T) (*sql.DB, services) {
	db := setupTestDB(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	taskRepo := postgres.NewTaskRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	userRepo := postgres.NewUserRepository(db)

	return db, services{
		tasks:   service.NewTaskService(taskRepo, teamRepo, userRepo, logger),
		reports: service.NewReportService(taskRepo, teamRepo),
		teams:   service.NewTeamService(teamRepo),
		users:   service.NewUserService(userRepo),
	}
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать migrations/000001_init.up.sql")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}
