package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserRepo создает мок БД и репозиторий для User
func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

func TestUserRepository_Load(t *testing.T) {
	repo, mock := setupUserRepo(t)

	rows := sqlmock.NewRows([]string{"id", "username", "task_id", "tasks"}).
		AddRow("u1", "alice", "t1", `["t1","t2"]`).
		AddRow("u2", "bob", nil, `[]`)
	mock.ExpectQuery("SELECT id, username, task_id, tasks").WillReturnRows(rows)

	users, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	require.NotNil(t, users[0].TaskID)
	assert.Equal(t, "t1", *users[0].TaskID)
	assert.Equal(t, []string{"t1", "t2"}, users[0].Tasks)
	assert.Nil(t, users[1].TaskID, "NULL task_id должен давать nil")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save(t *testing.T) {
	repo, mock := setupUserRepo(t)

	taskID := "t1"
	users := []*domain.User{
		{ID: "u1", Username: "alice", TaskID: &taskID, Tasks: []string{"t1"}},
		{ID: "u2", Username: "bob"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO users").
		WithArgs("u1", "alice", "t1", `["t1"]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WithArgs("u2", "bob", nil, `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), users))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery("FROM users").WithArgs("u404").WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), "u404")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
