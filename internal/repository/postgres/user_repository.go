package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Load(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, username, task_id, tasks
		FROM users
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) Save(ctx context.Context, users []*domain.User) error {
	query := `
		INSERT INTO users (id, username, task_id, tasks)
		VALUES ($1, $2, $3, $4)
	`

	return replaceAll(ctx, r.db, "users", len(users), func(tx *sql.Tx, i int) error {
		user := users[i]
		tasks, err := encodeIDs(user.Tasks)
		if err != nil {
			return err
		}

		var taskID sql.NullString
		if user.TaskID != nil {
			taskID = sql.NullString{String: *user.TaskID, Valid: true}
		}

		_, err = tx.ExecContext(ctx, query, user.ID, user.Username, taskID, tasks)
		return err
	})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, task_id, tasks
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var taskID sql.NullString
	var tasks string
	if err := row.Scan(&user.ID, &user.Username, &taskID, &tasks); err != nil {
		return nil, err
	}

	if taskID.Valid {
		user.TaskID = &taskID.String
	}

	var err error
	user.Tasks, err = decodeIDs(tasks)
	if err != nil {
		return nil, err
	}

	return user, nil
}
