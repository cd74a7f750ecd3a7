package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
)

const taskColumns = `id, title, description, deadline, status, user_ids, creator, gitlab_issue_id, created_at, updated_at`

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Load(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) Save(ctx context.Context, tasks []*domain.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	return replaceAll(ctx, r.db, "tasks", len(tasks), func(tx *sql.Tx, i int) error {
		task := tasks[i]
		userIDs, err := encodeIDs(task.UserIDs)
		if err != nil {
			return err
		}

		var deadline sql.NullTime
		if task.Deadline != nil {
			deadline = sql.NullTime{Time: *task.Deadline, Valid: true}
		}

		_, err = tx.ExecContext(
			ctx,
			query,
			task.ID,
			task.Title,
			task.Description,
			deadline,
			string(task.Status),
			userIDs,
			task.Creator,
			task.GitlabIssueID,
			task.CreatedAt,
			task.UpdatedAt,
		)
		return err
	})
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return task, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var deadline sql.NullTime
	var status, userIDs string
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&deadline,
		&status,
		&userIDs,
		&task.Creator,
		&task.GitlabIssueID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if deadline.Valid {
		task.Deadline = &deadline.Time
	}
	task.Status = domain.Status(status)

	task.UserIDs, err = decodeIDs(userIDs)
	if err != nil {
		return nil, err
	}

	return task, nil
}
