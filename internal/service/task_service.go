package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)

	// ListTasks возвращает задачи, отобранные FilterTasks
	ListTasks(ctx context.Context, params FilterParams) ([]*domain.Task, error)

	UpdateTask(ctx context.Context, taskID string, patch domain.TaskPatch) (*domain.Task, error)
	AssignTask(ctx context.Context, taskID, userID string) (*domain.Task, error)
	ChangeStatus(ctx context.Context, taskID string, status domain.Status) (*domain.Task, error)

	// DeleteTask удаляет задачу и чистит ссылки на неё у пользователей
	DeleteTask(ctx context.Context, taskID string) (*DeleteResult, error)

	// DeleteAllTasks удаляет все задачи и очищает taskId/tasks у всех пользователей
	DeleteAllTasks(ctx context.Context) (*DeleteResult, error)
}

type CreateTaskInput struct {
	Title         string
	Description   string
	Deadline      *time.Time
	Status        domain.Status
	UserID        string
	UserIDs       []string
	GitlabIssueID string
}

type DeleteResult struct {
	Message string
	Task    *domain.Task
}

// CleanupError - задачи уже удалены, но ссылки у пользователей очистить не удалось
type CleanupError struct {
	TaskIDs []string
	Err     error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("tasks %s deleted but user cleanup failed: %v", strings.Join(e.TaskIDs, ", "), e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}

const (
	MessageTaskDeleted     = "Task deleted successfully"
	MessageAllTasksDeleted = "All tasks deleted successfully"
	MessageNoTasks         = "No tasks to delete"
)
