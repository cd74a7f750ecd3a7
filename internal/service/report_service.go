package service

import (
	"context"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

const (
	GroupByStatus = "status"
	GroupByTeam   = "team"
)

type ReportService interface {
	GetCalendarData(ctx context.Context, params FilterParams) ([]domain.CalendarEntry, error)
	GetTaskSummary(ctx context.Context, params FilterParams) (*domain.TaskSummary, error)
	GetTaskProgress(ctx context.Context, taskID string) (*domain.TaskProgress, error)

	// GetGroupedTasks группирует все задачи по статусу или по команде
	GetGroupedTasks(ctx context.Context, by string) (map[string][]*domain.Task, error)
}
