package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
)

type reportService struct {
	taskRepo repository.TaskRepository
	teamRepo repository.TeamRepository
}

func NewReportService(taskRepo repository.TaskRepository, teamRepo repository.TeamRepository) ReportService {
	return &reportService{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
	}
}

func (s *reportService) GetCalendarData(ctx context.Context, params FilterParams) ([]domain.CalendarEntry, error) {
	tasks, err := loadFiltered(ctx, s.taskRepo, s.teamRepo, params)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CalendarEntry, 0, len(tasks))
	for _, task := range tasks {
		entries = append(entries, domain.CalendarEntry{
			TaskID:   task.ID,
			Title:    task.Title,
			Deadline: task.Deadline,
			Status:   task.Status,
		})
	}

	return entries, nil
}

func (s *reportService) GetTaskSummary(ctx context.Context, params FilterParams) (*domain.TaskSummary, error) {
	tasks, err := loadFiltered(ctx, s.taskRepo, s.teamRepo, params)
	if err != nil {
		return nil, err
	}

	summary := &domain.TaskSummary{Total: len(tasks)}
	for _, task := range tasks {
		if task.Status == domain.StatusDone {
			summary.Completed++
		}
	}
	summary.Remaining = summary.Total - summary.Completed

	return summary, nil
}

func (s *reportService) GetTaskProgress(ctx context.Context, taskID string) (*domain.TaskProgress, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityTask, taskID)
		}
		return nil, err
	}

	return &domain.TaskProgress{
		TaskID:          task.ID,
		Title:           task.Title,
		Status:          task.Status,
		ProgressPercent: ProgressPercent(task.Status),
	}, nil
}

func (s *reportService) GetGroupedTasks(ctx context.Context, by string) (map[string][]*domain.Task, error) {
	if by != GroupByStatus && by != GroupByTeam {
		return nil, domain.NewInvalidArgumentError("invalid grouping key " + by + ": expected status or team")
	}

	tasks, err := s.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if by == GroupByStatus {
		return groupByStatus(tasks), nil
	}

	teams, err := s.teamRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return groupByTeam(tasks, teams), nil
}

// ProgressPercent: Done - 100, In Progress - 50, всё остальное - 0
func ProgressPercent(status domain.Status) int {
	switch status {
	case domain.StatusDone:
		return 100
	case domain.StatusInProgress:
		return 50
	default:
		return 0
	}
}

func groupByStatus(tasks []*domain.Task) map[string][]*domain.Task {
	groups := make(map[string][]*domain.Task)
	for _, task := range tasks {
		key := string(task.Status)
		if key == "" {
			key = string(domain.StatusUnknown)
		}
		groups[key] = append(groups[key], task)
	}
	return groups
}

func groupByTeam(tasks []*domain.Task, teams []*domain.Team) map[string][]*domain.Task {
	groups := make(map[string][]*domain.Task, len(teams))
	for _, team := range teams {
		groups[team.ID] = tasksOfTeam(tasks, team)
	}
	return groups
}
