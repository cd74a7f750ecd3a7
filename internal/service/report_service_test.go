package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_GetTaskSummary(t *testing.T) {
	t.Run("сводка без фильтров", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		service := NewReportService(mockTaskRepo, new(MockTeamRepository))

		mockTaskRepo.On("Load", mock.Anything).Return([]*domain.Task{
			{ID: "1", Status: domain.StatusDone},
			{ID: "2", Status: domain.StatusToDo},
		}, nil).Once()

		summary, err := service.GetTaskSummary(context.Background(), FilterParams{})

		require.NoError(t, err)
		assert.Equal(t, &domain.TaskSummary{Total: 2, Completed: 1, Remaining: 1}, summary)
	})

	t.Run("сводка по отфильтрованным задачам", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockTeamRepo := new(MockTeamRepository)
		service := NewReportService(mockTaskRepo, mockTeamRepo)

		mockTaskRepo.On("Load", mock.Anything).Return([]*domain.Task{
			{ID: "1", Status: domain.StatusDone, UserIDs: []string{"u1"}},
			{ID: "2", Status: domain.StatusInProgress, UserIDs: []string{"u1"}},
			{ID: "3", Status: domain.StatusDone, UserIDs: []string{"u9"}},
		}, nil).Once()
		mockTeamRepo.On("Load", mock.Anything).Return([]*domain.Team{{ID: "a", Members: []string{"u1"}}}, nil).Once()

		summary, err := service.GetTaskSummary(context.Background(), FilterParams{TeamID: "a"})

		require.NoError(t, err)
		assert.Equal(t, &domain.TaskSummary{Total: 2, Completed: 1, Remaining: 1}, summary)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockTeamRepo := new(MockTeamRepository)
		service := NewReportService(mockTaskRepo, mockTeamRepo)

		mockTaskRepo.On("Load", mock.Anything).Return([]*domain.Task{}, nil).Once()
		mockTeamRepo.On("Load", mock.Anything).Return([]*domain.Team{}, nil).Once()

		summary, err := service.GetTaskSummary(context.Background(), FilterParams{TeamID: "ghost"})

		require.Error(t, err)
		assert.Nil(t, summary)
		assert.True(t, errors.Is(err, domain.ErrTeamNotFound))
	})
}

func TestReportService_GetCalendarData(t *testing.T) {
	mockTaskRepo := new(MockTaskRepository)
	service := NewReportService(mockTaskRepo, new(MockTeamRepository))

	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mockTaskRepo.On("Load", mock.Anything).Return([]*domain.Task{
		{ID: "1", Title: "Release", Deadline: &deadline, Status: domain.StatusInProgress, Description: "hidden"},
		{ID: "2", Title: "Retro", Status: domain.StatusToDo},
	}, nil).Once()

	entries, err := service.GetCalendarData(context.Background(), FilterParams{Status: domain.StatusInProgress})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.CalendarEntry{
		TaskID:   "1",
		Title:    "Release",
		Deadline: &deadline,
		Status:   domain.StatusInProgress,
	}, entries[0])
}

func TestReportService_GetTaskProgress(t *testing.T) {
	tests := []struct {
		status domain.Status
		want   int
	}{
		{status: domain.StatusDone, want: 100},
		{status: domain.StatusInProgress, want: 50},
		{status: domain.StatusToDo, want: 0},
		{status: "Blocked", want: 0},
		{status: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			mockTaskRepo := new(MockTaskRepository)
			service := NewReportService(mockTaskRepo, new(MockTeamRepository))

			mockTaskRepo.On("GetByID", mock.Anything, "t1").
				Return(&domain.Task{ID: "t1", Title: "Task", Status: tt.status}, nil).Once()

			progress, err := service.GetTaskProgress(context.Background(), "t1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, progress.ProgressPercent)
			assert.Equal(t, tt.status, progress.Status)
		})
	}

	t.Run("ошибка: задача не найдена", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		service := NewReportService(mockTaskRepo, new(MockTeamRepository))

		mockTaskRepo.On("GetByID", mock.Anything, "t404").Return(nil, repository.ErrNotFound).Once()

		progress, err := service.GetTaskProgress(context.Background(), "t404")

		assert.Nil(t, progress)
		assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
		assert.False(t, errors.Is(err, domain.ErrTeamNotFound))
	})
}

func TestReportService_GetGroupedTasks(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "1", Status: domain.StatusDone, UserIDs: []string{"u1"}},
		{ID: "2", Status: "", UserIDs: []string{"u2"}, Creator: "u1"},
		{ID: "3", Status: domain.StatusDone, UserIDs: []string{}},
	}

	t.Run("группировка по статусу с корзиной Unknown", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		service := NewReportService(mockTaskRepo, new(MockTeamRepository))

		mockTaskRepo.On("Load", mock.Anything).Return(tasks, nil).Once()

		groups, err := service.GetGroupedTasks(context.Background(), GroupByStatus)

		require.NoError(t, err)
		assert.Len(t, groups, 2)
		assert.Equal(t, []string{"1", "3"}, taskIDs(groups["Done"]))
		assert.Equal(t, []string{"2"}, taskIDs(groups["Unknown"]))
	})

	t.Run("группировка по команде, пустые команды присутствуют", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockTeamRepo := new(MockTeamRepository)
		service := NewReportService(mockTaskRepo, mockTeamRepo)

		mockTaskRepo.On("Load", mock.Anything).Return(tasks, nil).Once()
		mockTeamRepo.On("Load", mock.Anything).Return([]*domain.Team{
			{ID: "a", Members: []string{"u1"}},
			{ID: "b", Members: []string{"u7"}},
		}, nil).Once()

		groups, err := service.GetGroupedTasks(context.Background(), GroupByTeam)

		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, taskIDs(groups["a"]), "creator не учитывается при группировке")
		require.Contains(t, groups, "b")
		assert.NotNil(t, groups["b"])
		assert.Empty(t, groups["b"])
	})

	t.Run("ошибка: неизвестный ключ группировки", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		service := NewReportService(mockTaskRepo, new(MockTeamRepository))

		groups, err := service.GetGroupedTasks(context.Background(), "foo")

		require.Error(t, err)
		assert.Nil(t, groups)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		mockTaskRepo.AssertNotCalled(t, "Load", mock.Anything)
	})
}
