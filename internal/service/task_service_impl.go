package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type taskService struct {
	taskRepo repository.TaskRepository
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	log      logrus.FieldLogger
	now      func() time.Time

	// mu сериализует циклы load-modify-save над хранилищами
	mu sync.Mutex
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	log logrus.FieldLogger,
) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateTask создает задачу со статусом "To Do" по умолчанию
func (s *taskService) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.NewInvalidArgumentError("title is required")
	}
	if input.UserID == "" {
		return nil, domain.NewInvalidArgumentError("userId is required")
	}
	if input.UserIDs == nil {
		return nil, domain.NewInvalidArgumentError("userIds must be an array")
	}

	status := input.Status
	if status == "" {
		status = domain.StatusToDo
	}

	now := s.now()
	task := &domain.Task{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		Deadline:      input.Deadline,
		Status:        status,
		UserIDs:       uniqueIDs(input.UserIDs),
		Creator:       input.UserID,
		GitlabIssueID: input.GitlabIssueID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, append(tasks, task)); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"task_id": task.ID, "creator": task.Creator}).Info("task created")
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityTask, taskID)
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, params FilterParams) ([]*domain.Task, error) {
	return loadFiltered(ctx, s.taskRepo, s.teamRepo, params)
}

// UpdateTask накладывает переданные поля поверх существующей задачи
func (s *taskService) UpdateTask(ctx context.Context, taskID string, patch domain.TaskPatch) (*domain.Task, error) {
	return s.mutate(ctx, taskID, func(task *domain.Task) {
		patch.Apply(task)
		task.UserIDs = uniqueIDs(task.UserIDs)
	})
}

// AssignTask добавляет пользователя в исполнители (идемпотентно)
func (s *taskService) AssignTask(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	if userID == "" {
		return nil, domain.NewInvalidArgumentError("userId is required")
	}

	return s.mutate(ctx, taskID, func(task *domain.Task) {
		if !task.HasUser(userID) {
			task.UserIDs = append(task.UserIDs, userID)
		}
	})
}

// ChangeStatus перезаписывает статус без проверки на допустимые значения
func (s *taskService) ChangeStatus(ctx context.Context, taskID string, status domain.Status) (*domain.Task, error) {
	return s.mutate(ctx, taskID, func(task *domain.Task) {
		task.Status = status
	})
}

func (s *taskService) DeleteTask(ctx context.Context, taskID string) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfTask(tasks, taskID)
	if idx < 0 {
		return nil, domain.NewNotFoundError(domain.EntityTask, taskID)
	}
	deleted := tasks[idx]

	remaining := make([]*domain.Task, 0, len(tasks)-1)
	remaining = append(remaining, tasks[:idx]...)
	remaining = append(remaining, tasks[idx+1:]...)
	if err := s.taskRepo.Save(ctx, remaining); err != nil {
		return nil, err
	}

	// Удаление задачи не откатывается, если каскад по пользователям упал
	if err := s.detachUsers(ctx, func(u *domain.User) bool { return u.DetachTask(taskID) }); err != nil {
		s.log.WithError(err).WithField("task_id", taskID).Error("task deleted but user cleanup failed")
		return nil, &CleanupError{TaskIDs: []string{taskID}, Err: err}
	}

	s.log.WithField("task_id", taskID).Info("task deleted")
	return &DeleteResult{Message: MessageTaskDeleted, Task: deleted}, nil
}

func (s *taskService) DeleteAllTasks(ctx context.Context) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return &DeleteResult{Message: MessageNoTasks}, nil
	}

	if err := s.taskRepo.Save(ctx, []*domain.Task{}); err != nil {
		return nil, err
	}

	if err := s.detachUsers(ctx, func(u *domain.User) bool { return u.DetachAllTasks() }); err != nil {
		s.log.WithError(err).WithField("count", len(tasks)).Error("tasks deleted but user cleanup failed")
		return nil, &CleanupError{TaskIDs: taskIDs(tasks), Err: err}
	}

	s.log.WithField("count", len(tasks)).Info("all tasks deleted")
	return &DeleteResult{Message: MessageAllTasksDeleted}, nil
}

// mutate загружает задачу, применяет изменение, обновляет updatedAt и сохраняет коллекцию
func (s *taskService) mutate(ctx context.Context, taskID string, change func(*domain.Task)) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfTask(tasks, taskID)
	if idx < 0 {
		return nil, domain.NewNotFoundError(domain.EntityTask, taskID)
	}

	task := tasks[idx]
	change(task)
	s.touch(task)

	if err := s.taskRepo.Save(ctx, tasks); err != nil {
		return nil, err
	}

	return task, nil
}

// detachUsers применяет detach ко всем пользователям и сохраняет их, только если что-то изменилось
func (s *taskService) detachUsers(ctx context.Context, detach func(*domain.User) bool) error {
	users, err := s.userRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	changed := 0
	for _, user := range users {
		if detach(user) {
			changed++
		}
	}
	if changed == 0 {
		return nil
	}

	if err := s.userRepo.Save(ctx, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	s.log.WithField("users", changed).Debug("user task references cleared")
	return nil
}

// touch гарантирует строгое возрастание updatedAt даже при совпадении показаний часов
func (s *taskService) touch(task *domain.Task) {
	now := s.now()
	if !now.After(task.UpdatedAt) {
		now = task.UpdatedAt.Add(time.Microsecond)
	}
	task.UpdatedAt = now
}

func taskIDs(tasks []*domain.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func indexOfTask(tasks []*domain.Task, taskID string) int {
	for i, task := range tasks {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// loadFiltered загружает задачи и, если задан teamId, команды, затем применяет FilterTasks
func loadFiltered(
	ctx context.Context,
	taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository,
	params FilterParams,
) ([]*domain.Task, error) {
	tasks, err := taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	var teams []*domain.Team
	if params.TeamID != "" {
		teams, err = teamRepo.Load(ctx)
		if err != nil {
			return nil, err
		}
	}

	return FilterTasks(tasks, teams, params)
}
