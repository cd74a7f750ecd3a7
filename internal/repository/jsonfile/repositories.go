package jsonfile

import (
	"context"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
)

const (
	tasksFile = "tasks.json"
	teamsFile = "teams.json"
	usersFile = "users.json"
)

type taskRepository struct {
	file collection[domain.Task]
}

func NewTaskRepository(dataDir string) *taskRepository {
	return &taskRepository{file: newCollection[domain.Task](dataDir, tasksFile)}
}

func (r *taskRepository) Load(ctx context.Context) ([]*domain.Task, error) {
	return r.file.load()
}

func (r *taskRepository) Save(ctx context.Context, tasks []*domain.Task) error {
	return r.file.save(tasks)
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	tasks, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, repository.ErrNotFound
}

type teamRepository struct {
	file collection[domain.Team]
}

func NewTeamRepository(dataDir string) *teamRepository {
	return &teamRepository{file: newCollection[domain.Team](dataDir, teamsFile)}
}

func (r *teamRepository) Load(ctx context.Context) ([]*domain.Team, error) {
	return r.file.load()
}

func (r *teamRepository) Save(ctx context.Context, teams []*domain.Team) error {
	return r.file.save(teams)
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	teams, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for _, team := range teams {
		if team.ID == id {
			return team, nil
		}
	}
	return nil, repository.ErrNotFound
}

type userRepository struct {
	file collection[domain.User]
}

func NewUserRepository(dataDir string) *userRepository {
	return &userRepository{file: newCollection[domain.User](dataDir, usersFile)}
}

func (r *userRepository) Load(ctx context.Context) ([]*domain.User, error) {
	return r.file.load()
}

func (r *userRepository) Save(ctx context.Context, users []*domain.User) error {
	return r.file.save(users)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}
