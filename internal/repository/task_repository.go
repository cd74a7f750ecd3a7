package repository

import (
	"context"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

type TaskRepository interface {
	Load(ctx context.Context) ([]*domain.Task, error)
	Save(ctx context.Context, tasks []*domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
}
