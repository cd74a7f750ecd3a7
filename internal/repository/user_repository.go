package repository

import (
	"context"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

type UserRepository interface {
	Load(ctx context.Context) ([]*domain.User, error)
	Save(ctx context.Context, users []*domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
