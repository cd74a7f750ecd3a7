package repository

import (
	"context"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

type TeamRepository interface {
	Load(ctx context.Context) ([]*domain.Team, error)
	Save(ctx context.Context, teams []*domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
}
