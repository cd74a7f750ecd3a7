package service

import (
	"context"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	GetTeam(ctx context.Context, teamID string) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
}
