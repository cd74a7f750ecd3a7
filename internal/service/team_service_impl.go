package service

import (
	"context"
	"errors"
	"sync"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
	"github.com/google/uuid"
)

type teamService struct {
	teamRepo repository.TeamRepository
	mu       sync.Mutex
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

// CreateTeam создает команду; пустой ID генерируется
func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teams, err := s.teamRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if team.ID == "" {
		team.ID = uuid.NewString()
	} else if findTeam(teams, team.ID) != nil {
		return nil, domain.ErrTeamExists
	}
	team.Members = uniqueIDs(team.Members)

	if err := s.teamRepo.Save(ctx, append(teams, team)); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityTeam, teamID)
		}
		return nil, err
	}

	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.Load(ctx)
}
