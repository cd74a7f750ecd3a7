package service

import (
	"context"
	"errors"
	"sync"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/repository"
	"github.com/google/uuid"
)

type userService struct {
	userRepo repository.UserRepository
	mu       sync.Mutex
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	} else {
		for _, existing := range users {
			if existing.ID == user.ID {
				return nil, domain.ErrUserExists
			}
		}
	}
	if user.Tasks == nil {
		user.Tasks = []string{}
	}

	if err := s.userRepo.Save(ctx, append(users, user)); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityUser, userID)
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.Load(ctx)
}
