package service

import (
	"context"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

type UserService interface {
	// CreateUser регистрирует пользователя; пустой ID генерируется
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
