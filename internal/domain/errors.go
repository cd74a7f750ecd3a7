package domain

import "fmt"

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeTeamExists      = "TEAM_EXISTS"
	CodeUserExists      = "USER_EXISTS"
)

// Виды сущностей для NOT_FOUND
const (
	EntityTask = "task"
	EntityTeam = "team"
	EntityUser = "user"
)

type DomainError struct {
	Code    string
	Entity  string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is(): пустой Entity у target совпадает с любой сущностью
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	if e.Code != t.Code {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

var (
	// ErrNotFound - ресурс не найден (любая сущность)
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrTaskNotFound - задача не найдена
	ErrTaskNotFound = &DomainError{
		Code:    CodeNotFound,
		Entity:  EntityTask,
		Message: "task not found",
	}

	// ErrTeamNotFound - команда не найдена
	ErrTeamNotFound = &DomainError{
		Code:    CodeNotFound,
		Entity:  EntityTeam,
		Message: "team not found",
	}

	// ErrUserNotFound - пользователь не найден
	ErrUserNotFound = &DomainError{
		Code:    CodeNotFound,
		Entity:  EntityUser,
		Message: "user not found",
	}

	// ErrInvalidArgument - некорректные входные данные
	ErrInvalidArgument = &DomainError{
		Code:    CodeInvalidArgument,
		Message: "invalid argument",
	}

	ErrTeamExists = &DomainError{
		Code:    CodeTeamExists,
		Message: "team already exists",
	}

	ErrUserExists = &DomainError{
		Code:    CodeUserExists,
		Message: "user already exists",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND для конкретной сущности
func NewNotFoundError(entity, id string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("%s with id %s not found", entity, id),
	}
}

// NewInvalidArgumentError создает ошибку INVALID_ARGUMENT с пояснением
func NewInvalidArgumentError(message string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidArgument,
		Message: message,
	}
}
