package handler

import (
	"time"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTaskRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Deadline      *time.Time `json:"deadline"`
	Status        string     `json:"status"`
	UserID        string     `json:"userId"`
	UserIDs       []string   `json:"userIds"`
	GitlabIssueID string     `json:"gitlabIssueId"`
}

// UpdateTaskRequest: null в description, deadline и gitlabIssueId очищает поле
type UpdateTaskRequest struct {
	Title         *string                    `json:"title"`
	Description   domain.Optional[string]    `json:"description"`
	Deadline      domain.Optional[time.Time] `json:"deadline"`
	Status        *string                    `json:"status"`
	UserIDs       []string                   `json:"userIds"`
	GitlabIssueID domain.Optional[string]    `json:"gitlabIssueId"`
}

type AssignTaskRequest struct {
	UserID string `json:"userId"`
}

type ChangeStatusRequest struct {
	Status *string `json:"status"`
}

type TaskResponse struct {
	TaskID        string   `json:"taskId"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	Status        string   `json:"status"`
	UserIDs       []string `json:"userIds"`
	Creator       string   `json:"creator"`
	GitlabIssueID string   `json:"gitlabIssueId,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

type DeleteTaskResponse struct {
	Message string        `json:"message"`
	Task    *TaskResponse `json:"task,omitempty"`
}

type CalendarEntryResponse struct {
	TaskID   string  `json:"taskId"`
	Title    string  `json:"title"`
	Deadline *string `json:"deadline"`
	Status   string  `json:"status"`
}

type SummaryResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}

type ProgressResponse struct {
	TaskID          string `json:"taskId"`
	Title           string `json:"title"`
	Status          string `json:"status"`
	ProgressPercent int    `json:"progress_percent"`
}

type TeamRequest struct {
	TeamID  string   `json:"teamId"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type TeamResponse struct {
	TeamID  string   `json:"teamId"`
	Name    string   `json:"name,omitempty"`
	Members []string `json:"members"`
}

type UserRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type UserResponse struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username,omitempty"`
	TaskID   *string  `json:"taskId"`
	Tasks    []string `json:"tasks"`
}
