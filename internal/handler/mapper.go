package handler

import (
	"net/url"
	"time"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/service"
)

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	userIDs := task.UserIDs
	if userIDs == nil {
		userIDs = []string{}
	}

	return TaskResponse{
		TaskID:        task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Deadline:      formatTime(task.Deadline),
		Status:        string(task.Status),
		UserIDs:       userIDs,
		Creator:       task.Creator,
		GitlabIssueID: task.GitlabIssueID,
		CreatedAt:     task.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     task.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainTaskToHTTP(task))
	}
	return result
}

func httpCreateTaskToInput(req CreateTaskRequest) service.CreateTaskInput {
	return service.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Deadline:      req.Deadline,
		Status:        domain.Status(req.Status),
		UserID:        req.UserID,
		UserIDs:       req.UserIDs,
		GitlabIssueID: req.GitlabIssueID,
	}
}

func httpUpdateTaskToPatch(req UpdateTaskRequest) domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:         req.Title,
		Description:   req.Description,
		Deadline:      req.Deadline,
		UserIDs:       req.UserIDs,
		GitlabIssueID: req.GitlabIssueID,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		patch.Status = &status
	}
	return patch
}

func queryToFilterParams(q url.Values) service.FilterParams {
	return service.FilterParams{
		Status: domain.Status(q.Get("status")),
		TeamID: q.Get("teamId"),
		UserID: q.Get("userId"),
		Union:  service.ParseUnion(q.Get("union")),
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := team.Members
	if members == nil {
		members = []string{}
	}
	return TeamResponse{
		TeamID:  team.ID,
		Name:    team.Name,
		Members: members,
	}
}

func httpTeamToDomain(req TeamRequest) *domain.Team {
	return &domain.Team{
		ID:      req.TeamID,
		Name:    req.Name,
		Members: req.Members,
	}
}

func domainUserToHTTP(user *domain.User) UserResponse {
	tasks := user.Tasks
	if tasks == nil {
		tasks = []string{}
	}
	return UserResponse{
		UserID:   user.ID,
		Username: user.Username,
		TaskID:   user.TaskID,
		Tasks:    tasks,
	}
}
