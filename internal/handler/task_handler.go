package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/task-tracker/internal/auth"
	"github.com/bagdasarian/task-tracker/internal/domain"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context(), queryToFilterParams(r.URL.Query()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTasksToHTTP(tasks))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badBody(err))
		return
	}

	// создатель по умолчанию - владелец токена
	if req.UserID == "" {
		req.UserID = auth.UserIDFromContext(r.Context())
	}

	task, err := h.taskService.CreateTask(r.Context(), httpCreateTaskToInput(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTaskToHTTP(task))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.GetTask(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badBody(err))
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), r.PathValue("id"), httpUpdateTaskToPatch(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) AssignTask(w http.ResponseWriter, r *http.Request) {
	var req AssignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badBody(err))
		return
	}
	if req.UserID == "" {
		h.handleError(w, domain.NewInvalidArgumentError("userId is required"))
		return
	}

	task, err := h.taskService.AssignTask(r.Context(), r.PathValue("id"), req.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badBody(err))
		return
	}
	if req.Status == nil {
		h.handleError(w, domain.NewInvalidArgumentError("status is required"))
		return
	}

	task, err := h.taskService.ChangeStatus(r.Context(), r.PathValue("id"), domain.Status(*req.Status))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.DeleteTask(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	task := domainTaskToHTTP(result.Task)
	writeJSON(w, http.StatusOK, DeleteTaskResponse{
		Message: result.Message,
		Task:    &task,
	})
}

func (h *Handler) DeleteAllTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.DeleteAllTasks(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteTaskResponse{Message: result.Message})
}
