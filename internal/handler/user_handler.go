package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badBody(err))
		return
	}

	user, err := h.userService.CreateUser(r.Context(), &domain.User{
		ID:       req.UserID,
		Username: req.Username,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainUserToHTTP(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, domainUserToHTTP(user))
	}

	writeJSON(w, http.StatusOK, response)
}
