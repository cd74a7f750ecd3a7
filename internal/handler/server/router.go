package server

import (
	"net/http"

	"github.com/bagdasarian/task-tracker/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /tasks", h.ListTasks)
	mux.HandleFunc("POST /tasks", h.CreateTask)
	mux.HandleFunc("DELETE /tasks", h.DeleteAllTasks)
	mux.HandleFunc("GET /tasks/calendar", h.GetCalendar)
	mux.HandleFunc("GET /tasks/summary", h.GetSummary)
	mux.HandleFunc("GET /tasks/grouped", h.GetGrouped)
	mux.HandleFunc("GET /tasks/{id}", h.GetTask)
	mux.HandleFunc("PUT /tasks/{id}", h.UpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", h.DeleteTask)
	mux.HandleFunc("POST /tasks/{id}/assign", h.AssignTask)
	mux.HandleFunc("PATCH /tasks/{id}/status", h.ChangeStatus)
	mux.HandleFunc("GET /tasks/{id}/progress", h.GetProgress)

	mux.HandleFunc("POST /teams", h.CreateTeam)
	mux.HandleFunc("GET /teams", h.ListTeams)
	mux.HandleFunc("GET /teams/{id}", h.GetTeam)

	mux.HandleFunc("POST /users", h.CreateUser)
	mux.HandleFunc("GET /users", h.ListUsers)
	mux.HandleFunc("GET /users/{id}", h.GetUser)

	mux.HandleFunc("GET /health", h.Health)
}
