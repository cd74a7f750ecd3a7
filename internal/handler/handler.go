package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/task-tracker/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	taskService   service.TaskService
	reportService service.ReportService
	teamService   service.TeamService
	userService   service.UserService
	log           logrus.FieldLogger
}

func NewHandler(
	taskService service.TaskService,
	reportService service.ReportService,
	teamService service.TeamService,
	userService service.UserService,
	log logrus.FieldLogger,
) *Handler {
	return &Handler{
		taskService:   taskService,
		reportService: reportService,
		teamService:   teamService,
		userService:   userService,
		log:           log,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
