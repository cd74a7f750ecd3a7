package handler

import (
	"net/http"

	"github.com/bagdasarian/task-tracker/internal/domain"
)

func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	entries, err := h.reportService.GetCalendarData(r.Context(), queryToFilterParams(r.URL.Query()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := make([]CalendarEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, CalendarEntryResponse{
			TaskID:   entry.TaskID,
			Title:    entry.Title,
			Deadline: formatTime(entry.Deadline),
			Status:   string(entry.Status),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.GetTaskSummary(r.Context(), queryToFilterParams(r.URL.Query()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		Total:     summary.Total,
		Completed: summary.Completed,
		Remaining: summary.Remaining,
	})
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.reportService.GetTaskProgress(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProgressResponse{
		TaskID:          progress.TaskID,
		Title:           progress.Title,
		Status:          string(progress.Status),
		ProgressPercent: progress.ProgressPercent,
	})
}

func (h *Handler) GetGrouped(w http.ResponseWriter, r *http.Request) {
	by := r.URL.Query().Get("by")
	if by == "" {
		h.handleError(w, domain.NewInvalidArgumentError("by parameter is required"))
		return
	}

	groups, err := h.reportService.GetGroupedTasks(r.Context(), by)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := make(map[string][]TaskResponse, len(groups))
	for key, tasks := range groups {
		response[key] = domainTasksToHTTP(tasks)
	}

	writeJSON(w, http.StatusOK, response)
}
