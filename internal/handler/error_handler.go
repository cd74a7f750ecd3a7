package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/bagdasarian/task-tracker/internal/service"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	var cleanupErr *service.CleanupError
	if errors.As(err, &cleanupErr) {
		h.log.WithError(err).Error("user cleanup failed after delete")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{
				Code:    "CLEANUP_FAILED",
				Message: "deleted tasks: " + strings.Join(cleanupErr.TaskIDs, ", ") + "; user references were not cleared",
			},
		})
		return
	}

	h.log.WithError(err).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeInvalidArgument:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeTeamExists, domain.CodeUserExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func badBody(err error) error {
	return domain.NewInvalidArgumentError("invalid request body: " + err.Error())
}
