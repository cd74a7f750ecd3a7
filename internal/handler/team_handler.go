package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badBody(err))
		return
	}

	createdTeam, err := h.teamService.CreateTeam(r.Context(), httpTeamToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTeamToHTTP(createdTeam))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetTeam(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		response = append(response, domainTeamToHTTP(team))
	}

	writeJSON(w, http.StatusOK, response)
}
