package handlers

import (
	"net/http"

	"github.com/Deesus/Swiss-Tournament-Planner/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) ReportMatchHandler(w http.ResponseWriter, r *http.Request) {
	var input services.ReportMatchInput

	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.TournamentID != nil && *input.TournamentID <= 0 {
		badRequestResponse(w, r, services.ErrTournamentIDInvalid)
		return
	}

	match, err := h.matchService.Report(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) ClearMatchesHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.matchService.ClearAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
