package handlers

import (
	"net/http"

	"github.com/Deesus/Swiss-Tournament-Planner/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
	exportService    services.ExportService
}

func NewStandingsHandler(standingsService services.StandingsService, exportService services.ExportService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
		exportService:    exportService,
	}
}

func (h *StandingsHandler) GetStandingsHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := parseTournamentScope(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.standingsService.Standings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) GetPairingsHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := parseTournamentScope(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pairings, err := h.standingsService.Pairings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairings": pairings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) ExportStandingsHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := parseTournamentScope(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.exportService.ExportStandings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"snapshot": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
