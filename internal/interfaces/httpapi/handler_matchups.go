package httpapi

import (
	"net/http"
	"strings"
)

type headToHeadRequest struct {
	Team1 string `validate:"required"`
	Team2 string `validate:"required"`
}

type teamStatsRequest struct {
	TeamID   string `validate:"required_without=TeamName"`
	TeamName string `validate:"required_without=TeamID"`
}

func (h *Handler) Matchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Matchups")
	defer span.End()

	year, err := queryInt(r, "year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := queryInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.matchupService.Matchups(ctx, year, week)
	if err != nil {
		h.logger.WarnContext(ctx, "matchups failed", "year", year, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, records)
}

func (h *Handler) HeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HeadToHead")
	defer span.End()

	req := headToHeadRequest{
		Team1: strings.TrimSpace(r.URL.Query().Get("team1")),
		Team2: strings.TrimSpace(r.URL.Query().Get("team2")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchupService.HeadToHead(ctx, req.Team1, req.Team2)
	if err != nil {
		h.logger.WarnContext(ctx, "head to head failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) AllHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AllHeadToHead")
	defer span.End()

	matrix, err := h.matchupService.AllHeadToHead(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "all head to head failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matrix)
}

func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamStats")
	defer span.End()

	req := teamStatsRequest{
		TeamID:   strings.TrimSpace(r.URL.Query().Get("team_id")),
		TeamName: strings.TrimSpace(r.URL.Query().Get("team_name")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchupService.TeamStats(ctx, req.TeamID, req.TeamName)
	if err != nil {
		h.logger.WarnContext(ctx, "team stats failed", "team_id", req.TeamID, "team_name", req.TeamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) PlayoffScenarios(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayoffScenarios")
	defer span.End()

	scenarios, err := h.playoffService.Scenarios(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "playoff scenarios failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scenarios)
}
