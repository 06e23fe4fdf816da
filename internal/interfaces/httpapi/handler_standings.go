package httpapi

import "net/http"

func (h *Handler) CurrentStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CurrentStandings")
	defer span.End()

	rows, err := h.standingService.CurrentStandings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "current standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) HistoricalStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HistoricalStandings")
	defer span.End()

	rows, err := h.standingService.HistoricalStandings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "historical standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) HistoricalStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HistoricalStats")
	defer span.End()

	result, err := h.standingService.HistoricalStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "historical stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) AllTimeTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AllTimeTeamStats")
	defer span.End()

	result, err := h.standingService.AllTimeTeamStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "all-time team stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ScoringTitles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScoringTitles")
	defer span.End()

	titles, err := h.standingService.ScoringTitles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "scoring titles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, titles)
}

func (h *Handler) WinPctByYear(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WinPctByYear")
	defer span.End()

	series, err := h.standingService.WinPctByYear(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "win pct by year failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, series)
}

func (h *Handler) AllTimeWins(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AllTimeWins")
	defer span.End()

	rows, err := h.standingService.AllTimeWins(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "all-time wins failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) LeagueStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueStats")
	defer span.End()

	result, err := h.standingService.LeagueStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) HallOfFame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HallOfFame")
	defer span.End()

	entries, err := h.standingService.HallOfFame(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "hall of fame failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) HallOfShame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HallOfShame")
	defer span.End()

	entries, err := h.standingService.HallOfShame(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "hall of shame failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Teams")
	defer span.End()

	teams, err := h.standingService.Teams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) LeagueInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueInfo")
	defer span.End()

	info, err := h.standingService.LeagueInfo(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league info failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, info)
}
