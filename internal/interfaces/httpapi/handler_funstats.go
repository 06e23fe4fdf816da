package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/greatestleague/dashboard-api/internal/usecase"
)

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Overview")
	defer span.End()

	overview, err := h.overviewService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overview)
}

func (h *Handler) Rivalries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Rivalries")
	defer span.End()

	rivalries, err := h.rivalryService.Rivalries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "rivalries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rivalries)
}

func (h *Handler) TrashTalk(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TrashTalk")
	defer span.End()

	req := headToHeadRequest{
		Team1: strings.TrimSpace(r.URL.Query().Get("team1")),
		Team2: strings.TrimSpace(r.URL.Query().Get("team2")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lines, err := h.rivalryService.TrashTalk(ctx, req.Team1, req.Team2)
	if err != nil {
		h.logger.WarnContext(ctx, "trash talk failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lines)
}

func (h *Handler) Streaks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Streaks")
	defer span.End()

	streaks, err := h.streakService.Streaks(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "streaks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, streaks)
}

func (h *Handler) Blowouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Blowouts")
	defer span.End()

	blowouts, err := h.recordService.Blowouts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "blowouts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, blowouts)
}

func (h *Handler) BadBeats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BadBeats")
	defer span.End()

	beats, err := h.recordService.BadBeats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "bad beats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, beats)
}

func (h *Handler) WeeklyAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WeeklyAwards")
	defer span.End()

	awards, err := h.recordService.WeeklyAwards(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "weekly awards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, awards)
}

func (h *Handler) Consistency(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Consistency")
	defer span.End()

	result, err := h.perfService.Consistency(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "consistency failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) Clutch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Clutch")
	defer span.End()

	result, err := h.perfService.Clutch(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "clutch failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) TeamDNA(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamDNA")
	defer span.End()

	result, err := h.perfService.TeamDNA(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "team dna failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) TrophyCase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TrophyCase")
	defer span.End()

	trophies, err := h.trophyService.TrophyCase(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "trophy case failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trophies)
}

func (h *Handler) PointsTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PointsTrends")
	defer span.End()

	trends, err := h.perfService.PointsTrends(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "points trends failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trends)
}

func (h *Handler) MatchupDifficulty(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchupDifficulty")
	defer span.End()

	result, err := h.perfService.MatchupDifficulty(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "matchup difficulty failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) WeeklyRecap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WeeklyRecap")
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
	if year <= 0 || week <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: year and week are required", usecase.ErrInvalidInput))
		return
	}

	recap, err := h.recordService.WeeklyRecap(ctx, year, week)
	if err != nil {
		h.logger.WarnContext(ctx, "weekly recap failed", "year", year, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recap)
}
