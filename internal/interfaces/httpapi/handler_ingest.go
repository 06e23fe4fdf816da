package httpapi

import "net/http"

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Refresh")
	defer span.End()

	summary, err := h.ingestService.RefreshCurrent(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "refresh completed",
		"weeks_scraped", summary.WeeksScraped,
		"new_matchups", summary.NewMatchups,
		"new_standings", summary.NewStandings,
	)
	writeSuccess(ctx, w, http.StatusOK, summary)
}
