package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/greatestleague/dashboard-api/internal/platform/logging"
	"github.com/greatestleague/dashboard-api/internal/usecase"
)

type Handler struct {
	standingService *usecase.StandingService
	matchupService  *usecase.MatchupService
	rivalryService  *usecase.RivalryService
	streakService   *usecase.StreakService
	recordService   *usecase.RecordService
	perfService     *usecase.PerformanceService
	trophyService   *usecase.TrophyService
	playoffService  *usecase.PlayoffService
	overviewService *usecase.OverviewService
	ingestService   *usecase.IngestService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	standingService *usecase.StandingService,
	matchupService *usecase.MatchupService,
	rivalryService *usecase.RivalryService,
	streakService *usecase.StreakService,
	recordService *usecase.RecordService,
	perfService *usecase.PerformanceService,
	trophyService *usecase.TrophyService,
	playoffService *usecase.PlayoffService,
	overviewService *usecase.OverviewService,
	ingestService *usecase.IngestService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingService: standingService,
		matchupService:  matchupService,
		rivalryService:  rivalryService,
		streakService:   streakService,
		recordService:   recordService,
		perfService:     perfService,
		trophyService:   trophyService,
		playoffService:  playoffService,
		overviewService: overviewService,
		ingestService:   ingestService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// queryInt parses an optional integer query parameter; an absent or
// blank parameter parses to zero.
func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}
