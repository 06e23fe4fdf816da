package app

import (
	"fmt"
	"net/http"

	"github.com/greatestleague/dashboard-api/internal/config"
	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
	cacherepo "github.com/greatestleague/dashboard-api/internal/infrastructure/repository/cache"
	"github.com/greatestleague/dashboard-api/internal/infrastructure/repository/csvfile"
	"github.com/greatestleague/dashboard-api/internal/infrastructure/scraper"
	"github.com/greatestleague/dashboard-api/internal/interfaces/httpapi"
	basecache "github.com/greatestleague/dashboard-api/internal/platform/cache"
	"github.com/greatestleague/dashboard-api/internal/platform/logging"
	"github.com/greatestleague/dashboard-api/internal/usecase"
)

// Services bundles the wired use cases so both the HTTP server and the
// backfill CLI can share one construction path.
type Services struct {
	Standing *usecase.StandingService
	Matchup  *usecase.MatchupService
	Rivalry  *usecase.RivalryService
	Streak   *usecase.StreakService
	Record   *usecase.RecordService
	Perf     *usecase.PerformanceService
	Trophy   *usecase.TrophyService
	Playoff  *usecase.PlayoffService
	Overview *usecase.OverviewService
	Ingest   *usecase.IngestService
}

func BuildServices(cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var matchupRepo matchup.Repository = csvfile.NewMatchupStore(cfg.MatchupsFile)
	var standingRepo standing.Repository = csvfile.NewStandingStore(cfg.RegularStandingsFile, cfg.FinalStandingsFile)
	if cfg.CacheEnabled {
		matchupRepo = cacherepo.NewMatchupRepository(matchupRepo, basecache.NewStore(cfg.CacheTTL))
		standingRepo = cacherepo.NewStandingRepository(standingRepo, basecache.NewStore(cfg.CacheTTL))
	}

	resolver := identity.NewResolver(nil)
	if cfg.TeamAliasesFile != "" {
		loaded, err := identity.NewResolverFromFile(cfg.TeamAliasesFile)
		if err != nil {
			return nil, fmt.Errorf("load team aliases: %w", err)
		}
		resolver = loaded
	}

	var siteScraper usecase.Scraper
	if cfg.ScrapeEnabled {
		siteScraper = scraper.NewClient(scraper.ClientConfig{
			BaseURL:           cfg.ScrapeBaseURL,
			LeagueID:          cfg.League.ID,
			Timeout:           cfg.ScrapeTimeout,
			MaxRetries:        cfg.ScrapeMaxRetries,
			RequestsPerSecond: cfg.ScrapeRequestsPerSecond,
			Logger:            logger,
		})
	}

	settings := cfg.League
	rivalry := usecase.NewRivalryService(matchupRepo, resolver, settings)
	streak := usecase.NewStreakService(matchupRepo, resolver, settings)
	record := usecase.NewRecordService(matchupRepo, resolver, settings)
	perf := usecase.NewPerformanceService(matchupRepo, standingRepo, resolver, settings)
	trophy := usecase.NewTrophyService(matchupRepo, standingRepo, resolver, settings)

	return &Services{
		Standing: usecase.NewStandingService(matchupRepo, standingRepo, resolver, settings),
		Matchup:  usecase.NewMatchupService(matchupRepo, standingRepo, resolver, settings),
		Rivalry:  rivalry,
		Streak:   streak,
		Record:   record,
		Perf:     perf,
		Trophy:   trophy,
		Playoff:  usecase.NewPlayoffService(matchupRepo, standingRepo, resolver, settings),
		Overview: usecase.NewOverviewService(rivalry, streak, record, perf, trophy),
		Ingest:   usecase.NewIngestService(matchupRepo, standingRepo, siteScraper, settings),
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	services, err := BuildServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(
		services.Standing,
		services.Matchup,
		services.Rivalry,
		services.Streak,
		services.Record,
		services.Perf,
		services.Trophy,
		services.Playoff,
		services.Overview,
		services.Ingest,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
