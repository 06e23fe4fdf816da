package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

// Scraper fetches league pages from the host site and returns typed
// records. Implementations live in the infrastructure layer.
type Scraper interface {
	ScrapeWeek(ctx context.Context, year, week int) ([]matchup.Record, error)
	// ScrapeStandings returns the regular-season and final tables for a
	// season; the final table may be empty while the season runs.
	ScrapeStandings(ctx context.Context, year int) (regular, final []standing.Record, err error)
}

// RefreshSummary reports what an ingest run changed.
type RefreshSummary struct {
	Years        []int  `json:"years"`
	WeeksScraped int    `json:"weeks_scraped"`
	NewMatchups  int    `json:"new_matchups"`
	NewStandings int    `json:"new_standings"`
	UpdatedAt    string `json:"updated_at"`
}

// IngestService pulls fresh data from the scraper into the append-only
// stores. Weeks that already hold data are never re-fetched, which
// keeps refresh idempotent and cheap.
type IngestService struct {
	matchupRepo  matchup.Repository
	standingRepo standing.Repository
	scraper      Scraper
	settings     league.Settings
	now          func() time.Time
}

func NewIngestService(matchupRepo matchup.Repository, standingRepo standing.Repository, scraper Scraper, settings league.Settings) *IngestService {
	return &IngestService{
		matchupRepo:  matchupRepo,
		standingRepo: standingRepo,
		scraper:      scraper,
		settings:     settings,
		now:          time.Now,
	}
}

// lastWeek is the final scrapable week of a season: the regular season
// plus the two postseason rounds.
func (s *IngestService) lastWeek() int {
	return s.settings.FinalWeek + 2
}

// RefreshCurrent re-scrapes the current season's standings and any
// weeks not yet on disk.
func (s *IngestService) RefreshCurrent(ctx context.Context) (RefreshSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestService.RefreshCurrent")
	defer span.End()

	if s.scraper == nil {
		return RefreshSummary{}, fmt.Errorf("%w: no scraper configured", ErrDependencyUnavailable)
	}
	summary, err := s.ingestYears(ctx, s.settings.CurrentSeason, s.settings.CurrentSeason)
	if err != nil {
		return RefreshSummary{}, err
	}
	return summary, nil
}

// Backfill imports a historical year range, oldest first.
func (s *IngestService) Backfill(ctx context.Context, startYear, endYear int) (RefreshSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestService.Backfill")
	defer span.End()

	if s.scraper == nil {
		return RefreshSummary{}, fmt.Errorf("%w: no scraper configured", ErrDependencyUnavailable)
	}
	if startYear <= 0 || endYear <= 0 || startYear > endYear {
		return RefreshSummary{}, fmt.Errorf("%w: invalid year range %d-%d", ErrInvalidInput, startYear, endYear)
	}
	if endYear > s.settings.CurrentSeason {
		return RefreshSummary{}, fmt.Errorf("%w: end year %d is in the future", ErrInvalidInput, endYear)
	}
	return s.ingestYears(ctx, startYear, endYear)
}

func (s *IngestService) ingestYears(ctx context.Context, startYear, endYear int) (RefreshSummary, error) {
	summary := RefreshSummary{UpdatedAt: s.now().UTC().Format(time.RFC3339)}

	for year := startYear; year <= endYear; year++ {
		summary.Years = append(summary.Years, year)

		regular, final, err := s.scraper.ScrapeStandings(ctx, year)
		if err != nil {
			return RefreshSummary{}, fmt.Errorf("scrape standings %d: %w", year, err)
		}
		written, err := s.standingRepo.Append(ctx, standing.ViewRegular, regular)
		if err != nil {
			return RefreshSummary{}, fmt.Errorf("store regular standings %d: %w", year, err)
		}
		summary.NewStandings += written
		written, err = s.standingRepo.Append(ctx, standing.ViewFinal, final)
		if err != nil {
			return RefreshSummary{}, fmt.Errorf("store final standings %d: %w", year, err)
		}
		summary.NewStandings += written

		existing, err := s.matchupRepo.Weeks(ctx, year)
		if err != nil {
			return RefreshSummary{}, fmt.Errorf("list recorded weeks %d: %w", year, err)
		}

		for week := 1; week <= s.lastWeek(); week++ {
			if existing[week] > 0 {
				continue
			}
			records, err := s.scraper.ScrapeWeek(ctx, year, week)
			if err != nil {
				return RefreshSummary{}, fmt.Errorf("scrape %d week %d: %w", year, week, err)
			}
			summary.WeeksScraped++
			if len(records) == 0 {
				continue
			}
			written, err := s.matchupRepo.Append(ctx, records)
			if err != nil {
				return RefreshSummary{}, fmt.Errorf("store %d week %d: %w", year, week, err)
			}
			summary.NewMatchups += written
		}
	}

	return summary, nil
}
