package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

type stubScraper struct {
	weekCalls  [][2]int
	byWeek     map[[2]int][]matchup.Record
	regular    map[int][]standing.Record
	final      map[int][]standing.Record
	weekErr    error
	standErr   error
	standCalls []int
}

func (s *stubScraper) ScrapeWeek(ctx context.Context, year, week int) ([]matchup.Record, error) {
	if s.weekErr != nil {
		return nil, s.weekErr
	}
	s.weekCalls = append(s.weekCalls, [2]int{year, week})
	return s.byWeek[[2]int{year, week}], nil
}

func (s *stubScraper) ScrapeStandings(ctx context.Context, year int) ([]standing.Record, []standing.Record, error) {
	if s.standErr != nil {
		return nil, nil, s.standErr
	}
	s.standCalls = append(s.standCalls, year)
	return s.regular[year], s.final[year], nil
}

func ingestSettings() league.Settings {
	settings := league.DefaultSettings()
	settings.CurrentSeason = 2025
	settings.FinalWeek = 15
	return settings
}

func TestIngestService_RefreshCurrent_SkipsRecordedWeeks(t *testing.T) {
	t.Parallel()

	matchups := &stubMatchupRepository{records: []matchup.Record{
		game(2025, 1, "Pels", 100, "Woody", 90),
		game(2025, 2, "Pels", 100, "Woody", 90),
	}}
	standings := &stubStandingRepository{}
	scraper := &stubScraper{
		byWeek: map[[2]int][]matchup.Record{
			{2025, 3}: {game(2025, 3, "Pels", 110, "Woody", 95)},
		},
		regular: map[int][]standing.Record{
			2025: {tableRow(2025, 1, "Pels", 3, 0, 0, 310, 275)},
		},
	}

	service := NewIngestService(matchups, standings, scraper, ingestSettings())
	service.now = func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }

	summary, err := service.RefreshCurrent(context.Background())
	if err != nil {
		t.Fatalf("RefreshCurrent error: %v", err)
	}

	// Weeks 1 and 2 are on disk already; 3 through 17 get fetched.
	if summary.WeeksScraped != 15 {
		t.Fatalf("expected 15 weeks scraped, got %d", summary.WeeksScraped)
	}
	for _, call := range scraper.weekCalls {
		if call[1] == 1 || call[1] == 2 {
			t.Fatalf("week %d was re-fetched", call[1])
		}
	}
	if summary.NewMatchups != 1 || summary.NewStandings != 1 {
		t.Fatalf("unexpected write counts: %+v", summary)
	}
	if len(summary.Years) != 1 || summary.Years[0] != 2025 {
		t.Fatalf("unexpected years: %v", summary.Years)
	}
	if summary.UpdatedAt != "2025-09-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp: %q", summary.UpdatedAt)
	}

	weeks, err := matchups.Weeks(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Weeks error: %v", err)
	}
	if weeks[3] != 1 {
		t.Fatalf("expected the week-3 game stored, got %v", weeks)
	}
}

func TestIngestService_RefreshCurrent_DeduplicatesAppends(t *testing.T) {
	t.Parallel()

	already := game(2025, 3, "Pels", 110, "Woody", 95)
	matchups := &stubMatchupRepository{records: []matchup.Record{already}}
	scraper := &stubScraper{
		byWeek: map[[2]int][]matchup.Record{
			// Served for a different week, but identical by key.
			{2025, 4}: {already},
		},
	}

	service := NewIngestService(matchups, &stubStandingRepository{}, scraper, ingestSettings())

	summary, err := service.RefreshCurrent(context.Background())
	if err != nil {
		t.Fatalf("RefreshCurrent error: %v", err)
	}
	if summary.NewMatchups != 0 {
		t.Fatalf("expected no new matchups, got %d", summary.NewMatchups)
	}
}

func TestIngestService_Backfill_RangeAndOrder(t *testing.T) {
	t.Parallel()

	scraper := &stubScraper{
		regular: map[int][]standing.Record{
			2022: {tableRow(2022, 1, "Pels", 10, 4, 0, 1400, 1200)},
			2023: {tableRow(2023, 1, "Pels", 11, 3, 0, 1450, 1150)},
		},
		final: map[int][]standing.Record{
			2022: {tableRow(2022, 1, "Pels", 12, 5, 0, 1600, 1350)},
		},
	}
	matchups := &stubMatchupRepository{}
	standings := &stubStandingRepository{}

	service := NewIngestService(matchups, standings, scraper, ingestSettings())

	summary, err := service.Backfill(context.Background(), 2022, 2023)
	if err != nil {
		t.Fatalf("Backfill error: %v", err)
	}
	if len(summary.Years) != 2 || summary.Years[0] != 2022 || summary.Years[1] != 2023 {
		t.Fatalf("expected oldest-first years, got %v", summary.Years)
	}
	// Two regular rows plus one final row.
	if summary.NewStandings != 3 {
		t.Fatalf("expected 3 standings written, got %d", summary.NewStandings)
	}
	// 17 empty weeks per season still count as scraped.
	if summary.WeeksScraped != 34 {
		t.Fatalf("expected 34 weeks scraped, got %d", summary.WeeksScraped)
	}
	if len(standings.final) != 1 || standings.final[0].Wins != 12 {
		t.Fatalf("expected the final table stored separately, got %+v", standings.final)
	}
}

func TestIngestService_Backfill_Validation(t *testing.T) {
	t.Parallel()

	service := NewIngestService(&stubMatchupRepository{}, &stubStandingRepository{}, &stubScraper{}, ingestSettings())

	cases := []struct {
		name  string
		start int
		end   int
	}{
		{"zero start", 0, 2023},
		{"inverted range", 2023, 2022},
		{"future end", 2024, 2026},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := service.Backfill(context.Background(), tc.start, tc.end); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestIngestService_NilScraper(t *testing.T) {
	t.Parallel()

	service := NewIngestService(&stubMatchupRepository{}, &stubStandingRepository{}, nil, ingestSettings())

	if _, err := service.RefreshCurrent(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if _, err := service.Backfill(context.Background(), 2020, 2021); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestIngestService_ScrapeFailureAborts(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("host unreachable")
	scraper := &stubScraper{standErr: wantErr}
	service := NewIngestService(&stubMatchupRepository{}, &stubStandingRepository{}, scraper, ingestSettings())

	if _, err := service.RefreshCurrent(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected the scrape error, got %v", err)
	}
}
