package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

func newOverviewService(matchups matchup.Repository, standings standing.Repository) *OverviewService {
	resolver := identity.NewResolver(nil)
	settings := league.DefaultSettings()
	return NewOverviewService(
		NewRivalryService(matchups, resolver, settings),
		NewStreakService(matchups, resolver, settings),
		NewRecordService(matchups, resolver, settings),
		NewPerformanceService(matchups, standings, resolver, settings),
		NewTrophyService(matchups, standings, resolver, settings),
	)
}

func TestOverviewService_Overview(t *testing.T) {
	t.Parallel()

	var records []matchup.Record
	for week := 1; week <= 6; week++ {
		records = append(records, game(2023, week, "Pels", 100+float64(week), "Woody", 95))
	}
	standings := &stubStandingRepository{
		final: []standing.Record{
			tableRow(2023, 1, "Pels", 12, 2, 0, 1500, 1300),
			tableRow(2023, 5, "Woody", 6, 8, 0, 1350, 1400),
		},
		regular: []standing.Record{
			tableRow(2023, 1, "Pels", 12, 2, 0, 1500, 1300),
			tableRow(2023, 5, "Woody", 6, 8, 0, 1350, 1400),
		},
	}

	service := newOverviewService(&stubMatchupRepository{records: records}, standings)

	overview, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}

	if len(overview.Rivalries) != 1 {
		t.Fatalf("expected one rivalry, got %+v", overview.Rivalries)
	}
	if len(overview.Streaks.AllTime) == 0 {
		t.Fatalf("expected all-time streaks, got %+v", overview.Streaks)
	}
	if len(overview.Blowouts) != 6 {
		t.Fatalf("expected 6 blowout rows, got %d", len(overview.Blowouts))
	}
	if len(overview.Consistency) != 2 {
		t.Fatalf("expected consistency for both teams, got %+v", overview.Consistency)
	}
	if _, ok := overview.TrophyCase["Pels"]; !ok {
		t.Fatalf("expected a Pels trophy shelf, got %+v", overview.TrophyCase)
	}
	if _, ok := overview.PointsTrends["Pels"]; !ok {
		t.Fatalf("expected a Pels points trend, got %+v", overview.PointsTrends)
	}
	if len(overview.TeamDNA) != 2 {
		t.Fatalf("expected DNA for both teams, got %+v", overview.TeamDNA)
	}
}

func TestOverviewService_Overview_PropagatesFailure(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("storage offline")
	service := newOverviewService(&stubMatchupRepository{listErr: wantErr}, &stubStandingRepository{})

	if _, err := service.Overview(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected the storage error, got %v", err)
	}
}
