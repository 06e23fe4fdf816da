package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/greatestleague/dashboard-api/internal/domain/stats"
)

// OverviewService fans the headline aggregations out concurrently and
// assembles the dashboard landing payload.
type OverviewService struct {
	rivalries   *RivalryService
	streaks     *StreakService
	records     *RecordService
	performance *PerformanceService
	trophies    *TrophyService
}

func NewOverviewService(rivalries *RivalryService, streaks *StreakService, records *RecordService, performance *PerformanceService, trophies *TrophyService) *OverviewService {
	return &OverviewService{
		rivalries:   rivalries,
		streaks:     streaks,
		records:     records,
		performance: performance,
		trophies:    trophies,
	}
}

// Overview computes every landing-page aggregate. The first failing
// aggregation cancels the rest.
func (s *OverviewService) Overview(ctx context.Context) (stats.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Overview")
	defer span.End()

	var overview stats.Overview

	grp := pool.New().WithContext(ctx).WithCancelOnError()
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.Rivalries, err = s.rivalries.Rivalries(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.Streaks, err = s.streaks.Streaks(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.Blowouts, err = s.records.Blowouts(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.BadBeats, err = s.records.BadBeats(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.WeeklyAwards, err = s.records.WeeklyAwards(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.Consistency, err = s.performance.Consistency(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.Clutch, err = s.performance.Clutch(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.TeamDNA, err = s.performance.TeamDNA(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.TrophyCase, err = s.trophies.TrophyCase(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.PointsTrends, err = s.performance.PointsTrends(ctx)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		overview.MatchupDifficulty, err = s.performance.MatchupDifficulty(ctx)
		return err
	})

	if err := grp.Wait(); err != nil {
		return stats.Overview{}, err
	}
	return overview, nil
}
