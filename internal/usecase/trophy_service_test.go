package usecase

import (
	"context"
	"testing"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

func TestTrophyService_TrophyCase(t *testing.T) {
	t.Parallel()

	settings := league.DefaultSettings()
	settings.CompletedSeasonCutoff = 2024
	settings.LeagueSize = 12
	settings.PlayoffSpots = 4
	settings.PerfectSeasonMinWins = 10

	standings := &stubStandingRepository{
		final: []standing.Record{
			tableRow(2022, 1, "Pels", 11, 3, 0, 1500, 1300),
			tableRow(2023, 1, "Pels", 12, 2, 0, 1550, 1280),
			tableRow(2023, 12, "Scrubs", 2, 12, 0, 1100, 1500),
			tableRow(2024, 3, "Pels", 9, 5, 0, 1400, 1350),
			// Current season must not count.
			tableRow(2025, 1, "Scrubs", 10, 4, 0, 1450, 1300),
		},
		regular: []standing.Record{
			tableRow(2022, 1, "Pels", 11, 3, 0, 1500, 1300),
			tableRow(2023, 1, "Pels", 14, 0, 0, 1550, 1280),
			tableRow(2023, 12, "Scrubs", 2, 12, 0, 1550, 1500), // ties Pels' points
			tableRow(2024, 3, "Pels", 9, 5, 0, 1400, 1350),
		},
	}
	records := []matchup.Record{
		game(2023, 1, "Pels", 180.5, "Scrubs", 100),
		game(2023, 2, "Pels", 120, "Scrubs", 110),
		game(2023, 3, "Pels", 125, "Scrubs", 130),
		game(2023, 4, "Pels", 125, "Scrubs", 125), // tie ends nothing for the loss side
	}

	service := NewTrophyService(&stubMatchupRepository{records: records}, standings, identity.NewResolver(nil), settings)

	trophies, err := service.TrophyCase(context.Background())
	if err != nil {
		t.Fatalf("TrophyCase error: %v", err)
	}

	pels, ok := trophies["Pels"]
	if !ok {
		t.Fatalf("expected a Pels shelf, got %v", trophies)
	}
	if len(pels.Championships) != 2 || pels.Championships[0] != 2023 || pels.Championships[1] != 2022 {
		t.Fatalf("expected championships [2023 2022], got %v", pels.Championships)
	}
	if len(pels.PlayoffAppearances) != 3 || pels.PlayoffAppearances[0] != 2024 {
		t.Fatalf("expected 3 playoff years newest first, got %v", pels.PlayoffAppearances)
	}
	if pels.HighestWeeklyScore.Score != 180.5 || pels.HighestWeeklyScore.Week != 1 {
		t.Fatalf("unexpected weekly high: %+v", pels.HighestWeeklyScore)
	}
	if pels.LongestWinStreak != 2 {
		t.Fatalf("expected win streak 2, got %d", pels.LongestWinStreak)
	}
	if len(pels.PerfectSeasons) != 1 || pels.PerfectSeasons[0] != 2023 {
		t.Fatalf("expected perfect season 2023, got %v", pels.PerfectSeasons)
	}
	// Pels leads 2022 and 2024 outright and shares 2023 at 1550 points.
	if len(pels.ScoringTitles) != 3 || pels.ScoringTitles[0] != 2024 {
		t.Fatalf("expected 3 scoring titles newest first, got %v", pels.ScoringTitles)
	}

	scrubs := trophies["Scrubs"]
	if len(scrubs.Spoons) != 1 || scrubs.Spoons[0] != 2023 {
		t.Fatalf("expected a 2023 spoon, got %v", scrubs.Spoons)
	}
	if len(scrubs.Championships) != 0 {
		t.Fatalf("2025 title must not count yet: %v", scrubs.Championships)
	}
	if len(scrubs.ScoringTitles) != 1 || scrubs.ScoringTitles[0] != 2023 {
		t.Fatalf("expected shared 2023 scoring title, got %v", scrubs.ScoringTitles)
	}
}

func TestLongestWinStreak_TieEndsRun(t *testing.T) {
	t.Parallel()

	games := []teamGame{
		{year: 2023, week: 1, won: true},
		{year: 2023, week: 2, won: true},
		{year: 2023, week: 3, tie: true},
		{year: 2023, week: 4, won: true},
		{year: 2023, week: 5, won: false},
		{year: 2023, week: 6, won: true},
		{year: 2023, week: 7, won: true},
		{year: 2023, week: 8, won: true},
	}
	if got := longestWinStreak(games); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestScoringTitleWinners_SharedOnTie(t *testing.T) {
	t.Parallel()

	rows := []standing.Record{
		tableRow(2020, 1, "Pels", 10, 4, 0, 1400, 1200),
		tableRow(2020, 2, "Woody", 9, 5, 0, 1400, 1250),
		tableRow(2020, 3, "Scrubs", 8, 6, 0, 1300, 1280),
		tableRow(2021, 1, "Woody", 10, 4, 0, 1500, 1200),
	}
	titles := scoringTitleWinners(rows, 2024)
	if len(titles) != 3 {
		t.Fatalf("expected 3 titles, got %+v", titles)
	}
	if titles[0].team != "Pels" || titles[0].year != 2020 {
		t.Fatalf("unexpected first title: %+v", titles[0])
	}
	if titles[1].team != "Woody" || titles[1].year != 2020 {
		t.Fatalf("expected Woody to share 2020, got %+v", titles[1])
	}
	if titles[2].team != "Woody" || titles[2].year != 2021 {
		t.Fatalf("unexpected 2021 title: %+v", titles[2])
	}
}
