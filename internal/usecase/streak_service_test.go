package usecase

import (
	"context"
	"testing"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
)

// sequenceGames turns a result string into one game per week for the
// team against a rotating opponent. 'W' wins, 'L' loses, 'T' ties.
func sequenceGames(year int, team string, results string) []matchup.Record {
	var records []matchup.Record
	for i, r := range results {
		week := i + 1
		switch r {
		case 'W':
			records = append(records, game(year, week, team, 110, "Opponent", 100))
		case 'L':
			records = append(records, game(year, week, team, 90, "Opponent", 100))
		case 'T':
			records = append(records, game(year, week, team, 100, "Opponent", 100))
		}
	}
	return records
}

func TestStreakService_AllTime_LossBreaksRun(t *testing.T) {
	t.Parallel()

	settings := league.DefaultSettings()
	settings.CurrentSeason = 2024
	repo := &stubMatchupRepository{records: sequenceGames(2024, "Pels", "WWLWWW")}
	service := NewStreakService(repo, identity.NewResolver(nil), settings)

	streaks, err := service.Streaks(context.Background())
	if err != nil {
		t.Fatalf("Streaks error: %v", err)
	}

	var pels *int
	for _, s := range streaks.AllTime {
		if s.Team == "Pels" {
			v := s.Streak
			pels = &v
			if s.Type != "win" {
				t.Fatalf("expected win streak, got %q", s.Type)
			}
		}
	}
	if pels == nil || *pels != 3 {
		t.Fatalf("expected all-time streak 3, got %+v", streaks.AllTime)
	}
}

func TestStreakService_AllTime_TieResetsWithoutRecording(t *testing.T) {
	t.Parallel()

	settings := league.DefaultSettings()
	settings.CurrentSeason = 2024
	repo := &stubMatchupRepository{records: sequenceGames(2024, "Pels", "WWTWWW")}
	service := NewStreakService(repo, identity.NewResolver(nil), settings)

	streaks, err := service.Streaks(context.Background())
	if err != nil {
		t.Fatalf("Streaks error: %v", err)
	}

	for _, s := range streaks.AllTime {
		if s.Team == "Pels" && s.Streak != 3 {
			t.Fatalf("expected streak 3 after tie reset, got %d", s.Streak)
		}
	}
}

func TestStreakService_CurrentStreak_WalksBackwardAndStopsAtTie(t *testing.T) {
	t.Parallel()

	settings := league.DefaultSettings()
	settings.CurrentSeason = 2025

	records := sequenceGames(2025, "Pels", "LLTWW")
	// A past season must not leak into the current streak.
	records = append(records, sequenceGames(2024, "Pels", "WWWWWW")...)
	repo := &stubMatchupRepository{records: records}
	service := NewStreakService(repo, identity.NewResolver(nil), settings)

	streaks, err := service.Streaks(context.Background())
	if err != nil {
		t.Fatalf("Streaks error: %v", err)
	}

	var found bool
	for _, s := range streaks.Current {
		if s.Team != "Pels" {
			continue
		}
		found = true
		if s.Streak != 2 || s.Type != "win" || !s.Current {
			t.Fatalf("unexpected current streak: %+v", s)
		}
	}
	if !found {
		t.Fatalf("expected a current streak for Pels, got %+v", streaks.Current)
	}
}

func TestStreakService_CurrentStreak_TieAtEndYieldsNone(t *testing.T) {
	t.Parallel()

	settings := league.DefaultSettings()
	settings.CurrentSeason = 2025
	repo := &stubMatchupRepository{records: sequenceGames(2025, "Pels", "WWT")}
	service := NewStreakService(repo, identity.NewResolver(nil), settings)

	streaks, err := service.Streaks(context.Background())
	if err != nil {
		t.Fatalf("Streaks error: %v", err)
	}
	for _, s := range streaks.Current {
		if s.Team == "Pels" {
			t.Fatalf("expected no current streak after trailing tie, got %+v", s)
		}
	}
}
