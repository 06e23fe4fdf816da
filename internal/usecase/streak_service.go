package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/stats"
)

// StreakService tracks runs of consecutive wins and losses, both live
// (current season) and across the whole history.
type StreakService struct {
	matchupRepo matchup.Repository
	resolver    *identity.Resolver
	settings    league.Settings
}

func NewStreakService(matchupRepo matchup.Repository, resolver *identity.Resolver, settings league.Settings) *StreakService {
	return &StreakService{
		matchupRepo: matchupRepo,
		resolver:    resolver,
		settings:    settings,
	}
}

// Streaks returns the top active and all-time streaks. An active streak
// walks the current season backwards and stops at the first tie or
// reversal; the all-time pass scans forward and a tie resets the run
// without recording it.
func (s *StreakService) Streaks(ctx context.Context) (stats.Streaks, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StreakService.Streaks")
	defer span.End()

	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return stats.Streaks{}, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)
	log := buildTeamGameLog(records)

	var current, allTime []stats.Streak

	for _, team := range log.teams {
		games := log.games[team]

		if streak, ok := currentStreak(games, s.settings.CurrentSeason); ok {
			streak.Team = team
			current = append(current, streak)
		}

		maxStreak, maxType := 0, ""
		runStreak, runType := 0, ""
		for _, game := range games {
			if game.tie {
				runStreak, runType = 0, ""
				continue
			}
			gameType := "loss"
			if game.won {
				gameType = "win"
			}
			switch {
			case runType == "":
				runType, runStreak = gameType, 1
			case gameType == runType:
				runStreak++
			default:
				if runStreak > maxStreak {
					maxStreak, maxType = runStreak, runType
				}
				runType, runStreak = gameType, 1
			}
		}
		if runStreak > maxStreak {
			maxStreak, maxType = runStreak, runType
		}

		if maxStreak > 0 {
			allTime = append(allTime, stats.Streak{
				Team:   team,
				Streak: maxStreak,
				Type:   maxType,
			})
		}
	}

	sort.SliceStable(current, func(i, j int) bool {
		return current[i].Streak > current[j].Streak
	})
	sort.SliceStable(allTime, func(i, j int) bool {
		return allTime[i].Streak > allTime[j].Streak
	})
	if len(current) > 20 {
		current = current[:20]
	}
	if len(allTime) > 20 {
		allTime = allTime[:20]
	}

	return stats.Streaks{Current: current, AllTime: allTime}, nil
}

// currentStreak walks a team's current-season games newest first.
func currentStreak(games []teamGame, season int) (stats.Streak, bool) {
	var seasonGames []teamGame
	for _, game := range games {
		if game.year == season {
			seasonGames = append(seasonGames, game)
		}
	}
	if len(seasonGames) == 0 {
		return stats.Streak{}, false
	}

	streak, streakType := 0, ""
	for i := len(seasonGames) - 1; i >= 0; i-- {
		game := seasonGames[i]
		if game.tie {
			break
		}
		gameType := "loss"
		if game.won {
			gameType = "win"
		}
		if streakType == "" {
			streakType, streak = gameType, 1
		} else if gameType == streakType {
			streak++
		} else {
			break
		}
	}
	if streak == 0 {
		return stats.Streak{}, false
	}

	return stats.Streak{Streak: streak, Type: streakType, Current: true}, true
}
