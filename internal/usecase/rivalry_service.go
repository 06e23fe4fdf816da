package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/stats"
)

// RivalryService ranks team pairs by how contested and fresh their
// history is, and turns rivalry records into trash talk.
type RivalryService struct {
	matchupRepo matchup.Repository
	resolver    *identity.Resolver
	settings    league.Settings
}

func NewRivalryService(matchupRepo matchup.Repository, resolver *identity.Resolver, settings league.Settings) *RivalryService {
	return &RivalryService{
		matchupRepo: matchupRepo,
		resolver:    resolver,
		settings:    settings,
	}
}

type rivalryAccum struct {
	team1       string
	team2       string
	gamesPlayed int
	team1Wins   int
	team2Wins   int
	ties        int
	recentGames []stats.RivalryGame
}

// Rivalries scores every pair with enough meetings. The score grows with
// games played, shrinks with a lopsided record, and gets a bonus for
// recent activity; equal scores keep first-encounter order.
func (s *RivalryService) Rivalries(ctx context.Context) ([]stats.Rivalry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RivalryService.Rivalries")
	defer span.End()

	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)
	matchup.SortChronological(records)

	accums := make(map[[2]string]*rivalryAccum)
	var order [][2]string

	for _, record := range records {
		t1, t2 := record.Team1, record.Team2
		if t1 == "" || t2 == "" || t1 == t2 {
			continue
		}

		key := [2]string{t1, t2}
		if t2 < t1 {
			key = [2]string{t2, t1}
		}

		accum, ok := accums[key]
		if !ok {
			accum = &rivalryAccum{team1: t1, team2: t2}
			accums[key] = accum
			order = append(order, key)
		}

		accum.gamesPlayed++
		switch {
		case record.IsTie():
			accum.ties++
		case record.Winner == accum.team1:
			accum.team1Wins++
		case record.Winner == accum.team2:
			accum.team2Wins++
		default:
			accum.ties++
		}

		accum.recentGames = append(accum.recentGames, stats.RivalryGame{
			Year:   record.Year,
			Week:   record.Week,
			Margin: record.Margin(),
			Winner: record.Winner,
		})
		if len(accum.recentGames) > 5 {
			sort.SliceStable(accum.recentGames, func(i, j int) bool {
				a, b := accum.recentGames[i], accum.recentGames[j]
				if a.Year != b.Year {
					return a.Year > b.Year
				}
				return a.Week > b.Week
			})
			accum.recentGames = accum.recentGames[:5]
		}
	}

	rivalries := make([]stats.Rivalry, 0, len(order))
	for _, key := range order {
		accum := accums[key]
		if accum.gamesPlayed < s.settings.MinRivalryGames {
			continue
		}

		// Most recent meeting first.
		sort.SliceStable(accum.recentGames, func(i, j int) bool {
			a, b := accum.recentGames[i], accum.recentGames[j]
			if a.Year != b.Year {
				return a.Year > b.Year
			}
			return a.Week > b.Week
		})

		avgMargin := 0.0
		for _, game := range accum.recentGames {
			avgMargin += game.Margin
		}
		if len(accum.recentGames) > 0 {
			avgMargin /= float64(len(accum.recentGames))
		}

		winDiff := accum.team1Wins - accum.team2Wins
		if winDiff < 0 {
			winDiff = -winDiff
		}
		closeness := 1.0 - float64(winDiff)/float64(accum.gamesPlayed)
		recencyBonus := float64(min(len(accum.recentGames), 5)) / 5.0
		score := float64(accum.gamesPlayed) * closeness * (1 + recencyBonus*0.5)

		rivalries = append(rivalries, stats.Rivalry{
			Team1:           accum.team1,
			Team2:           accum.team2,
			GamesPlayed:     accum.gamesPlayed,
			Team1Wins:       accum.team1Wins,
			Team2Wins:       accum.team2Wins,
			Ties:            accum.ties,
			WinDifferential: winDiff,
			AvgMargin:       round2(avgMargin),
			RivalryScore:    round2(score),
			RecentGames:     accum.recentGames,
		})
	}

	sort.SliceStable(rivalries, func(i, j int) bool {
		return rivalries[i].RivalryScore > rivalries[j].RivalryScore
	})
	if len(rivalries) > 20 {
		rivalries = rivalries[:20]
	}

	return rivalries, nil
}

// TrashTalk narrates the head-to-head record between two teams. The
// given names appear verbatim in the lines; lookup uses canonical forms.
func (s *RivalryService) TrashTalk(ctx context.Context, team1, team2 string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RivalryService.TrashTalk")
	defer span.End()

	if strings.TrimSpace(team1) == "" || strings.TrimSpace(team2) == "" {
		return nil, fmt.Errorf("%w: team1 and team2 are required", ErrInvalidInput)
	}

	rivalries, err := s.Rivalries(ctx)
	if err != nil {
		return nil, err
	}
	if len(rivalries) == 0 {
		return []string{"No history between these teams yet!"}, nil
	}

	t1 := s.resolver.Normalize(team1)
	t2 := s.resolver.Normalize(team2)

	var rivalry *stats.Rivalry
	for i := range rivalries {
		r := &rivalries[i]
		if (r.Team1 == t1 && r.Team2 == t2) || (r.Team1 == t2 && r.Team2 == t1) {
			rivalry = r
			break
		}
	}
	if rivalry == nil {
		return []string{"These teams haven't faced off enough to generate trash talk!"}, nil
	}

	games := rivalry.GamesPlayed
	t1Wins := rivalry.Team1Wins
	t2Wins := rivalry.Team2Wins
	if rivalry.Team1 != t1 {
		t1Wins, t2Wins = t2Wins, t1Wins
	}

	var lines []string
	switch {
	case t1Wins > t2Wins:
		pct := float64(t1Wins) / float64(games) * 100
		lines = append(lines, fmt.Sprintf("%s has dominated %s, winning %d out of %d games (%.0f%% win rate)!", team1, team2, t1Wins, games, pct))
		if float64(t1Wins) >= float64(games)*0.7 {
			lines = append(lines, fmt.Sprintf("%s might want to consider forfeiting when they see %s on the schedule.", team2, team1))
		}
	case t2Wins > t1Wins:
		pct := float64(t2Wins) / float64(games) * 100
		lines = append(lines, fmt.Sprintf("%s has %s's number, winning %d out of %d games (%.0f%% win rate)!", team2, team1, t2Wins, games, pct))
	default:
		lines = append(lines, fmt.Sprintf("These teams are evenly matched with %d-%d records in %d games!", t1Wins, t2Wins, games))
	}

	if len(rivalry.RecentGames) > 0 {
		recent := rivalry.RecentGames[0]
		switch recent.Winner {
		case t1:
			lines = append(lines, fmt.Sprintf("In their last meeting (%d Week %d), %s came out on top!", recent.Year, recent.Week, team1))
		case t2:
			lines = append(lines, fmt.Sprintf("In their last meeting (%d Week %d), %s got the W!", recent.Year, recent.Week, team2))
		}
	}

	if rivalry.AvgMargin < s.settings.CloseGameMargin {
		lines = append(lines, fmt.Sprintf("These matchups are always close - average margin of victory is only %.1f points!", rivalry.AvgMargin))
	}

	return lines, nil
}
