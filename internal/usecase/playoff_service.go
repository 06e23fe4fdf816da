package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
	"github.com/greatestleague/dashboard-api/internal/domain/stats"
)

// PlayoffService classifies every team's bracket chances with one week
// of the regular season left. It enumerates every combination of
// final-week results (win, loss or tie per game) and checks, under the
// wins-then-points tie-break, which outcomes put each team inside the
// bracket.
type PlayoffService struct {
	matchupRepo  matchup.Repository
	standingRepo standing.Repository
	resolver     *identity.Resolver
	settings     league.Settings
}

func NewPlayoffService(matchupRepo matchup.Repository, standingRepo standing.Repository, resolver *identity.Resolver, settings league.Settings) *PlayoffService {
	return &PlayoffService{
		matchupRepo:  matchupRepo,
		standingRepo: standingRepo,
		resolver:     resolver,
		settings:     settings,
	}
}

type playoffContender struct {
	name      string
	wins      int
	losses    int
	pointsFor float64
}

func (c playoffContender) record() string {
	return fmt.Sprintf("%d-%d", c.wins, c.losses)
}

type finalWeekGame struct {
	team1 string
	team2 string
}

const (
	outcomeTeam1Wins = 0
	outcomeTeam2Wins = 1
	outcomeTie       = 2
)

// Scenarios sweeps all 3^G final-week outcomes for the current season.
func (s *PlayoffService) Scenarios(ctx context.Context) (stats.PlayoffScenarios, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.Scenarios")
	defer span.End()

	result := stats.PlayoffScenarios{
		Locked:            []stats.PlayoffTeam{},
		CanMakeIt:         []stats.PlayoffTeam{},
		Eliminated:        []stats.PlayoffTeam{},
		FinalWeekMatchups: []stats.PlayoffMatchup{},
		PlayoffSpots:      s.settings.PlayoffSpots,
		CurrentWeek:       s.settings.FinalWeek,
	}

	rows, err := s.standingRepo.ListByYear(ctx, standing.ViewRegular, s.settings.CurrentSeason)
	if err != nil {
		return stats.PlayoffScenarios{}, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)
	if len(rows) == 0 {
		return result, nil
	}

	contenders := make([]playoffContender, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		if row.TeamName == "" {
			continue
		}
		if _, dup := index[row.TeamName]; dup {
			continue
		}
		index[row.TeamName] = len(contenders)
		contenders = append(contenders, playoffContender{
			name:      row.TeamName,
			wins:      row.Wins,
			losses:    row.Losses,
			pointsFor: row.PointsFor,
		})
	}

	weekRecords, err := s.matchupRepo.ListByWeek(ctx, s.settings.CurrentSeason, s.settings.FinalWeek)
	if err != nil {
		return stats.PlayoffScenarios{}, fmt.Errorf("list matchups: %w", err)
	}
	weekRecords = s.resolver.NormalizeMatchups(weekRecords)

	var games []finalWeekGame
	for _, record := range weekRecords {
		i1, ok1 := index[record.Team1]
		i2, ok2 := index[record.Team2]
		if !ok1 || !ok2 {
			continue
		}
		games = append(games, finalWeekGame{team1: record.Team1, team2: record.Team2})
		result.FinalWeekMatchups = append(result.FinalWeekMatchups, stats.PlayoffMatchup{
			Team1:       record.Team1,
			Team2:       record.Team2,
			Team1Record: contenders[i1].record(),
			Team2Record: contenders[i2].record(),
			Team1Points: contenders[i1].pointsFor,
			Team2Points: contenders[i2].pointsFor,
		})
	}

	qualifying := s.sweepOutcomes(contenders, index, games)

	gameByTeam := make(map[string]int, len(index))
	for team := range index {
		gameByTeam[team] = -1
	}
	for i, game := range games {
		gameByTeam[game.team1] = i
		gameByTeam[game.team2] = i
	}

	outcomeCount := 1
	for range games {
		outcomeCount *= 3
	}

	for i, contender := range contenders {
		qualified := qualifying[i]
		entry := stats.PlayoffTeam{
			Team:      contender.name,
			Record:    contender.record(),
			PointsFor: contender.pointsFor,
		}

		switch {
		case len(qualified) == outcomeCount:
			entry.Status = "Locked for Playoffs"
			entry.Reason = fmt.Sprintf("%s record (cannot be eliminated)", contender.record())
			result.Locked = append(result.Locked, entry)

		case len(qualified) == 0:
			entry.Status = "Eliminated"
			result.Eliminated = append(result.Eliminated, entry)

		default:
			ownGame := gameByTeam[contender.name]
			if ownGame >= 0 {
				game := games[ownGame]
				opponent := game.team2
				if game.team2 == contender.name {
					opponent = game.team1
				}
				entry.Opponent = opponent
				entry.OpponentRecord = contenders[index[opponent]].record()

				if winGuarantees(qualified, outcomeCount, ownGame, game.team1 == contender.name) {
					entry.Status = "Controls Own Destiny"
					entry.Needs = []string{fmt.Sprintf("Win vs %s in Week %d", opponent, s.settings.FinalWeek)}
					result.CanMakeIt = append(result.CanMakeIt, entry)
					break
				}
			}

			entry.Status = "Needs Help"
			entry.Needs = s.describeNeeds(contender.name, qualified, games, gameByTeam)
			result.CanMakeIt = append(result.CanMakeIt, entry)
		}
	}

	byStanding := func(list []stats.PlayoffTeam) {
		sort.SliceStable(list, func(i, j int) bool {
			a := contenders[index[list[i].Team]]
			b := contenders[index[list[j].Team]]
			if a.wins != b.wins {
				return a.wins > b.wins
			}
			return a.pointsFor > b.pointsFor
		})
	}
	byStanding(result.Locked)
	byStanding(result.CanMakeIt)
	byStanding(result.Eliminated)

	return result, nil
}

// sweepOutcomes returns, per contender, the set of outcome codes under
// which the contender finishes inside the bracket. An outcome code is a
// base-3 number with one digit per final-week game.
func (s *PlayoffService) sweepOutcomes(contenders []playoffContender, index map[string]int, games []finalWeekGame) []map[int]bool {
	qualifying := make([]map[int]bool, len(contenders))
	for i := range qualifying {
		qualifying[i] = make(map[int]bool)
	}

	outcomeCount := 1
	for range games {
		outcomeCount *= 3
	}

	wins := make([]int, len(contenders))
	ranked := make([]int, len(contenders))

	for code := 0; code < outcomeCount; code++ {
		for i, contender := range contenders {
			wins[i] = contender.wins
			ranked[i] = i
		}

		rest := code
		for _, game := range games {
			switch rest % 3 {
			case outcomeTeam1Wins:
				wins[index[game.team1]]++
			case outcomeTeam2Wins:
				wins[index[game.team2]]++
			}
			rest /= 3
		}

		sort.SliceStable(ranked, func(a, b int) bool {
			if wins[ranked[a]] != wins[ranked[b]] {
				return wins[ranked[a]] > wins[ranked[b]]
			}
			return contenders[ranked[a]].pointsFor > contenders[ranked[b]].pointsFor
		})

		spots := s.settings.PlayoffSpots
		if spots > len(ranked) {
			spots = len(ranked)
		}
		for _, i := range ranked[:spots] {
			qualifying[i][code] = true
		}
	}

	return qualifying
}

// winGuarantees reports whether every outcome in which the team wins its
// own game is a qualifying outcome.
func winGuarantees(qualified map[int]bool, outcomeCount, gameIdx int, isTeam1 bool) bool {
	winDigit := outcomeTeam2Wins
	if isTeam1 {
		winDigit = outcomeTeam1Wins
	}
	for code := 0; code < outcomeCount; code++ {
		if digitAt(code, gameIdx) != winDigit {
			continue
		}
		if !qualified[code] {
			return false
		}
	}
	return true
}

// describeNeeds derives the human-readable conditions shared by every
// qualifying outcome: the team's own must-win, plus any rival that has
// to lose across the board.
func (s *PlayoffService) describeNeeds(team string, qualified map[int]bool, games []finalWeekGame, gameByTeam map[string]int) []string {
	var needs []string

	ownGame := gameByTeam[team]
	if ownGame >= 0 {
		game := games[ownGame]
		winDigit := outcomeTeam2Wins
		opponent := game.team1
		if game.team1 == team {
			winDigit = outcomeTeam1Wins
			opponent = game.team2
		}
		mustWin := true
		for code := range qualified {
			if digitAt(code, ownGame) != winDigit {
				mustWin = false
				break
			}
		}
		if mustWin {
			needs = append(needs, fmt.Sprintf("Win vs %s in Week %d", opponent, s.settings.FinalWeek))
		}
	}

	// A rival "loses" when it fails to win; a tie keeps it behind just
	// as well as a defeat.
	for i, game := range games {
		if i == ownGame {
			continue
		}
		team1NeverWins, team2NeverWins := true, true
		for code := range qualified {
			switch digitAt(code, i) {
			case outcomeTeam1Wins:
				team1NeverWins = false
			case outcomeTeam2Wins:
				team2NeverWins = false
			}
		}
		if team1NeverWins && !team2NeverWins {
			needs = append(needs, fmt.Sprintf("%s lose vs %s", game.team1, game.team2))
		}
		if team2NeverWins && !team1NeverWins {
			needs = append(needs, fmt.Sprintf("%s lose vs %s", game.team2, game.team1))
		}
	}

	return needs
}

func digitAt(code, idx int) int {
	for ; idx > 0; idx-- {
		code /= 3
	}
	return code % 3
}
