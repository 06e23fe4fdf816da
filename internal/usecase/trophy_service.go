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

// TrophyService assembles each team's career achievements from the
// standings snapshots and the matchup history.
type TrophyService struct {
	matchupRepo  matchup.Repository
	standingRepo standing.Repository
	resolver     *identity.Resolver
	settings     league.Settings
}

func NewTrophyService(matchupRepo matchup.Repository, standingRepo standing.Repository, resolver *identity.Resolver, settings league.Settings) *TrophyService {
	return &TrophyService{
		matchupRepo:  matchupRepo,
		standingRepo: standingRepo,
		resolver:     resolver,
		settings:     settings,
	}
}

// TrophyCase returns every team's trophy shelf. Season honors only count
// completed seasons; the weekly-score and streak records cover the whole
// history, current season included.
func (s *TrophyService) TrophyCase(ctx context.Context) (map[string]stats.TrophyCase, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrophyService.TrophyCase")
	defer span.End()

	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)

	finals, err := s.standingRepo.List(ctx, standing.ViewFinal)
	if err != nil {
		return nil, fmt.Errorf("list final standings: %w", err)
	}
	finals = s.resolver.NormalizeStandings(finals)

	regulars, err := s.standingRepo.List(ctx, standing.ViewRegular)
	if err != nil {
		return nil, fmt.Errorf("list regular standings: %w", err)
	}
	regulars = s.resolver.NormalizeStandings(regulars)

	trophies := make(map[string]stats.TrophyCase)

	for _, row := range finals {
		if row.Year > s.settings.CompletedSeasonCutoff || row.TeamName == "" {
			continue
		}
		shelf := trophies[row.TeamName]
		if row.Place == 1 {
			shelf.Championships = append(shelf.Championships, row.Year)
		}
		if row.Place <= s.settings.PlayoffSpots {
			shelf.PlayoffAppearances = append(shelf.PlayoffAppearances, row.Year)
		}
		if row.Place == s.settings.LeagueSize {
			shelf.Spoons = append(shelf.Spoons, row.Year)
		}
		trophies[row.TeamName] = shelf
	}

	for _, record := range records {
		if record.Team1 != "" {
			shelf := trophies[record.Team1]
			if record.Team1Score > shelf.HighestWeeklyScore.Score {
				shelf.HighestWeeklyScore = stats.WeeklyHigh{Score: record.Team1Score, Year: record.Year, Week: record.Week}
				trophies[record.Team1] = shelf
			}
		}
		if record.Team2 != "" {
			shelf := trophies[record.Team2]
			if record.Team2Score > shelf.HighestWeeklyScore.Score {
				shelf.HighestWeeklyScore = stats.WeeklyHigh{Score: record.Team2Score, Year: record.Year, Week: record.Week}
				trophies[record.Team2] = shelf
			}
		}
	}

	log := buildTeamGameLog(records)
	for _, team := range log.teams {
		streak := longestWinStreak(log.games[team])
		shelf := trophies[team]
		if streak > shelf.LongestWinStreak {
			shelf.LongestWinStreak = streak
			trophies[team] = shelf
		}
	}

	for _, row := range regulars {
		if row.Year > s.settings.CompletedSeasonCutoff || row.TeamName == "" {
			continue
		}
		if row.Losses == 0 && row.Wins >= s.settings.PerfectSeasonMinWins {
			shelf := trophies[row.TeamName]
			shelf.PerfectSeasons = append(shelf.PerfectSeasons, row.Year)
			trophies[row.TeamName] = shelf
		}
	}

	for _, title := range scoringTitleWinners(regulars, s.settings.CompletedSeasonCutoff) {
		shelf := trophies[title.team]
		shelf.ScoringTitles = append(shelf.ScoringTitles, title.year)
		trophies[title.team] = shelf
	}

	for team, shelf := range trophies {
		sortYearsDesc(shelf.Championships)
		sortYearsDesc(shelf.PlayoffAppearances)
		sortYearsDesc(shelf.Spoons)
		sortYearsDesc(shelf.PerfectSeasons)
		sortYearsDesc(shelf.ScoringTitles)
		trophies[team] = shelf
	}

	return trophies, nil
}

// longestWinStreak walks one team's chronological games. Only win runs
// count; ties and losses both end a run.
func longestWinStreak(games []teamGame) int {
	maxStreak := 0
	run, runIsWin := 0, false

	record := func() {
		if runIsWin && run > maxStreak {
			maxStreak = run
		}
	}

	started := false
	for _, game := range games {
		if game.tie {
			record()
			run, runIsWin, started = 0, false, false
			continue
		}
		switch {
		case !started:
			started = true
			runIsWin = game.won
			run = 1
		case game.won == runIsWin:
			run++
		default:
			record()
			runIsWin = game.won
			run = 1
		}
	}
	record()
	return maxStreak
}

type scoringTitle struct {
	team   string
	year   int
	points float64
}

// scoringTitleWinners finds each completed season's points-for leader.
// A tie at the top shares the title.
func scoringTitleWinners(regulars []standing.Record, cutoff int) []scoringTitle {
	pointsByYear := make(map[int]map[string]float64)
	var years []int
	teamOrder := make(map[int][]string)

	for _, row := range regulars {
		if row.Year > cutoff || row.TeamName == "" {
			continue
		}
		if _, seen := pointsByYear[row.Year]; !seen {
			pointsByYear[row.Year] = make(map[string]float64)
			years = append(years, row.Year)
		}
		if _, seen := pointsByYear[row.Year][row.TeamName]; !seen {
			teamOrder[row.Year] = append(teamOrder[row.Year], row.TeamName)
		}
		pointsByYear[row.Year][row.TeamName] = row.PointsFor
	}
	sort.Ints(years)

	var titles []scoringTitle
	for _, year := range years {
		points := pointsByYear[year]
		maxPoints := 0.0
		first := true
		for _, team := range teamOrder[year] {
			if first || points[team] > maxPoints {
				maxPoints = points[team]
				first = false
			}
		}
		for _, team := range teamOrder[year] {
			if points[team] == maxPoints {
				titles = append(titles, scoringTitle{team: team, year: year, points: maxPoints})
			}
		}
	}
	return titles
}

func sortYearsDesc(years []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
}
