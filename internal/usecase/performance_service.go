package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
	"github.com/greatestleague/dashboard-api/internal/domain/stats"
)

// PerformanceService profiles teams over time: scoring volatility,
// close-game nerve, personality, season-over-season trends and schedule
// strength.
type PerformanceService struct {
	matchupRepo  matchup.Repository
	standingRepo standing.Repository
	resolver     *identity.Resolver
	settings     league.Settings
}

func NewPerformanceService(matchupRepo matchup.Repository, standingRepo standing.Repository, resolver *identity.Resolver, settings league.Settings) *PerformanceService {
	return &PerformanceService{
		matchupRepo:  matchupRepo,
		standingRepo: standingRepo,
		resolver:     resolver,
		settings:     settings,
	}
}

// Consistency ranks teams by coefficient of variation, steadiest first.
func (s *PerformanceService) Consistency(ctx context.Context) ([]stats.Consistency, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Consistency")
	defer span.End()

	records, err := s.listNormalized(ctx)
	if err != nil {
		return nil, err
	}
	return s.consistencyFrom(records), nil
}

func (s *PerformanceService) consistencyFrom(records []matchup.Record) []stats.Consistency {
	log := buildTeamGameLog(records)

	results := make([]stats.Consistency, 0, len(log.teams))
	for _, team := range log.teams {
		games := log.games[team]
		if len(games) < s.settings.MinConsistencyGames {
			continue
		}

		sum := 0.0
		minScore := math.Inf(1)
		maxScore := math.Inf(-1)
		for _, game := range games {
			sum += game.score
			minScore = math.Min(minScore, game.score)
			maxScore = math.Max(maxScore, game.score)
		}
		avg := sum / float64(len(games))

		variance := 0.0
		for _, game := range games {
			diff := game.score - avg
			variance += diff * diff
		}
		variance /= float64(len(games))
		stdDev := math.Sqrt(variance)

		cv := 0.0
		if avg > 0 {
			cv = stdDev / avg * 100
		}

		results = append(results, stats.Consistency{
			Team:                   team,
			AvgScore:               round2(avg),
			StdDev:                 round2(stdDev),
			CoefficientOfVariation: round2(cv),
			GamesPlayed:            len(games),
			MinScore:               minScore,
			MaxScore:               maxScore,
			Range:                  maxScore - minScore,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CoefficientOfVariation < results[j].CoefficientOfVariation
	})
	return results
}

// Clutch compares each team's record when the margin stays inside the
// close-game threshold against its overall record.
func (s *PerformanceService) Clutch(ctx context.Context) ([]stats.Clutch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Clutch")
	defer span.End()

	records, err := s.listNormalized(ctx)
	if err != nil {
		return nil, err
	}
	return s.clutchFrom(records), nil
}

func (s *PerformanceService) clutchFrom(records []matchup.Record) []stats.Clutch {
	log := buildTeamGameLog(records)

	results := make([]stats.Clutch, 0, len(log.teams))
	for _, team := range log.teams {
		games := log.games[team]

		var allWins, allLosses, allTies int
		var closeWins, closeLosses, closeTies, closeTotal int
		for _, game := range games {
			switch {
			case game.tie:
				allTies++
			case game.won:
				allWins++
			default:
				allLosses++
			}

			if math.Abs(game.score-game.opponentScore) >= s.settings.CloseGameMargin {
				continue
			}
			closeTotal++
			switch {
			case game.tie:
				closeTies++
			case game.won:
				closeWins++
			default:
				closeLosses++
			}
		}

		if closeTotal < s.settings.MinCloseGames {
			continue
		}

		closeWinPct := (float64(closeWins) + float64(closeTies)*0.5) / float64(closeTotal) * 100
		allGames := allWins + allLosses + allTies
		allWinPct := 0.0
		if allGames > 0 {
			allWinPct = (float64(allWins) + float64(allTies)*0.5) / float64(allGames) * 100
		}

		results = append(results, stats.Clutch{
			Team:         team,
			CloseGames:   closeTotal,
			CloseWins:    closeWins,
			CloseLosses:  closeLosses,
			CloseTies:    closeTies,
			CloseWinPct:  round1(closeWinPct),
			AllWinPct:    round1(allWinPct),
			ClutchFactor: round1(closeWinPct - allWinPct),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ClutchFactor > results[j].ClutchFactor
	})
	return results
}

// TeamDNA combines volatility, clutch play and postseason history into a
// personality profile per team.
func (s *PerformanceService) TeamDNA(ctx context.Context) ([]stats.TeamDNA, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.TeamDNA")
	defer span.End()

	records, err := s.listNormalized(ctx)
	if err != nil {
		return nil, err
	}

	finals, err := s.standingRepo.List(ctx, standing.ViewFinal)
	if err != nil {
		return nil, fmt.Errorf("list final standings: %w", err)
	}
	finals = s.resolver.NormalizeStandings(finals)

	consistency := s.consistencyFrom(records)
	consistencyByTeam := make(map[string]*stats.Consistency, len(consistency))
	for i := range consistency {
		consistencyByTeam[consistency[i].Team] = &consistency[i]
	}

	clutch := s.clutchFrom(records)
	clutchByTeam := make(map[string]*stats.Clutch, len(clutch))
	for i := range clutch {
		clutchByTeam[clutch[i].Team] = &clutch[i]
	}

	championships := make(map[string]int)
	playoffApps := make(map[string]int)
	seasons := make(map[string]int)
	for _, row := range finals {
		if row.Year > s.settings.CompletedSeasonCutoff {
			continue
		}
		seasons[row.TeamName]++
		if row.Place == 1 {
			championships[row.TeamName]++
		}
		if row.Place <= s.settings.PlayoffSpots {
			playoffApps[row.TeamName]++
		}
	}

	var teams []string
	seen := make(map[string]bool)
	addTeam := func(team string) {
		if team != "" && !seen[team] {
			seen[team] = true
			teams = append(teams, team)
		}
	}
	for _, c := range consistency {
		addTeam(c.Team)
	}
	for _, c := range clutch {
		addTeam(c.Team)
	}
	for _, row := range finals {
		if row.Year <= s.settings.CompletedSeasonCutoff {
			addTeam(row.TeamName)
		}
	}

	profiles := make([]stats.TeamDNA, 0, len(teams))
	for _, team := range teams {
		profile := stats.TeamDNA{
			Team:               team,
			Personality:        "Balanced",
			Consistency:        consistencyByTeam[team],
			Clutch:             clutchByTeam[team],
			Championships:      championships[team],
			PlayoffAppearances: playoffApps[team],
			Seasons:            seasons[team],
		}

		if cons := profile.Consistency; cons != nil {
			switch {
			case cons.CoefficientOfVariation < 15:
				profile.Traits = append(profile.Traits, "Steady Eddie")
				profile.Personality = "Consistent Contender"
			case cons.CoefficientOfVariation > 25:
				profile.Traits = append(profile.Traits, "Boom or Bust")
				profile.Personality = "High Risk, High Reward"
			}
		}

		if clu := profile.Clutch; clu != nil {
			switch {
			case clu.ClutchFactor > 10:
				profile.Traits = append(profile.Traits, "Clutch Performer")
			case clu.ClutchFactor < -10:
				profile.Traits = append(profile.Traits, "Chokes Under Pressure")
			}
		}

		if profile.Seasons > 0 {
			rate := float64(profile.PlayoffAppearances) / float64(profile.Seasons) * 100
			profile.PlayoffRate = round1(rate)
			if rate > 70 && profile.Championships == 0 {
				profile.Traits = append(profile.Traits, "Regular Season Hero")
				profile.Personality = "Playoff Underachiever"
			} else if profile.Championships > 0 && rate < 30 {
				profile.Traits = append(profile.Traits, "Spoiler Specialist")
			}
		}

		if len(profile.Traits) == 0 {
			profile.Traits = []string{"Balanced"}
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// PointsTrends tracks each team's season-over-season scoring direction
// across completed seasons.
func (s *PerformanceService) PointsTrends(ctx context.Context) (map[string]stats.PointsTrend, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.PointsTrends")
	defer span.End()

	records, err := s.listNormalized(ctx)
	if err != nil {
		return nil, err
	}

	var historical []matchup.Record
	for _, record := range records {
		if record.Year <= s.settings.CompletedSeasonCutoff {
			historical = append(historical, record)
		}
	}
	log := buildTeamGameLog(historical)

	trends := make(map[string]stats.PointsTrend, len(log.teams))
	for _, team := range log.teams {
		games := log.games[team]

		byYear := make(map[int][]float64)
		var years []int
		for _, game := range games {
			if _, seen := byYear[game.year]; !seen {
				years = append(years, game.year)
			}
			byYear[game.year] = append(byYear[game.year], game.score)
		}
		sort.Ints(years)

		yearly := make([]stats.YearlyAverage, 0, len(years))
		for _, year := range years {
			scores := byYear[year]
			total := 0.0
			for _, score := range scores {
				total += score
			}
			yearly = append(yearly, stats.YearlyAverage{
				Year:        year,
				AvgScore:    round2(total / float64(len(scores))),
				Games:       len(scores),
				TotalPoints: total,
			})
		}

		trend := "stable"
		if len(yearly) >= 3 {
			recent := 0.0
			for _, y := range yearly[len(yearly)-3:] {
				recent += y.AvgScore
			}
			recent /= 3

			older := yearly[0].AvgScore
			if len(yearly) >= 6 {
				older = 0
				for _, y := range yearly[:3] {
					older += y.AvgScore
				}
				older /= 3
			}

			switch {
			case recent > older:
				trend = "improving"
			case recent < older:
				trend = "declining"
			}
		}

		overall := 0.0
		for _, y := range yearly {
			overall += y.AvgScore
		}

		trends[team] = stats.PointsTrend{
			YearlyAverages: yearly,
			Trend:          trend,
			CurrentAvg:     yearly[len(yearly)-1].AvgScore,
			OverallAvg:     round2(overall / float64(len(yearly))),
		}
	}

	return trends, nil
}

// MatchupDifficulty rates each current-season schedule by the win rate
// of the opponents already faced.
func (s *PerformanceService) MatchupDifficulty(ctx context.Context) ([]stats.MatchupDifficulty, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.MatchupDifficulty")
	defer span.End()

	rows, err := s.standingRepo.ListByYear(ctx, standing.ViewRegular, s.settings.CurrentSeason)
	if err != nil {
		return nil, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	// Win rate here deliberately ignores ties: it measures decided games.
	strength := make(map[string]float64, len(rows))
	for _, row := range rows {
		decided := row.Wins + row.Losses
		pct := 0.0
		if decided > 0 {
			pct = float64(row.Wins) / float64(decided) * 100
		}
		strength[row.TeamName] = pct
	}

	records, err := s.matchupRepo.ListByYear(ctx, s.settings.CurrentSeason)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)
	matchup.SortChronological(records)

	opponents := make(map[string][]float64)
	var order []string
	face := func(team string, oppStrength float64) {
		if _, seen := opponents[team]; !seen {
			order = append(order, team)
		}
		opponents[team] = append(opponents[team], oppStrength)
	}
	for _, record := range records {
		s1, ok1 := strength[record.Team1]
		s2, ok2 := strength[record.Team2]
		if !ok1 || !ok2 {
			continue
		}
		face(record.Team1, s2)
		face(record.Team2, s1)
	}

	results := make([]stats.MatchupDifficulty, 0, len(order))
	for _, team := range order {
		faced := opponents[team]
		total := 0.0
		for _, pct := range faced {
			total += pct
		}
		avg := total / float64(len(faced))

		rating := "Average"
		switch {
		case avg > 55:
			rating = "Hard"
		case avg < 45:
			rating = "Easy"
		}

		results = append(results, stats.MatchupDifficulty{
			Team:              team,
			AvgOpponentWinPct: avg,
			OpponentsFaced:    len(faced),
			DifficultyRating:  rating,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AvgOpponentWinPct > results[j].AvgOpponentWinPct
	})
	return results, nil
}

func (s *PerformanceService) listNormalized(ctx context.Context) ([]matchup.Record, error) {
	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	return s.resolver.NormalizeMatchups(records), nil
}
