package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
	"github.com/greatestleague/dashboard-api/internal/domain/stats"
)

// StandingService serves the standings-derived views: current and
// historical tables, career aggregates, scoring titles, the halls of
// fame and shame and the league-wide averages.
type StandingService struct {
	matchupRepo  matchup.Repository
	standingRepo standing.Repository
	resolver     *identity.Resolver
	settings     league.Settings
}

func NewStandingService(matchupRepo matchup.Repository, standingRepo standing.Repository, resolver *identity.Resolver, settings league.Settings) *StandingService {
	return &StandingService{
		matchupRepo:  matchupRepo,
		standingRepo: standingRepo,
		resolver:     resolver,
		settings:     settings,
	}
}

// CurrentStandings returns the current season's regular-season table,
// shaped for the frontend and sorted by place.
func (s *StandingService) CurrentStandings(ctx context.Context) ([]stats.StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.CurrentStandings")
	defer span.End()

	rows, err := s.standingRepo.ListByYear(ctx, standing.ViewRegular, s.settings.CurrentSeason)
	if err != nil {
		return nil, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	logos, err := s.logoIndex(ctx)
	if err != nil {
		return nil, err
	}

	table := make([]stats.StandingRow, 0, len(rows))
	for _, row := range rows {
		logo := row.TeamLogo
		if logo == "" {
			logo = logos[row.TeamName]
		}
		table = append(table, stats.StandingRow{
			ID:            fmt.Sprintf("%d_%d", row.Year, row.Place),
			Name:          row.TeamName,
			Wins:          row.Wins,
			Losses:        row.Losses,
			Ties:          row.Ties,
			PointsFor:     row.PointsFor,
			PointsAgainst: row.PointsAgainst,
			Place:         row.Place,
			Logo:          logo,
		})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Place < table[j].Place
	})
	return table, nil
}

// HistoricalStandings returns every regular-season row with names
// normalized, all seasons included.
func (s *StandingService) HistoricalStandings(ctx context.Context) ([]standing.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.HistoricalStandings")
	defer span.End()

	rows, err := s.standingRepo.List(ctx, standing.ViewRegular)
	if err != nil {
		return nil, fmt.Errorf("list regular standings: %w", err)
	}
	return s.resolver.NormalizeStandings(rows), nil
}

// HistoricalStats tallies championships, playoff berths and wooden
// spoons per team from the final standings of completed seasons. A
// championship counts as a playoff berth too.
func (s *StandingService) HistoricalStats(ctx context.Context) (stats.HistoricalStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.HistoricalStats")
	defer span.End()

	rows, err := s.standingRepo.List(ctx, standing.ViewFinal)
	if err != nil {
		return stats.HistoricalStats{}, fmt.Errorf("list final standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	logos, err := s.logoIndex(ctx)
	if err != nil {
		return stats.HistoricalStats{}, err
	}

	result := stats.HistoricalStats{
		SuperBowls: make(map[string]stats.HonorCount),
		Playoffs:   make(map[string]stats.HonorCount),
		Spoons:     make(map[string]stats.HonorCount),
	}
	honor := func(bucket map[string]stats.HonorCount, team string, year int) {
		entry := bucket[team]
		entry.Count++
		entry.Years = append(entry.Years, year)
		entry.Logo = logos[team]
		bucket[team] = entry
	}

	for _, row := range rows {
		if row.Year > s.settings.CompletedSeasonCutoff || row.TeamName == "" {
			continue
		}
		switch {
		case row.Place == 1:
			honor(result.SuperBowls, row.TeamName, row.Year)
			honor(result.Playoffs, row.TeamName, row.Year)
		case row.Place <= s.settings.PlayoffSpots:
			honor(result.Playoffs, row.TeamName, row.Year)
		case row.Place == s.settings.LeagueSize:
			honor(result.Spoons, row.TeamName, row.Year)
		}
	}

	for _, bucket := range []map[string]stats.HonorCount{result.SuperBowls, result.Playoffs, result.Spoons} {
		for team, entry := range bucket {
			sort.Ints(entry.Years)
			bucket[team] = entry
		}
	}
	return result, nil
}

// AllTimeTeamStats aggregates regular-season career totals: points
// scored, win percentage (decided games only) and points conceded.
func (s *StandingService) AllTimeTeamStats(ctx context.Context) (stats.AllTimeTeamStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.AllTimeTeamStats")
	defer span.End()

	rows, err := s.standingRepo.List(ctx, standing.ViewRegular)
	if err != nil {
		return stats.AllTimeTeamStats{}, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	logos, err := s.logoIndex(ctx)
	if err != nil {
		return stats.AllTimeTeamStats{}, err
	}

	type careerTotals struct {
		pointsFor     float64
		pointsAgainst float64
		wins          int
		losses        int
		ties          int
		seasons       int
	}
	totals := make(map[string]*careerTotals)
	var order []string

	for _, row := range rows {
		if row.Year > s.settings.CompletedSeasonCutoff || row.TeamName == "" {
			continue
		}
		career, ok := totals[row.TeamName]
		if !ok {
			career = &careerTotals{}
			totals[row.TeamName] = career
			order = append(order, row.TeamName)
		}
		career.pointsFor += row.PointsFor
		career.pointsAgainst += row.PointsAgainst
		career.wins += row.Wins
		career.losses += row.Losses
		career.ties += row.Ties
		career.seasons++
	}

	var result stats.AllTimeTeamStats
	for _, team := range order {
		career := totals[team]
		games := career.wins + career.losses + career.ties
		winPct := 0.0
		if games > 0 {
			winPct = float64(career.wins) / float64(games) * 100
		}
		logo := logos[team]

		result.MostPointsScored = append(result.MostPointsScored, stats.CareerPoints{
			Team: team, Points: round2(career.pointsFor), Seasons: career.seasons, Logo: logo,
		})
		result.HighestWinPct = append(result.HighestWinPct, stats.CareerWinPct{
			Team: team, WinPct: round2(winPct),
			Wins: career.wins, Losses: career.losses, Ties: career.ties,
			Seasons: career.seasons, Logo: logo,
		})
		result.MostPointsAgainst = append(result.MostPointsAgainst, stats.CareerPoints{
			Team: team, Points: round2(career.pointsAgainst), Seasons: career.seasons, Logo: logo,
		})
	}

	sort.SliceStable(result.MostPointsScored, func(i, j int) bool {
		return result.MostPointsScored[i].Points > result.MostPointsScored[j].Points
	})
	sort.SliceStable(result.HighestWinPct, func(i, j int) bool {
		return result.HighestWinPct[i].WinPct > result.HighestWinPct[j].WinPct
	})
	sort.SliceStable(result.MostPointsAgainst, func(i, j int) bool {
		return result.MostPointsAgainst[i].Points > result.MostPointsAgainst[j].Points
	})
	return result, nil
}

// ScoringTitles lists each season's points-for champion, ties sharing
// the title, grouped per team.
func (s *StandingService) ScoringTitles(ctx context.Context) ([]stats.ScoringTitle, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ScoringTitles")
	defer span.End()

	rows, err := s.standingRepo.List(ctx, standing.ViewRegular)
	if err != nil {
		return nil, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	logos, err := s.logoIndex(ctx)
	if err != nil {
		return nil, err
	}

	byTeam := make(map[string]*stats.ScoringTitle)
	var order []string
	for _, title := range scoringTitleWinners(rows, s.settings.CompletedSeasonCutoff) {
		entry, ok := byTeam[title.team]
		if !ok {
			entry = &stats.ScoringTitle{Team: title.team, Logo: logos[title.team]}
			byTeam[title.team] = entry
			order = append(order, title.team)
		}
		entry.Count++
		entry.Years = append(entry.Years, stats.ScoringTitleYear{Year: title.year, Points: round2(title.points)})
	}

	result := make([]stats.ScoringTitle, 0, len(order))
	for _, team := range order {
		entry := byTeam[team]
		sort.SliceStable(entry.Years, func(i, j int) bool {
			return entry.Years[i].Year < entry.Years[j].Year
		})
		result = append(result, *entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		firstYear := func(t stats.ScoringTitle) int {
			if len(t.Years) == 0 {
				return 9999
			}
			return t.Years[0].Year
		}
		return firstYear(result[i]) < firstYear(result[j])
	})
	return result, nil
}

// WinPctByYear shapes regular-season win percentage into line-chart
// rows, one per completed season, with nil for teams that sat out.
func (s *StandingService) WinPctByYear(ctx context.Context) ([]map[string]any, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.WinPctByYear")
	defer span.End()

	rows, err := s.standingRepo.List(ctx, standing.ViewRegular)
	if err != nil {
		return nil, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	byYear := make(map[int]map[string]float64)
	var years []int
	teamSet := make(map[string]bool)
	var teams []string

	for _, row := range rows {
		if row.Year > s.settings.CompletedSeasonCutoff || row.TeamName == "" {
			continue
		}
		if _, seen := byYear[row.Year]; !seen {
			byYear[row.Year] = make(map[string]float64)
			years = append(years, row.Year)
		}
		byYear[row.Year][row.TeamName] = round2(row.WinRate())
		if !teamSet[row.TeamName] {
			teamSet[row.TeamName] = true
			teams = append(teams, row.TeamName)
		}
	}
	sort.Ints(years)

	chart := make([]map[string]any, 0, len(years))
	for _, year := range years {
		row := map[string]any{"year": year}
		for _, team := range teams {
			if pct, ok := byYear[year][team]; ok {
				row[team] = pct
			} else {
				row[team] = nil
			}
		}
		chart = append(chart, row)
	}
	return chart, nil
}

// AllTimeWins ranks teams by career wins: regular-season wins from the
// standings plus postseason wins from the matchup history.
func (s *StandingService) AllTimeWins(ctx context.Context) ([]stats.AllTimeWins, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.AllTimeWins")
	defer span.End()

	rows, err := s.standingRepo.List(ctx, standing.ViewRegular)
	if err != nil {
		return nil, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)

	logos, err := s.logoIndex(ctx)
	if err != nil {
		return nil, err
	}

	type winTotals struct {
		regularWins   int
		regularLosses int
		regularTies   int
		playoffWins   int
		playoffLosses int
		years         map[int]bool
	}
	totals := make(map[string]*winTotals)
	var order []string
	totalsFor := func(team string) *winTotals {
		entry, ok := totals[team]
		if !ok {
			entry = &winTotals{years: make(map[int]bool)}
			totals[team] = entry
			order = append(order, team)
		}
		return entry
	}

	for _, row := range rows {
		if row.Year > s.settings.CompletedSeasonCutoff || row.TeamName == "" {
			continue
		}
		entry := totalsFor(row.TeamName)
		entry.regularWins += row.Wins
		entry.regularLosses += row.Losses
		entry.regularTies += row.Ties
		entry.years[row.Year] = true
	}

	for _, record := range records {
		if record.Year > s.settings.CompletedSeasonCutoff {
			continue
		}
		if record.WeekType != matchup.WeekTypePlayoff && record.WeekType != matchup.WeekTypeSuperbowl {
			continue
		}
		if record.Team1 == "" || record.Team2 == "" || record.IsTie() {
			continue
		}
		switch record.Winner {
		case record.Team1:
			totalsFor(record.Team1).playoffWins++
			totalsFor(record.Team2).playoffLosses++
		case record.Team2:
			totalsFor(record.Team2).playoffWins++
			totalsFor(record.Team1).playoffLosses++
		}
	}

	result := make([]stats.AllTimeWins, 0, len(order))
	for _, team := range order {
		entry := totals[team]
		totalWins := entry.regularWins + entry.playoffWins
		totalLosses := entry.regularLosses + entry.playoffLosses
		result = append(result, stats.AllTimeWins{
			Team:          team,
			RegularWins:   entry.regularWins,
			PlayoffWins:   entry.playoffWins,
			TotalWins:     totalWins,
			RegularLosses: entry.regularLosses,
			PlayoffLosses: entry.playoffLosses,
			TotalLosses:   totalLosses,
			TotalTies:     entry.regularTies,
			TotalGames:    totalWins + totalLosses + entry.regularTies,
			YearsActive:   len(entry.years),
			Logo:          logos[team],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalWins > result[j].TotalWins
	})
	for i := range result {
		result[i].Rank = i + 1
	}
	return result, nil
}

// LeagueStats combines historical league-wide averages with per-team
// cards for the current season.
func (s *StandingService) LeagueStats(ctx context.Context) (stats.LeagueStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.LeagueStats")
	defer span.End()

	rows, err := s.standingRepo.List(ctx, standing.ViewRegular)
	if err != nil {
		return stats.LeagueStats{}, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return stats.LeagueStats{}, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)

	logos, err := s.logoIndex(ctx)
	if err != nil {
		return stats.LeagueStats{}, err
	}

	var historical, current []standing.Record
	for _, row := range rows {
		switch {
		case row.Year <= s.settings.CompletedSeasonCutoff:
			historical = append(historical, row)
		case row.Year == s.settings.CurrentSeason:
			current = append(current, row)
		}
	}

	mean := func(values []float64) float64 {
		if len(values) == 0 {
			return 0
		}
		total := 0.0
		for _, v := range values {
			total += v
		}
		return total / float64(len(values))
	}

	var winningScores []float64
	for _, record := range records {
		if record.Year > s.settings.CompletedSeasonCutoff {
			continue
		}
		winner := record.Team1Score
		if record.Team2Score > winner {
			winner = record.Team2Score
		}
		if winner > 0 {
			winningScores = append(winningScores, winner)
		}
	}

	var playoffWins, pointsFor, pointsAgainst, winPcts, differentials []float64
	totalGames := 0
	for _, row := range historical {
		if row.Place <= s.settings.PlayoffSpots {
			playoffWins = append(playoffWins, float64(row.Wins))
		}
		if row.PointsFor > 0 {
			pointsFor = append(pointsFor, row.PointsFor)
		}
		if row.PointsAgainst > 0 {
			pointsAgainst = append(pointsAgainst, row.PointsAgainst)
		}
		if row.Games() > 0 {
			winPcts = append(winPcts, row.WinRate())
		}
		differentials = append(differentials, row.PointsFor-row.PointsAgainst)
		totalGames += row.Games()
	}

	pointsPerGame := 0.0
	if totalGames > 0 {
		total := 0.0
		for _, pf := range pointsFor {
			total += pf
		}
		pointsPerGame = total / float64(totalGames)
	}

	// Winning scores per team, current season only, for the team cards.
	teamWinning := make(map[string][]float64)
	for _, record := range records {
		if record.Year != s.settings.CurrentSeason {
			continue
		}
		if record.Team1Score > record.Team2Score {
			teamWinning[record.Team1] = append(teamWinning[record.Team1], record.Team1Score)
		} else if record.Team2Score > record.Team1Score {
			teamWinning[record.Team2] = append(teamWinning[record.Team2], record.Team2Score)
		}
	}

	cards := make(map[string]stats.TeamSeasonCard, len(current))
	for _, row := range current {
		if row.TeamName == "" {
			continue
		}
		pointsPer := 0.0
		if row.Games() > 0 {
			pointsPer = row.PointsFor / float64(row.Games())
		}
		logo := row.TeamLogo
		if logo == "" {
			logo = logos[row.TeamName]
		}
		cards[row.TeamName] = stats.TeamSeasonCard{
			Name:              row.TeamName,
			Wins:              row.Wins,
			Losses:            row.Losses,
			Ties:              row.Ties,
			PointsFor:         row.PointsFor,
			PointsAgainst:     row.PointsAgainst,
			WinPct:            row.WinRate(),
			PointDifferential: row.PointsFor - row.PointsAgainst,
			AvgWinningScore:   round2(mean(teamWinning[row.TeamName])),
			PointsPerGame:     round2(pointsPer),
			Logo:              logo,
		}
	}

	return stats.LeagueStats{
		LeagueAverages: stats.LeagueAverages{
			AvgWinningScore:      round2(mean(winningScores)),
			AvgWinsForPlayoffs:   round2(mean(playoffWins)),
			AvgPointsFor:         round2(mean(pointsFor)),
			AvgPointsAgainst:     round2(mean(pointsAgainst)),
			AvgWinPct:            round2(mean(winPcts)),
			AvgPointsPerGame:     round2(pointsPerGame),
			AvgPointDifferential: round2(mean(differentials)),
		},
		TeamStats: cards,
	}, nil
}

// HallOfFame returns the league's inducted dynasties.
func (s *StandingService) HallOfFame(ctx context.Context) ([]stats.FameEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.HallOfFame")
	defer span.End()

	logos, err := s.logoIndex(ctx)
	if err != nil {
		return nil, err
	}

	inductees := []stats.FameEntry{
		{
			Team:  "Pels",
			Blurb: "The Palm Beach Pelicans have established themselves as a dynasty in The Greatest League. With multiple championships and consistent excellence, Pels has proven that beach vibes and fantasy dominance go hand in hand. Their strategic brilliance and unwavering consistency have earned them a permanent place among the league's elite.",
		},
		{
			Team:  "Maggi's Mighty Ducks",
			Blurb: "Quack, quack, champions! Maggi's Mighty Ducks have soared to incredible heights, capturing multiple Super Bowl titles and establishing themselves as one of the most successful franchises in league history. Their fearless approach and clutch performances in the biggest moments have cemented their legacy as true legends of The Greatest League.",
		},
		{
			Team:  "Killer Cam",
			Blurb: "The Killer Cam franchise has been a force to be reckoned with since day one. With championship pedigree and a reputation for making bold moves, Killer Cam has consistently been at the top of the league standings. Their killer instinct and championship DNA have rightfully earned them a spot in the Hall of Fame.",
		},
	}
	for i := range inductees {
		inductees[i].Logo = logos[s.resolver.Normalize(inductees[i].Team)]
	}
	return inductees, nil
}

// HallOfShame inducts teams with three or more completed seasons and no
// championship, with a blurb keyed to their average win percentage.
func (s *StandingService) HallOfShame(ctx context.Context) ([]stats.ShameEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.HallOfShame")
	defer span.End()

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

	logos, err := s.logoIndex(ctx)
	if err != nil {
		return nil, err
	}

	type shameTotals struct {
		years         map[int]bool
		championships int
		firstYear     int
		lastYear      int
	}
	totals := make(map[string]*shameTotals)
	var order []string

	for _, row := range finals {
		if row.Year > s.settings.CompletedSeasonCutoff || row.TeamName == "" {
			continue
		}
		entry, ok := totals[row.TeamName]
		if !ok {
			entry = &shameTotals{years: make(map[int]bool), firstYear: row.Year, lastYear: row.Year}
			totals[row.TeamName] = entry
			order = append(order, row.TeamName)
		}
		entry.years[row.Year] = true
		if row.Year < entry.firstYear {
			entry.firstYear = row.Year
		}
		if row.Year > entry.lastYear {
			entry.lastYear = row.Year
		}
		if row.Place == 1 {
			entry.championships++
		}
	}

	var inductees []stats.ShameEntry
	for _, team := range order {
		entry := totals[team]
		yearsActive := len(entry.years)
		if yearsActive < 3 || entry.championships > 0 {
			continue
		}

		winPctSum, seasons := 0.0, 0
		for _, row := range regulars {
			if row.TeamName == team && row.Year <= s.settings.CompletedSeasonCutoff {
				winPctSum += row.WinPct
				seasons++
			}
		}
		avgWinPct := 0.0
		if seasons > 0 {
			avgWinPct = winPctSum / float64(seasons)
		}

		yearsRange := fmt.Sprintf("%d-%d", entry.firstYear, entry.lastYear)
		var blurb string
		switch {
		case avgWinPct < 0.4:
			blurb = fmt.Sprintf("After %d long seasons (%s), %s has somehow managed to avoid the ultimate prize. With a win percentage that would make a participation trophy blush, they've perfected the art of 'almost, but not quite.' The championship trophy remains as elusive as their playoff hopes - always in sight, never in hand.", yearsActive, yearsRange, team)
		case avgWinPct < 0.5:
			blurb = fmt.Sprintf("Despite %d years of service (%s), %s has yet to taste championship glory. They've been the definition of 'consistently average,' showing up every year with hope and leaving with... well, more hope for next year. The Super Bowl ring continues to be the one that got away.", yearsActive, yearsRange, team)
		default:
			blurb = fmt.Sprintf("After %d seasons of competitive play (%s), %s has built a solid foundation but has yet to break through to the promised land. They've been so close, yet so far - the perennial 'almost champions' who keep knocking on the door but can't quite turn the handle. The championship banner remains unfurled, waiting for that magical season.", yearsActive, yearsRange, team)
		}

		inductees = append(inductees, stats.ShameEntry{
			Team:        team,
			Logo:        logos[team],
			YearsActive: yearsActive,
			YearsRange:  yearsRange,
			Blurb:       blurb,
		})
	}

	sort.SliceStable(inductees, func(i, j int) bool {
		return inductees[i].YearsActive > inductees[j].YearsActive
	})
	return inductees, nil
}

// Teams lists canonical team names, preferring the current standings
// and falling back to the matchup history.
func (s *StandingService) Teams(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Teams")
	defer span.End()

	rows, err := s.standingRepo.ListByYear(ctx, standing.ViewRegular, s.settings.CurrentSeason)
	if err != nil {
		return nil, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	seen := make(map[string]bool)
	var teams []string
	for _, row := range rows {
		if row.TeamName != "" && !seen[row.TeamName] {
			seen[row.TeamName] = true
			teams = append(teams, row.TeamName)
		}
	}

	if len(teams) == 0 {
		records, err := s.matchupRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matchups: %w", err)
		}
		for _, record := range s.resolver.NormalizeMatchups(records) {
			for _, team := range []string{record.Team1, record.Team2} {
				if team != "" && !seen[team] {
					seen[team] = true
					teams = append(teams, team)
				}
			}
		}
	}

	sort.Strings(teams)
	return teams, nil
}

// LeagueInfo summarizes the league for the dashboard header.
func (s *StandingService) LeagueInfo(ctx context.Context) (stats.LeagueInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.LeagueInfo")
	defer span.End()

	current, err := s.standingRepo.ListByYear(ctx, standing.ViewRegular, s.settings.CurrentSeason)
	if err != nil {
		return stats.LeagueInfo{}, fmt.Errorf("list regular standings: %w", err)
	}

	all, err := s.standingRepo.List(ctx, standing.ViewRegular)
	if err != nil {
		return stats.LeagueInfo{}, fmt.Errorf("list regular standings: %w", err)
	}
	seasons := make(map[int]bool)
	for _, row := range all {
		seasons[row.Year] = true
	}

	records, err := s.matchupRepo.ListByYear(ctx, s.settings.CurrentSeason)
	if err != nil {
		return stats.LeagueInfo{}, fmt.Errorf("list matchups: %w", err)
	}
	currentWeek := 0
	var lastUpdated time.Time
	for _, record := range records {
		if record.Week > currentWeek {
			currentWeek = record.Week
		}
		if record.ScrapedAt.After(lastUpdated) {
			lastUpdated = record.ScrapedAt
		}
	}
	updated := time.Now().Format(time.RFC3339)
	if !lastUpdated.IsZero() {
		updated = lastUpdated.Format(time.RFC3339)
	}

	return stats.LeagueInfo{
		LeagueID:     s.settings.ID,
		Name:         s.settings.Name,
		CurrentWeek:  currentWeek,
		LastUpdated:  updated,
		TotalTeams:   len(current),
		TotalSeasons: len(seasons),
	}, nil
}

// logoIndex maps every canonical team to its newest known logo, taken
// from both standings snapshots.
func (s *StandingService) logoIndex(ctx context.Context) (map[string]string, error) {
	type logoPick struct {
		year int
		url  string
	}
	picks := make(map[string]logoPick)

	for _, view := range []standing.View{standing.ViewRegular, standing.ViewFinal} {
		rows, err := s.standingRepo.List(ctx, view)
		if err != nil {
			return nil, fmt.Errorf("list %s standings: %w", view, err)
		}
		for _, row := range s.resolver.NormalizeStandings(rows) {
			if row.TeamName == "" || row.TeamLogo == "" {
				continue
			}
			if pick, ok := picks[row.TeamName]; !ok || row.Year > pick.year {
				picks[row.TeamName] = logoPick{year: row.Year, url: row.TeamLogo}
			}
		}
	}

	logos := make(map[string]string, len(picks))
	for team, pick := range picks {
		logos[team] = pick.url
	}
	return logos, nil
}
