package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
	"github.com/greatestleague/dashboard-api/internal/domain/stats"
)

// MatchupService answers game-level queries: raw matchup lists,
// head-to-head records and per-team breakdowns.
type MatchupService struct {
	matchupRepo  matchup.Repository
	standingRepo standing.Repository
	resolver     *identity.Resolver
	settings     league.Settings
}

func NewMatchupService(matchupRepo matchup.Repository, standingRepo standing.Repository, resolver *identity.Resolver, settings league.Settings) *MatchupService {
	return &MatchupService{
		matchupRepo:  matchupRepo,
		standingRepo: standingRepo,
		resolver:     resolver,
		settings:     settings,
	}
}

// Matchups returns normalized matchup records, optionally filtered by
// year and week. Zero means no filter.
func (s *MatchupService) Matchups(ctx context.Context, year, week int) ([]matchup.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.Matchups")
	defer span.End()

	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)

	if year == 0 && week == 0 {
		return records, nil
	}
	filtered := make([]matchup.Record, 0, len(records))
	for _, record := range records {
		if year != 0 && record.Year != year {
			continue
		}
		if week != 0 && record.Week != week {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered, nil
}

// HeadToHead tallies the all-time record between two teams. The given
// names are echoed back verbatim; matching uses canonical forms.
func (s *MatchupService) HeadToHead(ctx context.Context, team1, team2 string) (stats.HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.HeadToHead")
	defer span.End()

	if strings.TrimSpace(team1) == "" || strings.TrimSpace(team2) == "" {
		return stats.HeadToHead{}, fmt.Errorf("%w: team1 and team2 are required", ErrInvalidInput)
	}

	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return stats.HeadToHead{}, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)

	t1 := s.resolver.Normalize(team1)
	t2 := s.resolver.Normalize(team2)

	result := stats.HeadToHead{
		Team1: team1,
		Team2: team2,
		Games: []matchup.Record{},
	}
	for _, record := range records {
		pair := (record.Team1 == t1 && record.Team2 == t2) || (record.Team1 == t2 && record.Team2 == t1)
		if !pair {
			continue
		}
		result.Games = append(result.Games, record)
		switch {
		case record.IsTie():
			result.Ties++
		case record.Winner == t1:
			result.Team1Wins++
		case record.Winner == t2:
			result.Team2Wins++
		}
	}

	result.TotalGames = result.Team1Wins + result.Team2Wins + result.Ties
	if result.TotalGames > 0 {
		result.Team1WinPct = round2(float64(result.Team1Wins) / float64(result.TotalGames) * 100)
		result.Team2WinPct = round2(float64(result.Team2Wins) / float64(result.TotalGames) * 100)
	}
	return result, nil
}

// AllHeadToHead builds the full pairwise matrix for the current
// standings' teams, keyed "A vs B".
func (s *MatchupService) AllHeadToHead(ctx context.Context) (map[string]stats.HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.AllHeadToHead")
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

	matrix := make(map[string]stats.HeadToHead)
	for i, team1 := range teams {
		for _, team2 := range teams[i+1:] {
			h2h, err := s.HeadToHead(ctx, team1, team2)
			if err != nil {
				return nil, err
			}
			matrix[fmt.Sprintf("%s vs %s", team1, team2)] = h2h
		}
	}
	return matrix, nil
}

// TeamStats bundles one team's current standings row, its full game log
// and its record against every opponent. Lookup accepts either the row
// id ("2025_3") or a team name.
func (s *MatchupService) TeamStats(ctx context.Context, teamID, teamName string) (stats.TeamStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.TeamStats")
	defer span.End()

	if strings.TrimSpace(teamID) == "" && strings.TrimSpace(teamName) == "" {
		return stats.TeamStats{}, fmt.Errorf("%w: team_id or team_name required", ErrInvalidInput)
	}

	rows, err := s.standingRepo.ListByYear(ctx, standing.ViewRegular, s.settings.CurrentSeason)
	if err != nil {
		return stats.TeamStats{}, fmt.Errorf("list regular standings: %w", err)
	}
	rows = s.resolver.NormalizeStandings(rows)

	wanted := s.resolver.Normalize(teamName)
	var current *stats.StandingRow
	for _, row := range rows {
		id := fmt.Sprintf("%d_%d", row.Year, row.Place)
		if (teamID != "" && id == teamID) || (wanted != "" && row.TeamName == wanted) {
			current = &stats.StandingRow{
				ID:            id,
				Name:          row.TeamName,
				Wins:          row.Wins,
				Losses:        row.Losses,
				Ties:          row.Ties,
				PointsFor:     row.PointsFor,
				PointsAgainst: row.PointsAgainst,
				Place:         row.Place,
				Logo:          row.TeamLogo,
			}
			break
		}
	}
	if current == nil {
		return stats.TeamStats{}, fmt.Errorf("%w: team not found", ErrNotFound)
	}
	team := current.Name

	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return stats.TeamStats{}, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)

	result := stats.TeamStats{
		Current:  current,
		Matchups: []matchup.Record{},
	}

	type oppTotals struct {
		wins, losses, ties int
	}
	totals := make(map[string]*oppTotals)
	var order []string

	for _, record := range records {
		if !record.Involves(team) {
			continue
		}
		result.Matchups = append(result.Matchups, record)

		opponent := record.Opponent(team)
		if opponent == "" {
			continue
		}
		entry, ok := totals[opponent]
		if !ok {
			entry = &oppTotals{}
			totals[opponent] = entry
			order = append(order, opponent)
		}
		switch {
		case record.Winner == team:
			entry.wins++
		case record.Winner == opponent:
			entry.losses++
		default:
			entry.ties++
		}
	}

	for _, opponent := range order {
		entry := totals[opponent]
		games := entry.wins + entry.losses + entry.ties
		pct := 0.0
		if games > 0 {
			pct = float64(entry.wins) / float64(games) * 100
		}
		result.OpponentRecords = append(result.OpponentRecords, stats.OpponentRecord{
			Opponent: opponent,
			Wins:     entry.wins,
			Losses:   entry.losses,
			Ties:     entry.ties,
			WinPct:   round2(pct),
		})
	}
	sort.SliceStable(result.OpponentRecords, func(i, j int) bool {
		return result.OpponentRecords[i].WinPct > result.OpponentRecords[j].WinPct
	})

	return result, nil
}
