package usecase

import (
	"math"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// teamGame is one matchup seen from a single team's side.
type teamGame struct {
	year          int
	week          int
	opponent      string
	score         float64
	opponentScore float64
	won           bool
	tie           bool
}

// teamGameLog holds each team's chronological game list. The teams slice
// preserves first-appearance order so iteration stays deterministic.
type teamGameLog struct {
	teams []string
	games map[string][]teamGame
}

// buildTeamGameLog splits normalized matchups into per-team logs sorted
// by (year, week).
func buildTeamGameLog(records []matchup.Record) *teamGameLog {
	sorted := append([]matchup.Record(nil), records...)
	matchup.SortChronological(sorted)

	log := &teamGameLog{games: make(map[string][]teamGame)}
	add := func(team string, game teamGame) {
		if team == "" {
			return
		}
		if _, seen := log.games[team]; !seen {
			log.teams = append(log.teams, team)
		}
		log.games[team] = append(log.games[team], game)
	}

	for _, record := range sorted {
		if record.Team1 == "" || record.Team2 == "" {
			continue
		}
		add(record.Team1, teamGame{
			year:          record.Year,
			week:          record.Week,
			opponent:      record.Team2,
			score:         record.Team1Score,
			opponentScore: record.Team2Score,
			won:           record.Winner == record.Team1 && !record.IsTie(),
			tie:           record.IsTie(),
		})
		add(record.Team2, teamGame{
			year:          record.Year,
			week:          record.Week,
			opponent:      record.Team1,
			score:         record.Team2Score,
			opponentScore: record.Team1Score,
			won:           record.Winner == record.Team2 && !record.IsTie(),
			tie:           record.IsTie(),
		})
	}

	return log
}
