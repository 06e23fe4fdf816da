package usecase

import (
	"context"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

type stubMatchupRepository struct {
	records []matchup.Record
	listErr error
}

func (s *stubMatchupRepository) List(ctx context.Context) ([]matchup.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]matchup.Record(nil), s.records...), nil
}

func (s *stubMatchupRepository) ListByYear(ctx context.Context, year int) ([]matchup.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []matchup.Record
	for _, r := range s.records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubMatchupRepository) ListByWeek(ctx context.Context, year, week int) ([]matchup.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []matchup.Record
	for _, r := range s.records {
		if r.Year == year && r.Week == week {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubMatchupRepository) Append(ctx context.Context, records []matchup.Record) (int, error) {
	existing := make(map[matchup.Key]bool, len(s.records))
	for _, r := range s.records {
		existing[r.Key()] = true
	}
	written := 0
	for _, r := range records {
		if existing[r.Key()] {
			continue
		}
		existing[r.Key()] = true
		s.records = append(s.records, r)
		written++
	}
	return written, nil
}

func (s *stubMatchupRepository) Weeks(ctx context.Context, year int) (map[int]int, error) {
	weeks := make(map[int]int)
	for _, r := range s.records {
		if r.Year == year {
			weeks[r.Week]++
		}
	}
	return weeks, nil
}

type stubStandingRepository struct {
	regular []standing.Record
	final   []standing.Record
	listErr error
}

func (s *stubStandingRepository) rows(view standing.View) *[]standing.Record {
	if view == standing.ViewFinal {
		return &s.final
	}
	return &s.regular
}

func (s *stubStandingRepository) List(ctx context.Context, view standing.View) ([]standing.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]standing.Record(nil), *s.rows(view)...), nil
}

func (s *stubStandingRepository) ListByYear(ctx context.Context, view standing.View, year int) ([]standing.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []standing.Record
	for _, r := range *s.rows(view) {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStandingRepository) Append(ctx context.Context, view standing.View, records []standing.Record) (int, error) {
	rows := s.rows(view)
	type key struct {
		year  int
		place int
	}
	existing := make(map[key]bool, len(*rows))
	for _, r := range *rows {
		existing[key{r.Year, r.Place}] = true
	}
	written := 0
	for _, r := range records {
		k := key{r.Year, r.Place}
		if existing[k] {
			continue
		}
		existing[k] = true
		*rows = append(*rows, r)
		written++
	}
	return written, nil
}

// game builds a matchup with the winner derived from the scores.
func game(year, week int, team1 string, score1 float64, team2 string, score2 float64) matchup.Record {
	winner := matchup.TieWinner
	if score1 > score2 {
		winner = team1
	} else if score2 > score1 {
		winner = team2
	}
	return matchup.Record{
		Year:       year,
		Week:       week,
		WeekType:   matchup.WeekTypeRegular,
		Team1:      team1,
		Team1Score: score1,
		Team2:      team2,
		Team2Score: score2,
		Winner:     winner,
	}
}

func tableRow(year, place int, team string, wins, losses, ties int, pointsFor, pointsAgainst float64) standing.Record {
	games := wins + losses + ties
	winPct := 0.0
	if games > 0 {
		winPct = (float64(wins) + 0.5*float64(ties)) / float64(games)
	}
	return standing.Record{
		Year:          year,
		Place:         place,
		TeamName:      team,
		Wins:          wins,
		Losses:        losses,
		Ties:          ties,
		WinPct:        winPct,
		PointsFor:     pointsFor,
		PointsAgainst: pointsAgainst,
	}
}
