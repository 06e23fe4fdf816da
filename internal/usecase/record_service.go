package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/greatestleague/dashboard-api/internal/domain/identity"
	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/stats"
)

// RecordService digs through the matchup history for single-game
// extremes: blowouts, bad beats, weekly awards and the weekly recap.
type RecordService struct {
	matchupRepo matchup.Repository
	resolver    *identity.Resolver
	settings    league.Settings
}

func NewRecordService(matchupRepo matchup.Repository, resolver *identity.Resolver, settings league.Settings) *RecordService {
	return &RecordService{
		matchupRepo: matchupRepo,
		resolver:    resolver,
		settings:    settings,
	}
}

// Blowouts returns the fifty most lopsided results, largest margin first.
func (s *RecordService) Blowouts(ctx context.Context) ([]stats.Blowout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.Blowouts")
	defer span.End()

	records, err := s.listNormalized(ctx)
	if err != nil {
		return nil, err
	}

	blowouts := make([]stats.Blowout, 0, len(records))
	for _, record := range records {
		if record.Team1 == "" || record.Team2 == "" || record.IsTie() {
			continue
		}

		blowout := stats.Blowout{
			Year:     record.Year,
			Week:     record.Week,
			WeekType: record.WeekType,
			Margin:   record.Margin(),
		}
		if record.Winner == record.Team1 {
			blowout.Winner, blowout.Loser = record.Team1, record.Team2
			blowout.WinnerScore, blowout.LoserScore = record.Team1Score, record.Team2Score
		} else {
			blowout.Winner, blowout.Loser = record.Team2, record.Team1
			blowout.WinnerScore, blowout.LoserScore = record.Team2Score, record.Team1Score
		}
		blowouts = append(blowouts, blowout)
	}

	sort.SliceStable(blowouts, func(i, j int) bool {
		return blowouts[i].Margin > blowouts[j].Margin
	})
	if len(blowouts) > 50 {
		blowouts = blowouts[:50]
	}
	return blowouts, nil
}

// BadBeats finds games whose scoreline betrayed a team: big totals that
// still lost, and small ones that still won.
func (s *RecordService) BadBeats(ctx context.Context) (stats.BadBeats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.BadBeats")
	defer span.End()

	records, err := s.listNormalized(ctx)
	if err != nil {
		return stats.BadBeats{}, err
	}

	var highLosses, lowWins []stats.BadBeat
	for _, record := range records {
		if record.Team1 == "" || record.Team2 == "" || record.IsTie() {
			continue
		}

		sides := []struct {
			team, opponent  string
			score, oppScore float64
			won             bool
		}{
			{record.Team1, record.Team2, record.Team1Score, record.Team2Score, record.Winner == record.Team1},
			{record.Team2, record.Team1, record.Team2Score, record.Team1Score, record.Winner == record.Team2},
		}

		for _, side := range sides {
			if side.score >= s.settings.HighScoreLossMin && !side.won {
				highLosses = append(highLosses, stats.BadBeat{
					Type:          "high_score_loss",
					Year:          record.Year,
					Week:          record.Week,
					WeekType:      record.WeekType,
					Team:          side.team,
					Opponent:      side.opponent,
					TeamScore:     side.score,
					OpponentScore: side.oppScore,
					Margin:        side.oppScore - side.score,
				})
			}
			if side.score < s.settings.LowScoreWinMax && side.won {
				lowWins = append(lowWins, stats.BadBeat{
					Type:          "low_score_win",
					Year:          record.Year,
					Week:          record.Week,
					WeekType:      record.WeekType,
					Team:          side.team,
					Opponent:      side.opponent,
					TeamScore:     side.score,
					OpponentScore: side.oppScore,
					Margin:        side.score - side.oppScore,
				})
			}
		}
	}

	// Biggest wasted total first; equal totals fall back to the wider
	// defeat.
	sort.SliceStable(highLosses, func(i, j int) bool {
		if highLosses[i].TeamScore != highLosses[j].TeamScore {
			return highLosses[i].TeamScore > highLosses[j].TeamScore
		}
		return highLosses[i].Margin < highLosses[j].Margin
	})
	sort.SliceStable(lowWins, func(i, j int) bool {
		return lowWins[i].TeamScore < lowWins[j].TeamScore
	})

	if len(highLosses) > 30 {
		highLosses = highLosses[:30]
	}
	if len(lowWins) > 30 {
		lowWins = lowWins[:30]
	}
	return stats.BadBeats{HighScoreLosses: highLosses, LowScoreWins: lowWins}, nil
}

type weekSlate struct {
	year  int
	week  int
	games []matchup.Record
}

// WeeklyAwards hands out per-week honors across the whole history:
// highest score, lowest winning score and widest margin.
func (s *RecordService) WeeklyAwards(ctx context.Context) (stats.WeeklyAwards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.WeeklyAwards")
	defer span.End()

	records, err := s.listNormalized(ctx)
	if err != nil {
		return stats.WeeklyAwards{}, err
	}

	sorted := append([]matchup.Record(nil), records...)
	matchup.SortChronological(sorted)

	slates := make(map[[2]int]*weekSlate)
	var order [][2]int
	for _, record := range sorted {
		if record.Team1 == "" || record.Team2 == "" {
			continue
		}
		key := [2]int{record.Year, record.Week}
		slate, ok := slates[key]
		if !ok {
			slate = &weekSlate{year: record.Year, week: record.Week}
			slates[key] = slate
			order = append(order, key)
		}
		slate.games = append(slate.games, record)
	}

	var awards stats.WeeklyAwards
	for _, key := range order {
		slate := slates[key]

		highest := 0.0
		lowestWinning := math.Inf(1)
		biggestMargin := 0.0
		for _, game := range slate.games {
			highest = math.Max(highest, math.Max(game.Team1Score, game.Team2Score))
			if !game.IsTie() {
				if game.Winner == game.Team1 {
					lowestWinning = math.Min(lowestWinning, game.Team1Score)
				} else if game.Winner == game.Team2 {
					lowestWinning = math.Min(lowestWinning, game.Team2Score)
				}
			}
			biggestMargin = math.Max(biggestMargin, game.Margin())
		}

		for _, game := range slate.games {
			if game.Team1Score == highest {
				awards.HighestScores = append(awards.HighestScores, stats.ScoreAward{
					Year: slate.year, Week: slate.week,
					Team: game.Team1, Score: game.Team1Score,
					Opponent: game.Team2, OpponentScore: game.Team2Score,
				})
			} else if game.Team2Score == highest {
				awards.HighestScores = append(awards.HighestScores, stats.ScoreAward{
					Year: slate.year, Week: slate.week,
					Team: game.Team2, Score: game.Team2Score,
					Opponent: game.Team1, OpponentScore: game.Team1Score,
				})
			}
		}

		if !math.IsInf(lowestWinning, 1) {
			for _, game := range slate.games {
				wonAsTeam1 := game.Winner == game.Team1 && game.Team1Score == lowestWinning
				wonAsTeam2 := game.Winner == game.Team2 && game.Team2Score == lowestWinning
				if !wonAsTeam1 && !wonAsTeam2 {
					continue
				}
				award := stats.ScoreAward{
					Year: slate.year, Week: slate.week,
					Team: game.Winner, Score: lowestWinning,
				}
				if wonAsTeam1 {
					award.Opponent, award.OpponentScore = game.Team2, game.Team2Score
				} else {
					award.Opponent, award.OpponentScore = game.Team1, game.Team1Score
				}
				awards.LowestWinningScores = append(awards.LowestWinningScores, award)
				break
			}
		}

		for _, game := range slate.games {
			if game.Margin() != biggestMargin {
				continue
			}
			award := stats.MarginAward{
				Year: slate.year, Week: slate.week,
				Margin: biggestMargin,
			}
			if game.Team1Score > game.Team2Score {
				award.Winner, award.Loser = game.Team1, game.Team2
			} else {
				award.Winner, award.Loser = game.Team2, game.Team1
			}
			award.WinnerScore = math.Max(game.Team1Score, game.Team2Score)
			award.LoserScore = math.Min(game.Team1Score, game.Team2Score)
			awards.BiggestMargins = append(awards.BiggestMargins, award)
			break
		}
	}

	sort.SliceStable(awards.HighestScores, func(i, j int) bool {
		return awards.HighestScores[i].Score > awards.HighestScores[j].Score
	})
	sort.SliceStable(awards.LowestWinningScores, func(i, j int) bool {
		return awards.LowestWinningScores[i].Score < awards.LowestWinningScores[j].Score
	})
	sort.SliceStable(awards.BiggestMargins, func(i, j int) bool {
		return awards.BiggestMargins[i].Margin > awards.BiggestMargins[j].Margin
	})

	if len(awards.HighestScores) > 30 {
		awards.HighestScores = awards.HighestScores[:30]
	}
	if len(awards.LowestWinningScores) > 30 {
		awards.LowestWinningScores = awards.LowestWinningScores[:30]
	}
	if len(awards.BiggestMargins) > 30 {
		awards.BiggestMargins = awards.BiggestMargins[:30]
	}
	return awards, nil
}

// WeeklyRecap builds a templated narrative for one week's slate.
func (s *RecordService) WeeklyRecap(ctx context.Context, year, week int) (stats.WeeklyRecap, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecordService.WeeklyRecap")
	defer span.End()

	if year <= 0 || week <= 0 {
		return stats.WeeklyRecap{}, fmt.Errorf("%w: year and week must be positive", ErrInvalidInput)
	}

	records, err := s.matchupRepo.ListByWeek(ctx, year, week)
	if err != nil {
		return stats.WeeklyRecap{}, fmt.Errorf("list matchups: %w", err)
	}
	records = s.resolver.NormalizeMatchups(records)
	if len(records) == 0 {
		return stats.WeeklyRecap{}, fmt.Errorf("%w: no data for %d week %d", ErrNotFound, year, week)
	}

	recap := stats.WeeklyRecap{
		Year:       year,
		Week:       week,
		TotalGames: len(records),
	}

	highest := 0.0
	for _, record := range records {
		if record.Team1Score > highest {
			highest = record.Team1Score
			recap.HighestScore = &stats.RecapScore{
				Team: record.Team1, Score: record.Team1Score,
				Opponent: record.Team2, OpponentScore: record.Team2Score,
			}
		}
		if record.Team2Score > highest {
			highest = record.Team2Score
			recap.HighestScore = &stats.RecapScore{
				Team: record.Team2, Score: record.Team2Score,
				Opponent: record.Team1, OpponentScore: record.Team1Score,
			}
		}
	}

	biggestMargin := 0.0
	for _, record := range records {
		margin := record.Margin()
		if margin <= biggestMargin {
			continue
		}
		biggestMargin = margin
		blowout := &stats.RecapBlowout{Margin: margin}
		if record.Winner == record.Team1 {
			blowout.Winner, blowout.Loser = record.Team1, record.Team2
			blowout.WinnerScore, blowout.LoserScore = record.Team1Score, record.Team2Score
		} else {
			blowout.Winner, blowout.Loser = record.Team2, record.Team1
			blowout.WinnerScore, blowout.LoserScore = record.Team2Score, record.Team1Score
		}
		recap.BiggestBlowout = blowout
	}

	closestMargin := math.Inf(1)
	for _, record := range records {
		margin := record.Margin()
		if margin > 0 && margin < closestMargin {
			closestMargin = margin
			recap.ClosestGame = &stats.RecapClosest{
				Team1: record.Team1, Team2: record.Team2,
				Score1: record.Team1Score, Score2: record.Team2Score,
				Winner: record.Winner, Margin: margin,
			}
		}
	}

	recap.Summary = fmt.Sprintf("Week %d of %d featured %d matchups.", week, year, len(records))
	if recap.HighestScore != nil {
		recap.Summary += fmt.Sprintf(" %s put up the highest score of the week with %.1f points.", recap.HighestScore.Team, recap.HighestScore.Score)
	}
	if recap.BiggestBlowout != nil {
		recap.Summary += fmt.Sprintf(" %s delivered the biggest blowout, winning by %.1f points.", recap.BiggestBlowout.Winner, recap.BiggestBlowout.Margin)
	}
	if recap.ClosestGame != nil {
		recap.Summary += fmt.Sprintf(" The closest game was between %s and %s, decided by just %.1f points.", recap.ClosestGame.Team1, recap.ClosestGame.Team2, recap.ClosestGame.Margin)
	}

	return recap, nil
}

func (s *RecordService) listNormalized(ctx context.Context) ([]matchup.Record, error) {
	records, err := s.matchupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	return s.resolver.NormalizeMatchups(records), nil
}
