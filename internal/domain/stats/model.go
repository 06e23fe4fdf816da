// Package stats holds the typed results of the historical aggregations.
// Field names follow the dashboard's wire format.
package stats

import "github.com/greatestleague/dashboard-api/internal/domain/matchup"

// RivalryGame is one recent meeting inside a rivalry summary.
type RivalryGame struct {
	Year   int     `json:"year"`
	Week   int     `json:"week"`
	Margin float64 `json:"margin"`
	Winner string  `json:"winner"`
}

// Rivalry summarizes the history between one pair of teams.
type Rivalry struct {
	Team1           string        `json:"team1"`
	Team2           string        `json:"team2"`
	GamesPlayed     int           `json:"games_played"`
	Team1Wins       int           `json:"team1_wins"`
	Team2Wins       int           `json:"team2_wins"`
	Ties            int           `json:"ties"`
	WinDifferential int           `json:"win_differential"`
	AvgMargin       float64       `json:"avg_margin"`
	RivalryScore    float64       `json:"rivalry_score"`
	RecentGames     []RivalryGame `json:"recent_games"`
}

// Streak is a run of consecutive wins or losses.
type Streak struct {
	Team    string `json:"team"`
	Streak  int    `json:"streak"`
	Type    string `json:"type"`
	Current bool   `json:"current"`
}

type Streaks struct {
	Current []Streak `json:"current"`
	AllTime []Streak `json:"all_time"`
}

// Blowout is a lopsided result, largest margins first.
type Blowout struct {
	Year        int              `json:"year"`
	Week        int              `json:"week"`
	WeekType    matchup.WeekType `json:"week_type"`
	Winner      string           `json:"winner"`
	Loser       string           `json:"loser"`
	WinnerScore float64          `json:"winner_score"`
	LoserScore  float64          `json:"loser_score"`
	Margin      float64          `json:"margin"`
}

// BadBeat is a game whose scoreline betrayed its loser (or winner).
type BadBeat struct {
	Type          string           `json:"type"`
	Year          int              `json:"year"`
	Week          int              `json:"week"`
	WeekType      matchup.WeekType `json:"week_type"`
	Team          string           `json:"team"`
	Opponent      string           `json:"opponent"`
	TeamScore     float64          `json:"team_score"`
	OpponentScore float64          `json:"opponent_score"`
	Margin        float64          `json:"margin"`
}

type BadBeats struct {
	HighScoreLosses []BadBeat `json:"high_score_losses"`
	LowScoreWins    []BadBeat `json:"low_score_wins"`
}

// ScoreAward marks a single-week scoring extreme.
type ScoreAward struct {
	Year          int     `json:"year"`
	Week          int     `json:"week"`
	Team          string  `json:"team"`
	Score         float64 `json:"score"`
	Opponent      string  `json:"opponent"`
	OpponentScore float64 `json:"opponent_score"`
}

// MarginAward marks the most lopsided game of a week.
type MarginAward struct {
	Year        int     `json:"year"`
	Week        int     `json:"week"`
	Winner      string  `json:"winner"`
	Loser       string  `json:"loser"`
	WinnerScore float64 `json:"winner_score"`
	LoserScore  float64 `json:"loser_score"`
	Margin      float64 `json:"margin"`
}

type WeeklyAwards struct {
	HighestScores       []ScoreAward  `json:"highest_scores"`
	LowestWinningScores []ScoreAward  `json:"lowest_winning_scores"`
	BiggestMargins      []MarginAward `json:"biggest_margins"`
}

// Consistency scores a team's week-to-week volatility. Lower coefficient
// of variation means steadier output.
type Consistency struct {
	Team                   string  `json:"team"`
	AvgScore               float64 `json:"avg_score"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	GamesPlayed            int     `json:"games_played"`
	MinScore               float64 `json:"min_score"`
	MaxScore               float64 `json:"max_score"`
	Range                  float64 `json:"range"`
}

// Clutch compares a team's record in close games against its overall record.
type Clutch struct {
	Team         string  `json:"team"`
	CloseGames   int     `json:"close_games"`
	CloseWins    int     `json:"close_wins"`
	CloseLosses  int     `json:"close_losses"`
	CloseTies    int     `json:"close_ties"`
	CloseWinPct  float64 `json:"close_win_pct"`
	AllWinPct    float64 `json:"all_win_pct"`
	ClutchFactor float64 `json:"clutch_factor"`
}

// TeamDNA is a personality profile derived from the other aggregates.
type TeamDNA struct {
	Team               string       `json:"team"`
	Personality        string       `json:"personality"`
	Traits             []string     `json:"traits"`
	Consistency        *Consistency `json:"consistency"`
	Clutch             *Clutch      `json:"clutch"`
	Championships      int          `json:"championships"`
	PlayoffAppearances int          `json:"playoff_appearances"`
	Seasons            int          `json:"seasons"`
	PlayoffRate        float64      `json:"playoff_rate"`
}

// WeeklyHigh is a team's best single-week score ever.
type WeeklyHigh struct {
	Score float64 `json:"score"`
	Year  int     `json:"year"`
	Week  int     `json:"week"`
}

// TrophyCase collects one team's career achievements, years newest first.
type TrophyCase struct {
	Championships      []int      `json:"championships"`
	PlayoffAppearances []int      `json:"playoff_appearances"`
	Spoons             []int      `json:"spoons"`
	HighestWeeklyScore WeeklyHigh `json:"highest_weekly_score"`
	PerfectSeasons     []int      `json:"perfect_seasons"`
	LongestWinStreak   int        `json:"longest_win_streak"`
	ScoringTitles      []int      `json:"scoring_titles"`
}

type YearlyAverage struct {
	Year        int     `json:"year"`
	AvgScore    float64 `json:"avg_score"`
	Games       int     `json:"games"`
	TotalPoints float64 `json:"total_points"`
}

// PointsTrend tracks a team's season-over-season scoring direction.
type PointsTrend struct {
	YearlyAverages []YearlyAverage `json:"yearly_averages"`
	Trend          string          `json:"trend"`
	CurrentAvg     float64         `json:"current_avg"`
	OverallAvg     float64         `json:"overall_avg"`
}

// MatchupDifficulty rates a current-season schedule by opponent strength.
type MatchupDifficulty struct {
	Team              string  `json:"team"`
	AvgOpponentWinPct float64 `json:"avg_opponent_win_pct"`
	OpponentsFaced    int     `json:"opponents_faced"`
	DifficultyRating  string  `json:"difficulty_rating"`
}

type RecapScore struct {
	Team          string  `json:"team"`
	Score         float64 `json:"score"`
	Opponent      string  `json:"opponent"`
	OpponentScore float64 `json:"opponent_score"`
}

type RecapBlowout struct {
	Winner      string  `json:"winner"`
	Loser       string  `json:"loser"`
	WinnerScore float64 `json:"winner_score"`
	LoserScore  float64 `json:"loser_score"`
	Margin      float64 `json:"margin"`
}

type RecapClosest struct {
	Team1  string  `json:"team1"`
	Team2  string  `json:"team2"`
	Score1 float64 `json:"score1"`
	Score2 float64 `json:"score2"`
	Winner string  `json:"winner"`
	Margin float64 `json:"margin"`
}

// WeeklyRecap is the templated summary of one week's slate.
type WeeklyRecap struct {
	Year           int           `json:"year"`
	Week           int           `json:"week"`
	TotalGames     int           `json:"total_games"`
	HighestScore   *RecapScore   `json:"highest_score"`
	BiggestBlowout *RecapBlowout `json:"biggest_blowout"`
	ClosestGame    *RecapClosest `json:"closest_game"`
	Summary        string        `json:"summary"`
}

// PlayoffTeam is one team's classification in the scenario sweep.
type PlayoffTeam struct {
	Team           string   `json:"team"`
	Record         string   `json:"record"`
	PointsFor      float64  `json:"points_for"`
	Status         string   `json:"status"`
	Reason         string   `json:"reason,omitempty"`
	Needs          []string `json:"needs,omitempty"`
	Opponent       string   `json:"opponent,omitempty"`
	OpponentRecord string   `json:"opponent_record,omitempty"`
}

// PlayoffMatchup is a final-week pairing annotated with records and points.
type PlayoffMatchup struct {
	Team1       string  `json:"team1"`
	Team2       string  `json:"team2"`
	Team1Record string  `json:"team1_record"`
	Team2Record string  `json:"team2_record"`
	Team1Points float64 `json:"team1_points"`
	Team2Points float64 `json:"team2_points"`
}

type PlayoffScenarios struct {
	Locked            []PlayoffTeam    `json:"locked"`
	CanMakeIt         []PlayoffTeam    `json:"can_make_it"`
	Eliminated        []PlayoffTeam    `json:"eliminated"`
	FinalWeekMatchups []PlayoffMatchup `json:"final_week_matchups"`
	PlayoffSpots      int              `json:"playoff_spots"`
	CurrentWeek       int              `json:"current_week"`
}

// HeadToHead is the all-time record between one pair of teams.
type HeadToHead struct {
	Team1       string           `json:"team1"`
	Team2       string           `json:"team2"`
	Team1Wins   int              `json:"team1_wins"`
	Team2Wins   int              `json:"team2_wins"`
	Ties        int              `json:"ties"`
	TotalGames  int              `json:"total_games"`
	Team1WinPct float64          `json:"team1_win_pct"`
	Team2WinPct float64          `json:"team2_win_pct"`
	Games       []matchup.Record `json:"games"`
}

// StandingRow is a standings table row shaped for the dashboard.
type StandingRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	Place         int     `json:"place"`
	Logo          string  `json:"logo"`
}

// HonorCount tallies one kind of season finish for a team.
type HonorCount struct {
	Count int    `json:"count"`
	Years []int  `json:"years"`
	Logo  string `json:"logo"`
}

// HistoricalStats groups championships, playoff berths and wooden spoons.
type HistoricalStats struct {
	SuperBowls map[string]HonorCount `json:"super_bowls"`
	Playoffs   map[string]HonorCount `json:"playoffs"`
	Spoons     map[string]HonorCount `json:"spoons"`
}

type CareerPoints struct {
	Team    string  `json:"team"`
	Points  float64 `json:"points"`
	Seasons int     `json:"seasons"`
	Logo    string  `json:"logo"`
}

type CareerWinPct struct {
	Team    string  `json:"team"`
	WinPct  float64 `json:"win_pct"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Ties    int     `json:"ties"`
	Seasons int     `json:"seasons"`
	Logo    string  `json:"logo"`
}

type AllTimeTeamStats struct {
	MostPointsScored  []CareerPoints `json:"most_points_scored"`
	HighestWinPct     []CareerWinPct `json:"highest_win_pct"`
	MostPointsAgainst []CareerPoints `json:"most_points_against"`
}

type ScoringTitleYear struct {
	Year   int     `json:"year"`
	Points float64 `json:"points"`
}

type ScoringTitle struct {
	Team  string             `json:"team"`
	Count int                `json:"count"`
	Years []ScoringTitleYear `json:"years"`
	Logo  string             `json:"logo"`
}

// AllTimeWins ranks teams by career wins across all week types.
type AllTimeWins struct {
	Team          string `json:"team"`
	RegularWins   int    `json:"regular_wins"`
	PlayoffWins   int    `json:"playoff_wins"`
	TotalWins     int    `json:"total_wins"`
	RegularLosses int    `json:"regular_losses"`
	PlayoffLosses int    `json:"playoff_losses"`
	TotalLosses   int    `json:"total_losses"`
	TotalTies     int    `json:"total_ties"`
	TotalGames    int    `json:"total_games"`
	YearsActive   int    `json:"years_active"`
	Logo          string `json:"logo"`
	Rank          int    `json:"rank"`
}

type LeagueAverages struct {
	AvgWinningScore      float64 `json:"avg_winning_score"`
	AvgWinsForPlayoffs   float64 `json:"avg_wins_for_playoffs"`
	AvgPointsFor         float64 `json:"avg_points_for"`
	AvgPointsAgainst     float64 `json:"avg_points_against"`
	AvgWinPct            float64 `json:"avg_win_pct"`
	AvgPointsPerGame     float64 `json:"avg_points_per_game"`
	AvgPointDifferential float64 `json:"avg_point_differential"`
}

// TeamSeasonCard is a current-season stat card for one team.
type TeamSeasonCard struct {
	Name              string  `json:"name"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Ties              int     `json:"ties"`
	PointsFor         float64 `json:"points_for"`
	PointsAgainst     float64 `json:"points_against"`
	WinPct            float64 `json:"win_pct"`
	PointDifferential float64 `json:"point_differential"`
	AvgWinningScore   float64 `json:"avg_winning_score"`
	PointsPerGame     float64 `json:"points_per_game"`
	Logo              string  `json:"logo"`
}

type LeagueStats struct {
	LeagueAverages LeagueAverages            `json:"league_averages"`
	TeamStats      map[string]TeamSeasonCard `json:"team_stats"`
}

// FameEntry is one Hall of Fame induction.
type FameEntry struct {
	Team  string `json:"team"`
	Logo  string `json:"logo"`
	Blurb string `json:"blurb"`
}

// ShameEntry is one Hall of Shame induction: seasons served, no title.
type ShameEntry struct {
	Team        string `json:"team"`
	Logo        string `json:"logo"`
	YearsActive int    `json:"years_active"`
	YearsRange  string `json:"years_range"`
	Blurb       string `json:"blurb"`
}

type LeagueInfo struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	CurrentWeek  int    `json:"current_week"`
	LastUpdated  string `json:"last_updated"`
	TotalTeams   int    `json:"total_teams"`
	TotalSeasons int    `json:"total_seasons"`
}

type OpponentRecord struct {
	Opponent string  `json:"opponent"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Ties     int     `json:"ties"`
	WinPct   float64 `json:"win_pct"`
}

// TeamStats bundles one team's current row, full game log and
// per-opponent records.
type TeamStats struct {
	Current         *StandingRow     `json:"current"`
	Matchups        []matchup.Record `json:"matchups"`
	OpponentRecords []OpponentRecord `json:"opponent_records"`
}

// Overview bundles the headline aggregates for the dashboard landing page.
type Overview struct {
	Rivalries         []Rivalry              `json:"rivalries"`
	Streaks           Streaks                `json:"streaks"`
	Blowouts          []Blowout              `json:"blowouts"`
	BadBeats          BadBeats               `json:"bad_beats"`
	WeeklyAwards      WeeklyAwards           `json:"weekly_awards"`
	Consistency       []Consistency          `json:"consistency"`
	Clutch            []Clutch               `json:"clutch"`
	TeamDNA           []TeamDNA              `json:"team_dna"`
	TrophyCase        map[string]TrophyCase  `json:"trophy_case"`
	PointsTrends      map[string]PointsTrend `json:"points_trends"`
	MatchupDifficulty []MatchupDifficulty    `json:"matchup_difficulty"`
}
