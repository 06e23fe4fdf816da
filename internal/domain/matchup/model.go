package matchup

import (
	"sort"
	"strings"
	"time"
)

// WeekType classifies a week by the number of games played in it.
type WeekType string

const (
	WeekTypeRegular   WeekType = "regular"
	WeekTypePlayoff   WeekType = "playoff"
	WeekTypeSuperbowl WeekType = "superbowl"
	WeekTypeUnknown   WeekType = "unknown"
)

// TieWinner is the sentinel stored in the winner column for drawn games.
const TieWinner = "Tie"

// DetermineWeekType infers the week type from the number of games scraped
// for that week: a full 6-game slate is regular season, 4 games is the
// playoff round, 2 games is the superbowl week.
func DetermineWeekType(gameCount int) WeekType {
	switch gameCount {
	case 6:
		return WeekTypeRegular
	case 4:
		return WeekTypePlayoff
	case 2:
		return WeekTypeSuperbowl
	default:
		return WeekTypeUnknown
	}
}

// Record is one scored matchup between two teams in a given week.
type Record struct {
	Year       int       `json:"year"`
	Week       int       `json:"week"`
	WeekType   WeekType  `json:"week_type"`
	Team1      string    `json:"team1_name"`
	Team1Score float64   `json:"team1_score"`
	Team2      string    `json:"team2_name"`
	Team2Score float64   `json:"team2_score"`
	Winner     string    `json:"winner"`
	ScrapedAt  time.Time `json:"scraped_at"`
}

func (r Record) IsTie() bool {
	return strings.EqualFold(r.Winner, TieWinner)
}

func (r Record) Margin() float64 {
	margin := r.Team1Score - r.Team2Score
	if margin < 0 {
		return -margin
	}
	return margin
}

func (r Record) Involves(team string) bool {
	return r.Team1 == team || r.Team2 == team
}

// Opponent returns the other side of the matchup, or "" when team did not play.
func (r Record) Opponent(team string) string {
	switch team {
	case r.Team1:
		return r.Team2
	case r.Team2:
		return r.Team1
	default:
		return ""
	}
}

// Key identifies a matchup for deduplication on append.
func (r Record) Key() Key {
	return Key{Year: r.Year, Week: r.Week, Team1: r.Team1, Team2: r.Team2}
}

type Key struct {
	Year  int
	Week  int
	Team1 string
	Team2 string
}

// SortChronological orders records by (year, week) ascending in place.
// Records within the same week keep their relative order.
func SortChronological(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year < records[j].Year
		}
		return records[i].Week < records[j].Week
	})
}
