package standing

import "time"

// View selects which of the two standings snapshots a query reads.
// The regular view is the table at the end of the regular season and
// carries the scoring columns; the final view reflects bracket results
// and decides championships and last place.
type View string

const (
	ViewRegular View = "regular"
	ViewFinal   View = "final"
)

// Record is one team's row in a season's standings table.
type Record struct {
	Year          int       `json:"year"`
	Place         int       `json:"place"`
	TeamName      string    `json:"team_name"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	Ties          int       `json:"ties"`
	WinPct        float64   `json:"win_pct"`
	PointsFor     float64   `json:"points_for"`
	PointsAgainst float64   `json:"points_against"`
	TeamLogo      string    `json:"team_logo"`
	ScrapedAt     time.Time `json:"scraped_at"`
}

func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// WinRate counts ties as half a win and returns a 0-100 percentage.
func (r Record) WinRate() float64 {
	games := r.Games()
	if games == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.Ties)*0.5) / float64(games) * 100
}
