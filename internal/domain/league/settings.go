package league

// Settings carries the league constants every aggregation depends on.
// Values mirror the league's actual configuration but stay adjustable
// through the environment so a different league (or a test) can rehost
// the service without code changes.
type Settings struct {
	// ID is the host site's league identifier.
	ID string
	// Name is the display name of the league.
	Name string
	// CompletedSeasonCutoff is the most recent season whose results are
	// final. Career aggregates (championships, spoons, trends) ignore
	// anything after it.
	CompletedSeasonCutoff int
	// CurrentSeason is the season in progress.
	CurrentSeason int
	// FinalWeek is the last regular-season week, the one playoff
	// scenarios are computed against.
	FinalWeek int
	// LeagueSize is the number of teams; finishing in place == LeagueSize
	// earns the wooden spoon.
	LeagueSize int
	// PlayoffSpots is how many teams reach the bracket.
	PlayoffSpots int

	MinRivalryGames      int
	MinConsistencyGames  int
	MinCloseGames        int
	CloseGameMargin      float64
	HighScoreLossMin     float64
	LowScoreWinMax       float64
	PerfectSeasonMinWins int
}

func DefaultSettings() Settings {
	return Settings{
		ID:                    "987449",
		Name:                  "The Greatest League",
		CompletedSeasonCutoff: 2024,
		CurrentSeason:         2025,
		FinalWeek:             15,
		LeagueSize:            12,
		PlayoffSpots:          4,
		MinRivalryGames:       3,
		MinConsistencyGames:   5,
		MinCloseGames:         5,
		CloseGameMargin:       10,
		HighScoreLossMin:      130,
		LowScoreWinMax:        90,
		PerfectSeasonMinWins:  10,
	}
}
