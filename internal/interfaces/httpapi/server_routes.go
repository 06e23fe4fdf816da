package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /api/health", handler.Healthz)
}

func registerStandingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/standings", handler.CurrentStandings)
	mux.HandleFunc("GET /api/historical-standings", handler.HistoricalStandings)
	mux.HandleFunc("GET /api/historical-stats", handler.HistoricalStats)
	mux.HandleFunc("GET /api/team-stats-all-time", handler.AllTimeTeamStats)
	mux.HandleFunc("GET /api/scoring-titles", handler.ScoringTitles)
	mux.HandleFunc("GET /api/win-pct-by-year", handler.WinPctByYear)
	mux.HandleFunc("GET /api/all-time-wins", handler.AllTimeWins)
	mux.HandleFunc("GET /api/league-stats", handler.LeagueStats)
	mux.HandleFunc("GET /api/hall-of-fame", handler.HallOfFame)
	mux.HandleFunc("GET /api/hall-of-shame", handler.HallOfShame)
	mux.HandleFunc("GET /api/teams", handler.Teams)
	mux.HandleFunc("GET /api/league-info", handler.LeagueInfo)
}

func registerMatchupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matchups", handler.Matchups)
	mux.HandleFunc("GET /api/head-to-head", handler.HeadToHead)
	mux.HandleFunc("GET /api/head-to-head/all", handler.AllHeadToHead)
	mux.HandleFunc("GET /api/team-stats", handler.TeamStats)
	mux.HandleFunc("GET /api/playoff-scenarios", handler.PlayoffScenarios)
}

func registerFunStatRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/fun-stats", handler.Overview)
	mux.HandleFunc("GET /api/fun-stats/rivalries", handler.Rivalries)
	mux.HandleFunc("GET /api/fun-stats/trash-talk", handler.TrashTalk)
	mux.HandleFunc("GET /api/fun-stats/streaks", handler.Streaks)
	mux.HandleFunc("GET /api/fun-stats/blowouts", handler.Blowouts)
	mux.HandleFunc("GET /api/fun-stats/bad-beats", handler.BadBeats)
	mux.HandleFunc("GET /api/fun-stats/weekly-awards", handler.WeeklyAwards)
	mux.HandleFunc("GET /api/fun-stats/consistency", handler.Consistency)
	mux.HandleFunc("GET /api/fun-stats/clutch", handler.Clutch)
	mux.HandleFunc("GET /api/fun-stats/team-dna", handler.TeamDNA)
	mux.HandleFunc("GET /api/fun-stats/trophy-case", handler.TrophyCase)
	mux.HandleFunc("GET /api/fun-stats/points-trends", handler.PointsTrends)
	mux.HandleFunc("GET /api/fun-stats/matchup-difficulty", handler.MatchupDifficulty)
	mux.HandleFunc("GET /api/fun-stats/weekly-recap", handler.WeeklyRecap)
}

func registerIngestRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/refresh", handler.Refresh)
}
