package matchup

import "context"

// Repository provides access to the append-only matchup history.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	ListByYear(ctx context.Context, year int) ([]Record, error)
	ListByWeek(ctx context.Context, year, week int) ([]Record, error)
	// Append stores records that are not already present, keyed by
	// (year, week, team1, team2), and reports how many were written.
	Append(ctx context.Context, records []Record) (int, error)
	// Weeks reports which weeks of a season already hold data.
	Weeks(ctx context.Context, year int) (map[int]int, error)
}
