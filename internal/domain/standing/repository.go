package standing

import "context"

// Repository provides access to the standings snapshots.
type Repository interface {
	List(ctx context.Context, view View) ([]Record, error)
	ListByYear(ctx context.Context, view View, year int) ([]Record, error)
	// Append stores rows that are not already present, keyed by
	// (year, place), and reports how many were written.
	Append(ctx context.Context, view View, records []Record) (int, error)
}
