package memory

import (
	"context"
	"sync"

	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

// StandingStore keeps both standings views in memory.
type StandingStore struct {
	mu   sync.RWMutex
	rows map[standing.View][]standing.Record
}

func NewStandingStore() *StandingStore {
	return &StandingStore{rows: make(map[standing.View][]standing.Record)}
}

// Seed appends rows to a view without deduplication. Test helper.
func (s *StandingStore) Seed(view standing.View, records ...standing.Record) *StandingStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[view] = append(s.rows[view], records...)
	return s
}

func (s *StandingStore) List(ctx context.Context, view standing.View) ([]standing.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]standing.Record(nil), s.rows[view]...), nil
}

func (s *StandingStore) ListByYear(ctx context.Context, view standing.View, year int) ([]standing.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []standing.Record
	for _, row := range s.rows[view] {
		if row.Year == year {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *StandingStore) Append(ctx context.Context, view standing.View, records []standing.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type key struct {
		year  int
		place int
	}
	existing := make(map[key]struct{}, len(s.rows[view]))
	for _, row := range s.rows[view] {
		existing[key{row.Year, row.Place}] = struct{}{}
	}

	written := 0
	for _, row := range records {
		k := key{row.Year, row.Place}
		if _, ok := existing[k]; ok {
			continue
		}
		existing[k] = struct{}{}
		s.rows[view] = append(s.rows[view], row)
		written++
	}
	return written, nil
}
