package memory

import (
	"context"
	"sync"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
)

// MatchupStore keeps the matchup history in memory. It backs tests and
// seeded development runs; production uses the csvfile store.
type MatchupStore struct {
	mu      sync.RWMutex
	records []matchup.Record
}

func NewMatchupStore(seed ...matchup.Record) *MatchupStore {
	return &MatchupStore{records: append([]matchup.Record(nil), seed...)}
}

func (s *MatchupStore) List(ctx context.Context) ([]matchup.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]matchup.Record(nil), s.records...), nil
}

func (s *MatchupStore) ListByYear(ctx context.Context, year int) ([]matchup.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []matchup.Record
	for _, record := range s.records {
		if record.Year == year {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *MatchupStore) ListByWeek(ctx context.Context, year, week int) ([]matchup.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []matchup.Record
	for _, record := range s.records {
		if record.Year == year && record.Week == week {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *MatchupStore) Append(ctx context.Context, records []matchup.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[matchup.Key]struct{}, len(s.records))
	for _, record := range s.records {
		existing[record.Key()] = struct{}{}
	}

	written := 0
	for _, record := range records {
		key := record.Key()
		if _, ok := existing[key]; ok {
			continue
		}
		existing[key] = struct{}{}
		s.records = append(s.records, record)
		written++
	}
	return written, nil
}

func (s *MatchupStore) Weeks(ctx context.Context, year int) (map[int]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	weeks := make(map[int]int)
	for _, record := range s.records {
		if record.Year == year {
			weeks[record.Week]++
		}
	}
	return weeks, nil
}
