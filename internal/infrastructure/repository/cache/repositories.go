package cache

import (
	"context"
	"strconv"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
	basecache "github.com/greatestleague/dashboard-api/internal/platform/cache"
)

// MatchupRepository is a read-through cache in front of the matchup
// store. Appends invalidate every matchup key.
type MatchupRepository struct {
	next  matchup.Repository
	cache *basecache.Store
}

func NewMatchupRepository(next matchup.Repository, cache *basecache.Store) *MatchupRepository {
	return &MatchupRepository{next: next, cache: cache}
}

func (r *MatchupRepository) List(ctx context.Context) ([]matchup.Record, error) {
	v, err := r.cache.GetOrLoad(ctx, "matchup:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]matchup.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchup.Record)
	return append([]matchup.Record(nil), items...), nil
}

func (r *MatchupRepository) ListByYear(ctx context.Context, year int) ([]matchup.Record, error) {
	key := "matchup:year:" + strconv.Itoa(year)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByYear(ctx, year)
		if err != nil {
			return nil, err
		}
		return append([]matchup.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchup.Record)
	return append([]matchup.Record(nil), items...), nil
}

func (r *MatchupRepository) ListByWeek(ctx context.Context, year, week int) ([]matchup.Record, error) {
	key := "matchup:week:" + strconv.Itoa(year) + ":" + strconv.Itoa(week)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByWeek(ctx, year, week)
		if err != nil {
			return nil, err
		}
		return append([]matchup.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchup.Record)
	return append([]matchup.Record(nil), items...), nil
}

func (r *MatchupRepository) Weeks(ctx context.Context, year int) (map[int]int, error) {
	key := "matchup:weeks:" + strconv.Itoa(year)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		weeks, err := r.next.Weeks(ctx, year)
		if err != nil {
			return nil, err
		}
		return cloneWeeks(weeks), nil
	})
	if err != nil {
		return nil, err
	}

	weeks, _ := v.(map[int]int)
	return cloneWeeks(weeks), nil
}

func (r *MatchupRepository) Append(ctx context.Context, records []matchup.Record) (int, error) {
	written, err := r.next.Append(ctx, records)
	if err != nil {
		return 0, err
	}
	if written > 0 {
		r.cache.DeletePrefix(ctx, "matchup:")
	}
	return written, nil
}

func cloneWeeks(weeks map[int]int) map[int]int {
	out := make(map[int]int, len(weeks))
	for week, count := range weeks {
		out[week] = count
	}
	return out
}

// StandingRepository is a read-through cache in front of the standings
// store, keyed per view.
type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) List(ctx context.Context, view standing.View) ([]standing.Record, error) {
	key := "standing:" + string(view) + ":list"
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.List(ctx, view)
		if err != nil {
			return nil, err
		}
		return append([]standing.Record(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]standing.Record)
	return append([]standing.Record(nil), rows...), nil
}

func (r *StandingRepository) ListByYear(ctx context.Context, view standing.View, year int) ([]standing.Record, error) {
	key := "standing:" + string(view) + ":year:" + strconv.Itoa(year)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.ListByYear(ctx, view, year)
		if err != nil {
			return nil, err
		}
		return append([]standing.Record(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]standing.Record)
	return append([]standing.Record(nil), rows...), nil
}

func (r *StandingRepository) Append(ctx context.Context, view standing.View, records []standing.Record) (int, error) {
	written, err := r.next.Append(ctx, view, records)
	if err != nil {
		return 0, err
	}
	if written > 0 {
		r.cache.DeletePrefix(ctx, "standing:"+string(view)+":")
	}
	return written, nil
}
