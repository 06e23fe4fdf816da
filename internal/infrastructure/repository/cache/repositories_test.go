package cache

import (
	"context"
	"testing"
	"time"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
	basecache "github.com/greatestleague/dashboard-api/internal/platform/cache"
)

type countingMatchupRepo struct {
	records   []matchup.Record
	listCalls int
}

func (c *countingMatchupRepo) List(ctx context.Context) ([]matchup.Record, error) {
	c.listCalls++
	return append([]matchup.Record(nil), c.records...), nil
}

func (c *countingMatchupRepo) ListByYear(ctx context.Context, year int) ([]matchup.Record, error) {
	return c.List(ctx)
}

func (c *countingMatchupRepo) ListByWeek(ctx context.Context, year, week int) ([]matchup.Record, error) {
	return c.List(ctx)
}

func (c *countingMatchupRepo) Append(ctx context.Context, records []matchup.Record) (int, error) {
	c.records = append(c.records, records...)
	return len(records), nil
}

func (c *countingMatchupRepo) Weeks(ctx context.Context, year int) (map[int]int, error) {
	return map[int]int{}, nil
}

func TestMatchupRepository_CachesAndInvalidates(t *testing.T) {
	t.Parallel()

	inner := &countingMatchupRepo{records: []matchup.Record{{Year: 2023, Week: 1, Team1: "Pels", Team2: "Woody"}}}
	repo := NewMatchupRepository(inner, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		records, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
	}
	if inner.listCalls != 1 {
		t.Fatalf("expected one store read, got %d", inner.listCalls)
	}

	if _, err := repo.Append(ctx, []matchup.Record{{Year: 2023, Week: 2, Team1: "Pels", Team2: "Woody"}}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected the cache invalidated, got %d records", len(records))
	}
	if inner.listCalls != 2 {
		t.Fatalf("expected a second store read after append, got %d", inner.listCalls)
	}
}

func TestMatchupRepository_CallersCannotMutateCache(t *testing.T) {
	t.Parallel()

	inner := &countingMatchupRepo{records: []matchup.Record{{Year: 2023, Week: 1, Team1: "Pels", Team2: "Woody"}}}
	repo := NewMatchupRepository(inner, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	first[0].Team1 = "Mangled"

	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if second[0].Team1 != "Pels" {
		t.Fatalf("cached record was mutated: %+v", second[0])
	}
}

type countingStandingRepo struct {
	rows      []standing.Record
	listCalls int
}

func (c *countingStandingRepo) List(ctx context.Context, view standing.View) ([]standing.Record, error) {
	c.listCalls++
	return append([]standing.Record(nil), c.rows...), nil
}

func (c *countingStandingRepo) ListByYear(ctx context.Context, view standing.View, year int) ([]standing.Record, error) {
	return c.List(ctx, view)
}

func (c *countingStandingRepo) Append(ctx context.Context, view standing.View, records []standing.Record) (int, error) {
	c.rows = append(c.rows, records...)
	return len(records), nil
}

func TestStandingRepository_ViewsUseDistinctKeys(t *testing.T) {
	t.Parallel()

	inner := &countingStandingRepo{rows: []standing.Record{{Year: 2023, Place: 1, TeamName: "Pels"}}}
	repo := NewStandingRepository(inner, basecache.NewStore(time.Minute))
	ctx := context.Background()

	if _, err := repo.List(ctx, standing.ViewRegular); err != nil {
		t.Fatalf("List regular error: %v", err)
	}
	if _, err := repo.List(ctx, standing.ViewFinal); err != nil {
		t.Fatalf("List final error: %v", err)
	}
	if inner.listCalls != 2 {
		t.Fatalf("expected separate loads per view, got %d", inner.listCalls)
	}

	// A final-view append must not evict the regular view.
	if _, err := repo.Append(ctx, standing.ViewFinal, []standing.Record{{Year: 2023, Place: 2, TeamName: "Woody"}}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if _, err := repo.List(ctx, standing.ViewRegular); err != nil {
		t.Fatalf("List regular error: %v", err)
	}
	if inner.listCalls != 2 {
		t.Fatalf("regular view was evicted by a final append, loads: %d", inner.listCalls)
	}
}
