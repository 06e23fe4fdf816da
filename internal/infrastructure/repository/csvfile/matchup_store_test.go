package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
)

func testMatchup(year, week int, team1 string, score1 float64, team2 string, score2 float64) matchup.Record {
	winner := matchup.TieWinner
	if score1 > score2 {
		winner = team1
	} else if score2 > score1 {
		winner = team2
	}
	return matchup.Record{
		Year:       year,
		Week:       week,
		WeekType:   matchup.WeekTypeRegular,
		Team1:      team1,
		Team1Score: score1,
		Team2:      team2,
		Team2Score: score2,
		Winner:     winner,
		ScrapedAt:  time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestMatchupStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMatchupStore(filepath.Join(t.TempDir(), "matchups.csv"))
	ctx := context.Background()

	written, err := store.Append(ctx, []matchup.Record{
		testMatchup(2023, 1, "Pels", 120.5, "Woody", 100),
		testMatchup(2023, 2, "Pels", 95, "Woody", 95),
	})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 written, got %d", written)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %+v", records)
	}
	first := records[0]
	if first.Team1 != "Pels" || first.Team1Score != 120.5 || first.Winner != "Pels" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if !first.ScrapedAt.Equal(time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("scraped_at lost in round trip: %v", first.ScrapedAt)
	}
	if !records[1].IsTie() {
		t.Fatalf("expected a tie, got %+v", records[1])
	}
}

func TestMatchupStore_AppendDeduplicates(t *testing.T) {
	t.Parallel()

	store := NewMatchupStore(filepath.Join(t.TempDir(), "matchups.csv"))
	ctx := context.Background()

	record := testMatchup(2023, 1, "Pels", 120, "Woody", 100)
	if _, err := store.Append(ctx, []matchup.Record{record}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	// Same key, different scores: still a duplicate.
	record.Team1Score = 999
	written, err := store.Append(ctx, []matchup.Record{record, testMatchup(2023, 2, "Pels", 90, "Woody", 80)})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if written != 1 {
		t.Fatalf("expected 1 written, got %d", written)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 2 || records[0].Team1Score != 120 {
		t.Fatalf("duplicate overwrote existing data: %+v", records)
	}
}

func TestMatchupStore_FiltersAndWeeks(t *testing.T) {
	t.Parallel()

	store := NewMatchupStore(filepath.Join(t.TempDir(), "matchups.csv"))
	ctx := context.Background()

	if _, err := store.Append(ctx, []matchup.Record{
		testMatchup(2022, 1, "Pels", 100, "Woody", 90),
		testMatchup(2023, 1, "Pels", 100, "Woody", 90),
		testMatchup(2023, 1, "Scrubs", 80, "MEGATRON", 85),
		testMatchup(2023, 2, "Pels", 100, "Scrubs", 90),
	}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	byYear, err := store.ListByYear(ctx, 2023)
	if err != nil {
		t.Fatalf("ListByYear error: %v", err)
	}
	if len(byYear) != 3 {
		t.Fatalf("expected 3 records for 2023, got %d", len(byYear))
	}

	byWeek, err := store.ListByWeek(ctx, 2023, 1)
	if err != nil {
		t.Fatalf("ListByWeek error: %v", err)
	}
	if len(byWeek) != 2 {
		t.Fatalf("expected 2 records for week 1, got %d", len(byWeek))
	}

	weeks, err := store.Weeks(ctx, 2023)
	if err != nil {
		t.Fatalf("Weeks error: %v", err)
	}
	if weeks[1] != 2 || weeks[2] != 1 {
		t.Fatalf("unexpected week counts: %v", weeks)
	}
}

func TestMatchupStore_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewMatchupStore(filepath.Join(t.TempDir(), "nope.csv"))

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %+v", records)
	}
}

func TestMatchupStore_HeaderWrittenOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matchups.csv")
	store := NewMatchupStore(path)
	ctx := context.Background()

	if _, err := store.Append(ctx, []matchup.Record{testMatchup(2023, 1, "Pels", 100, "Woody", 90)}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if _, err := store.Append(ctx, []matchup.Record{testMatchup(2023, 2, "Pels", 100, "Woody", 90)}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got := strings.Count(string(raw), "team1_name"); got != 1 {
		t.Fatalf("expected one header, found %d in:\n%s", got, raw)
	}
}

func TestMatchupStore_RejectsMalformedRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matchups.csv")
	content := strings.Join([]string{
		strings.Join(matchupHeader, ","),
		"not-a-year,1,regular,Pels,100,Woody,90,Pels,",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	store := NewMatchupStore(path)
	if _, err := store.List(context.Background()); err == nil {
		t.Fatal("expected an error for a malformed row")
	}
}
