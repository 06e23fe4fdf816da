package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

func testStanding(year, place int, team string, wins, losses int, pointsFor float64) standing.Record {
	games := wins + losses
	winPct := 0.0
	if games > 0 {
		winPct = float64(wins) / float64(games)
	}
	return standing.Record{
		Year:          year,
		Place:         place,
		TeamName:      team,
		Wins:          wins,
		Losses:        losses,
		WinPct:        winPct,
		PointsFor:     pointsFor,
		PointsAgainst: pointsFor - 50,
		TeamLogo:      "https://img.example/" + team + ".png",
	}
}

func newTestStandingStore(t *testing.T) *StandingStore {
	t.Helper()
	dir := t.TempDir()
	return NewStandingStore(
		filepath.Join(dir, "regular_standings.csv"),
		filepath.Join(dir, "final_standings.csv"),
	)
}

func TestStandingStore_ViewsAreIsolated(t *testing.T) {
	t.Parallel()

	store := newTestStandingStore(t)
	ctx := context.Background()

	if _, err := store.Append(ctx, standing.ViewRegular, []standing.Record{
		testStanding(2023, 1, "Pels", 12, 2, 1500),
	}); err != nil {
		t.Fatalf("Append regular error: %v", err)
	}
	if _, err := store.Append(ctx, standing.ViewFinal, []standing.Record{
		testStanding(2023, 1, "Woody", 11, 3, 1450),
	}); err != nil {
		t.Fatalf("Append final error: %v", err)
	}

	regular, err := store.List(ctx, standing.ViewRegular)
	if err != nil {
		t.Fatalf("List regular error: %v", err)
	}
	if len(regular) != 1 || regular[0].TeamName != "Pels" {
		t.Fatalf("unexpected regular rows: %+v", regular)
	}

	final, err := store.List(ctx, standing.ViewFinal)
	if err != nil {
		t.Fatalf("List final error: %v", err)
	}
	if len(final) != 1 || final[0].TeamName != "Woody" {
		t.Fatalf("unexpected final rows: %+v", final)
	}
}

func TestStandingStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStandingStore(t)
	ctx := context.Background()

	row := testStanding(2023, 4, "MEGATRON", 8, 6, 1333.5)
	row.Ties = 1
	if _, err := store.Append(ctx, standing.ViewRegular, []standing.Record{row}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	rows, err := store.ListByYear(ctx, standing.ViewRegular, 2023)
	if err != nil {
		t.Fatalf("ListByYear error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %+v", rows)
	}
	got := rows[0]
	if got.TeamName != "MEGATRON" || got.Place != 4 || got.Ties != 1 {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.PointsFor != 1333.5 || got.PointsAgainst != 1283.5 {
		t.Fatalf("points lost in round trip: %+v", got)
	}
	if got.TeamLogo != "https://img.example/MEGATRON.png" {
		t.Fatalf("logo lost in round trip: %q", got.TeamLogo)
	}
}

func TestStandingStore_AppendDeduplicatesByYearAndPlace(t *testing.T) {
	t.Parallel()

	store := newTestStandingStore(t)
	ctx := context.Background()

	if _, err := store.Append(ctx, standing.ViewFinal, []standing.Record{
		testStanding(2023, 1, "Pels", 12, 2, 1500),
	}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	written, err := store.Append(ctx, standing.ViewFinal, []standing.Record{
		testStanding(2023, 1, "Impostor", 0, 14, 900), // same (year, place)
		testStanding(2023, 2, "Woody", 11, 3, 1450),
		testStanding(2024, 1, "Pels", 13, 1, 1550),
	})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 written, got %d", written)
	}

	rows, err := store.ListByYear(ctx, standing.ViewFinal, 2023)
	if err != nil {
		t.Fatalf("ListByYear error: %v", err)
	}
	if len(rows) != 2 || rows[0].TeamName != "Pels" {
		t.Fatalf("duplicate replaced existing row: %+v", rows)
	}
}

func TestStandingStore_RejectsMistaggedRows(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	regularPath := filepath.Join(dir, "regular_standings.csv")
	content := strings.Join([]string{
		strings.Join(standingHeader, ","),
		"2023,1,Pels,12,2,0,0.857,1500,1300,,final,",
	}, "\n") + "\n"
	if err := os.WriteFile(regularPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	store := NewStandingStore(regularPath, filepath.Join(dir, "final_standings.csv"))
	if _, err := store.List(context.Background(), standing.ViewRegular); err == nil {
		t.Fatal("expected an error for a row tagged with the wrong view")
	}
}

func TestStandingStore_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := newTestStandingStore(t)

	rows, err := store.List(context.Background(), standing.ViewFinal)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}
