package scraper

import (
	"testing"
	"time"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
)

const scoreboardHTML = `<!DOCTYPE html>
<html><body>
<div class="matchup">
  <div class="team home"><span class="team-name">Pels</span><span class="team-score">120.5</span></div>
  <div class="team away"><span class="team-name">Woody</span><span class="team-score">100</span></div>
</div>
<div class="matchup">
  <div class="team home"><span class="team-name">Scrubs</span><span class="team-score">95.2</span></div>
  <div class="team away"><span class="team-name">MEGATRON</span><span class="team-score">95.2</span></div>
</div>
<div class="matchup">
  <div class="team home"><span class="team-name"></span><span class="team-score">--</span></div>
  <div class="team away"><span class="team-name"></span><span class="team-score">--</span></div>
</div>
</body></html>`

func TestParseScoreboard(t *testing.T) {
	t.Parallel()

	scrapedAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	records, err := parseScoreboard([]byte(scoreboardHTML), 2025, 3, scrapedAt)
	if err != nil {
		t.Fatalf("parseScoreboard error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 games, got %+v", records)
	}

	first := records[0]
	if first.Team1 != "Pels" || first.Team1Score != 120.5 || first.Team2 != "Woody" {
		t.Fatalf("unexpected first game: %+v", first)
	}
	if first.Winner != "Pels" || first.Year != 2025 || first.Week != 3 {
		t.Fatalf("unexpected first game: %+v", first)
	}
	if !first.ScrapedAt.Equal(scrapedAt) {
		t.Fatalf("unexpected scraped_at: %v", first.ScrapedAt)
	}

	if records[1].Winner != matchup.TieWinner {
		t.Fatalf("expected a tie, got %+v", records[1])
	}
	// Two games scraped means a superbowl slate.
	if records[0].WeekType != matchup.WeekTypeSuperbowl {
		t.Fatalf("unexpected week type: %v", records[0].WeekType)
	}
}

func TestParseScoreboard_EmptyWeek(t *testing.T) {
	t.Parallel()

	records, err := parseScoreboard([]byte("<html><body></body></html>"), 2025, 14, time.Now())
	if err != nil {
		t.Fatalf("parseScoreboard error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no games, got %+v", records)
	}
}

func TestParseScoreboard_BadScore(t *testing.T) {
	t.Parallel()

	html := `<div class="matchup">
  <div class="team"><span class="team-name">Pels</span><span class="team-score">twelve</span></div>
  <div class="team"><span class="team-name">Woody</span><span class="team-score">100</span></div>
</div>`
	if _, err := parseScoreboard([]byte(html), 2025, 1, time.Now()); err == nil {
		t.Fatal("expected an error for a malformed score")
	}
}

const standingsHTML = `<!DOCTYPE html>
<html><body>
<table class="standings" data-view="regular">
  <tr class="team-row">
    <td class="place">1</td>
    <td class="team"><img class="team-logo" src="https://img.example/pels.png"><span class="team-name">Pels</span></td>
    <td class="record">12-2</td>
    <td class="pct">.857</td>
    <td class="pf">1,500.5</td>
    <td class="pa">1300</td>
  </tr>
  <tr class="team-row">
    <td class="place">2</td>
    <td class="team"><span class="team-name">Woody</span></td>
    <td class="record">10-3-1</td>
    <td class="pct">0.75</td>
    <td class="pf">1450</td>
    <td class="pa">1350</td>
  </tr>
</table>
<table class="standings" data-view="final">
  <tr class="team-row">
    <td class="place">1</td>
    <td class="team"><span class="team-name">Woody</span></td>
    <td class="record">13-3-1</td>
    <td class="pct"></td>
    <td class="pf"></td>
    <td class="pa"></td>
  </tr>
</table>
</body></html>`

func TestParseStandings(t *testing.T) {
	t.Parallel()

	scrapedAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	regular, final, err := parseStandings([]byte(standingsHTML), 2024, scrapedAt)
	if err != nil {
		t.Fatalf("parseStandings error: %v", err)
	}

	if len(regular) != 2 {
		t.Fatalf("expected 2 regular rows, got %+v", regular)
	}
	pels := regular[0]
	if pels.TeamName != "Pels" || pels.Place != 1 || pels.Year != 2024 {
		t.Fatalf("unexpected first row: %+v", pels)
	}
	if pels.Wins != 12 || pels.Losses != 2 || pels.Ties != 0 {
		t.Fatalf("unexpected record: %+v", pels)
	}
	if pels.WinPct != 0.857 || pels.PointsFor != 1500.5 || pels.PointsAgainst != 1300 {
		t.Fatalf("unexpected numbers: %+v", pels)
	}
	if pels.TeamLogo != "https://img.example/pels.png" {
		t.Fatalf("unexpected logo: %q", pels.TeamLogo)
	}

	woody := regular[1]
	if woody.Ties != 1 || woody.WinPct != 0.75 {
		t.Fatalf("unexpected second row: %+v", woody)
	}

	if len(final) != 1 || final[0].TeamName != "Woody" || final[0].Wins != 13 {
		t.Fatalf("unexpected final table: %+v", final)
	}
}

func TestParseStandings_MissingFinalTable(t *testing.T) {
	t.Parallel()

	html := `<table class="standings" data-view="regular">
  <tr class="team-row">
    <td class="place">1</td>
    <td class="team"><span class="team-name">Pels</span></td>
    <td class="record">4-1</td>
    <td class="pct">.8</td>
    <td class="pf">520</td>
    <td class="pa">450</td>
  </tr>
</table>`
	regular, final, err := parseStandings([]byte(html), 2025, time.Now())
	if err != nil {
		t.Fatalf("parseStandings error: %v", err)
	}
	if len(regular) != 1 || len(final) != 0 {
		t.Fatalf("expected only a regular table, got %+v / %+v", regular, final)
	}
}

func TestParseStandings_BadRecordCell(t *testing.T) {
	t.Parallel()

	html := `<table class="standings" data-view="regular">
  <tr class="team-row">
    <td class="place">1</td>
    <td class="team"><span class="team-name">Pels</span></td>
    <td class="record">lots</td>
    <td class="pct">.8</td>
    <td class="pf">520</td>
    <td class="pa">450</td>
  </tr>
</table>`
	if _, _, err := parseStandings([]byte(html), 2025, time.Now()); err == nil {
		t.Fatal("expected an error for a malformed record cell")
	}
}
