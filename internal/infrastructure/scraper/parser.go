package scraper

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

// parseScoreboard extracts the week's games from a scoreboard page.
// Each game is a div.matchup holding two .team blocks with .team-name
// and .team-score spans.
func parseScoreboard(html []byte, year, week int, scrapedAt time.Time) ([]matchup.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var records []matchup.Record
	var parseErr error

	doc.Find("div.matchup").EachWithBreak(func(_ int, box *goquery.Selection) bool {
		teams := box.Find(".team")
		if teams.Length() != 2 {
			return true
		}

		team1, score1, err := parseTeamBlock(teams.Eq(0))
		if err != nil {
			parseErr = err
			return false
		}
		team2, score2, err := parseTeamBlock(teams.Eq(1))
		if err != nil {
			parseErr = err
			return false
		}
		if team1 == "" || team2 == "" {
			return true
		}

		winner := matchup.TieWinner
		if score1 > score2 {
			winner = team1
		} else if score2 > score1 {
			winner = team2
		}
		records = append(records, matchup.Record{
			Year:       year,
			Week:       week,
			Team1:      team1,
			Team1Score: score1,
			Team2:      team2,
			Team2Score: score2,
			Winner:     winner,
			ScrapedAt:  scrapedAt,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	weekType := matchup.DetermineWeekType(len(records))
	for i := range records {
		records[i].WeekType = weekType
	}
	return records, nil
}

func parseTeamBlock(team *goquery.Selection) (string, float64, error) {
	name := strings.TrimSpace(team.Find(".team-name").First().Text())
	rawScore := strings.TrimSpace(team.Find(".team-score").First().Text())
	if rawScore == "" || rawScore == "--" {
		return name, 0, nil
	}
	score, err := strconv.ParseFloat(rawScore, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad score %q for team %q", rawScore, name)
	}
	return name, score, nil
}

// parseStandings extracts both standings tables from a standings page.
// Tables are table.standings tagged data-view="regular" or "final";
// rows are tr.team-row with place, team, record, pct, pf and pa cells.
func parseStandings(html []byte, year int, scrapedAt time.Time) ([]standing.Record, []standing.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("parse html: %w", err)
	}

	tables := map[string][]standing.Record{}
	var parseErr error

	doc.Find("table.standings").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		view, _ := table.Attr("data-view")
		if view != string(standing.ViewRegular) && view != string(standing.ViewFinal) {
			return true
		}

		table.Find("tr.team-row").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
			row, err := parseStandingRow(tr, year, scrapedAt)
			if err != nil {
				parseErr = fmt.Errorf("%s table: %w", view, err)
				return false
			}
			if row.TeamName == "" {
				return true
			}
			tables[view] = append(tables[view], row)
			return true
		})
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, nil, parseErr
	}

	return tables[string(standing.ViewRegular)], tables[string(standing.ViewFinal)], nil
}

func parseStandingRow(tr *goquery.Selection, year int, scrapedAt time.Time) (standing.Record, error) {
	cell := func(class string) string {
		return strings.TrimSpace(tr.Find("td." + class).First().Text())
	}

	place, err := strconv.Atoi(cell("place"))
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad place %q", cell("place"))
	}

	team := tr.Find("td.team")
	name := strings.TrimSpace(team.Find(".team-name").First().Text())
	logo, _ := team.Find("img.team-logo").First().Attr("src")

	wins, losses, ties, err := parseRecordCell(cell("record"))
	if err != nil {
		return standing.Record{}, err
	}
	winPct, err := parsePctCell(cell("pct"))
	if err != nil {
		return standing.Record{}, err
	}
	pointsFor, err := parsePointsCell(cell("pf"))
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad points for %q", cell("pf"))
	}
	pointsAgainst, err := parsePointsCell(cell("pa"))
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad points against %q", cell("pa"))
	}

	return standing.Record{
		Year:          year,
		Place:         place,
		TeamName:      name,
		Wins:          wins,
		Losses:        losses,
		Ties:          ties,
		WinPct:        winPct,
		PointsFor:     pointsFor,
		PointsAgainst: pointsAgainst,
		TeamLogo:      strings.TrimSpace(logo),
		ScrapedAt:     scrapedAt,
	}, nil
}

// parseRecordCell splits a "12-2" or "12-2-1" record.
func parseRecordCell(raw string) (wins, losses, ties int, err error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("bad record %q", raw)
	}
	numbers := make([]int, len(parts))
	for i, part := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("bad record %q", raw)
		}
		numbers[i] = n
	}
	wins, losses = numbers[0], numbers[1]
	if len(numbers) == 3 {
		ties = numbers[2]
	}
	return wins, losses, ties, nil
}

// parsePctCell accepts ".857", "0.857" or an empty cell.
func parsePctCell(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	if strings.HasPrefix(raw, ".") {
		raw = "0" + raw
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("bad win pct %q", raw)
	}
	return pct, nil
}

func parsePointsCell(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}
