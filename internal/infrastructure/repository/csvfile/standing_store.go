package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

var standingHeader = []string{
	"year", "place", "team_name",
	"wins", "losses", "ties", "win_pct",
	"points_for", "points_against",
	"team_logo", "standings_type", "scraped_at",
}

// StandingStore keeps the two standings snapshots in one CSV file per
// view, distinguished by path. The standings_type column is written for
// compatibility with older exports and checked on read when present.
type StandingStore struct {
	paths map[standing.View]string
	mu    sync.RWMutex
}

func NewStandingStore(regularPath, finalPath string) *StandingStore {
	return &StandingStore{
		paths: map[standing.View]string{
			standing.ViewRegular: regularPath,
			standing.ViewFinal:   finalPath,
		},
	}
}

func (s *StandingStore) List(ctx context.Context, view standing.View) ([]standing.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load(view)
}

func (s *StandingStore) ListByYear(ctx context.Context, view standing.View, year int) ([]standing.Record, error) {
	rows, err := s.List(ctx, view)
	if err != nil {
		return nil, err
	}
	out := make([]standing.Record, 0, len(rows))
	for _, row := range rows {
		if row.Year == year {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *StandingStore) Append(ctx context.Context, view standing.View, records []standing.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load(view)
	if err != nil {
		return 0, err
	}
	type key struct {
		year  int
		place int
	}
	seen := make(map[key]bool, len(existing))
	for _, row := range existing {
		seen[key{row.Year, row.Place}] = true
	}

	fresh := make([]standing.Record, 0, len(records))
	for _, row := range records {
		k := key{row.Year, row.Place}
		if seen[k] {
			continue
		}
		seen[k] = true
		fresh = append(fresh, row)
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	if err := s.appendRows(view, len(existing) == 0, fresh); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func (s *StandingStore) load(view standing.View) ([]standing.Record, error) {
	path, ok := s.paths[view]
	if !ok {
		return nil, fmt.Errorf("unknown standings view %q", view)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s standings file: %w", view, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(standingHeader)

	var rows []standing.Record
	for line := 0; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s standings file: %w", view, err)
		}
		if line == 0 && record[0] == standingHeader[0] {
			continue
		}
		if record[10] != "" && record[10] != string(view) {
			return nil, fmt.Errorf("%s standings file line %d: row tagged %q", view, line+1, record[10])
		}
		row, err := parseStandingRow(record)
		if err != nil {
			return nil, fmt.Errorf("%s standings file line %d: %w", view, line+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *StandingStore) appendRows(view standing.View, writeHeader bool, records []standing.Record) error {
	path := s.paths[view]
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s standings file: %w", view, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if writeHeader {
		if err := writer.Write(standingHeader); err != nil {
			return fmt.Errorf("write standings header: %w", err)
		}
	}
	for _, record := range records {
		scrapedAt := ""
		if !record.ScrapedAt.IsZero() {
			scrapedAt = record.ScrapedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			strconv.Itoa(record.Year),
			strconv.Itoa(record.Place),
			record.TeamName,
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Losses),
			strconv.Itoa(record.Ties),
			strconv.FormatFloat(record.WinPct, 'f', -1, 64),
			formatScore(record.PointsFor),
			formatScore(record.PointsAgainst),
			record.TeamLogo,
			string(view),
			scrapedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write standings row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s standings file: %w", view, err)
	}
	return f.Sync()
}

func parseStandingRow(record []string) (standing.Record, error) {
	year, err := strconv.Atoi(record[0])
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad year %q", record[0])
	}
	place, err := strconv.Atoi(record[1])
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad place %q", record[1])
	}
	wins, err := strconv.Atoi(record[3])
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad wins %q", record[3])
	}
	losses, err := strconv.Atoi(record[4])
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad losses %q", record[4])
	}
	ties, err := strconv.Atoi(record[5])
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad ties %q", record[5])
	}
	winPct, err := parseScore(record[6])
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad win_pct %q", record[6])
	}
	pointsFor, err := parseScore(record[7])
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad points_for %q", record[7])
	}
	pointsAgainst, err := parseScore(record[8])
	if err != nil {
		return standing.Record{}, fmt.Errorf("bad points_against %q", record[8])
	}

	row := standing.Record{
		Year:          year,
		Place:         place,
		TeamName:      record[2],
		Wins:          wins,
		Losses:        losses,
		Ties:          ties,
		WinPct:        winPct,
		PointsFor:     pointsFor,
		PointsAgainst: pointsAgainst,
		TeamLogo:      record[9],
	}
	if record[11] != "" {
		scrapedAt, err := time.Parse(time.RFC3339, record[11])
		if err != nil {
			return standing.Record{}, fmt.Errorf("bad scraped_at %q", record[11])
		}
		row.ScrapedAt = scrapedAt
	}
	return row, nil
}
