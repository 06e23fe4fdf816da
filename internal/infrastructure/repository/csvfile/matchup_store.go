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

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
)

var matchupHeader = []string{
	"year", "week", "week_type",
	"team1_name", "team1_score", "team2_name", "team2_score",
	"winner", "scraped_at",
}

// MatchupStore keeps the matchup history in a single append-only CSV
// file. Reads parse the whole file; the cache layer in front of the
// store keeps that off the hot path.
type MatchupStore struct {
	path string
	mu   sync.RWMutex
}

func NewMatchupStore(path string) *MatchupStore {
	return &MatchupStore{path: path}
}

func (s *MatchupStore) List(ctx context.Context) ([]matchup.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *MatchupStore) ListByYear(ctx context.Context, year int) ([]matchup.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]matchup.Record, 0, len(records))
	for _, record := range records {
		if record.Year == year {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *MatchupStore) ListByWeek(ctx context.Context, year, week int) ([]matchup.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]matchup.Record, 0, len(records))
	for _, record := range records {
		if record.Year == year && record.Week == week {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *MatchupStore) Weeks(ctx context.Context, year int) (map[int]int, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	weeks := make(map[int]int)
	for _, record := range records {
		if record.Year == year {
			weeks[record.Week]++
		}
	}
	return weeks, nil
}

func (s *MatchupStore) Append(ctx context.Context, records []matchup.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return 0, err
	}
	seen := make(map[matchup.Key]bool, len(existing))
	for _, record := range existing {
		seen[record.Key()] = true
	}

	fresh := make([]matchup.Record, 0, len(records))
	for _, record := range records {
		key := record.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		fresh = append(fresh, record)
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	if err := s.appendRows(len(existing) == 0, fresh); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func (s *MatchupStore) load() ([]matchup.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open matchup file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(matchupHeader)

	var records []matchup.Record
	for line := 0; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read matchup file: %w", err)
		}
		if line == 0 && row[0] == matchupHeader[0] {
			continue
		}
		record, err := parseMatchupRow(row)
		if err != nil {
			return nil, fmt.Errorf("matchup file line %d: %w", line+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *MatchupStore) appendRows(writeHeader bool, records []matchup.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open matchup file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if writeHeader {
		if err := writer.Write(matchupHeader); err != nil {
			return fmt.Errorf("write matchup header: %w", err)
		}
	}
	for _, record := range records {
		scrapedAt := ""
		if !record.ScrapedAt.IsZero() {
			scrapedAt = record.ScrapedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			strconv.Itoa(record.Year),
			strconv.Itoa(record.Week),
			string(record.WeekType),
			record.Team1,
			formatScore(record.Team1Score),
			record.Team2,
			formatScore(record.Team2Score),
			record.Winner,
			scrapedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write matchup row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush matchup file: %w", err)
	}
	return f.Sync()
}

func parseMatchupRow(row []string) (matchup.Record, error) {
	year, err := strconv.Atoi(row[0])
	if err != nil {
		return matchup.Record{}, fmt.Errorf("bad year %q", row[0])
	}
	week, err := strconv.Atoi(row[1])
	if err != nil {
		return matchup.Record{}, fmt.Errorf("bad week %q", row[1])
	}
	score1, err := parseScore(row[4])
	if err != nil {
		return matchup.Record{}, fmt.Errorf("bad team1 score %q", row[4])
	}
	score2, err := parseScore(row[6])
	if err != nil {
		return matchup.Record{}, fmt.Errorf("bad team2 score %q", row[6])
	}

	record := matchup.Record{
		Year:       year,
		Week:       week,
		WeekType:   matchup.WeekType(row[2]),
		Team1:      row[3],
		Team1Score: score1,
		Team2:      row[5],
		Team2Score: score2,
		Winner:     row[7],
	}
	if row[8] != "" {
		scrapedAt, err := time.Parse(time.RFC3339, row[8])
		if err != nil {
			return matchup.Record{}, fmt.Errorf("bad scraped_at %q", row[8])
		}
		record.ScrapedAt = scrapedAt
	}
	return record, nil
}

func parseScore(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
