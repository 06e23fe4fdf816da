package identity

import (
	"fmt"
	"os"
	"sort"

	sonic "github.com/bytedance/sonic"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

// Resolver maps historical team name variations to their canonical form.
// Franchises rename themselves between (and sometimes during) seasons;
// every aggregation runs on canonical names so a franchise's history
// survives its rebrands. The alias table is immutable after construction.
type Resolver struct {
	aliases map[string]string
}

// NewResolver builds a resolver over the default alias table extended
// with the given overrides. Overrides win on conflict.
func NewResolver(overrides map[string]string) *Resolver {
	aliases := make(map[string]string, len(defaultAliases)+len(overrides))
	for alias, canonical := range defaultAliases {
		aliases[alias] = canonical
	}
	for alias, canonical := range overrides {
		if alias == "" || canonical == "" {
			continue
		}
		aliases[alias] = canonical
	}
	return &Resolver{aliases: aliases}
}

// NewResolverFromFile loads alias overrides from a JSON object file
// ({"alias": "canonical", ...}) layered over the default table.
func NewResolverFromFile(path string) (*Resolver, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}

	overrides := make(map[string]string)
	if err := sonic.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("decode alias file %s: %w", path, err)
	}

	return NewResolver(overrides), nil
}

// Normalize maps a team name to its canonical form. Unknown names pass
// through unchanged, as do empty names and the tie sentinel, so the
// function is total and idempotent.
func (r *Resolver) Normalize(name string) string {
	if name == "" || name == "Tie" || name == "tie" {
		return name
	}
	if canonical, ok := r.aliases[name]; ok {
		return canonical
	}
	return name
}

// NormalizeMatchup returns a copy of the record with both team names and
// the winner mapped to canonical form. The tie sentinel is preserved.
func (r *Resolver) NormalizeMatchup(record matchup.Record) matchup.Record {
	record.Team1 = r.Normalize(record.Team1)
	record.Team2 = r.Normalize(record.Team2)
	if !record.IsTie() {
		record.Winner = r.Normalize(record.Winner)
	}
	return record
}

// NormalizeMatchups maps a whole history without mutating the input.
func (r *Resolver) NormalizeMatchups(records []matchup.Record) []matchup.Record {
	out := make([]matchup.Record, len(records))
	for i, record := range records {
		out[i] = r.NormalizeMatchup(record)
	}
	return out
}

// NormalizeStanding returns a copy of the row with a canonical team name.
func (r *Resolver) NormalizeStanding(record standing.Record) standing.Record {
	record.TeamName = r.Normalize(record.TeamName)
	return record
}

func (r *Resolver) NormalizeStandings(records []standing.Record) []standing.Record {
	out := make([]standing.Record, len(records))
	for i, record := range records {
		out[i] = r.NormalizeStanding(record)
	}
	return out
}

// CanonicalTeams lists every canonical name the alias table maps onto,
// sorted for stable output.
func (r *Resolver) CanonicalTeams() []string {
	seen := make(map[string]struct{}, len(r.aliases))
	for _, canonical := range r.aliases {
		seen[canonical] = struct{}{}
	}

	teams := make([]string, 0, len(seen))
	for canonical := range seen {
		teams = append(teams, canonical)
	}
	sort.Strings(teams)
	return teams
}
