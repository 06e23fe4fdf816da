package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
)

func TestMatchupStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMatchupStore(
		matchup.Record{Year: 2023, Week: 1, Team1: "Pels", Team2: "Woody"},
		matchup.Record{Year: 2023, Week: 2, Team1: "Woody", Team2: "Pels"},
		matchup.Record{Year: 2024, Week: 1, Team1: "Pels", Team2: "Scrubs"},
	)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byYear, err := store.ListByYear(ctx, 2023)
	require.NoError(t, err)
	require.Len(t, byYear, 2)

	byWeek, err := store.ListByWeek(ctx, 2023, 2)
	require.NoError(t, err)
	require.Len(t, byWeek, 1)
	require.Equal(t, "Woody", byWeek[0].Team1)

	weeks, err := store.Weeks(ctx, 2023)
	require.NoError(t, err)
	require.Equal(t, map[int]int{1: 1, 2: 1}, weeks)

	// A duplicate key is suppressed, a new key is written.
	written, err := store.Append(ctx, []matchup.Record{
		{Year: 2023, Week: 1, Team1: "Pels", Team2: "Woody", Team1Score: 99},
		{Year: 2024, Week: 2, Team1: "Scrubs", Team2: "Pels"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, written)

	all, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestStandingStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStandingStore().
		Seed(standing.ViewRegular, standing.Record{Year: 2023, Place: 1, TeamName: "Pels"}).
		Seed(standing.ViewFinal, standing.Record{Year: 2023, Place: 1, TeamName: "Woody"})

	regular, err := store.List(ctx, standing.ViewRegular)
	require.NoError(t, err)
	require.Len(t, regular, 1)
	require.Equal(t, "Pels", regular[0].TeamName)

	final, err := store.List(ctx, standing.ViewFinal)
	require.NoError(t, err)
	require.Equal(t, "Woody", final[0].TeamName)

	written, err := store.Append(ctx, standing.ViewRegular, []standing.Record{
		{Year: 2023, Place: 1, TeamName: "Imposter"},
		{Year: 2023, Place: 2, TeamName: "Woody"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, written)

	byYear, err := store.ListByYear(ctx, standing.ViewRegular, 2023)
	require.NoError(t, err)
	require.Len(t, byYear, 2)
	require.Equal(t, "Pels", byYear[0].TeamName)
}
