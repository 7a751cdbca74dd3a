package financestore

import (
	"campaignfinance/lib/testutil"
	"campaignfinance/lib/timezone"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openMemory(t testing.TB) Store {
	database := testutil.OpenSqlite(t, Schema)
	store, err := NewStore(context.Background(), database)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestStore(t *testing.T) {
	store := openMemory(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		res, err := store.Pull(ctx, "unknown")
		require.NoError(t, err)
		require.Len(t, res, 0)
	}

	morning := timezone.Day(2025, 5, 1).Add(time.Hour * 8)
	evening := morning.Add(time.Hour * 12)
	nextDay := morning.Add(time.Hour * 24)

	push := func(at time.Time, supporters float64) {
		err := store.Push(ctx, PushRequest{
			Time: at,
			Votations: []VotationSnapshot{
				{
					VotationID:      "8",
					VoteDate:        "22.06.2025",
					Title:           "Loi sur l'énergie",
					SupportersTotal: supporters,
					OpponentsTotal:  50,
					SupportersCount: 1,
					OpponentsCount:  1,
				},
			},
		})
		require.NoError(t, err)
	}

	push(morning, 100)
	// replaces the morning snapshot
	push(evening, 150)
	push(nextDay, 200)

	snaps, err := store.Pull(ctx, "8")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	require.Equal(t, 150.0, snaps[0].SupportersTotal)
	require.Equal(t, evening.Unix(), snaps[0].Time.Unix())
	require.Equal(t, 200.0, snaps[1].SupportersTotal)
	require.Equal(t, 50.0, snaps[1].OpponentsTotal)
	require.Equal(t, 1, snaps[1].OpponentsCount)

	votations, err := store.Votations(ctx)
	require.NoError(t, err)
	require.Equal(t, []Votation{{ID: "8", VoteDate: "22.06.2025", Title: "Loi sur l'énergie"}}, votations)
}

func TestConfigOpenDB(t *testing.T) {
	require.False(t, Config{}.Enabled())
	_, err := Config{}.OpenDB()
	require.Error(t, err)

	cfg := Config{File: filepath.Join(t.TempDir(), "history.db")}
	require.True(t, cfg.Enabled())
	database, err := cfg.OpenDB()
	require.NoError(t, err)
	defer database.Close()

	_, err = NewStore(context.Background(), database)
	require.NoError(t, err)
}
