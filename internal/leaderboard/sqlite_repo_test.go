package leaderboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteUpsertAndTop(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Upsert(ctx, Entry{PlayerID: "a", Empire: "syndicate", CurrencyPeak: 100, UpdatedAt: now}))
	require.NoError(t, repo.Upsert(ctx, Entry{PlayerID: "b", Empire: "syndicate", CurrencyPeak: 300, UpdatedAt: now}))
	require.NoError(t, repo.Upsert(ctx, Entry{PlayerID: "c", Empire: "cartel", CurrencyPeak: 200, UpdatedAt: now}))

	top, err := repo.Top(ctx, ByCurrencyPeak, "", 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "b", top[0].PlayerID)
	assert.Equal(t, "c", top[1].PlayerID)

	syndicate, err := repo.Top(ctx, ByCurrencyPeak, "syndicate", 10)
	require.NoError(t, err)
	require.Len(t, syndicate, 2)

	n, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.Count(ctx, "cartel")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLiteUpsertKeepsMaxima(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Entry{PlayerID: "a", Name: "Ada", CurrencyPeak: 500, TotalClicks: 20, UpdatedAt: time.Now()}))
	require.NoError(t, repo.Upsert(ctx, Entry{PlayerID: "a", CurrencyPeak: 50, TotalClicks: 35, UpdatedAt: time.Now()}))

	top, err := repo.Top(ctx, ByCurrencyPeak, "", 1)
	require.NoError(t, err)
	require.Len(t, top, 1)

	assert.Equal(t, float64(500), top[0].CurrencyPeak)
	assert.Equal(t, int64(35), top[0].TotalClicks)
	// empty name on the second report does not erase the first
	assert.Equal(t, "Ada", top[0].Name)
}

func TestSQLiteRejectsUnknownCategory(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.Top(context.Background(), "bogus", "", 10)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
