package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEntries(t *testing.T, svc *Service) {
	t.Helper()
	seed := []Entry{
		{PlayerID: "alpha", Name: "Alpha", Empire: "syndicate", CurrencyPeak: 5000, PrestigeCount: 1, TotalClicks: 100},
		{PlayerID: "bravo", Name: "Bravo", Empire: "syndicate", CurrencyPeak: 9000, PrestigeCount: 0, TotalClicks: 900},
		{PlayerID: "charlie", Name: "Charlie", Empire: "cartel", CurrencyPeak: 7000, PrestigeCount: 4, TotalClicks: 50},
	}
	for _, e := range seed {
		_, err := svc.SubmitScore(context.Background(), e)
		require.NoError(t, err)
	}
}

func TestTopRanksByCurrencyPeak(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedEntries(t, svc)

	top, err := svc.Top(context.Background(), 10, "")
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "bravo", top[0].PlayerID)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, "charlie", top[1].PlayerID)
	assert.Equal(t, "alpha", top[2].PlayerID)
	assert.Equal(t, 3, top[2].Rank)
}

func TestTopFiltersByEmpire(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedEntries(t, svc)

	top, err := svc.Top(context.Background(), 10, "syndicate")
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bravo", top[0].PlayerID)
}

func TestByCategory(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedEntries(t, svc)

	byPrestige, err := svc.ByCategory(context.Background(), ByPrestigeCount, 10, "")
	require.NoError(t, err)
	assert.Equal(t, "charlie", byPrestige[0].PlayerID)

	byClicks, err := svc.ByCategory(context.Background(), ByTotalClicks, 10, "")
	require.NoError(t, err)
	assert.Equal(t, "bravo", byClicks[0].PlayerID)

	_, err = svc.ByCategory(context.Background(), "bogus", 10, "")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestSubmitScoreMintsPlayerID(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	stored, err := svc.SubmitScore(context.Background(), Entry{CurrencyPeak: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PlayerID)
	assert.Equal(t, 1, stored.Level)
}

func TestSubmitScoreRejectsNegativeStats(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.SubmitScore(context.Background(), Entry{PlayerID: "x", CurrencyPeak: -1})
	assert.ErrorIs(t, err, ErrMissingStats)
}

func TestUpsertKeepsPeaks(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.SubmitScore(context.Background(), Entry{PlayerID: "p", CurrencyPeak: 900, TotalClicks: 50})
	require.NoError(t, err)
	// stale report with lower peak must not shrink the entry
	_, err = svc.SubmitScore(context.Background(), Entry{PlayerID: "p", CurrencyPeak: 100, TotalClicks: 80})
	require.NoError(t, err)

	top, err := svc.Top(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, float64(900), top[0].CurrencyPeak)
	assert.Equal(t, int64(80), top[0].TotalClicks)
}

func TestCacheInvalidatedOnSubmit(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedEntries(t, svc)

	first, err := svc.Top(context.Background(), 10, "")
	require.NoError(t, err)
	require.Equal(t, "bravo", first[0].PlayerID)

	_, err = svc.SubmitScore(context.Background(), Entry{PlayerID: "delta", CurrencyPeak: 99999})
	require.NoError(t, err)

	second, err := svc.Top(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Equal(t, "delta", second[0].PlayerID)
}

func TestRankOfReturnsNeighbors(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	for i, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
		_, err := svc.SubmitScore(context.Background(), Entry{
			PlayerID:     id,
			CurrencyPeak: float64(1000 * (7 - i)), // p1 richest, p7 poorest
		})
		require.NoError(t, err)
	}

	res, err := svc.RankOf(context.Background(), "p4", 2)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Rank)
	assert.Equal(t, 7, res.TotalPlayers)
	require.Len(t, res.Neighbors, 5) // p2..p6
	assert.Equal(t, "p2", res.Neighbors[0].PlayerID)
	assert.Equal(t, 2, res.Neighbors[0].Rank)
	assert.Equal(t, "p6", res.Neighbors[4].PlayerID)
	assert.Equal(t, 6, res.Neighbors[4].Rank)
}

func TestRankOfUnknownPlayer(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedEntries(t, svc)

	_, err := svc.RankOf(context.Background(), "nobody", 5)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestUpdateHookFires(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	var got []Entry
	svc.SetUpdateHook(func(e Entry) { got = append(got, e) })

	_, err := svc.SubmitScore(context.Background(), Entry{PlayerID: "p", CurrencyPeak: 5})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "p", got[0].PlayerID)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultLimit, clampLimit(0))
	assert.Equal(t, defaultLimit, clampLimit(-5))
	assert.Equal(t, 50, clampLimit(50))
	assert.Equal(t, maxLimit, clampLimit(9999))
}
