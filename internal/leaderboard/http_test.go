package leaderboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *Service) {
	t.Helper()
	svc := NewService(NewMemoryRepo())
	mux := http.NewServeMux()
	NewHandler(svc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, svc
}

func TestSubmitAndFetchLeaderboard(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"player_id":"p1","name":"Kaz","empire":"syndicate","currency_peak":1234,"total_clicks":9}`
	resp, err := http.Post(srv.URL+"/api/scores", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/leaderboard?limit=10")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Success bool    `json:"success"`
		Data    []Entry `json:"data"`
		Count   int     `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "p1", out.Data[0].PlayerID)
	assert.Equal(t, 1, out.Data[0].Rank)
}

func TestSubmitRejectsBadJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/scores", "application/json", strings.NewReader("{nope"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryEndpoint(t *testing.T) {
	srv, svc := newTestServer(t)
	_, err := svc.SubmitScore(context.Background(), Entry{PlayerID: "a", PrestigeCount: 3})
	require.NoError(t, err)
	_, err = svc.SubmitScore(context.Background(), Entry{PlayerID: "b", PrestigeCount: 7})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/api/leaderboard/category/prestige_count")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data []Entry `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Data, 2)
	assert.Equal(t, "b", out.Data[0].PlayerID)

	resp, err = http.Get(srv.URL + "/api/leaderboard/category/bogus")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRankEndpoint(t *testing.T) {
	srv, svc := newTestServer(t)
	for i, id := range []string{"a", "b", "c"} {
		_, err := svc.SubmitScore(context.Background(), Entry{PlayerID: id, CurrencyPeak: float64(100 - i)})
		require.NoError(t, err)
	}

	resp, err := http.Get(srv.URL + "/api/leaderboard/b")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data RankResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Data.Rank)
	assert.Equal(t, 3, out.Data.TotalPlayers)

	resp, err = http.Get(srv.URL + "/api/leaderboard/nobody")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
