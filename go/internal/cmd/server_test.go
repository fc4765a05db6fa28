package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bacauscout/scout/go/internal/feed"
	"github.com/bacauscout/scout/go/internal/player"
)

const corpus = `[
  {"player_id": "1", "name": "Ștefan Târnovanu", "position": "Goalkeeper", "age": "24", "club": "FCSB", "league": "SuperLiga", "market_value": "1500000"},
  {"player_id": "2", "name": "Darius Olaru", "position": "Central Midfield", "age": "26", "club": "FCSB", "league": "SuperLiga", "market_value": "3000000"},
  {"name": 5}
]`

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	store, err := player.NewStoreFromJSON([]byte(corpus))
	require.NoError(t, err)

	env := loadEnv()
	config, err := loadConfig("")
	require.NoError(t, err)

	services := setupServices(store, nil, nil, feed.Noop{}, env, config)
	return newRouter(services, feed.NewHub(feed.DefaultHubConfig()))
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_Health(t *testing.T) {
	h := newTestHandler(t)

	rec := get(h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 2, body.Players)
	assert.Equal(t, 1, body.Skipped)
}

func TestRouter_CatalogRoutes(t *testing.T) {
	h := newTestHandler(t)

	rec := get(h, "/api/search?q=tarnovanu")
	require.Equal(t, http.StatusOK, rec.Code)
	var players []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "1", players[0]["playerId"])

	rec = get(h, "/api/teams/fcsb")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(h, "/api/teams/Nowhere%20FC")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DatabaseRoutesUnavailable(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{
		"/api/grades",
		"/api/grades/1",
		"/api/attachments/abc",
		"/api/admin/invites",
		"/api/auth/validate-invite?token=x",
	} {
		rec := get(h, path)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestRouter_WyscoutRoutes(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "wyscout-metrics.json")
	require.NoError(t, os.WriteFile(metrics, []byte(`{"1": {"metrics": {"Saves per 90": "3.1"}, "position": "Goalkeeper", "wyscoutPosition": "GK"}}`), 0o600))
	t.Setenv("WYSCOUT_METRICS_PATH", metrics)
	t.Setenv("WYSCOUT_CLIPS_DIR", filepath.Join(dir, "clips"))
	h := newTestHandler(t)

	rec := get(h, "/api/players/1/wyscout")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"wyscoutPosition":"GK"`)

	rec = get(h, "/api/players/2/wyscout")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(h, "/api/scouting-reports")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reports":[]}`, rec.Body.String())

	// player routes still resolve next to the wyscout sub-route
	rec = get(h, "/api/players/search?q=olaru")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_WyscoutMetricsMissing(t *testing.T) {
	t.Setenv("WYSCOUT_METRICS_PATH", filepath.Join(t.TempDir(), "none.json"))
	h := newTestHandler(t)

	rec := get(h, "/api/players/1/wyscout")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Wyscout data not available"}`, rec.Body.String())
}
