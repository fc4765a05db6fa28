package player

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bacauscout/scout/go/internal/models"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := NewService(NewApp(loadTestStore(t)))
	r := chi.NewRouter()
	r.Route("/api", svc.Routes)
	return r
}

func TestServiceSearch(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=ar&club=fcsb&minAge=oops", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "nameSearch")
	assert.NotContains(t, rec.Body.String(), "marketValueNum")

	var players []models.Player
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &players))
	assert.Equal(t, []string{"100", "300"}, ids(players))
}

func TestServiceSearchEmptyQuery(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServiceSuggest(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/players/search?q=popes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"playerId":"400","name":"Ion Popescu","position":"Right-Back","club":"FC Bacău","age":"19"}]`,
		rec.Body.String())
}

func TestServiceGetPlayer(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/player/100", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var detail models.PlayerDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Andrei Târnovanu", detail.Name)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/player/999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Player not found"}`, rec.Body.String())
}

func TestServiceGetPlayerByName(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/player/Thomas%20M%C3%BCller", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"200"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/player/Thomas%2520M%C3%BCller", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServiceGetPlayerBlankID(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/player/%20%20", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Player ID is required"}`, rec.Body.String())
}
