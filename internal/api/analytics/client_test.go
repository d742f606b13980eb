package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/statsboard/internal/config"
	"github.com/omarshaarawi/statsboard/internal/models"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPI(NewClient(config.Analytics{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}))
}

func TestGetXGAnalysis(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/xg/analysis", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dates":["Jan"],"xg_trend":[1.5],"goals_trend":[2],"players":[{"name":"Ana","xg":3.2,"goals":4,"xg_per_90":0.4}]}`))
	})

	data, err := api.GetXGAnalysis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan"}, data.Dates)
	require.Len(t, data.Players, 1)
	assert.Equal(t, "Ana", data.Players[0].Name)
	assert.InDelta(t, 3.2, data.Players[0].XG, 1e-9)
}

func TestGetScorePredictionsSendsTeamsAndKeepsOrder(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/correct-score/predictions", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("home_team"))
		assert.Equal(t, "9", r.URL.Query().Get("away_team"))
		_, _ = w.Write([]byte(`{"most_likely":"1-1","probabilities":{"0-0":15.2,"1-1":18.3,"2-1":9.4}}`))
	})

	p, err := api.GetScorePredictions(context.Background(), "7", "9")
	require.NoError(t, err)
	assert.Equal(t, "1-1", p.MostLikely)
	assert.Equal(t, models.Probabilities{
		{Score: "0-0", Percent: 15.2},
		{Score: "1-1", Percent: 18.3},
		{Score: "2-1", Percent: 9.4},
	}, p.Probabilities)
}

func TestGetTeamsAcceptsNumericAndStringIDs(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Arsenal"},{"id":"b7","name":"Chelsea"}]`))
	})

	teams, err := api.GetTeams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Team{{ID: "1", Name: "Arsenal"}, {ID: "b7", Name: "Chelsea"}}, teams)
}

func TestNon2xxIsRequestFailed(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := api.GetPassingStats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "503")
}

func TestMalformedBodyIsRequestFailed(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := api.GetDefensiveStats(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestTransportFailureIsRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	api := NewAPI(NewClient(config.Analytics{BaseURL: srv.URL, Timeout: time.Second}))

	_, err := api.GetGoalTiming(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestCanceledContext(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.GetTeams(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestTriggerUpdatePosts(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/update", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.UpdateResponse{Message: "ok"})
	})

	resp, err := api.TriggerUpdate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
}

func TestNavigationURLs(t *testing.T) {
	api := NewAPI(NewClient(config.Analytics{BaseURL: "http://backend:5000/"}))

	assert.Equal(t, "http://backend:5000/export/players?format=csv", api.ExportPlayersURL("csv", "", ""))
	assert.Equal(t, "http://backend:5000/export/players?format=xlsx&league=2&team=5", api.ExportPlayersURL("xlsx", "2", "5"))
	assert.Equal(t, "http://backend:5000/compare?players=3,8", api.CompareURL([]string{"3", "8"}))
	assert.Equal(t, "http://backend:5000/player/12", api.PlayerURL("12"))
	assert.Equal(t, "http://backend:5000/team/4", api.TeamURL("4"))
}
