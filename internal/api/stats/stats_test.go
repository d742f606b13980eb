package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/statsboard/internal/api/analytics"
	"github.com/omarshaarawi/statsboard/internal/config"
	"github.com/omarshaarawi/statsboard/internal/models"
)

func newFailingAPI(t *testing.T) (*API, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	client := analytics.NewClient(config.Analytics{BaseURL: srv.URL, Timeout: time.Second})
	return NewAPI(analytics.NewAPI(client)), &calls
}

func TestXGFallback(t *testing.T) {
	api, calls := newFailingAPI(t)

	res, err := api.GetXGAnalysis(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, FallbackXGAnalysis(), res.Data)
	assert.Equal(t, []string{"Jan", "Fev", "Mar", "Abr", "Mai"}, res.Data.Dates)
	assert.Equal(t, []float64{1.2, 1.8, 1.5, 2.1, 1.9}, res.Data.XGTrend)
	assert.Equal(t, []float64{1, 2, 1, 3, 2}, res.Data.GoalsTrend)
	require.Len(t, res.Data.Players, 5)
	assert.Equal(t, models.PlayerXG{Name: "Jogador C", XG: 3.1, Goals: 2, XGPer90: 0.32}, res.Data.Players[2])
	assert.Equal(t, int32(1), calls.Load(), "no retry")
}

func TestPassingFallback(t *testing.T) {
	api, _ := newFailingAPI(t)

	res, err := api.GetPassingStats(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, 82.5, res.Data.AvgPassAccuracy)
	assert.Equal(t, 15420.0, res.Data.TotalPasses)
	assert.Equal(t, 1.2, res.Data.ThroughBallsPerMatch)
	assert.Zero(t, res.Data.LongBallAccuracy)
}

func TestDefensiveFallback(t *testing.T) {
	api, _ := newFailingAPI(t)

	res, err := api.GetDefensiveStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FallbackDefensiveStats(), res.Data)
	assert.Equal(t, 8, res.Data.CleanSheets)
}

func TestGoalTimingFallback(t *testing.T) {
	api, _ := newFailingAPI(t)

	res, err := api.GetGoalTiming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, res.Data.TotalGoals)
	assert.Equal(t, 1, res.Data.TimeDistribution["extra"])
	assert.Equal(t, 9, res.Data.TimeDistribution["46_60"])
}

func TestTeamsFallbackKeepsOrder(t *testing.T) {
	api, _ := newFailingAPI(t)

	res, err := api.GetTeams(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(res.Data))
	for _, team := range res.Data {
		names = append(names, team.Name)
	}
	assert.Equal(t, []string{"Manchester United", "Liverpool", "Manchester City", "Chelsea", "Arsenal"}, names)
}

func TestPredictionFallback(t *testing.T) {
	api, _ := newFailingAPI(t)

	res, err := api.GetScorePredictions(context.Background(), "1", "2")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, "1-1", res.Data.MostLikely)
	require.Len(t, res.Data.Probabilities, 10)
	assert.Equal(t, models.ScoreProbability{Score: "3+", Percent: 2.8}, res.Data.Probabilities[9])
	assert.Equal(t, 68.4, res.Data.BothTeamsScore)
}

func TestFallbackReturnsFreshCopies(t *testing.T) {
	a := FallbackXGAnalysis()
	a.Players[0].Name = "changed"
	assert.Equal(t, "Jogador A", FallbackXGAnalysis().Players[0].Name)
}

func TestCanceledLoadReportsContextError(t *testing.T) {
	api, _ := newFailingAPI(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := api.GetXGAnalysis(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Fallback)
}

func TestSuccessIsNotFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"avg_pass_accuracy":90,"long_ball_accuracy":71.5}`))
	}))
	defer srv.Close()
	api := NewAPI(analytics.NewAPI(analytics.NewClient(config.Analytics{BaseURL: srv.URL, Timeout: time.Second})))

	res, err := api.GetPassingStats(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, 71.5, res.Data.LongBallAccuracy)
}

func TestEndpointsWithoutFallbackFail(t *testing.T) {
	api, _ := newFailingAPI(t)

	_, err := api.GetTopScorers(context.Background())
	assert.ErrorIs(t, err, analytics.ErrRequestFailed)
	_, err = api.TriggerUpdate(context.Background())
	assert.ErrorIs(t, err, analytics.ErrRequestFailed)
}
