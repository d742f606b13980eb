package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/statsboard/internal/api/stats"
)

func TestResolveTeam(t *testing.T) {
	teams := stats.FallbackTeams()

	team, err := ResolveTeam(teams, "liverpol")
	require.NoError(t, err)
	assert.Equal(t, "Liverpool", team.Name)

	team, err = ResolveTeam(teams, "manchester city")
	require.NoError(t, err)
	assert.Equal(t, "3", team.ID.String())

	_, err = ResolveTeam(teams, "Flamengo")
	assert.Error(t, err)
}

func TestXGReportOffline(t *testing.T) {
	svc := newTestService(t, failing())
	v := svc.Views().New()

	report, err := svc.XGReport(context.Background(), v)
	require.NoError(t, err)
	assert.Contains(t, report, "*Jogador A*")
	assert.Contains(t, report, "Dif: +0.3")
	assert.Contains(t, report, OfflineNotice)
}

func TestGoalTimingReportIncludesChart(t *testing.T) {
	svc := newTestService(t, failing())
	v := svc.Views().New()

	report, img, err := svc.GoalTimingReport(context.Background(), v)
	require.NoError(t, err)
	assert.Contains(t, report, "7 gols após 75 minutos")
	assert.NotEmpty(t, img)
}

func TestGoalTimingReportWithoutGoals(t *testing.T) {
	svc := newTestService(t, routes(map[string]string{
		"/api/goal-timing/aggregated": `{"total_goals":0,"time_distribution":{"0_15":0,"16_30":0}}`,
	}))
	v := svc.Views().New()

	report, img, err := svc.GoalTimingReport(context.Background(), v)
	require.NoError(t, err)
	assert.Contains(t, report, "Total: *0* gols")
	assert.NotEmpty(t, img)
}

func TestPredictionReport(t *testing.T) {
	svc := newTestService(t, failing())
	v := svc.Views().New()

	report, err := svc.PredictionReport(context.Background(), v, "arsenal", "chelsea")
	require.NoError(t, err)
	assert.Contains(t, report, "*Arsenal* vs *Chelsea*")
	assert.Contains(t, report, "1-1: 18.3% ✅")
	assert.Contains(t, report, "*Placar mais provável:* 1-1")

	_, err = svc.PredictionReport(context.Background(), v, "arsenal", "arsenal")
	assert.Error(t, err)
}

func TestSearchReportTooShort(t *testing.T) {
	svc := newTestService(t, failing())

	_, err := svc.SearchReport(context.Background(), "a")
	assert.Error(t, err)
}
