package prediction

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/statsboard/internal/api/stats"
	"github.com/omarshaarawi/statsboard/internal/models"
)

func TestBuildViewMostLikelyFirst(t *testing.T) {
	var p models.Prediction
	require.NoError(t, json.Unmarshal([]byte(`{"most_likely":"1-1","probabilities":{"0-0":15.2,"1-1":18.3}}`), &p))

	view := BuildView(p)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "1-1", view.Rows[0].Score)
	assert.True(t, view.Rows[0].MostLikely)
	assert.Equal(t, "table-success", view.Rows[0].RowClass)
	assert.Equal(t, "bg-success", view.Rows[0].BarClass)
	assert.Equal(t, "18.3", view.Rows[0].Probability)

	assert.Equal(t, "0-0", view.Rows[1].Score)
	assert.False(t, view.Rows[1].MostLikely)
	assert.Empty(t, view.Rows[1].RowClass)
	assert.Equal(t, "bg-primary", view.Rows[1].BarClass)
}

func TestBuildViewStableOnTies(t *testing.T) {
	view := BuildView(models.Prediction{
		Probabilities: models.Probabilities{
			{Score: "2-1", Percent: 10},
			{Score: "0-0", Percent: 12},
			{Score: "1-2", Percent: 10},
			{Score: "3+", Percent: 10},
		},
	})

	scores := make([]string, len(view.Rows))
	for i, r := range view.Rows {
		scores[i] = r.Score
	}
	assert.Equal(t, []string{"0-0", "2-1", "1-2", "3+"}, scores)
	assert.Equal(t, "10", view.Rows[1].Probability)
}

func TestBuildViewDefaults(t *testing.T) {
	view := BuildView(models.Prediction{})

	assert.Empty(t, view.Rows)
	assert.Equal(t, "1-1", view.MostLikely)
	assert.Equal(t, "0", view.BothTeamsScore)
}

func TestBuildViewFallbackOnlyOneMostLikely(t *testing.T) {
	view := BuildView(stats.FallbackPrediction())

	flagged := 0
	for _, r := range view.Rows {
		if r.MostLikely {
			flagged++
		}
	}
	assert.Equal(t, 1, flagged)
	assert.Equal(t, "1-1", view.Rows[0].Score)
	assert.Equal(t, "3+", view.Rows[len(view.Rows)-1].Score)
	assert.Equal(t, "68.4", view.BothTeamsScore)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate("", "2"), ErrMissingTeam)
	assert.ErrorIs(t, Validate("1", ""), ErrMissingTeam)
	assert.ErrorIs(t, Validate("3", "3"), ErrSameTeam)
	assert.NoError(t, Validate("1", "2"))

	assert.Equal(t, "Selecione ambos os times", AlertMessage(ErrMissingTeam))
	assert.Equal(t, "Selecione times diferentes", AlertMessage(ErrSameTeam))
}

func TestRunSameTeamBlocksRequest(t *testing.T) {
	called := false
	w := NewWorkflow(func(context.Context, string, string) (stats.Result[models.Prediction], error) {
		called = true
		return stats.Result[models.Prediction]{}, nil
	}, 0)

	_, err := w.Run(context.Background(), "4", "4")
	assert.ErrorIs(t, err, ErrSameTeam)
	assert.False(t, called)
	assert.Equal(t, Idle, w.State())
}

func TestRunTransitions(t *testing.T) {
	var got []State
	w := NewWorkflow(func(_ context.Context, home, away string) (stats.Result[models.Prediction], error) {
		assert.Equal(t, "1", home)
		assert.Equal(t, "2", away)
		return stats.Result[models.Prediction]{Data: stats.FallbackPrediction(), Fallback: true}, nil
	}, time.Millisecond)
	w.OnState(func(s State) { got = append(got, s) })

	view, err := w.Run(context.Background(), "1", "2")
	require.NoError(t, err)
	assert.Equal(t, []State{Loading, Displayed}, got)
	assert.True(t, view.Offline)
	assert.Equal(t, "1", view.HomeTeam)
	assert.Equal(t, Displayed, w.State())
}

func TestRunCanceledDuringDelay(t *testing.T) {
	w := NewWorkflow(func(context.Context, string, string) (stats.Result[models.Prediction], error) {
		t.Fatal("fetch must not run")
		return stats.Result[models.Prediction]{}, nil
	}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Run(ctx, "1", "2")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Idle, w.State())
}
