package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/statsboard/internal/charts"
	"github.com/omarshaarawi/statsboard/internal/models"
)

func TestReplaceChartDestroysPrevious(t *testing.T) {
	repo := NewRepository()

	first := repo.ReplaceChart(charts.PassingID, charts.Passing(models.PassingStats{}))
	second := repo.ReplaceChart(charts.PassingID, charts.Passing(models.PassingStats{ShortPassesPerMatch: 50}))

	assert.True(t, first.Destroyed())
	assert.False(t, second.Destroyed())
	assert.Equal(t, uint64(1), first.Generation)
	assert.Equal(t, uint64(2), second.Generation)

	current, ok := repo.Chart(charts.PassingID)
	require.True(t, ok)
	assert.Same(t, second, current)
}

func TestChartsAreIndependentPerCanvas(t *testing.T) {
	repo := NewRepository()

	trend := repo.ReplaceChart(charts.XGTrendID, charts.XGTrend(models.XGAnalysis{}))
	repo.ReplaceChart(charts.XGVsGoalsID, charts.XGVsGoals(models.XGAnalysis{}))

	assert.False(t, trend.Destroyed())
	_, ok := repo.Chart(charts.GoalTimingID)
	assert.False(t, ok)
}

func TestLastWriterWins(t *testing.T) {
	repo := NewRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.ReplaceChart(charts.GoalTimingID, charts.GoalTiming(models.GoalTiming{}))
			repo.SaveXG(models.XGView{Empty: true})
		}()
	}
	wg.Wait()

	inst, ok := repo.Chart(charts.GoalTimingID)
	require.True(t, ok)
	assert.Equal(t, uint64(20), inst.Generation)
	assert.False(t, inst.Destroyed())
	assert.True(t, repo.GetXG().Empty)
}

func TestSnapshotCopiesCharts(t *testing.T) {
	repo := NewRepository()
	repo.ReplaceChart(charts.XGTrendID, charts.XGTrend(models.XGAnalysis{}))

	snap := repo.Snapshot()
	repo.ReplaceChart(charts.PassingID, charts.Passing(models.PassingStats{}))

	assert.Len(t, snap.Charts, 1)
	assert.Nil(t, snap.Passing)
}
