package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/statsboard/internal/models"
)

func TestBeginCancelsPreviousLoadOfSameCategory(t *testing.T) {
	tasks := NewTasks()

	first, doneFirst := tasks.Begin(context.Background(), models.CategoryXG)
	second, doneSecond := tasks.Begin(context.Background(), models.CategoryXG)
	defer doneSecond()

	require.ErrorIs(t, first.Err(), context.Canceled)
	assert.NoError(t, second.Err())

	doneFirst()
	assert.NoError(t, second.Err())

	third, doneThird := tasks.Begin(context.Background(), models.CategoryXG)
	defer doneThird()
	assert.ErrorIs(t, second.Err(), context.Canceled, "superseded done must not release the newer load")
	assert.NoError(t, third.Err())
}

func TestCategoriesAreIndependent(t *testing.T) {
	tasks := NewTasks()

	xg, doneXG := tasks.Begin(context.Background(), models.CategoryXG)
	defer doneXG()
	_, donePassing := tasks.Begin(context.Background(), models.CategoryPassing)
	defer donePassing()

	assert.NoError(t, xg.Err())
}

func TestSeparateTasksDoNotCancelEachOther(t *testing.T) {
	a, b := NewTasks(), NewTasks()

	ctxA, doneA := a.Begin(context.Background(), models.CategoryXG)
	defer doneA()
	ctxB, doneB := b.Begin(context.Background(), models.CategoryXG)
	defer doneB()

	assert.NoError(t, ctxA.Err())
	assert.NoError(t, ctxB.Err())
}

func TestDoneCancelsOwnContext(t *testing.T) {
	tasks := NewTasks()

	ctx, done := tasks.Begin(context.Background(), models.CategoryTeams)
	done()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestClose(t *testing.T) {
	tasks := NewTasks()

	xg, doneXG := tasks.Begin(context.Background(), models.CategoryXG)
	defer doneXG()
	pred, donePred := tasks.Begin(context.Background(), models.CategoryPrediction)
	defer donePred()

	tasks.Close()
	assert.ErrorIs(t, xg.Err(), context.Canceled)
	assert.ErrorIs(t, pred.Err(), context.Canceled)

	fresh, doneFresh := tasks.Begin(context.Background(), models.CategoryXG)
	defer doneFresh()
	assert.NoError(t, fresh.Err())
}
