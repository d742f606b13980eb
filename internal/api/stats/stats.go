package stats

import (
	"context"
	"log/slog"

	"github.com/omarshaarawi/statsboard/internal/api/analytics"
	"github.com/omarshaarawi/statsboard/internal/models"
)

// Result carries fetched data and whether it is the literal sample payload
// substituted after a failed request.
type Result[T any] struct {
	Data     T
	Fallback bool
}

// API fronts the analytics backend. Categories that have sample data never
// fail: the backend error is logged and the sample is returned. The only
// error reported is the caller's context being done, so that a superseded
// load can skip rendering.
type API struct {
	backend *analytics.API
}

func NewAPI(backend *analytics.API) *API {
	return &API{backend: backend}
}

func (a *API) Backend() *analytics.API {
	return a.backend
}

func (a *API) GetXGAnalysis(ctx context.Context) (Result[models.XGAnalysis], error) {
	return withFallback(ctx, models.CategoryXG, a.backend.GetXGAnalysis, FallbackXGAnalysis)
}

func (a *API) GetPassingStats(ctx context.Context) (Result[models.PassingStats], error) {
	return withFallback(ctx, models.CategoryPassing, a.backend.GetPassingStats, FallbackPassingStats)
}

func (a *API) GetDefensiveStats(ctx context.Context) (Result[models.DefensiveStats], error) {
	return withFallback(ctx, models.CategoryDefensive, a.backend.GetDefensiveStats, FallbackDefensiveStats)
}

func (a *API) GetGoalTiming(ctx context.Context) (Result[models.GoalTiming], error) {
	return withFallback(ctx, models.CategoryGoalTiming, a.backend.GetGoalTiming, FallbackGoalTiming)
}

func (a *API) GetTeams(ctx context.Context) (Result[[]models.Team], error) {
	return withFallback(ctx, models.CategoryTeams, a.backend.GetTeams, FallbackTeams)
}

func (a *API) GetScorePredictions(ctx context.Context, homeTeamID, awayTeamID string) (Result[models.Prediction], error) {
	fetch := func(ctx context.Context) (models.Prediction, error) {
		return a.backend.GetScorePredictions(ctx, homeTeamID, awayTeamID)
	}
	return withFallback(ctx, models.CategoryPrediction, fetch, FallbackPrediction)
}

// The endpoints below have no sample data; failures go back to the caller.

func (a *API) GetTeamsByLeague(ctx context.Context, leagueID string) ([]models.Team, error) {
	return a.backend.GetTeamsByLeague(ctx, leagueID)
}

func (a *API) GetTopScorers(ctx context.Context) ([]models.TopScorer, error) {
	return a.backend.GetTopScorers(ctx)
}

func (a *API) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	return a.backend.Search(ctx, query)
}

func (a *API) TriggerUpdate(ctx context.Context) (models.UpdateResponse, error) {
	return a.backend.TriggerUpdate(ctx)
}

func withFallback[T any](ctx context.Context, category models.Category, fetch func(context.Context) (T, error), fallback func() T) (Result[T], error) {
	data, err := fetch(ctx)
	if err == nil {
		return Result[T]{Data: data}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result[T]{}, ctxErr
	}

	slog.Error("Backend request failed, using sample data", "category", category, "error", err)
	return Result[T]{Data: fallback(), Fallback: true}, nil
}
