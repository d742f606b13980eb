package analytics

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/omarshaarawi/statsboard/internal/models"
)

const (
	xgAnalysisPath     = "/api/xg/analysis"
	passingStatsPath   = "/api/passing/stats"
	defensiveStatsPath = "/api/defensive/stats"
	goalTimingPath     = "/api/goal-timing/aggregated"
	teamsListPath      = "/api/teams/list"
	predictionsPath    = "/api/correct-score/predictions"
	teamsByLeaguePath  = "/api/teams_by_league"
	topScorersPath     = "/api/top_scorers"
	searchPath         = "/api/search"
	updatePath         = "/api/update"

	exportPlayersPath = "/export/players"
	comparePath       = "/compare"
	playerPath        = "/player/"
	teamPath          = "/team/"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) GetXGAnalysis(ctx context.Context) (models.XGAnalysis, error) {
	var data models.XGAnalysis
	if err := a.client.Get(ctx, xgAnalysisPath, nil, &data); err != nil {
		return models.XGAnalysis{}, fmt.Errorf("fetching xg analysis: %w", err)
	}
	return data, nil
}

func (a *API) GetPassingStats(ctx context.Context) (models.PassingStats, error) {
	var data models.PassingStats
	if err := a.client.Get(ctx, passingStatsPath, nil, &data); err != nil {
		return models.PassingStats{}, fmt.Errorf("fetching passing stats: %w", err)
	}
	return data, nil
}

func (a *API) GetDefensiveStats(ctx context.Context) (models.DefensiveStats, error) {
	var data models.DefensiveStats
	if err := a.client.Get(ctx, defensiveStatsPath, nil, &data); err != nil {
		return models.DefensiveStats{}, fmt.Errorf("fetching defensive stats: %w", err)
	}
	return data, nil
}

func (a *API) GetGoalTiming(ctx context.Context) (models.GoalTiming, error) {
	var data models.GoalTiming
	if err := a.client.Get(ctx, goalTimingPath, nil, &data); err != nil {
		return models.GoalTiming{}, fmt.Errorf("fetching goal timing: %w", err)
	}
	return data, nil
}

func (a *API) GetTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := a.client.Get(ctx, teamsListPath, nil, &teams); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}
	return teams, nil
}

func (a *API) GetScorePredictions(ctx context.Context, homeTeamID, awayTeamID string) (models.Prediction, error) {
	params := url.Values{}
	params.Set("home_team", homeTeamID)
	params.Set("away_team", awayTeamID)

	var data models.Prediction
	if err := a.client.Get(ctx, predictionsPath, params, &data); err != nil {
		return models.Prediction{}, fmt.Errorf("fetching score predictions: %w", err)
	}
	return data, nil
}

func (a *API) GetTeamsByLeague(ctx context.Context, leagueID string) ([]models.Team, error) {
	params := url.Values{}
	params.Set("league", leagueID)

	var teams []models.Team
	if err := a.client.Get(ctx, teamsByLeaguePath, params, &teams); err != nil {
		return nil, fmt.Errorf("fetching teams by league: %w", err)
	}
	return teams, nil
}

func (a *API) GetTopScorers(ctx context.Context) ([]models.TopScorer, error) {
	var scorers []models.TopScorer
	if err := a.client.Get(ctx, topScorersPath, nil, &scorers); err != nil {
		return nil, fmt.Errorf("fetching top scorers: %w", err)
	}
	return scorers, nil
}

func (a *API) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)

	var results []models.SearchResult
	if err := a.client.Get(ctx, searchPath, params, &results); err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}
	return results, nil
}

func (a *API) TriggerUpdate(ctx context.Context) (models.UpdateResponse, error) {
	var resp models.UpdateResponse
	if err := a.client.Post(ctx, updatePath, &resp); err != nil {
		return models.UpdateResponse{}, fmt.Errorf("triggering update: %w", err)
	}
	return resp, nil
}

// ExportPlayersURL builds the spreadsheet export link. Empty filters are omitted.
func (a *API) ExportPlayersURL(format, leagueID, teamID string) string {
	params := url.Values{}
	params.Set("format", format)
	if leagueID != "" {
		params.Set("league", leagueID)
	}
	if teamID != "" {
		params.Set("team", teamID)
	}
	return a.client.URL(exportPlayersPath, params)
}

func (a *API) CompareURL(playerIDs []string) string {
	return a.client.URL(comparePath, nil) + "?players=" + joinIDs(playerIDs)
}

func (a *API) PlayerURL(playerID string) string {
	return a.client.URL(playerPath+url.PathEscape(playerID), nil)
}

func (a *API) TeamURL(teamID string) string {
	return a.client.URL(teamPath+url.PathEscape(teamID), nil)
}

func joinIDs(ids []string) string {
	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = url.QueryEscape(id)
	}
	return strings.Join(escaped, ",")
}
