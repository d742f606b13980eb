package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf16"

	"golang.org/x/sync/errgroup"

	"github.com/omarshaarawi/statsboard/internal/api/stats"
	"github.com/omarshaarawi/statsboard/internal/charts"
	"github.com/omarshaarawi/statsboard/internal/models"
	"github.com/omarshaarawi/statsboard/internal/prediction"
)

const (
	RefreshStartedMessage  = "Atualizando estatísticas..."
	RefreshFinishedMessage = "Estatísticas atualizadas com sucesso!"
	CompareWarning         = "Selecione pelo menos 2 jogadores para comparar."
	UpdateStartedMessage   = "Atualização iniciada com sucesso!"
	UpdateErrorPrefix      = "Erro ao iniciar atualização: "

	minSearchLength = 2
	minCompare      = 2
)

var ErrTooFewPlayers = errors.New("at least two players are required to compare")

type DashboardService struct {
	api   *stats.API
	views *Views
}

func NewDashboardService(api *stats.API, opts ViewOptions) *DashboardService {
	return &DashboardService{
		api:   api,
		views: NewViews(api.GetScorePredictions, opts),
	}
}

func (s *DashboardService) Views() *Views {
	return s.views
}

func (s *DashboardService) LoadXG(ctx context.Context, v *View) error {
	ctx, done := v.tasks.Begin(ctx, models.CategoryXG)
	defer done()

	res, err := s.api.GetXGAnalysis(ctx)
	if err != nil {
		return err
	}
	v.repo.ReplaceChart(charts.XGTrendID, charts.XGTrend(res.Data))
	v.repo.ReplaceChart(charts.XGVsGoalsID, charts.XGVsGoals(res.Data))
	v.repo.SaveXG(RenderXG(res.Data, res.Fallback))
	return nil
}

func (s *DashboardService) LoadPassing(ctx context.Context, v *View) error {
	ctx, done := v.tasks.Begin(ctx, models.CategoryPassing)
	defer done()

	res, err := s.api.GetPassingStats(ctx)
	if err != nil {
		return err
	}
	v.repo.SavePassing(RenderPassing(res.Data, res.Fallback))
	v.repo.ReplaceChart(charts.PassingID, charts.Passing(res.Data))
	return nil
}

func (s *DashboardService) LoadDefensive(ctx context.Context, v *View) error {
	ctx, done := v.tasks.Begin(ctx, models.CategoryDefensive)
	defer done()

	res, err := s.api.GetDefensiveStats(ctx)
	if err != nil {
		return err
	}
	v.repo.SaveDefensive(RenderDefensive(res.Data, res.Fallback))
	v.repo.ReplaceChart(charts.DefensiveRadarID, charts.DefensiveRadar(res.Data))
	return nil
}

func (s *DashboardService) LoadGoalTiming(ctx context.Context, v *View) error {
	ctx, done := v.tasks.Begin(ctx, models.CategoryGoalTiming)
	defer done()

	res, err := s.api.GetGoalTiming(ctx)
	if err != nil {
		return err
	}
	v.repo.ReplaceChart(charts.GoalTimingID, charts.GoalTiming(res.Data))
	v.repo.SaveGoalTiming(RenderGoalTiming(res.Data, res.Fallback))
	return nil
}

func (s *DashboardService) LoadTeams(ctx context.Context, v *View) error {
	ctx, done := v.tasks.Begin(ctx, models.CategoryTeams)
	defer done()

	res, err := s.api.GetTeams(ctx)
	if err != nil {
		return err
	}
	v.repo.SaveTeams(RenderTeamSelect(res.Data, res.Fallback))
	return nil
}

// LoadAll runs the initial page load. Categories load concurrently and in no
// particular order.
func (s *DashboardService) LoadAll(ctx context.Context, v *View) error {
	return s.run(ctx, v, s.LoadXG, s.LoadPassing, s.LoadDefensive, s.LoadTeams, s.LoadGoalTiming)
}

// Refresh reloads the four statistics sections. The team list is left alone.
func (s *DashboardService) Refresh(ctx context.Context, v *View) error {
	slog.Info("Refreshing statistics", "view", v.ID)
	v.alerts.Info(RefreshStartedMessage)

	if err := s.run(ctx, v, s.LoadXG, s.LoadPassing, s.LoadDefensive, s.LoadGoalTiming); err != nil {
		return err
	}

	v.alerts.Success(RefreshFinishedMessage)
	return nil
}

func (s *DashboardService) run(ctx context.Context, v *View, loads ...func(context.Context, *View) error) error {
	var g errgroup.Group
	for _, load := range loads {
		load := load
		g.Go(func() error {
			return load(ctx, v)
		})
	}
	return g.Wait()
}

// Predict validates the selection and runs the view's prediction workflow.
// A rejected selection raises a warning and sends no request.
func (s *DashboardService) Predict(ctx context.Context, v *View, homeTeamID, awayTeamID string) (models.PredictionView, error) {
	if err := prediction.Validate(homeTeamID, awayTeamID); err != nil {
		v.alerts.Warning(prediction.AlertMessage(err))
		return models.PredictionView{}, err
	}

	ctx, done := v.tasks.Begin(ctx, models.CategoryPrediction)
	defer done()

	view, err := v.predictions.Run(ctx, homeTeamID, awayTeamID)
	if err != nil {
		return models.PredictionView{}, err
	}
	if name, ok := teamName(v, homeTeamID); ok {
		view.HomeTeam = name
	}
	if name, ok := teamName(v, awayTeamID); ok {
		view.AwayTeam = name
	}

	v.repo.SavePrediction(view)
	if view.Offline {
		v.alerts.Info(prediction.OfflineMessage)
	}
	return view, nil
}

func teamName(v *View, id string) (string, bool) {
	teams := v.repo.GetTeams()
	if teams == nil {
		return "", false
	}
	for _, opt := range teams.Options {
		if opt.Value == id {
			return opt.Label, true
		}
	}
	return "", false
}

// TeamsByLeague returns false when no league is selected; nothing is
// requested in that case.
func (s *DashboardService) TeamsByLeague(ctx context.Context, leagueID string) (models.TeamSelectView, bool) {
	if leagueID == "" {
		return models.TeamSelectView{}, false
	}

	teams, err := s.api.GetTeamsByLeague(ctx, leagueID)
	if err != nil {
		slog.Error("Failed to load teams by league", "league", leagueID, "error", err)
		teams = nil
	}
	return RenderLeagueTeams(teams), true
}

func (s *DashboardService) LoadTopScorers(ctx context.Context, v *View) (models.TopScorersView, error) {
	ctx, done := v.tasks.Begin(ctx, models.CategoryTopScorers)
	defer done()

	scorers, err := s.api.GetTopScorers(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.TopScorersView{}, ctxErr
		}
		slog.Error("Failed to load top scorers", "error", err)
		scorers = nil
	}

	if cfg, ok := charts.TopScorers(scorers); ok {
		v.repo.ReplaceChart(charts.TopScorersID, cfg)
	}
	return models.TopScorersView{Scorers: scorers}, nil
}

// Search returns false for queries too short to send. The length is counted
// the way the browser counts it, in UTF-16 units, and the query is sent as
// typed.
func (s *DashboardService) Search(ctx context.Context, query string) ([]models.SearchResult, bool) {
	if len(utf16.Encode([]rune(query))) < minSearchLength {
		return nil, false
	}

	results, err := s.api.Search(ctx, query)
	if err != nil {
		slog.Error("Search failed", "query", query, "error", err)
		return nil, true
	}
	return results, true
}

func (s *DashboardService) CompareURL(v *View, playerIDs []string) (string, error) {
	ids := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) < minCompare {
		v.alerts.Warning(CompareWarning)
		return "", ErrTooFewPlayers
	}
	return s.api.Backend().CompareURL(ids), nil
}

func (s *DashboardService) ExportURL(format, leagueID, teamID string) string {
	return s.api.Backend().ExportPlayersURL(format, leagueID, teamID)
}

func (s *DashboardService) PlayerURL(playerID string) string {
	return s.api.Backend().PlayerURL(playerID)
}

func (s *DashboardService) TeamURL(teamID string) string {
	return s.api.Backend().TeamURL(teamID)
}

// ManualUpdate asks the backend to start collecting data and reports the
// outcome as an alert on v.
func (s *DashboardService) ManualUpdate(ctx context.Context, v *View) (string, error) {
	resp, err := s.api.TriggerUpdate(ctx)
	if err != nil {
		slog.Error("Failed to trigger update", "error", err)
		v.alerts.Danger(UpdateErrorPrefix + err.Error())
		return "", err
	}

	msg := resp.Message
	if msg == "" {
		msg = UpdateStartedMessage
	}
	v.alerts.Success(msg)
	return msg, nil
}

// CheckBackend reports whether the backend answers, without substituting
// sample data.
func (s *DashboardService) CheckBackend(ctx context.Context) error {
	_, err := s.api.Backend().GetTeams(ctx)
	return err
}
