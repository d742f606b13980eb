package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/statsboard/internal/charts"
	"github.com/omarshaarawi/statsboard/internal/models"
)

const teamMatchThreshold = 0.6

var ErrChartNotFound = errors.New("chart has not been drawn")

func offlineLine(sb *strings.Builder, offline bool) {
	if offline {
		sb.WriteString("\n_" + OfflineNotice + "_\n")
	}
}

func (s *DashboardService) XGReport(ctx context.Context, v *View) (string, error) {
	if err := s.LoadXG(ctx, v); err != nil {
		return "", fmt.Errorf("error loading xg analysis: %w", err)
	}
	view := v.repo.GetXG()

	var sb strings.Builder
	sb.WriteString("📈 *Análise xG*\n\n")
	if view.Empty {
		sb.WriteString(NoDataMessage)
		return sb.String(), nil
	}
	for _, row := range view.Rows {
		sb.WriteString(fmt.Sprintf("*%s*\n", row.Name))
		sb.WriteString(fmt.Sprintf("   xG: %s | Gols: %s | Dif: %s\n", row.XG, row.Goals, row.Diff))
		sb.WriteString(fmt.Sprintf("   xG/90: %s\n", row.XGPer90))
	}
	offlineLine(&sb, view.Offline)

	return sb.String(), nil
}

func (s *DashboardService) PassingReport(ctx context.Context, v *View) (string, error) {
	if err := s.LoadPassing(ctx, v); err != nil {
		return "", fmt.Errorf("error loading passing stats: %w", err)
	}
	view := v.repo.GetPassing()

	var sb strings.Builder
	sb.WriteString("⚽ *Estatísticas de Passes*\n\n")
	writeCards(&sb, view.Cards)
	offlineLine(&sb, view.Offline)

	return sb.String(), nil
}

func (s *DashboardService) DefensiveReport(ctx context.Context, v *View) (string, error) {
	if err := s.LoadDefensive(ctx, v); err != nil {
		return "", fmt.Errorf("error loading defensive stats: %w", err)
	}
	view := v.repo.GetDefensive()

	var sb strings.Builder
	sb.WriteString("🛡️ *Estatísticas Defensivas*\n\n")
	writeCards(&sb, view.Cards)
	offlineLine(&sb, view.Offline)

	return sb.String(), nil
}

func writeCards(sb *strings.Builder, cards []models.StatCard) {
	for _, c := range cards {
		sb.WriteString(fmt.Sprintf("%s: *%s*\n", c.Label, c.Value))
	}
}

// GoalTimingReport also returns the distribution chart as a PNG. The image
// is nil when it cannot be drawn; the text is still returned.
func (s *DashboardService) GoalTimingReport(ctx context.Context, v *View) (string, []byte, error) {
	if err := s.LoadGoalTiming(ctx, v); err != nil {
		return "", nil, fmt.Errorf("error loading goal timing: %w", err)
	}
	view := v.repo.GetGoalTiming()

	var sb strings.Builder
	sb.WriteString("⏰ *Tempos dos Gols*\n\n")
	sb.WriteString(fmt.Sprintf("Total: *%d* gols (minuto médio %s)\n\n", view.TotalGoals, view.AvgGoalMinute))
	for _, b := range view.Buckets {
		sb.WriteString(fmt.Sprintf("%s: %d\n", b.Label, b.Goals))
	}
	sb.WriteString("\n")
	sb.WriteString("• " + view.Insights.FirstHalf + "\n")
	sb.WriteString("• " + view.Insights.SecondHalf + "\n")
	sb.WriteString("• " + view.Insights.Late + "\n")
	sb.WriteString("• " + view.Insights.Early + "\n")
	offlineLine(&sb, view.Offline)

	img, err := s.ChartPNG(v, charts.GoalTimingID)
	if err != nil {
		slog.Error("Failed to render goal timing chart", "error", err)
		return sb.String(), nil, nil
	}
	return sb.String(), img, nil
}

func (s *DashboardService) ChartPNG(v *View, id string) ([]byte, error) {
	inst, ok := v.repo.Chart(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChartNotFound, id)
	}
	return charts.RenderPNG(inst.Config)
}

func (s *DashboardService) TeamsReport(ctx context.Context, v *View) (string, error) {
	if err := s.LoadTeams(ctx, v); err != nil {
		return "", fmt.Errorf("error loading teams: %w", err)
	}
	view := v.repo.GetTeams()

	var sb strings.Builder
	sb.WriteString("🏆 *Times*\n\n")
	for _, opt := range view.Options {
		sb.WriteString(fmt.Sprintf("• %s\n", opt.Label))
	}
	offlineLine(&sb, view.Offline)

	return sb.String(), nil
}

// PredictionReport resolves both team names against the team list before
// running the prediction.
func (s *DashboardService) PredictionReport(ctx context.Context, v *View, homeQuery, awayQuery string) (string, error) {
	res, err := s.api.GetTeams(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching teams: %w", err)
	}

	home, err := ResolveTeam(res.Data, homeQuery)
	if err != nil {
		return "", err
	}
	away, err := ResolveTeam(res.Data, awayQuery)
	if err != nil {
		return "", err
	}

	view, err := s.Predict(ctx, v, home.ID.String(), away.ID.String())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔮 *%s* vs *%s*\n\n", home.Name, away.Name))
	for _, row := range view.Rows {
		marker := ""
		if row.MostLikely {
			marker = " ✅"
		}
		sb.WriteString(fmt.Sprintf("%s: %s%%%s\n", row.Score, row.Probability, marker))
	}
	sb.WriteString(fmt.Sprintf("\nAmbos marcam: %s%%\n", view.BothTeamsScore))
	sb.WriteString(fmt.Sprintf("Mais de 2.5 gols: %s%%\n", view.Over25))
	sb.WriteString(fmt.Sprintf("Menos de 2.5 gols: %s%%\n", view.Under25))
	sb.WriteString(fmt.Sprintf("\n*Placar mais provável:* %s\n", view.MostLikely))
	offlineLine(&sb, view.Offline)

	return sb.String(), nil
}

// ResolveTeam picks the team whose name is closest to query by Levenshtein
// similarity. Matches at or below the threshold are rejected.
func ResolveTeam(teams []models.Team, query string) (models.Team, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	var best *models.Team
	bestSimilarity := teamMatchThreshold
	for i, team := range teams {
		name := strings.ToLower(team.Name)
		distance := fuzzy.LevenshteinDistance(q, name)
		maxLen := float64(max(utf8.RuneCountInString(q), utf8.RuneCountInString(name)))
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/maxLen

		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = &teams[i]
		}
	}

	if best == nil {
		return models.Team{}, fmt.Errorf("team not found: %s", query)
	}
	return *best, nil
}

func (s *DashboardService) TopScorersReport(ctx context.Context, v *View) (string, error) {
	view, err := s.LoadTopScorers(ctx, v)
	if err != nil {
		return "", fmt.Errorf("error loading top scorers: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🥇 *Artilheiros*\n\n")
	if len(view.Scorers) == 0 {
		sb.WriteString(NoDataMessage)
		return sb.String(), nil
	}
	for i, p := range view.Scorers {
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s) - %d gols\n", i+1, p.Name, p.Team, p.Goals))
	}

	return sb.String(), nil
}

func (s *DashboardService) SearchReport(ctx context.Context, query string) (string, error) {
	results, searched := s.Search(ctx, query)
	if !searched {
		return "", fmt.Errorf("search query must have at least %d characters", minSearchLength)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔍 *Busca: %s*\n\n", query))
	if len(results) == 0 {
		sb.WriteString(NoResultsMessage)
		return sb.String(), nil
	}
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("• [%s](%s) - %s\n", r.Name, s.PlayerURL(r.ID.String()), r.Team))
	}

	return sb.String(), nil
}

func (s *DashboardService) RefreshReport(ctx context.Context, v *View) (string, error) {
	if err := s.Refresh(ctx, v); err != nil {
		return "", fmt.Errorf("error refreshing statistics: %w", err)
	}
	return "🔄 " + RefreshFinishedMessage, nil
}

func (s *DashboardService) UpdateReport(ctx context.Context, v *View) (string, error) {
	msg, err := s.ManualUpdate(ctx, v)
	if err != nil {
		return "", fmt.Errorf("%s%w", UpdateErrorPrefix, err)
	}
	return "🛠️ " + msg, nil
}
