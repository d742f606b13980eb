package service

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/omarshaarawi/statsboard/internal/charts"
	"github.com/omarshaarawi/statsboard/internal/models"
)

const (
	OfflineNotice     = "⚠️ Dados de exemplo (API offline)"
	NoDataMessage     = "Nenhum dado disponível"
	TeamPlaceholder   = "Selecione um time..."
	LeagueTeamsAll    = "Todos os Times"
	NoResultsMessage  = "Nenhum resultado encontrado."
	LoadingValue      = "..."
	defaultLongBallPc = 65
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

func RenderXG(data models.XGAnalysis, offline bool) models.XGView {
	view := models.XGView{Offline: offline}
	if len(data.Players) == 0 {
		view.Empty = true
		return view
	}

	view.Rows = make([]models.XGRow, 0, len(data.Players))
	for i, p := range data.Players {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("Jogador %d", i+1)
		}

		diff := p.Goals - p.XG
		diffClass := ""
		switch {
		case diff > 0.5:
			diffClass = "text-success"
		case diff < -0.5:
			diffClass = "text-danger"
		}
		symbol := ""
		if diff > 0 {
			symbol = "+"
		}

		view.Rows = append(view.Rows, models.XGRow{
			Name:      name,
			XG:        models.ToFixed(p.XG, 1),
			Goals:     models.FormatNumber(p.Goals),
			Diff:      symbol + models.ToFixed(diff, 1),
			DiffClass: diffClass,
			XGPer90:   models.ToFixed(p.XGPer90, 2),
		})
	}
	return view
}

func RenderPassing(data models.PassingStats, offline bool) models.PassingView {
	longBall := data.LongBallAccuracy
	if longBall == 0 {
		longBall = defaultLongBallPc
	}
	return models.PassingView{
		Cards: []models.StatCard{
			{ID: "avgPassAccuracy", Label: "Precisão de Passe", Value: models.ToFixed(data.AvgPassAccuracy, 1) + "%"},
			{ID: "totalPasses", Label: "Total de Passes", Value: FormatThousands(data.TotalPasses)},
			{ID: "keyPassesPM", Label: "Passes Chave por Jogo", Value: models.ToFixed(data.KeyPassesPerMatch, 1)},
			{ID: "longBallAccuracy", Label: "Precisão Bolas Longas", Value: models.ToFixed(longBall, 1) + "%"},
		},
		Offline: offline,
	}
}

func RenderDefensive(data models.DefensiveStats, offline bool) models.DefensiveView {
	return models.DefensiveView{
		Cards: []models.StatCard{
			{ID: "savesPerMatch", Label: "Defesas por Jogo", Value: models.ToFixed(data.SavesPerMatch, 1)},
			{ID: "tacklesPerMatch", Label: "Desarmes por Jogo", Value: models.ToFixed(data.TacklesPerMatch, 1)},
			{ID: "interceptionsPerMatch", Label: "Interceptações por Jogo", Value: models.ToFixed(data.InterceptionsPerMatch, 1)},
			{ID: "cleanSheets", Label: "Jogos sem Sofrer Gols", Value: fmt.Sprintf("%d", data.CleanSheets)},
		},
		Offline: offline,
	}
}

func RenderGoalTiming(data models.GoalTiming, offline bool) models.GoalTimingView {
	dist := data.TimeDistribution
	late := dist["76_90"] + dist["extra"]
	early := dist["0_15"]

	return models.GoalTimingView{
		Buckets: charts.GoalBuckets(dist),
		Insights: models.GoalInsights{
			FirstHalf:  fmt.Sprintf("%d gols no 1º tempo", data.FirstHalfGoals),
			SecondHalf: fmt.Sprintf("%d gols no 2º tempo", data.SecondHalfGoals),
			Late:       fmt.Sprintf("%d gols após 75 minutos", late),
			Early:      fmt.Sprintf("%d gols antes de 15 minutos", early),
		},
		TotalGoals:    data.TotalGoals,
		AvgGoalMinute: models.FormatNumber(data.AvgGoalMinute),
		Offline:       offline,
	}
}

// RenderTeamSelect sorts live team lists by name with Portuguese collation.
// The sample list keeps its own order.
func RenderTeamSelect(teams []models.Team, offline bool) models.TeamSelectView {
	ordered := append([]models.Team(nil), teams...)
	if !offline {
		SortTeams(ordered)
	}
	return models.TeamSelectView{
		Placeholder: TeamPlaceholder,
		Options:     teamOptions(ordered),
		Offline:     offline,
	}
}

// RenderLeagueTeams keeps backend order, as the league filter does.
func RenderLeagueTeams(teams []models.Team) models.TeamSelectView {
	return models.TeamSelectView{
		Placeholder: LeagueTeamsAll,
		Options:     teamOptions(teams),
	}
}

func SortTeams(teams []models.Team) {
	SortByName(teams, func(t models.Team) string { return t.Name })
}

// SortByName orders items by name with Portuguese collation. Equal names
// keep their order.
func SortByName[T any](items []T, name func(T) string) {
	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(items, func(i, j int) bool {
		return col.CompareString(name(items[i]), name(items[j])) < 0
	})
}

func teamOptions(teams []models.Team) []models.TeamOption {
	opts := make([]models.TeamOption, 0, len(teams))
	for _, t := range teams {
		opts = append(opts, models.TeamOption{Value: t.ID.String(), Label: t.Name})
	}
	return opts
}

// FormatThousands groups digits the way pt-BR does: 15420 -> "15.420".
func FormatThousands(v float64) string {
	return ptBR.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}
