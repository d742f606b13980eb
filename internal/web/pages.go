package web

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/omarshaarawi/statsboard/internal/charts"
	"github.com/omarshaarawi/statsboard/internal/models"
	"github.com/omarshaarawi/statsboard/internal/prediction"
	"github.com/omarshaarawi/statsboard/internal/repository/memory"
	"github.com/omarshaarawi/statsboard/internal/service"
)

type AdvancedStatsData struct {
	Page       *PageLoad
	Sidebar    []NavItem
	View       memory.Snapshot
	Prediction prediction.State
}

// sectionHeaders are the card headers of the advanced-stats page in
// document order.
func sectionHeaders() []CardHeader {
	return []CardHeader{
		{Title: "📈 Análise xG (Expected Goals)"},
		{Title: "⚽ Estatísticas de Passes"},
		{Title: "🛡️ Estatísticas Defensivas"},
		{Title: "⏰ Tempos dos Gols"},
		{Title: "🔮 Previsões de Placar"},
	}
}

func AdvancedStatsPage(data AdvancedStatsData) templ.Component {
	headers := sectionHeaders()
	data.Page.EnsureRefreshControl(headers)
	view := data.View

	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="row"><div class="col-md-3"><div class="list-group sticky-top">`)
		for _, item := range data.Sidebar {
			class := "list-group-item list-group-item-action"
			if item.Active {
				class += " active"
			}
			h.raw(`<a href="#` + item.Anchor + `" class="` + class + `">`)
			h.text(item.Label)
			h.raw(`</a>`)
		}
		h.raw(`</div></div><div class="col-md-9">`)

		h.raw(`<section id="xg-section" class="card mb-4">`)
		h.render(ctx, cardHeader(headers[0], data.Page.ID))
		h.raw(`<div class="card-body"><div class="row"><div class="col-md-6">`)
		h.render(ctx, chartCanvas(view.Charts[charts.XGTrendID], charts.XGTrendID))
		h.raw(`</div><div class="col-md-6">`)
		h.render(ctx, chartCanvas(view.Charts[charts.XGVsGoalsID], charts.XGVsGoalsID))
		h.raw(`</div></div>`)
		h.render(ctx, XGTable(view.XG))
		h.raw(`</div></section>`)

		h.raw(`<section id="passing-section" class="card mb-4">`)
		h.render(ctx, cardHeader(headers[1], data.Page.ID))
		h.raw(`<div class="card-body">`)
		h.render(ctx, StatCards(passingCards(view.Passing)))
		h.render(ctx, chartCanvas(view.Charts[charts.PassingID], charts.PassingID))
		h.raw(`</div></section>`)

		h.raw(`<section id="defensive-section" class="card mb-4">`)
		h.render(ctx, cardHeader(headers[2], data.Page.ID))
		h.raw(`<div class="card-body">`)
		h.render(ctx, StatCards(defensiveCards(view.Defensive)))
		h.render(ctx, chartCanvas(view.Charts[charts.DefensiveRadarID], charts.DefensiveRadarID))
		h.raw(`</div></section>`)

		h.raw(`<section id="goal-timing-section" class="card mb-4">`)
		h.render(ctx, cardHeader(headers[3], data.Page.ID))
		h.raw(`<div class="card-body"><div class="row"><div class="col-md-8">`)
		h.render(ctx, chartCanvas(view.Charts[charts.GoalTimingID], charts.GoalTimingID))
		h.raw(`</div><div class="col-md-4">`)
		h.render(ctx, GoalInsights(view.GoalTiming))
		h.raw(`</div></div></div></section>`)

		teams := models.TeamSelectView{Placeholder: service.TeamPlaceholder}
		if view.Teams != nil {
			teams = *view.Teams
		}
		h.raw(`<section id="predictions-section" class="card mb-4">`)
		h.render(ctx, cardHeader(headers[4], data.Page.ID))
		h.raw(`<div class="card-body"><form id="predictionForm" class="row g-2 mb-3" action="/advanced-stats/predictions" method="get">`)
		h.render(ctx, viewInput(data.Page.ID))
		h.raw(`<div class="col-md-5"><select id="homeTeamSelect" name="home_team" class="form-select">`)
		h.render(ctx, TeamOptions(teams))
		h.raw(`</select></div><div class="col-md-5"><select id="awayTeamSelect" name="away_team" class="form-select">`)
		h.render(ctx, TeamOptions(teams))
		h.raw(`</select></div><div class="col-md-2"><button type="submit" class="btn btn-primary w-100">Prever</button></div></form>`)
		switch {
		case data.Prediction == prediction.Loading:
			h.raw(`<div id="predictionsResult">`)
			h.render(ctx, PredictionLoading())
		case view.Prediction != nil:
			h.raw(`<div id="predictionsResult">`)
			h.render(ctx, PredictionResult(*view.Prediction))
		default:
			h.raw(`<div id="predictionsResult" style="display: none;">`)
		}
		h.raw(`</div><template id="predictionLoadingTemplate">`)
		h.render(ctx, PredictionLoading())
		h.raw(`</template></div></section>`)

		h.raw(`</div></div>`)
	})
}

func passingCards(v *models.PassingView) []models.StatCard {
	if v != nil {
		return v.Cards
	}
	return placeholderCards(service.RenderPassing(models.PassingStats{}, false).Cards)
}

func defensiveCards(v *models.DefensiveView) []models.StatCard {
	if v != nil {
		return v.Cards
	}
	return placeholderCards(service.RenderDefensive(models.DefensiveStats{}, false).Cards)
}

func placeholderCards(cards []models.StatCard) []models.StatCard {
	for i := range cards {
		cards[i].Value = service.LoadingValue
	}
	return cards
}

type League struct {
	ID   string
	Name string
}

type DashboardData struct {
	ViewID     string
	Leagues    []League
	TopScorers models.TopScorersView
	Chart      *charts.Instance
}

func DashboardPage(data DashboardData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="row g-4"><div class="col-lg-8"><div class="card"><div class="card-header"><h5 class="mb-0">🥇 Artilheiros</h5></div><div class="card-body">`)
		if data.Chart != nil {
			h.render(ctx, chartCanvas(data.Chart, charts.TopScorersID))
			h.raw(`<ol class="mt-3 mb-0">`)
			for _, p := range data.TopScorers.Scorers {
				h.raw(`<li>`)
				h.text(p.Name)
				h.raw(` <small class="text-muted">`)
				h.text(p.Team)
				h.raw(`</small> <span class="badge bg-primary">`)
				h.text(strconv.Itoa(p.Goals))
				h.raw(`</span></li>`)
			}
			h.raw(`</ol>`)
		} else {
			h.raw(`<div class="text-muted">`)
			h.text(service.NoDataMessage)
			h.raw(`</div>`)
		}
		h.raw(`</div></div></div>`)

		h.raw(`<div class="col-lg-4"><div class="card mb-3"><div class="card-header"><h5 class="mb-0">Filtros</h5></div><div class="card-body">`)
		h.raw(`<select id="league-select" class="form-select mb-2"><option value="">Todas as Ligas</option>`)
		for _, l := range data.Leagues {
			h.raw(`<option value="`)
			h.text(l.ID)
			h.raw(`">`)
			h.text(l.Name)
			h.raw(`</option>`)
		}
		h.raw(`</select><select id="team-select" class="form-select mb-3"><option value="">`)
		h.text(service.LeagueTeamsAll)
		h.raw(`</option></select>`)
		h.raw(`<div class="btn-group w-100"><button type="button" class="btn btn-outline-success export-btn" data-format="csv">CSV</button><button type="button" class="btn btn-outline-success export-btn" data-format="excel">Excel</button></div>`)
		h.raw(`</div></div>`)

		h.raw(`<div class="card mb-3"><div class="card-header"><h5 class="mb-0">Buscar Jogadores</h5></div><div class="card-body">`)
		h.raw(`<input type="search" id="player-search" class="form-control mb-2" placeholder="Nome do jogador..." autocomplete="off">`)
		h.raw(`<form id="compareForm" action="/go/compare" method="get">`)
		h.render(ctx, viewInput(data.ViewID))
		h.raw(`<div id="search-results" class="d-none"></div>`)
		h.raw(`<button type="submit" class="btn btn-outline-primary btn-sm mt-2">Comparar selecionados</button></form>`)
		h.raw(`</div></div>`)

		h.raw(`<button type="button" id="manualUpdateBtn" class="btn btn-warning w-100">Atualizar dados agora</button>`)
		h.raw(`</div></div>`)
	})
}
