package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/omarshaarawi/statsboard/internal/alert"
	"github.com/omarshaarawi/statsboard/internal/charts"
	"github.com/omarshaarawi/statsboard/internal/models"
	"github.com/omarshaarawi/statsboard/internal/prediction"
	"github.com/omarshaarawi/statsboard/internal/service"
)

// htmlWriter stops writing after the first error and keeps it.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

// Layout wraps body in the page shell. The body element carries viewID for
// the page script.
func Layout(title, viewID string, alerts templ.Component, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		h.raw(`<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">`)
		h.raw(`<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css">`)
		h.raw(`</head><body data-view="`)
		h.text(viewID)
		h.raw(`"><nav class="navbar navbar-dark bg-dark mb-3"><div class="container">`)
		h.raw(`<a class="navbar-brand" href="/advanced-stats">Statsboard</a>`)
		h.raw(`<div class="navbar-nav flex-row gap-3"><a class="nav-link" href="/advanced-stats">Estatísticas Avançadas</a><a class="nav-link" href="/dashboard">Dashboard</a></div>`)
		h.raw(`</div></nav><div class="container"><div id="alerts">`)
		h.render(ctx, alerts)
		h.raw(`</div><div id="content">`)
		h.render(ctx, body)
		h.raw(`</div></div>`)
		h.raw(`<script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>`)
		h.raw(`<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>`)
		h.raw(`<script src="/static/dashboard.js"></script>`)
		h.raw(`</body></html>`)
	})
}

// Alerts renders banners newest first. Each banner carries its remaining
// lifetime so the page can drop it when it expires.
func Alerts(banners []alert.Banner, now time.Time) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		for _, b := range banners {
			h.raw(`<div class="alert alert-` + string(b.Kind) + ` alert-dismissible fade show" role="alert" id="alert-` + b.ID + `" data-ttl="`)
			h.raw(strconv.FormatInt(b.Remaining(now).Milliseconds(), 10))
			h.raw(`">`)
			h.text(b.Message)
			h.raw(`<button type="button" class="btn-close" data-bs-dismiss="alert" aria-label="Fechar"></button></div>`)
		}
	})
}

func chartCanvas(inst *charts.Instance, id string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<canvas id="` + id + `"`)
		if inst != nil {
			cfg, err := json.Marshal(inst.Config)
			if err != nil {
				h.err = fmt.Errorf("error encoding chart %s: %w", id, err)
				return
			}
			h.raw(` data-chart="`)
			h.text(string(cfg))
			h.raw(`" data-generation="` + strconv.FormatUint(inst.Generation, 10) + `"`)
		}
		h.raw(`></canvas>`)
	})
}

func viewInput(viewID string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<input type="hidden" name="view" value="`)
		h.text(viewID)
		h.raw(`">`)
	})
}

func cardHeader(header CardHeader, viewID string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if len(header.Buttons) > 0 {
			h.raw(`<div class="card-header d-flex justify-content-between align-items-center"><h5 class="mb-0">`)
		} else {
			h.raw(`<div class="card-header"><h5 class="mb-0">`)
		}
		h.text(header.Title)
		h.raw(`</h5>`)
		for _, b := range header.Buttons {
			h.raw(`<form method="post" action="`)
			h.text(b.Action)
			h.raw(`" class="refresh-form">`)
			h.render(ctx, viewInput(viewID))
			h.raw(`<button type="submit" id="`)
			h.text(b.ID)
			h.raw(`" class="`)
			h.text(b.Class)
			h.raw(`"><i class="bi bi-arrow-clockwise"></i> `)
			h.text(b.Label)
			h.raw(`</button></form>`)
		}
		h.raw(`</div>`)
	})
}

func XGTable(view *models.XGView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<table class="table table-sm table-hover"><thead><tr><th>Jogador</th><th>xG</th><th>Gols</th><th>Diferença</th><th>xG/90</th></tr></thead><tbody id="xgTableBody">`)
		switch {
		case view == nil:
			h.raw(`<tr><td colspan="5" class="text-center"><div class="spinner-border spinner-border-sm" role="status"><span class="visually-hidden">Carregando...</span></div> Carregando dados xG...</td></tr>`)
		case view.Empty:
			h.raw(`<tr><td colspan="5" class="text-center text-muted">`)
			h.text(service.NoDataMessage)
			h.raw(`</td></tr>`)
		default:
			for _, row := range view.Rows {
				h.raw(`<tr><td><strong>`)
				h.text(row.Name)
				h.raw(`</strong></td><td>`)
				h.text(row.XG)
				h.raw(`</td><td>`)
				h.text(row.Goals)
				h.raw(`</td><td class="` + row.DiffClass + `">`)
				h.text(row.Diff)
				h.raw(`</td><td>`)
				h.text(row.XGPer90)
				h.raw(`</td></tr>`)
			}
		}
		if view != nil && view.Offline {
			h.raw(`<tr><td colspan="5" class="text-center text-warning"><small>`)
			h.text(service.OfflineNotice)
			h.raw(`</small></td></tr>`)
		}
		h.raw(`</tbody></table>`)
	})
}

func StatCards(cards []models.StatCard) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="row g-3 mb-3">`)
		for _, c := range cards {
			h.raw(`<div class="col-md-3 col-6"><div class="card text-center"><div class="card-body"><h3 id="`)
			h.text(c.ID)
			h.raw(`">`)
			h.text(c.Value)
			h.raw(`</h3><small class="text-muted">`)
			h.text(c.Label)
			h.raw(`</small></div></div></div>`)
		}
		h.raw(`</div>`)
	})
}

func GoalInsights(view *models.GoalTimingView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		insights := models.GoalInsights{
			FirstHalf:  service.LoadingValue,
			SecondHalf: service.LoadingValue,
			Late:       service.LoadingValue,
			Early:      service.LoadingValue,
		}
		if view != nil {
			insights = view.Insights
		}
		h.raw(`<ul class="list-unstyled mb-0">`)
		for _, item := range []struct{ id, text string }{
			{"firstHalfGoals", insights.FirstHalf},
			{"secondHalfGoals", insights.SecondHalf},
			{"lateGoals", insights.Late},
			{"earlyGoals", insights.Early},
		} {
			h.raw(`<li id="` + item.id + `">`)
			h.text(item.text)
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}

func TeamOptions(view models.TeamSelectView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<option value="">`)
		h.text(view.Placeholder)
		h.raw(`</option>`)
		for _, opt := range view.Options {
			h.raw(`<option value="`)
			h.text(opt.Value)
			h.raw(`">`)
			h.text(opt.Label)
			h.raw(`</option>`)
		}
	})
}

func PredictionLoading() templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="text-center py-4"><div class="spinner-border text-primary" role="status"><span class="visually-hidden">Calculando...</span></div><p class="mt-2">`)
		h.text(prediction.LoadingMessage)
		h.raw(`</p></div>`)
	})
}

func PredictionResult(view models.PredictionView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="row"><div class="col-md-6"><h6>📊 Probabilidades de Placar</h6><div class="table-responsive"><table class="table table-sm"><thead><tr><th>Placar</th><th>Probabilidade</th></tr></thead><tbody>`)
		for _, row := range view.Rows {
			h.raw(`<tr class="` + row.RowClass + `"><td>`)
			h.text(row.Score)
			if row.MostLikely {
				h.raw(` <span class="badge bg-success ms-2">Mais Provável</span>`)
			}
			h.raw(`</td><td><div class="progress" style="height: 20px;"><div class="progress-bar ` + row.BarClass + `" style="width: `)
			h.text(row.Probability)
			h.raw(`%">`)
			h.text(row.Probability)
			h.raw(`%</div></div></td></tr>`)
		}
		h.raw(`</tbody></table></div></div><div class="col-md-6"><h6>🎯 Outras Probabilidades</h6>`)
		for _, bar := range []struct{ label, value, class string }{
			{"Ambos marcam", view.BothTeamsScore, "bg-info"},
			{"Mais de 2.5 gols", view.Over25, "bg-success"},
			{"Menos de 2.5 gols", view.Under25, "bg-warning"},
		} {
			h.raw(`<div class="mb-3"><label class="form-label">`)
			h.text(bar.label)
			h.raw(`</label><div class="progress mb-2" style="height: 25px;"><div class="progress-bar ` + bar.class + `" style="width: `)
			h.text(bar.value)
			h.raw(`%">`)
			h.text(bar.value)
			h.raw(`%</div></div></div>`)
		}
		h.raw(`<div class="alert alert-primary"><strong>Placar mais provável:</strong> `)
		h.text(view.MostLikely)
		h.raw(`</div></div></div>`)
	})
}

func SearchResults(results []models.SearchResult) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if len(results) == 0 {
			h.raw(`<div class="text-muted p-3">`)
			h.text(service.NoResultsMessage)
			h.raw(`</div>`)
			return
		}
		for _, p := range results {
			id := p.ID.String()
			h.raw(`<div class="search-result-item p-2 border-bottom d-flex align-items-center gap-2">`)
			h.raw(`<input type="checkbox" class="form-check-input player-checkbox" name="players" value="`)
			h.text(id)
			h.raw(`"><a href="/go/player/`)
			h.text(id)
			h.raw(`" class="text-decoration-none flex-grow-1"><div class="d-flex justify-content-between"><span>`)
			h.text(p.Name)
			h.raw(`</span><small class="text-muted">`)
			h.text(p.Team)
			h.raw(`</small></div></a></div>`)
		}
	})
}
