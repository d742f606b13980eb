package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/omarshaarawi/statsboard/internal/charts"
	"github.com/omarshaarawi/statsboard/internal/prediction"
	"github.com/omarshaarawi/statsboard/internal/service"
)

const (
	pageTitle = "Estatísticas Avançadas"
	// viewHeader names the view a response was served from, so a page can
	// follow when its view expired and was replaced.
	viewHeader = "X-View"
)

type Handler struct {
	svc     *service.DashboardService
	leagues []League
	now     func() time.Time
}

func NewHandler(svc *service.DashboardService, leagues map[string]string) *Handler {
	list := make([]League, 0, len(leagues))
	for id, name := range leagues {
		list = append(list, League{ID: id, Name: name})
	}
	service.SortByName(list, func(l League) string { return l.Name })
	return &Handler{svc: svc, leagues: list, now: time.Now}
}

// view resolves the view named by the request's view parameter. A missing
// or expired view is replaced by a new one; ok is false in that case.
func (h *Handler) view(w http.ResponseWriter, r *http.Request) (v *service.View, ok bool) {
	views := h.svc.Views()
	v, ok = views.Get(r.FormValue("view"))
	if !ok {
		v = views.New()
	}
	w.Header().Set(viewHeader, v.ID)
	return v, ok
}

func (h *Handler) alerts(v *service.View) templ.Component {
	return Alerts(v.Alerts().Active(), h.now())
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/advanced-stats", http.StatusFound)
}

// AdvancedStats starts a new view, loads every category into it and renders
// the page.
func (h *Handler) AdvancedStats(w http.ResponseWriter, r *http.Request) {
	v := h.svc.Views().New()
	w.Header().Set(viewHeader, v.ID)
	if err := h.svc.LoadAll(r.Context(), v); err != nil {
		logLoadError("Initial load interrupted", err)
	}
	h.renderAdvancedStats(w, r, v)
}

// Refresh reloads the statistics sections of the page's view and renders
// the page in place. A refresh superseded by a newer one of the same view
// answers 204.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)

	var err error
	if ok {
		err = h.svc.Refresh(r.Context(), v)
	} else {
		err = h.svc.LoadAll(r.Context(), v)
	}
	if err != nil {
		logLoadError("Refresh interrupted", err)
		if errors.Is(err, context.Canceled) && r.Context().Err() == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	h.renderAdvancedStats(w, r, v)
}

func (h *Handler) renderAdvancedStats(w http.ResponseWriter, r *http.Request, v *service.View) {
	page := NewPageLoad(v.ID)
	body := AdvancedStatsPage(AdvancedStatsData{
		Page:       page,
		Sidebar:    Sidebar(r.URL.Query().Get("section")),
		View:       v.Repository().Snapshot(),
		Prediction: v.PredictionState(),
	})
	templ.Handler(Layout(pageTitle, page.ID, h.alerts(v), body)).ServeHTTP(w, r)
}

// Predictions renders the prediction result fragment. Validation failures
// answer 422 with no body; the warning is raised as an alert.
func (h *Handler) Predictions(w http.ResponseWriter, r *http.Request) {
	v, _ := h.view(w, r)
	q := r.URL.Query()
	view, err := h.svc.Predict(r.Context(), v, q.Get("home_team"), q.Get("away_team"))
	switch {
	case errors.Is(err, prediction.ErrMissingTeam), errors.Is(err, prediction.ErrSameTeam):
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	case errors.Is(err, context.Canceled):
		w.WriteHeader(http.StatusNoContent)
		return
	case err != nil:
		slog.Error("Prediction failed", "error", err)
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	templ.Handler(PredictionResult(view)).ServeHTTP(w, r)
}

// Dashboard keeps the view named in the query so warnings raised before a
// redirect here are shown.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	v, _ := h.view(w, r)
	view, err := h.svc.LoadTopScorers(r.Context(), v)
	if err != nil {
		logLoadError("Top scorers load interrupted", err)
	}

	data := DashboardData{ViewID: v.ID, Leagues: h.leagues, TopScorers: view}
	if len(view.Scorers) > 0 {
		if inst, ok := v.Repository().Chart(charts.TopScorersID); ok {
			data.Chart = inst
		}
	}
	templ.Handler(Layout("Dashboard", v.ID, h.alerts(v), DashboardPage(data))).ServeHTTP(w, r)
}

func (h *Handler) TeamsFragment(w http.ResponseWriter, r *http.Request) {
	view, ok := h.svc.TeamsByLeague(r.Context(), r.URL.Query().Get("league"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	templ.Handler(TeamOptions(view)).ServeHTTP(w, r)
}

func (h *Handler) SearchFragment(w http.ResponseWriter, r *http.Request) {
	results, ok := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	templ.Handler(SearchResults(results)).ServeHTTP(w, r)
}

func (h *Handler) AlertsFragment(w http.ResponseWriter, r *http.Request) {
	v, _ := h.view(w, r)
	templ.Handler(h.alerts(v)).ServeHTTP(w, r)
}

func (h *Handler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	v, ok := h.svc.Views().Get(r.URL.Query().Get("view"))
	if !ok || !v.Alerts().Dismiss(chi.URLParam(r, "id")) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ManualUpdate triggers a backend update and answers with the view's
// alerts, the outcome being the newest one.
func (h *Handler) ManualUpdate(w http.ResponseWriter, r *http.Request) {
	v, _ := h.view(w, r)
	status := http.StatusOK
	if _, err := h.svc.ManualUpdate(r.Context(), v); err != nil {
		status = http.StatusBadGateway
	}
	templ.Handler(h.alerts(v), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) GoExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = "csv"
	}
	http.Redirect(w, r, h.svc.ExportURL(format, q.Get("league"), q.Get("team")), http.StatusFound)
}

// GoCompare accepts repeated players params as well as a comma list. With
// too few players it returns to the dashboard of the same view.
func (h *Handler) GoCompare(w http.ResponseWriter, r *http.Request) {
	v, _ := h.view(w, r)
	var ids []string
	for _, p := range r.URL.Query()["players"] {
		ids = append(ids, strings.Split(p, ",")...)
	}

	target, err := h.svc.CompareURL(v, ids)
	if err != nil {
		http.Redirect(w, r, "/dashboard?"+url.Values{"view": {v.ID}}.Encode(), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) GoPlayer(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.svc.PlayerURL(chi.URLParam(r, "id")), http.StatusFound)
}

func (h *Handler) GoTeam(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.svc.TeamURL(chi.URLParam(r, "id")), http.StatusFound)
}

// ChartPNG draws a chart of the given view. Only a missing view or chart is
// a 404; drawing failures are server errors.
func (h *Handler) ChartPNG(w http.ResponseWriter, r *http.Request) {
	v, ok := h.svc.Views().Get(r.URL.Query().Get("view"))
	if !ok {
		respondError(w, http.StatusNotFound, "view not found", nil)
		return
	}

	img, err := h.svc.ChartPNG(v, chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, service.ErrChartNotFound):
		respondError(w, http.StatusNotFound, "chart not found", err)
		return
	case errors.Is(err, charts.ErrUnsupportedType):
		respondError(w, http.StatusUnprocessableEntity, "chart has no image rendition", err)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "chart could not be drawn", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(img)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": h.now().UTC(),
		"service":   "statsboard",
	})
}

func logLoadError(msg string, err error) {
	if errors.Is(err, context.Canceled) {
		slog.Info(msg, "reason", err)
		return
	}
	slog.Error(msg, "error", err)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		slog.Error(message, "error", err)
	}
	respondJSON(w, status, errorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
