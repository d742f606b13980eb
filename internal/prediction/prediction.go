package prediction

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/omarshaarawi/statsboard/internal/api/stats"
	"github.com/omarshaarawi/statsboard/internal/models"
)

var (
	ErrMissingTeam = errors.New("both teams must be selected")
	ErrSameTeam    = errors.New("home and away teams must differ")
)

// AlertMessage is the warning shown to the user for a validation error.
func AlertMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingTeam):
		return "Selecione ambos os times"
	case errors.Is(err, ErrSameTeam):
		return "Selecione times diferentes"
	default:
		return ""
	}
}

const (
	LoadingMessage     = "Calculando previsões..."
	MostLikelyBadge    = "Mais Provável"
	OfflineMessage     = "Usando dados de exemplo (API offline)"
	defaultMostLikely  = "1-1"
	mostLikelyRowClass = "table-success"
	mostLikelyBarClass = "bg-success"
	defaultBarClass    = "bg-primary"
)

type State int

const (
	Idle State = iota
	Loading
	Displayed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Displayed:
		return "displayed"
	default:
		return "idle"
	}
}

type Fetcher func(ctx context.Context, homeTeamID, awayTeamID string) (stats.Result[models.Prediction], error)

// Workflow runs a prediction request: validate the selection, show the
// loading placeholder, wait the configured delay, then fetch and display.
type Workflow struct {
	fetch   Fetcher
	delay   time.Duration
	onState func(State)

	state State
	mu    sync.Mutex
}

func NewWorkflow(fetch Fetcher, delay time.Duration) *Workflow {
	return &Workflow{fetch: fetch, delay: delay}
}

// OnState registers a hook called on every state transition.
func (w *Workflow) OnState(fn func(State)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onState = fn
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func Validate(homeTeamID, awayTeamID string) error {
	if homeTeamID == "" || awayTeamID == "" {
		return ErrMissingTeam
	}
	if homeTeamID == awayTeamID {
		return ErrSameTeam
	}
	return nil
}

// Run returns a validation error without issuing any request. Context
// cancellation during the delay or the fetch is returned as is.
func (w *Workflow) Run(ctx context.Context, homeTeamID, awayTeamID string) (models.PredictionView, error) {
	if err := Validate(homeTeamID, awayTeamID); err != nil {
		return models.PredictionView{}, err
	}

	w.setState(Loading)

	if w.delay > 0 {
		timer := time.NewTimer(w.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			w.setState(Idle)
			return models.PredictionView{}, ctx.Err()
		case <-timer.C:
		}
	}

	res, err := w.fetch(ctx, homeTeamID, awayTeamID)
	if err != nil {
		w.setState(Idle)
		return models.PredictionView{}, err
	}

	view := BuildView(res.Data)
	view.HomeTeam = homeTeamID
	view.AwayTeam = awayTeamID
	view.Offline = res.Fallback

	w.setState(Displayed)
	return view, nil
}

func (w *Workflow) setState(s State) {
	w.mu.Lock()
	w.state = s
	fn := w.onState
	w.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}

// BuildView sorts the scorelines by probability, highest first. Equal
// probabilities keep the order the backend sent them in.
func BuildView(p models.Prediction) models.PredictionView {
	sorted := append(models.Probabilities(nil), p.Probabilities...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percent > sorted[j].Percent
	})

	rows := make([]models.PredictionRow, 0, len(sorted))
	for _, sp := range sorted {
		row := models.PredictionRow{
			Score:       sp.Score,
			Probability: models.FormatNumber(sp.Percent),
			Width:       sp.Percent,
			BarClass:    defaultBarClass,
		}
		if sp.Score == p.MostLikely {
			row.MostLikely = true
			row.RowClass = mostLikelyRowClass
			row.BarClass = mostLikelyBarClass
		}
		rows = append(rows, row)
	}

	mostLikely := p.MostLikely
	if mostLikely == "" {
		mostLikely = defaultMostLikely
	}

	return models.PredictionView{
		Rows:           rows,
		MostLikely:     mostLikely,
		BothTeamsScore: models.FormatNumber(p.BothTeamsScore),
		Over25:         models.FormatNumber(p.Over25),
		Under25:        models.FormatNumber(p.Under25),
		BothWidth:      p.BothTeamsScore,
		OverWidth:      p.Over25,
		UnderWidth:     p.Under25,
	}
}
