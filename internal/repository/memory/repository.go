package memory

import (
	"sync"

	"github.com/omarshaarawi/statsboard/internal/charts"
	"github.com/omarshaarawi/statsboard/internal/models"
)

// Repository holds what one view currently renders: the last section views
// and the live chart instance of each canvas. It never feeds data back into
// a load; every write simply replaces what was there.
type Repository struct {
	xg         *models.XGView
	passing    *models.PassingView
	defensive  *models.DefensiveView
	goalTiming *models.GoalTimingView
	teams      *models.TeamSelectView
	prediction *models.PredictionView

	charts map[string]*charts.Instance
	mu     sync.RWMutex
}

// Snapshot is a consistent copy of the rendered view.
type Snapshot struct {
	XG         *models.XGView
	Passing    *models.PassingView
	Defensive  *models.DefensiveView
	GoalTiming *models.GoalTimingView
	Teams      *models.TeamSelectView
	Prediction *models.PredictionView
	Charts     map[string]*charts.Instance
}

func NewRepository() *Repository {
	return &Repository{charts: make(map[string]*charts.Instance)}
}

func (r *Repository) SaveXG(v models.XGView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.xg = &v
}

func (r *Repository) GetXG() *models.XGView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.xg
}

func (r *Repository) SavePassing(v models.PassingView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passing = &v
}

func (r *Repository) GetPassing() *models.PassingView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.passing
}

func (r *Repository) SaveDefensive(v models.DefensiveView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defensive = &v
}

func (r *Repository) GetDefensive() *models.DefensiveView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defensive
}

func (r *Repository) SaveGoalTiming(v models.GoalTimingView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goalTiming = &v
}

func (r *Repository) GetGoalTiming() *models.GoalTimingView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.goalTiming
}

func (r *Repository) SaveTeams(v models.TeamSelectView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = &v
}

func (r *Repository) GetTeams() *models.TeamSelectView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.teams
}

func (r *Repository) SavePrediction(v models.PredictionView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prediction = &v
}

// ReplaceChart destroys the instance currently on the canvas, if any, and
// stores a new one built from cfg.
func (r *Repository) ReplaceChart(id string, cfg charts.Config) *charts.Instance {
	r.mu.Lock()
	defer r.mu.Unlock()

	var generation uint64 = 1
	if prev, ok := r.charts[id]; ok {
		prev.Destroy()
		generation = prev.Generation + 1
	}
	inst := charts.NewInstance(id, cfg, generation)
	r.charts[id] = inst
	return inst
}

func (r *Repository) Chart(id string) (*charts.Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.charts[id]
	return inst, ok
}

func (r *Repository) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Snapshot{
		XG:         r.xg,
		Passing:    r.passing,
		Defensive:  r.defensive,
		GoalTiming: r.goalTiming,
		Teams:      r.teams,
		Prediction: r.prediction,
		Charts:     make(map[string]*charts.Instance, len(r.charts)),
	}
	for id, inst := range r.charts {
		s.Charts[id] = inst
	}
	return s
}
