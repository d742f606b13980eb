package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omarshaarawi/statsboard/internal/alert"
	"github.com/omarshaarawi/statsboard/internal/loader"
	"github.com/omarshaarawi/statsboard/internal/prediction"
	"github.com/omarshaarawi/statsboard/internal/repository/memory"
)

// View is the state behind one rendered page, chat or job: its sections and
// charts, its alerts, its prediction workflow and its in-flight loads. A
// load only ever supersedes another load of the same view.
type View struct {
	ID string

	repo        *memory.Repository
	tasks       *loader.Tasks
	alerts      *alert.Center
	predictions *prediction.Workflow

	lastSeen time.Time
}

func (v *View) Repository() *memory.Repository {
	return v.repo
}

func (v *View) Alerts() *alert.Center {
	return v.alerts
}

func (v *View) PredictionState() prediction.State {
	return v.predictions.State()
}

type ViewOptions struct {
	AlertTTL        time.Duration
	PredictionDelay time.Duration
	// IdleTTL is how long an untouched view is kept. Zero keeps views forever.
	IdleTTL time.Duration
}

// Views holds the live views by id. Page views get random ids; surfaces
// like the bot use fixed names, which page requests cannot reach.
type Views struct {
	opts  ViewOptions
	fetch prediction.Fetcher
	now   func() time.Time

	views map[string]*View
	mu    sync.Mutex
}

func NewViews(fetch prediction.Fetcher, opts ViewOptions) *Views {
	return &Views{
		opts:  opts,
		fetch: fetch,
		now:   time.Now,
		views: make(map[string]*View),
	}
}

// New creates a view for a fresh page load.
func (vs *Views) New() *View {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.pruneLocked()
	return vs.createLocked(uuid.NewString())
}

// Open returns the page view with id. An id that is unknown, expired or not
// a page id yields a new view.
func (vs *Views) Open(id string) *View {
	if v, ok := vs.Get(id); ok {
		return v
	}
	return vs.New()
}

// Get looks up a page view without creating one.
func (vs *Views) Get(id string) (*View, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.pruneLocked()

	v, ok := vs.views[id]
	if ok {
		v.lastSeen = vs.now()
	}
	return v, ok
}

// Named returns the view kept under name, creating it on first use.
func (vs *Views) Named(name string) *View {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.pruneLocked()

	if v, ok := vs.views[name]; ok {
		v.lastSeen = vs.now()
		return v
	}
	return vs.createLocked(name)
}

func (vs *Views) Len() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return len(vs.views)
}

func (vs *Views) createLocked(id string) *View {
	predictions := prediction.NewWorkflow(vs.fetch, vs.opts.PredictionDelay)
	predictions.OnState(func(s prediction.State) {
		slog.Debug("Prediction state changed", "view", id, "state", s)
	})

	v := &View{
		ID:          id,
		repo:        memory.NewRepository(),
		tasks:       loader.NewTasks(),
		alerts:      alert.NewCenter(vs.opts.AlertTTL),
		predictions: predictions,
		lastSeen:    vs.now(),
	}
	vs.views[id] = v
	slog.Debug("View opened", "view", id)
	return v
}

// pruneLocked drops views idle for longer than IdleTTL and cancels their
// running loads.
func (vs *Views) pruneLocked() {
	if vs.opts.IdleTTL <= 0 {
		return
	}
	cutoff := vs.now().Add(-vs.opts.IdleTTL)
	for id, v := range vs.views {
		if v.lastSeen.Before(cutoff) {
			v.tasks.Close()
			delete(vs.views, id)
			slog.Debug("View expired", "view", id)
		}
	}
}
