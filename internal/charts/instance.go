package charts

import "sync/atomic"

// Instance is a chart drawn on a canvas. A canvas holds at most one live
// instance; drawing a new chart destroys the previous one first.
type Instance struct {
	ID         string
	Config     Config
	Generation uint64

	destroyed atomic.Bool
}

func NewInstance(id string, cfg Config, generation uint64) *Instance {
	return &Instance{ID: id, Config: cfg, Generation: generation}
}

func (i *Instance) Destroy() {
	i.destroyed.Store(true)
}

func (i *Instance) Destroyed() bool {
	return i.destroyed.Load()
}
