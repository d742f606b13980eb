package loader

import (
	"context"
	"sync"

	"github.com/omarshaarawi/statsboard/internal/models"
)

// Tasks tracks at most one in-flight load per category for a single view.
// Beginning a load cancels whatever load of the same category is still
// running in that view; other views keep their own Tasks.
type Tasks struct {
	mu      sync.Mutex
	running map[models.Category]*task
}

type task struct {
	cancel context.CancelFunc
}

func NewTasks() *Tasks {
	return &Tasks{running: make(map[models.Category]*task)}
}

// Begin derives a context for a new load of category. The returned done
// func must be called when the load finishes; it releases the slot only if
// the load was not superseded in the meantime.
func (t *Tasks) Begin(ctx context.Context, category models.Category) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	cur := &task{cancel: cancel}

	t.mu.Lock()
	if prev, ok := t.running[category]; ok {
		prev.cancel()
	}
	t.running[category] = cur
	t.mu.Unlock()

	done := func() {
		t.mu.Lock()
		if t.running[category] == cur {
			delete(t.running, category)
		}
		t.mu.Unlock()
		cancel()
	}
	return ctx, done
}

// Close cancels every load still running.
func (t *Tasks) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for category, cur := range t.running {
		cur.cancel()
		delete(t.running, category)
	}
}
