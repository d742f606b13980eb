package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Warning Kind = "warning"
	Danger  Kind = "danger"
)

type Banner struct {
	ID        string
	Message   string
	Kind      Kind
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Remaining is how long the banner stays up, as of now.
func (b Banner) Remaining(now time.Time) time.Duration {
	if d := b.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Center keeps the dismissible banners shown at the top of the page. The
// newest banner comes first and every banner expires after the TTL.
type Center struct {
	ttl     time.Duration
	now     func() time.Time
	banners []Banner
	mu      sync.Mutex
}

func NewCenter(ttl time.Duration) *Center {
	return &Center{ttl: ttl, now: time.Now}
}

func (c *Center) Push(message string, kind Kind) Banner {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	b := Banner{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.banners = append([]Banner{b}, c.banners...)
	return b
}

func (c *Center) Info(message string) Banner    { return c.Push(message, Info) }
func (c *Center) Success(message string) Banner { return c.Push(message, Success) }
func (c *Center) Warning(message string) Banner { return c.Push(message, Warning) }
func (c *Center) Danger(message string) Banner  { return c.Push(message, Danger) }

// Active drops expired banners and returns the rest, newest first.
func (c *Center) Active() []Banner {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	kept := c.banners[:0]
	for _, b := range c.banners {
		if now.Before(b.ExpiresAt) {
			kept = append(kept, b)
		}
	}
	c.banners = kept
	return append([]Banner(nil), kept...)
}

func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, b := range c.banners {
		if b.ID == id {
			c.banners = append(c.banners[:i], c.banners[i+1:]...)
			return true
		}
	}
	return false
}
