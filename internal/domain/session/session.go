// Package session sequences the presentation side of a screening run: it
// deals a shuffled set of movable caps for a panel and defines the input
// contract a completed arrangement is submitted through.
package session

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airisvision/chromascreen/internal/domain/panel"
)

// Session is one screening attempt: a shuffled presentation of the panel's
// movable caps. The fixed pilot and anchor are never part of the
// presentation; they bound the physical arrangement by construction.
type Session struct {
	ID           uuid.UUID
	Panel        panel.Type
	Presentation []string
	CreatedAt    time.Time
}

// Controller creates sessions. Safe for concurrent use.
type Controller struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewController creates a session controller with configuration options.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // presentation shuffling needs no cryptographic strength
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// New deals a fresh session for the given panel. The presentation is a
// uniform shuffle of the movable caps; re-dealing until it differs from the
// reference order is intentionally not done, an already-ordered deal is a
// valid (if lucky) presentation.
func (c *Controller) New(_ context.Context, t panel.Type) (Session, error) {
	p, err := panel.Get(t)
	if err != nil {
		return Session{}, err
	}

	ids := p.ReferenceOrder()
	c.mu.Lock()
	c.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	c.mu.Unlock()

	return Session{
		ID:           uuid.New(),
		Panel:        t,
		Presentation: ids,
		CreatedAt:    c.now(),
	}, nil
}
