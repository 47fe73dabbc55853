package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/restaurant-engine/store"
)

const defaultTaxRate = 0.08

// Engine is the invariant layer: the only place entities are mutated.
// Every operation runs as one transaction under the mutex: validate and
// mutate a clone of the current snapshot, persist it, and only then
// install it as current. A failed persist leaves no partial state and no
// caller ever observes an intermediate.
type Engine struct {
	mu      sync.RWMutex
	snap    *store.Snapshot
	store   store.Store
	taxRate float64

	newID func() string
	now   func() time.Time
}

type Option func(*Engine)

// WithTaxRate overrides the bill tax rate (fraction of subtotal).
func WithTaxRate(rate float64) Option {
	return func(e *Engine) {
		e.taxRate = rate
	}
}

// New loads the last persisted snapshot from st and seeds the dining room
// and menu on a fresh install. A load failure (corrupt state) is returned
// as-is so the caller can refuse to start.
func New(st store.Store, opts ...Option) (*Engine, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		snap:    snap,
		store:   st,
		taxRate: defaultTaxRate,
		newID:   shortID,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if snap.Empty() {
		seeded := store.Seed()
		if err := st.Persist(seeded); err != nil {
			return nil, fmt.Errorf("persist seed data: %w", err)
		}
		e.snap = seeded
	}

	return e, nil
}

// commit persists next and installs it as the current snapshot. Callers
// hold the write lock and must not have touched e.snap.
func (e *Engine) commit(next *store.Snapshot) error {
	if err := e.store.Persist(next); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	e.snap = next
	return nil
}

// shortID -> compact 8-character id for new records.
func shortID() string {
	return uuid.NewString()[:8]
}
