package engine

import (
	"fmt"
	"sort"

	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/store"
)

// ListTables returns every table, ordered by id.
func (e *Engine) ListTables() []models.Table {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.Table, 0, len(e.snap.Tables))
	for _, t := range e.snap.Tables {
		out = append(out, t.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CheckTableAvailability returns the best-fit free table for the party:
// the smallest capacity that still fits, ties broken by lowest table id.
// Returns nil when no free table can seat the party.
func (e *Engine) CheckTableAvailability(partySize int) *models.Table {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var best *models.Table
	for _, t := range e.snap.Tables {
		if t.Occupied() || t.Capacity < partySize {
			continue
		}
		if best == nil ||
			t.Capacity < best.Capacity ||
			(t.Capacity == best.Capacity && t.ID < best.ID) {
			tc := t.Clone()
			best = &tc
		}
	}
	return best
}

// AssignTable seats a customer at a free table and marks the customer's
// earliest pending reservation as seated, if one exists.
func (e *Engine) AssignTable(tableID, customerID string) (models.Table, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.snap.Tables[tableID]
	if !ok {
		return models.Table{}, fmt.Errorf("%w: table %s", ErrNotFound, tableID)
	}
	if _, ok := e.snap.Customers[customerID]; !ok {
		return models.Table{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	if t.Occupied() {
		return models.Table{}, fmt.Errorf("%w: table %s is occupied", ErrConflict, tableID)
	}

	next := e.snap.Clone()
	seated := next.Tables[tableID]
	occupant := customerID
	at := e.now()
	seated.Status = models.TableOccupied
	seated.CustomerID = &occupant
	seated.SeatedAt = &at
	next.Tables[tableID] = seated

	if r, ok := earliestPendingReservation(next, customerID); ok {
		r.Status = models.ReservationSeated
		next.Reservations[r.ID] = r
	}

	if err := e.commit(next); err != nil {
		return models.Table{}, err
	}
	return seated.Clone(), nil
}

// ReleaseTable frees the lowest-id occupied table of exactly the given
// capacity. Release is keyed by capacity, not table id: callers ask to
// free up "a table of this size" without knowing which physical table was
// assigned. Historical order and bill links survive the release; unbilled
// orders remain queryable by customer.
func (e *Engine) ReleaseTable(capacity int) (models.Table, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var match *models.Table
	for _, t := range e.snap.Tables {
		if !t.Occupied() || t.Capacity != capacity {
			continue
		}
		if match == nil || t.ID < match.ID {
			tc := t.Clone()
			match = &tc
		}
	}
	if match == nil {
		return models.Table{}, fmt.Errorf("%w: no occupied table with capacity %d", ErrNotFound, capacity)
	}

	next := e.snap.Clone()
	released := next.Tables[match.ID]
	released.Status = models.TableFree
	released.CustomerID = nil
	released.SeatedAt = nil
	next.Tables[match.ID] = released

	if err := e.commit(next); err != nil {
		return models.Table{}, err
	}
	return released.Clone(), nil
}

func earliestPendingReservation(s *store.Snapshot, customerID string) (models.Reservation, bool) {
	var best models.Reservation
	found := false
	for _, r := range s.Reservations {
		if r.CustomerID != customerID || r.Status != models.ReservationPending {
			continue
		}
		if !found || reservationBefore(r, best) {
			best = r
			found = true
		}
	}
	return best, found
}

func reservationBefore(a, b models.Reservation) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	return a.ID < b.ID
}
