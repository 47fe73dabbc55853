package engine

import (
	"fmt"
	"sort"

	"github.com/yeremiapane/restaurant-engine/models"
)

// CreateReservation books a reservation for an existing customer. There
// is no availability check at booking time; availability is checked when
// the party is seated.
func (e *Engine) CreateReservation(customerID, date, timeOfDay string, partySize int) (models.Reservation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.snap.Customers[customerID]; !ok {
		return models.Reservation{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}

	next := e.snap.Clone()
	r := models.Reservation{
		ID:         e.newID(),
		CustomerID: customerID,
		Date:       date,
		Time:       timeOfDay,
		PartySize:  partySize,
		Status:     models.ReservationPending,
		CreatedAt:  e.now(),
	}
	next.Reservations[r.ID] = r

	if err := e.commit(next); err != nil {
		return models.Reservation{}, err
	}
	return r.Clone(), nil
}

// Reservations lists reservations, optionally filtered by customer and/or
// date, ordered by (date, time).
func (e *Engine) Reservations(customerID, date string) []models.Reservation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.Reservation, 0)
	for _, r := range e.snap.Reservations {
		if customerID != "" && r.CustomerID != customerID {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		out = append(out, r.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out
}
