package store

import (
	"github.com/yeremiapane/restaurant-engine/models"
)

// Snapshot holds every entity collection, keyed by entity id. The engine
// owns the current snapshot; stores only load and persist whole snapshots.
type Snapshot struct {
	Customers    map[string]models.Customer    `json:"customers"`
	Reservations map[string]models.Reservation `json:"reservations"`
	Tables       map[string]models.Table       `json:"tables"`
	Menu         map[string]models.MenuItem    `json:"menu"`
	Orders       map[string]models.Order       `json:"orders"`
	Bills        map[string]models.Bill        `json:"bills"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Customers:    make(map[string]models.Customer),
		Reservations: make(map[string]models.Reservation),
		Tables:       make(map[string]models.Table),
		Menu:         make(map[string]models.MenuItem),
		Orders:       make(map[string]models.Order),
		Bills:        make(map[string]models.Bill),
	}
}

// Empty reports whether nothing has been seeded yet (fresh install).
func (s *Snapshot) Empty() bool {
	return len(s.Tables) == 0 && len(s.Menu) == 0
}

// Clone deep-copies the snapshot. Mutating operations work on a clone and
// install it only after a successful persist.
func (s *Snapshot) Clone() *Snapshot {
	out := NewSnapshot()
	for id, cu := range s.Customers {
		out.Customers[id] = cu.Clone()
	}
	for id, r := range s.Reservations {
		out.Reservations[id] = r.Clone()
	}
	for id, t := range s.Tables {
		out.Tables[id] = t.Clone()
	}
	for id, m := range s.Menu {
		out.Menu[id] = m.Clone()
	}
	for id, o := range s.Orders {
		out.Orders[id] = o.Clone()
	}
	for id, b := range s.Bills {
		out.Bills[id] = b.Clone()
	}
	return out
}

// Store is the persistence contract. Load restores the last persisted
// snapshot (empty on a fresh install) and Persist durably writes the whole
// snapshot, never leaving a partially written state visible.
type Store interface {
	Load() (*Snapshot, error)
	Persist(*Snapshot) error
}
