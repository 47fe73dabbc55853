package store

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-engine/models"
)

// ErrStoreCorrupt marks persisted state that failed validation at load.
// It is fatal: the engine refuses to start rather than run on partial data.
var ErrStoreCorrupt = errors.New("persisted state is corrupt")

func corrupt(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrStoreCorrupt, fmt.Sprintf(format, args...))
}

var (
	validOrderStatuses = map[models.OrderStatus]bool{
		models.OrderPending:   true,
		models.OrderPreparing: true,
		models.OrderReady:     true,
		models.OrderDelivered: true,
	}
	validReservationStatuses = map[models.ReservationStatus]bool{
		models.ReservationPending:   true,
		models.ReservationSeated:    true,
		models.ReservationCancelled: true,
	}
)

// Validate checks referential integrity and enum values across the whole
// snapshot. Every load path runs it before the engine accepts the state.
func Validate(s *Snapshot) error {
	for id, cu := range s.Customers {
		if cu.ID != id {
			return corrupt("customer %q keyed under %q", cu.ID, id)
		}
		for _, orderID := range cu.OrderIDs {
			if _, ok := s.Orders[orderID]; !ok {
				return corrupt("customer %s references unknown order %s", id, orderID)
			}
		}
	}

	for id, t := range s.Tables {
		if t.ID != id {
			return corrupt("table %q keyed under %q", t.ID, id)
		}
		if t.Capacity <= 0 {
			return corrupt("table %s has capacity %d", id, t.Capacity)
		}
		switch t.Status {
		case models.TableFree:
			if t.CustomerID != nil {
				return corrupt("free table %s has an occupant", id)
			}
		case models.TableOccupied:
			if t.CustomerID == nil {
				return corrupt("occupied table %s has no occupant", id)
			}
			if _, ok := s.Customers[*t.CustomerID]; !ok {
				return corrupt("table %s occupied by unknown customer %s", id, *t.CustomerID)
			}
		default:
			return corrupt("table %s has status %q", id, t.Status)
		}
	}

	for id, m := range s.Menu {
		if m.ID != id {
			return corrupt("menu item %q keyed under %q", m.ID, id)
		}
		if !models.ValidMenuCategory(m.Category) {
			return corrupt("menu item %s has category %q", id, m.Category)
		}
		if m.Price < 0 {
			return corrupt("menu item %s has price %v", id, m.Price)
		}
	}

	for id, r := range s.Reservations {
		if r.ID != id {
			return corrupt("reservation %q keyed under %q", r.ID, id)
		}
		if !validReservationStatuses[r.Status] {
			return corrupt("reservation %s has status %q", id, r.Status)
		}
		if _, ok := s.Customers[r.CustomerID]; !ok {
			return corrupt("reservation %s references unknown customer %s", id, r.CustomerID)
		}
	}

	for id, o := range s.Orders {
		if o.ID != id {
			return corrupt("order %q keyed under %q", o.ID, id)
		}
		if !validOrderStatuses[o.Status] {
			return corrupt("order %s has status %q", id, o.Status)
		}
		if _, ok := s.Customers[o.CustomerID]; !ok {
			return corrupt("order %s references unknown customer %s", id, o.CustomerID)
		}
		if _, ok := s.Tables[o.TableID]; !ok {
			return corrupt("order %s references unknown table %s", id, o.TableID)
		}
	}

	// Bills must reference known orders, and no order may be covered twice.
	billed := make(map[string]string)
	for id, b := range s.Bills {
		if b.ID != id {
			return corrupt("bill %q keyed under %q", b.ID, id)
		}
		if b.Status != models.BillPending && b.Status != models.BillPaid {
			return corrupt("bill %s has status %q", id, b.Status)
		}
		if _, ok := s.Customers[b.CustomerID]; !ok {
			return corrupt("bill %s references unknown customer %s", id, b.CustomerID)
		}
		for _, orderID := range b.OrderIDs {
			if _, ok := s.Orders[orderID]; !ok {
				return corrupt("bill %s covers unknown order %s", id, orderID)
			}
			if other, dup := billed[orderID]; dup {
				return corrupt("order %s covered by bills %s and %s", orderID, other, id)
			}
			billed[orderID] = id
		}
	}

	return nil
}
