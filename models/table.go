package models

import "time"

type TableStatus string

const (
	TableFree     TableStatus = "free"
	TableOccupied TableStatus = "occupied"
)

// Table capacity is fixed at creation; occupancy is toggled only through
// assignment and release. CustomerID is non-nil iff Status is occupied.
type Table struct {
	ID         string      `json:"id"`
	Capacity   int         `json:"capacity"`
	Status     TableStatus `json:"status"`
	CustomerID *string     `json:"customer_id"`
	SeatedAt   *time.Time  `json:"seated_at"`
}

func (t Table) Occupied() bool {
	return t.Status == TableOccupied
}

func (t Table) Clone() Table {
	out := t
	if t.CustomerID != nil {
		id := *t.CustomerID
		out.CustomerID = &id
	}
	if t.SeatedAt != nil {
		at := *t.SeatedAt
		out.SeatedAt = &at
	}
	return out
}
