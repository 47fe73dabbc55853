package models

import "time"

// Customer identity is the (name, phone) pair; the record is created
// lazily the first time a pair is seen.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	TabBalance  float64   `json:"tab_balance"`
	TotalVisits int       `json:"total_visits"`
	OrderIDs    []string  `json:"order_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

func (cu Customer) Clone() Customer {
	out := cu
	out.OrderIDs = append([]string(nil), cu.OrderIDs...)
	return out
}
