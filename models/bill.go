package models

import "time"

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
)

// Bill covers a set of orders; an order is never covered by more than one
// bill. Once paid, the record is immutable.
type Bill struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	OrderIDs      []string   `json:"order_ids"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	Status        BillStatus `json:"status"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

func (b Bill) Clone() Bill {
	out := b
	out.OrderIDs = append([]string(nil), b.OrderIDs...)
	if b.PaidAt != nil {
		at := *b.PaidAt
		out.PaidAt = &at
	}
	return out
}
