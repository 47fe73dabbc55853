package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	Date       string            `json:"date"` // YYYY-MM-DD
	Time       string            `json:"time"` // HH:MM
	PartySize  int               `json:"party_size"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (r Reservation) Clone() Reservation {
	return r
}
