package engine

import (
	"fmt"

	"github.com/yeremiapane/restaurant-engine/models"
)

// orderTransitions is the authoritative order-status state machine.
// Statuses move strictly forward, one step at a time: no skipping, no
// regressing, no re-applying the current status.
var orderTransitions = []struct {
	From models.OrderStatus
	To   models.OrderStatus
}{
	{From: models.OrderPending, To: models.OrderPreparing},
	{From: models.OrderPreparing, To: models.OrderReady},
	{From: models.OrderReady, To: models.OrderDelivered},
}

var nextOrderStatus = func() map[models.OrderStatus]models.OrderStatus {
	m := make(map[models.OrderStatus]models.OrderStatus, len(orderTransitions))
	for _, t := range orderTransitions {
		m[t.From] = t.To
	}
	return m
}()

// CanTransitionOrder reports whether from -> to is the immediate successor
// transition. The error names the only accepted next status, if any.
func CanTransitionOrder(from, to models.OrderStatus) error {
	next, ok := nextOrderStatus[from]
	if ok && next == to {
		return nil
	}
	if !ok {
		return fmt.Errorf("%w: %s is a terminal status", ErrInvalidTransition, from)
	}
	return fmt.Errorf("%w: %s -> %s (next status after %s is %s)",
		ErrInvalidTransition, from, to, from, next)
}
