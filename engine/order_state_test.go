package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-engine/models"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from models.OrderStatus
		to   models.OrderStatus
		ok   bool
	}{
		{models.OrderPending, models.OrderPreparing, true},
		{models.OrderPreparing, models.OrderReady, true},
		{models.OrderReady, models.OrderDelivered, true},

		// No skipping.
		{models.OrderPending, models.OrderReady, false},
		{models.OrderPending, models.OrderDelivered, false},
		{models.OrderPreparing, models.OrderDelivered, false},

		// No regressing.
		{models.OrderPreparing, models.OrderPending, false},
		{models.OrderDelivered, models.OrderReady, false},

		// Re-applying the current status is not a successor transition.
		{models.OrderPending, models.OrderPending, false},
		{models.OrderReady, models.OrderReady, false},

		// Terminal.
		{models.OrderDelivered, models.OrderDelivered, false},
		{models.OrderDelivered, models.OrderPending, false},

		// Unknown target.
		{models.OrderPending, models.OrderStatus("burned"), false},
	}

	for _, tc := range cases {
		err := CanTransitionOrder(tc.from, tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateOrderStatusWalksPipeline(t *testing.T) {
	e := newTestEngine(t)

	cu, table := seatCustomer(t, e, "Alice", "555-1000", 2)
	order, err := e.CreateOrder(table.ID, cu.ID, []OrderLine{{MenuItemID: "main003", Quantity: 1}})
	assert.NoError(t, err)

	_, err = e.UpdateOrderStatus("missing", models.OrderPreparing)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.UpdateOrderStatus(order.ID, models.OrderReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	for _, status := range []models.OrderStatus{models.OrderPreparing, models.OrderReady, models.OrderDelivered} {
		updated, err := e.UpdateOrderStatus(order.ID, status)
		assert.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	_, err = e.UpdateOrderStatus(order.ID, models.OrderDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
