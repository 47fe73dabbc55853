package engine

import (
	"fmt"

	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
)

// OrderLine is one requested line item on a new order.
type OrderLine struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
}

// CreateOrder creates a pending order for the customer seated at the
// table. Each line snapshots the menu item's current name and price, so
// later menu edits never change what this order bills for.
func (e *Engine) CreateOrder(tableID, customerID string, lines []OrderLine) (models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.snap.Tables[tableID]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: table %s", ErrNotFound, tableID)
	}
	if _, ok := e.snap.Customers[customerID]; !ok {
		return models.Order{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	if !t.Occupied() || *t.CustomerID != customerID {
		return models.Order{}, fmt.Errorf("%w: table %s is not occupied by customer %s", ErrConflict, tableID, customerID)
	}
	if len(lines) == 0 {
		return models.Order{}, fmt.Errorf("%w: order has no items", ErrInvalidAmount)
	}

	items := make([]models.OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return models.Order{}, fmt.Errorf("%w: quantity %d for item %s", ErrInvalidAmount, line.Quantity, line.MenuItemID)
		}
		m, ok := e.snap.Menu[line.MenuItemID]
		if !ok || !m.Available {
			return models.Order{}, fmt.Errorf("%w: menu item %s", ErrNotFound, line.MenuItemID)
		}
		items = append(items, models.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
			Quantity:   line.Quantity,
		})
		total += m.Price * float64(line.Quantity)
	}

	next := e.snap.Clone()
	now := e.now()
	o := models.Order{
		ID:         e.newID(),
		TableID:    tableID,
		CustomerID: customerID,
		Items:      items,
		Total:      utils.Round2(total),
		Status:     models.OrderPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	next.Orders[o.ID] = o

	cu := next.Customers[customerID]
	cu.OrderIDs = append(cu.OrderIDs, o.ID)
	next.Customers[customerID] = cu

	if err := e.commit(next); err != nil {
		return models.Order{}, err
	}
	return o.Clone(), nil
}

// OrderByID returns one order.
func (e *Engine) OrderByID(orderID string) (models.Order, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	o, ok := e.snap.Orders[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	return o.Clone(), nil
}

// UpdateOrderStatus advances an order along pending -> preparing -> ready
// -> delivered. Any other target, including re-applying the current
// status, fails with ErrInvalidTransition.
func (e *Engine) UpdateOrderStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	o, ok := e.snap.Orders[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if err := CanTransitionOrder(o.Status, status); err != nil {
		return models.Order{}, err
	}

	next := e.snap.Clone()
	updated := next.Orders[orderID]
	updated.Status = status
	updated.UpdatedAt = e.now()
	next.Orders[orderID] = updated

	if err := e.commit(next); err != nil {
		return models.Order{}, err
	}
	return updated.Clone(), nil
}
