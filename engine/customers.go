package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
)

// GetOrCreateCustomer looks a customer up by the (name, phone) pair and
// creates one with empty history if absent. The second return value
// reports whether a new record was created.
func (e *Engine) GetOrCreateCustomer(name, phone string) (models.Customer, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, cu := range e.snap.Customers {
		if strings.EqualFold(cu.Name, name) && cu.Phone == phone {
			return cu.Clone(), false, nil
		}
	}

	next := e.snap.Clone()
	cu := models.Customer{
		ID:        e.newID(),
		Name:      name,
		Phone:     phone,
		OrderIDs:  []string{},
		CreatedAt: e.now(),
	}
	next.Customers[cu.ID] = cu

	if err := e.commit(next); err != nil {
		return models.Customer{}, false, err
	}
	return cu.Clone(), true, nil
}

// CustomerOrders returns the customer's orders, most recent first. A
// limit of zero or less means no limit.
func (e *Engine) CustomerOrders(customerID string, limit int) ([]models.Order, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if _, ok := e.snap.Customers[customerID]; !ok {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}

	orders := make([]models.Order, 0)
	for _, o := range e.snap.Orders {
		if o.CustomerID == customerID {
			orders = append(orders, o.Clone())
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// AddToTab accrues amount onto the customer's open tab. Negative or
// malformed amounts are rejected.
func (e *Engine) AddToTab(customerID string, amount float64) (models.Customer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.Customer{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	cu, ok := e.snap.Customers[customerID]
	if !ok {
		return models.Customer{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}

	next := e.snap.Clone()
	updated := next.Customers[cu.ID]
	updated.TabBalance = utils.Round2(updated.TabBalance + amount)
	next.Customers[cu.ID] = updated

	if err := e.commit(next); err != nil {
		return models.Customer{}, err
	}
	return updated.Clone(), nil
}
