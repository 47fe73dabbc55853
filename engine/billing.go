package engine

import (
	"fmt"
	"sort"

	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
)

// GenerateBill collects every order of the customer not yet covered by any
// bill, regardless of delivery status (the check can be requested before
// the last course lands). Subtotal sums the snapshotted line prices, tax
// is a fixed fraction of the subtotal.
func (e *Engine) GenerateBill(customerID string) (models.Bill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.snap.Customers[customerID]; !ok {
		return models.Bill{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}

	covered := make(map[string]bool)
	for _, b := range e.snap.Bills {
		for _, orderID := range b.OrderIDs {
			covered[orderID] = true
		}
	}

	var orderIDs []string
	var subtotal float64
	for _, o := range e.snap.Orders {
		if o.CustomerID != customerID || covered[o.ID] {
			continue
		}
		orderIDs = append(orderIDs, o.ID)
		for _, item := range o.Items {
			subtotal += item.Price * float64(item.Quantity)
		}
	}
	if len(orderIDs) == 0 {
		return models.Bill{}, fmt.Errorf("%w: customer %s", ErrNothingToBill, customerID)
	}
	sort.Strings(orderIDs)

	subtotal = utils.Round2(subtotal)
	tax := utils.Round2(subtotal * e.taxRate)

	next := e.snap.Clone()
	b := models.Bill{
		ID:         e.newID(),
		CustomerID: customerID,
		OrderIDs:   orderIDs,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      utils.Round2(subtotal + tax),
		Status:     models.BillPending,
		CreatedAt:  e.now(),
	}
	next.Bills[b.ID] = b

	if err := e.commit(next); err != nil {
		return models.Bill{}, err
	}
	return b.Clone(), nil
}

// BillByID returns one bill.
func (e *Engine) BillByID(billID string) (models.Bill, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.snap.Bills[billID]
	if !ok {
		return models.Bill{}, fmt.Errorf("%w: bill %s", ErrNotFound, billID)
	}
	return b.Clone(), nil
}

// ProcessPayment settles a pending bill. A bill transitions pending ->
// paid exactly once; paying again fails with ErrAlreadyPaid. The
// customer's visit count ticks up on each settled bill.
func (e *Engine) ProcessPayment(billID, method string) (models.Bill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.snap.Bills[billID]
	if !ok {
		return models.Bill{}, fmt.Errorf("%w: bill %s", ErrNotFound, billID)
	}
	if b.Status == models.BillPaid {
		return models.Bill{}, fmt.Errorf("%w: bill %s", ErrAlreadyPaid, billID)
	}

	next := e.snap.Clone()
	paid := next.Bills[billID]
	at := e.now()
	paid.Status = models.BillPaid
	paid.PaymentMethod = method
	paid.PaidAt = &at
	next.Bills[billID] = paid

	if cu, ok := next.Customers[paid.CustomerID]; ok {
		cu.TotalVisits++
		next.Customers[paid.CustomerID] = cu
	}

	if err := e.commit(next); err != nil {
		return models.Bill{}, err
	}
	return paid.Clone(), nil
}
