package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seatAndOrder drives a customer through seating and one Calamari order,
// returning (customerID, orderID).
func seatAndOrder(t *testing.T, r *gin.Engine) (string, string) {
	t.Helper()
	customerID := createCustomer(t, r, "Alice", "555-1000")

	w := doJSON(t, r, http.MethodPost, "/tables/T01/assign", map[string]string{"customer_id": customerID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"table_id":    "T01",
		"customer_id": customerID,
		"items":       []map[string]interface{}{{"menu_item_id": "app001", "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	return customerID, data["id"].(string)
}

func TestCreateOrderEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	customerID := createCustomer(t, r, "Alice", "555-1000")

	// Customer not seated yet.
	w := doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"table_id":    "T01",
		"customer_id": customerID,
		"items":       []map[string]interface{}{{"menu_item_id": "app001", "quantity": 1}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/tables/T01/assign", map[string]string{"customer_id": customerID})
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown menu item.
	w = doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"table_id":    "T01",
		"customer_id": customerID,
		"items":       []map[string]interface{}{{"menu_item_id": "nope", "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Empty item list fails binding.
	w = doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"table_id":    "T01",
		"customer_id": customerID,
		"items":       []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"table_id":    "T01",
		"customer_id": customerID,
		"items": []map[string]interface{}{
			{"menu_item_id": "app001", "quantity": 2},
			{"menu_item_id": "drk001", "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 32.00, data["total"]) // 2x12.50 + 2x3.50

	orderID := data["id"].(string)
	w = doJSON(t, r, http.MethodGet, "/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/customers/"+customerID+"/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 1)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	_, orderID := seatAndOrder(t, r)

	// Skipping a step is rejected.
	w := doJSON(t, r, http.MethodPatch, "/orders/"+orderID+"/status", map[string]string{"status": "ready"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	for _, status := range []string{"preparing", "ready", "delivered"} {
		w = doJSON(t, r, http.MethodPatch, "/orders/"+orderID+"/status", map[string]string{"status": status})
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeResponse(t, w)["data"].(map[string]interface{})
		assert.Equal(t, status, data["status"])
	}

	w = doJSON(t, r, http.MethodPatch, "/orders/unknown/status", map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillingEndpoints(t *testing.T) {
	r := setupTestRouter(t)
	customerID, _ := seatAndOrder(t, r)

	w := doJSON(t, r, http.MethodPost, "/bills", map[string]string{"customer_id": customerID})
	require.Equal(t, http.StatusCreated, w.Code)
	bill := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pending", bill["status"])
	assert.Equal(t, 12.50, bill["subtotal"])
	assert.Equal(t, 13.50, bill["total"])

	billID := bill["id"].(string)

	// No new orders: nothing to bill.
	w = doJSON(t, r, http.MethodPost, "/bills", map[string]string{"customer_id": customerID})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, "/bills/"+billID+"/pay", map[string]string{"method": "cash"})
	require.Equal(t, http.StatusOK, w.Code)
	paid := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "paid", paid["status"])
	assert.Equal(t, "cash", paid["payment_method"])

	// Settled bills stay queryable but are never re-payable.
	w = doJSON(t, r, http.MethodGet, "/bills/"+billID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/bills/"+billID+"/pay", map[string]string{"method": "card"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/bills/unknown/pay", map[string]string{"method": "cash"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
