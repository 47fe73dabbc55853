package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/router"
	"github.com/yeremiapane/restaurant-engine/store"
	"github.com/yeremiapane/restaurant-engine/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	e, err := engine.New(store.NewFileStore(t.TempDir()))
	require.NoError(t, err)
	return router.SetupRouter(e)
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// createCustomer registers a customer over the API and returns its id.
func createCustomer(t *testing.T, r *gin.Engine, name, phone string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/customers", map[string]string{"name": name, "phone": phone})
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	return data["id"].(string)
}

func TestGetAllTables(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "List of tables", resp["message"])
	data := resp["data"].([]interface{})
	assert.Len(t, data, 7)
}

func TestCheckAvailability(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/tables/availability?party_size=3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "T03", data["id"])

	w = doJSON(t, r, http.MethodGet, "/tables/availability?party_size=50", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No table available", decodeResponse(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/tables/availability?party_size=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignAndReleaseTable(t *testing.T) {
	r := setupTestRouter(t)
	customerID := createCustomer(t, r, "Alice", "555-1000")

	w := doJSON(t, r, http.MethodPost, "/tables/T01/assign", map[string]string{"customer_id": customerID})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "occupied", data["status"])
	assert.Equal(t, customerID, data["customer_id"])

	// Occupied table cannot be assigned again.
	other := createCustomer(t, r, "Bob", "555-2000")
	w = doJSON(t, r, http.MethodPost, "/tables/T01/assign", map[string]string{"customer_id": other})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown table.
	w = doJSON(t, r, http.MethodPost, "/tables/T99/assign", map[string]string{"customer_id": customerID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Release by capacity.
	w = doJSON(t, r, http.MethodPost, "/tables/release", map[string]int{"capacity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "T01", data["id"])
	assert.Equal(t, "free", data["status"])

	// Nothing left to release at this capacity.
	w = doJSON(t, r, http.MethodPost, "/tables/release", map[string]int{"capacity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMenu(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	all := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, all, 11)

	w = doJSON(t, r, http.MethodGet, "/menu?category=appetizer", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	appetizers := decodeResponse(t, w)["data"].([]interface{})
	require.NotEmpty(t, appetizers)
	for _, raw := range appetizers {
		item := raw.(map[string]interface{})
		assert.Equal(t, "appetizer", item["category"])
	}

	// Unknown category is an empty list, not an error.
	w = doJSON(t, r, http.MethodGet, "/menu?category=brunch", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeResponse(t, w)["data"])
}

func TestGetOrCreateCustomerEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", map[string]string{"name": "Alice", "phone": "555-1000"})
	assert.Equal(t, http.StatusCreated, w.Code)
	first := decodeResponse(t, w)["data"].(map[string]interface{})

	w = doJSON(t, r, http.MethodPost, "/customers", map[string]string{"name": "Alice", "phone": "555-1000"})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Customer found", resp["message"])
	assert.Equal(t, first["id"], resp["data"].(map[string]interface{})["id"])

	// Missing fields fail shape validation.
	w = doJSON(t, r, http.MethodPost, "/customers", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddToTabEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	customerID := createCustomer(t, r, "Alice", "555-1000")

	w := doJSON(t, r, http.MethodPost, "/customers/"+customerID+"/tab", map[string]float64{"amount": 15.75})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 15.75, data["tab_balance"])

	w = doJSON(t, r, http.MethodPost, "/customers/"+customerID+"/tab", map[string]float64{"amount": -5})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, "/customers/unknown/tab", map[string]float64{"amount": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReservationEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	customerID := createCustomer(t, r, "Sarah", "555-0102")

	w := doJSON(t, r, http.MethodPost, "/reservations", map[string]interface{}{
		"customer_id": customerID,
		"date":        "2026-09-01",
		"time":        "19:00",
		"party_size":  4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])

	w = doJSON(t, r, http.MethodGet, "/reservations?customer_id="+customerID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 1)

	w = doJSON(t, r, http.MethodPost, "/reservations", map[string]interface{}{
		"customer_id": "unknown",
		"date":        "2026-09-01",
		"time":        "19:00",
		"party_size":  4,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
