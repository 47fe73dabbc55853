package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStreamBroadcastsTableUpdates(t *testing.T) {
	r := setupTestRouter(t)
	server := httptest.NewServer(r)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	customerID := createCustomer(t, r, "Alice", "555-1000")

	w := doJSON(t, r, http.MethodPost, "/tables/T01/assign", map[string]string{"customer_id": customerID})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	// The customer creation broadcast may arrive first; read until the
	// table event shows up.
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(data, &msg))
		if msg.Event != "table_update" {
			continue
		}

		var table struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(msg.Data, &table))
		assert.Equal(t, "T01", table.ID)
		assert.Equal(t, "occupied", table.Status)
		return
	}
}
