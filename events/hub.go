package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
)

// Event types broadcast to connected dashboards.
const (
	EventCustomerUpdate    = "customer_update"
	EventReservationUpdate = "reservation_update"
	EventTableUpdate       = "table_update"
	EventOrderUpdate       = "order_update"
	EventBillUpdate        = "bill_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks every connected listener. Delivery is best effort: a broken
// connection is dropped, never bubbled up to the operation that mutated
// state.
type Hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]bool),
}

func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = true
}

func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastCustomerUpdate(cu models.Customer) {
	broadcast(Message{Event: EventCustomerUpdate, Data: cu})
}

func BroadcastReservationUpdate(r models.Reservation) {
	broadcast(Message{Event: EventReservationUpdate, Data: r})
}

func BroadcastTableUpdate(t models.Table) {
	broadcast(Message{Event: EventTableUpdate, Data: t})
}

func BroadcastOrderUpdate(o models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: o})
}

func BroadcastBillUpdate(b models.Bill) {
	broadcast(Message{Event: EventBillUpdate, Data: b})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling event: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Dropping event client: %v", err)
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
