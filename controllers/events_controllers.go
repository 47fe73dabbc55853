package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/restaurant-engine/events"
	"github.com/yeremiapane/restaurant-engine/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventsHandler upgrades the connection and streams entity-change events
// until the client goes away. Inbound frames are discarded.
func EventsHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}

	events.RegisterClient(conn)
	utils.InfoLogger.Printf("Event client connected: %s", conn.RemoteAddr())

	defer func() {
		events.UnregisterClient(conn)
		utils.InfoLogger.Printf("Event client disconnected: %s", conn.RemoteAddr())
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
