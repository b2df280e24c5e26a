package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// statusWSHandler subscribes clients to live training status updates.
// The frame loop drives broadcasts through the hub; this handler only
// manages the connection lifecycle.
type statusWSHandler struct {
	hub *Hub
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *statusWSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	// New clients get the current state immediately rather than waiting
	// for the next rep.
	if err := h.hub.subscribe(conn); err != nil {
		conn.Close()
		return
	}
	defer h.hub.remove(conn)

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
