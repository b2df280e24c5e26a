package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Status is the live training state broadcast to clients.
type Status struct {
	SessionID  string  `json:"session_id,omitempty"`
	Exercise   string  `json:"exercise"`
	Stage      string  `json:"stage"`
	Reps       int     `json:"reps"`
	ActiveSide string  `json:"active_side"`
	LeftAngle  float64 `json:"left_angle"`
	RightAngle float64 `json:"right_angle"`
	Timestamp  int64   `json:"ts"`
}

// Hub fans live training state out to WebSocket clients and keeps the
// latest annotated frame for the MJPEG stream. The frame loop publishes;
// handlers read.
type Hub struct {
	mu      sync.RWMutex
	status  Status
	frame   []byte
	clients map[*websocket.Conn]bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// Publish records the latest status and pushes it to connected clients.
// Connection writes happen under the hub lock: gorilla connections support
// only one concurrent writer, so a broadcast must never interleave with
// subscribe's snapshot write to the same connection.
func (h *Hub) Publish(s Status) {
	s.Timestamp = time.Now().UnixMilli()

	msg, err := json.Marshal(s)
	if err != nil {
		log.Printf("marshal status: %v", err)
		return
	}

	h.mu.Lock()
	h.status = s
	var failed []*websocket.Conn
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(h.clients, conn)
			failed = append(failed, conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range failed {
		conn.Close()
	}
}

// Status returns the most recently published status.
func (h *Hub) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// PublishFrame stores the latest annotated JPEG frame for streaming.
func (h *Hub) PublishFrame(jpeg []byte) {
	buf := make([]byte, len(jpeg))
	copy(buf, jpeg)

	h.mu.Lock()
	h.frame = buf
	h.mu.Unlock()
}

// Frame returns the latest annotated JPEG frame, or nil when none has been
// published yet.
func (h *Hub) Frame() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.frame
}

// subscribe sends the current snapshot to the connection and registers it
// for broadcasts, atomically under the hub lock so the snapshot write cannot
// race a Publish from the frame loop.
func (h *Hub) subscribe(conn *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := conn.WriteJSON(h.status); err != nil {
		return err
	}
	h.clients[conn] = true
	return nil
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// ClientCount returns the number of connected WebSocket clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
