package server

import (
	"fmt"
	"net/http"
	"time"
)

// streamFrameInterval paces the MJPEG stream at roughly 15 FPS.
const streamFrameInterval = 66 * time.Millisecond

// streamHandler serves the latest annotated frame as an MJPEG stream.
// Frames are produced by the single capture loop and published through the
// hub; the handler never touches the camera itself.
type streamHandler struct {
	hub *Hub
}

// ServeHTTP streams MJPEG frames to connected clients.
func (h *streamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(streamFrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		frame := h.hub.Frame()
		if frame == nil {
			continue
		}

		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(frame))
		w.Write(frame)
		fmt.Fprintf(w, "\r\n")

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}
}
