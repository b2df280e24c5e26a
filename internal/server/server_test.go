package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/VaibhavSomanna/AI-land/internal/session"
)

func newTestServer(t *testing.T) (*Server, *session.Store, *Hub) {
	t.Helper()

	store, err := session.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	hub := NewHub()
	return New(Config{Store: store, Hub: hub}), store, hub
}

func TestHealthEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestSessionsEndpoint(t *testing.T) {
	srv, store, _ := newTestServer(t)

	repo := store.Sessions()
	sess, err := repo.Start("bicep_curl")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.RecordRep(sess.ID, 1, "both", time.Now()); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var sessions []session.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Exercise != "bicep_curl" || sessions[0].Reps != 1 {
		t.Errorf("unexpected session: %+v", sessions[0])
	}
}

func TestSessionsEndpoint_EmptyIsArray(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("empty history body = %q, want []", got)
	}
}

func TestSessionsEndpoint_InvalidLimit(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions?limit=bogus", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv, _, hub := newTestServer(t)

	hub.Publish(Status{
		Exercise:   "Shoulder Press",
		Stage:      "start",
		Reps:       4,
		ActiveSide: "both",
		LeftAngle:  92,
		RightAngle: 88,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got Status
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Reps != 4 || got.Exercise != "Shoulder Press" {
		t.Errorf("unexpected status: %+v", got)
	}
	if got.Timestamp == 0 {
		t.Error("expected Publish to stamp the status")
	}
}

func TestStatusWebSocket_BroadcastsUpdates(t *testing.T) {
	srv, _, hub := newTestServer(t)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/status"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Initial state arrives on connect.
	var initial Status
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&initial); err != nil {
		t.Fatalf("read initial status: %v", err)
	}

	// Wait for the server to register the client before publishing.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	hub.Publish(Status{Exercise: "Bicep Curl", Reps: 1, Stage: "initial"})

	var update Status
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if update.Exercise != "Bicep Curl" || update.Reps != 1 {
		t.Errorf("unexpected update: %+v", update)
	}
}

func TestStatusWebSocket_ConnectDuringBroadcast(t *testing.T) {
	srv, _, hub := newTestServer(t)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	hub.Publish(Status{Exercise: "Bicep Curl", Stage: "start"})

	// Broadcast continuously from a second goroutine, the way the frame
	// loop does. Gorilla connections support a single concurrent writer,
	// so every connect-time snapshot must still arrive intact.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			hub.Publish(Status{Exercise: "Bicep Curl", Stage: "up", Reps: i})
		}
	}()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/status"
	for i := 0; i < 50; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial %d: %v", i, err)
		}

		var snapshot Status
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&snapshot); err != nil {
			t.Fatalf("read snapshot %d: %v", i, err)
		}
		if snapshot.Exercise != "Bicep Curl" {
			t.Fatalf("snapshot %d = %+v", i, snapshot)
		}
		conn.Close()
	}

	close(stop)
	<-done
}

func TestHub_FrameRoundTrip(t *testing.T) {
	hub := NewHub()

	if hub.Frame() != nil {
		t.Error("fresh hub should have no frame")
	}

	src := []byte{0xff, 0xd8, 0x01, 0x02}
	hub.PublishFrame(src)

	// The hub must keep its own copy.
	src[2] = 0xee
	got := hub.Frame()
	if len(got) != 4 || got[2] != 0x01 {
		t.Errorf("frame not copied: %v", got)
	}
}
