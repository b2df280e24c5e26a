package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"

	"github.com/VaibhavSomanna/AI-land/internal/app"
	"github.com/VaibhavSomanna/AI-land/internal/capture"
	"github.com/VaibhavSomanna/AI-land/internal/config"
	"github.com/VaibhavSomanna/AI-land/internal/detector"
	"github.com/VaibhavSomanna/AI-land/internal/exercise"
	"github.com/VaibhavSomanna/AI-land/internal/server"
	"github.com/VaibhavSomanna/AI-land/internal/session"
)

func TestE2E_CompleteWorkout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	store, err := session.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	defer store.Close()

	hub := server.NewHub()
	srv := server.New(server.Config{Store: store, Hub: hub})
	ts := httptest.NewServer(srv)
	defer ts.Close()
	client := ts.Client()

	cfg := config.Default()
	cfg.Speech.Enabled = false

	application, err := app.New(&cfg, app.Options{
		Exercise: exercise.BicepCurl,
		Store:    store,
		Hub:      hub,
	})
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}

	mockDetector := detector.NewMockDetector()
	application.SetDetector(mockDetector)
	application.SetCamera(capture.NewMockCamera(nil, false))
	application.StartSession()

	feed := func(pose *detector.PoseLandmarks) {
		mockDetector.SetPose(pose)
		frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
		defer frame.Close()
		application.ProcessFrame(&frame)
	}

	t.Run("CountReps", func(t *testing.T) {
		// Two full curl cycles: extended, curled, extended.
		for i := 0; i < 2; i++ {
			feed(detector.ArmsAtAngles(170, 170))
			feed(detector.ArmsAtAngles(50, 50))
		}
		feed(detector.ArmsAtAngles(170, 170))

		if got := application.Tracker().Reps(); got != 2 {
			t.Fatalf("reps = %d, want 2", got)
		}
	})

	t.Run("StatusEndpointReflectsWorkout", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/status")
		if err != nil {
			t.Fatalf("get status: %v", err)
		}
		defer resp.Body.Close()

		var st server.Status
		if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		if st.Reps != 2 || st.Exercise != "Bicep Curl" {
			t.Errorf("status = %+v", st)
		}
	})

	t.Run("SessionsEndpointReflectsWorkout", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/sessions")
		if err != nil {
			t.Fatalf("get sessions: %v", err)
		}
		defer resp.Body.Close()

		var sessions []session.Session
		if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
			t.Fatalf("decode sessions: %v", err)
		}
		if len(sessions) != 1 {
			t.Fatalf("got %d sessions, want 1", len(sessions))
		}
		if sessions[0].Exercise != "bicep_curl" || sessions[0].Reps != 2 {
			t.Errorf("session = %+v", sessions[0])
		}
	})

	t.Run("HealthStillOK", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health check: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after workout")
		}
	})
}

func TestE2E_SessionLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	store, err := session.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	defer store.Close()

	repo := store.Sessions()
	sess, err := repo.Start("tricep_kickback")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if err := repo.Finish(sess.ID, 7); err != nil {
		t.Fatalf("finish session: %v", err)
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Reps != 7 || got.EndedAt == nil {
		t.Errorf("finished session = %+v", got)
	}
}
