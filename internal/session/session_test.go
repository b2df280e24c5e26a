package session

import (
	"errors"
	"testing"
	"time"
)

func TestRepository_StartAndGet(t *testing.T) {
	repo := newTestStore(t).Sessions()

	sess, err := repo.Start("bicep_curl")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected a session ID")
	}
	if sess.Exercise != "bicep_curl" {
		t.Errorf("exercise = %q", sess.Exercise)
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Reps != 0 {
		t.Errorf("fresh session reps = %d, want 0", got.Reps)
	}
	if got.EndedAt != nil {
		t.Error("fresh session should not have an end time")
	}
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestStore(t).Sessions()

	_, err := repo.GetByID("no-such-session")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_RecordRepUpdatesCount(t *testing.T) {
	repo := newTestStore(t).Sessions()

	sess, err := repo.Start("tricep_kickback")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	now := time.Now()
	for i, side := range []string{"left", "right", "left"} {
		if err := repo.RecordRep(sess.ID, i+1, side, now.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("RecordRep %d: %v", i+1, err)
		}
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Reps != 3 {
		t.Errorf("session reps = %d, want 3", got.Reps)
	}

	reps, err := repo.Reps(sess.ID)
	if err != nil {
		t.Fatalf("Reps: %v", err)
	}
	if len(reps) != 3 {
		t.Fatalf("got %d rep rows, want 3", len(reps))
	}
	if reps[0].Side != "left" || reps[1].Side != "right" {
		t.Errorf("rep sides out of order: %v, %v", reps[0].Side, reps[1].Side)
	}
	if reps[2].RepNumber != 3 {
		t.Errorf("last rep number = %d, want 3", reps[2].RepNumber)
	}
}

func TestRepository_Finish(t *testing.T) {
	repo := newTestStore(t).Sessions()

	sess, err := repo.Start("shoulder_press")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := repo.Finish(sess.ID, 12); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.EndedAt == nil {
		t.Error("finished session should have an end time")
	}
	if got.Reps != 12 {
		t.Errorf("reps = %d, want 12", got.Reps)
	}
}

func TestRepository_Finish_NotFound(t *testing.T) {
	repo := newTestStore(t).Sessions()

	if err := repo.Finish("no-such-session", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_ListOrdersRecentFirst(t *testing.T) {
	repo := newTestStore(t).Sessions()

	first, err := repo.Start("bicep_curl")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	second, err := repo.Start("shoulder_press")
	if err != nil {
		t.Fatal(err)
	}

	sessions, err := repo.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].ID != second.ID || sessions[1].ID != first.ID {
		t.Error("sessions not ordered most recent first")
	}

	limited, err := repo.List(1)
	if err != nil {
		t.Fatalf("List(1): %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d sessions with limit 1", len(limited))
	}
}
