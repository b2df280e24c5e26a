// Package app wires the camera, pose detector, exercise tracker, and
// feedback surfaces into the trainer's frame loop.
package app

import (
	"fmt"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/VaibhavSomanna/AI-land/internal/capture"
	"github.com/VaibhavSomanna/AI-land/internal/config"
	"github.com/VaibhavSomanna/AI-land/internal/detector"
	"github.com/VaibhavSomanna/AI-land/internal/exercise"
	"github.com/VaibhavSomanna/AI-land/internal/overlay"
	"github.com/VaibhavSomanna/AI-land/internal/server"
	"github.com/VaibhavSomanna/AI-land/internal/session"
	"github.com/VaibhavSomanna/AI-land/internal/speech"
)

// Pipeline timing constants.
const (
	// IdleFPS is the capture rate while the scene is still.
	IdleFPS = 5
	// IdleTimeout is how long the scene must stay still before pose
	// detection is skipped and capture drops to IdleFPS.
	IdleTimeout = 2 * time.Second
	// waitKeyDelayMs is the per-frame HighGUI event poll.
	waitKeyDelayMs = 10
)

// App is the main application that orchestrates exercise tracking.
type App struct {
	cfg     *config.Config
	tracker exercise.Tracker

	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	speaker  speech.Engine
	renderer *overlay.Renderer

	store *session.Store
	hub   *server.Hub
	sess  *session.Session

	// Idle gating state, owned by the frame loop.
	idle           bool
	lastMotionTime time.Time
	paused         bool
}

// Options configures App construction beyond the config file.
type Options struct {
	Exercise exercise.Kind
	Store    *session.Store // optional workout history
	Hub      *server.Hub    // optional live status fan-out
}

// New creates an App for the selected exercise. An unknown exercise kind
// fails here, before any device is touched.
func New(cfg *config.Config, opts Options) (*App, error) {
	tracker, err := exercise.New(opts.Exercise, cfg.Thresholds.Set())
	if err != nil {
		return nil, fmt.Errorf("create tracker: %w", err)
	}

	a := &App{
		cfg:      cfg,
		tracker:  tracker,
		camera:   capture.NewCamera(cfg.Camera.Index, cfg.Camera.Width, cfg.Camera.Height),
		motion:   capture.NewMotionDetector(cfg.Camera.MotionThreshold),
		renderer: overlay.New(cfg.Camera.Width, cfg.Camera.Height, cfg.UI.FontScale, cfg.UI.FontThickness),
		speaker: speech.New(speech.Options{
			Enabled: cfg.Speech.Enabled,
			Rate:    cfg.Speech.Rate,
			Volume:  cfg.Speech.Volume,
		}),
		store:          opts.Store,
		hub:            opts.Hub,
		lastMotionTime: time.Now(),
	}

	// Try MediaPipe first, fall back to the mock detector so the UI still
	// comes up on machines without the pose service.
	detCfg := detector.Config{
		MinConfidence:   cfg.Pose.MinDetectionConfidence,
		MinTrackingConf: cfg.Pose.MinTrackingConfidence,
	}
	if mp, err := detector.NewMediaPipeDetector(detCfg); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe pose detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a, nil
}

// Tracker returns the active exercise tracker.
func (a *App) Tracker() exercise.Tracker {
	return a.tracker
}

// SetCamera replaces the camera implementation (used by tests).
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetDetector replaces the pose detector implementation (used by tests).
func (a *App) SetDetector(d detector.Detector) {
	a.detector = d
}

// Session returns the workout session being recorded, if any.
func (a *App) Session() *session.Session {
	return a.sess
}

// Run executes the trainer until the user quits. It owns the window and
// the synchronous capture-process-display loop.
func (a *App) Run() error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer a.cleanup()

	a.StartSession()

	windowName := fmt.Sprintf("AI Fitness Trainer - %s", a.tracker.Name())
	window := gocv.NewWindow(windowName)
	defer window.Close()
	if a.cfg.UI.Fullscreen {
		window.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)
	}

	log.Printf("Starting %s tracking. Press 'q' to quit, 'r' to reset, 'p' to pause", a.tracker.Name())
	a.speak(fmt.Sprintf("Welcome to AI Fitness Trainer. Starting %s tracking.", a.tracker.Name()))

	for {
		frame, err := a.camera.ReadFrame()
		if err != nil {
			log.Printf("Error reading frame: %v", err)
			break
		}

		a.ProcessFrame(frame)
		window.IMShow(*frame)
		frame.Close()

		key := window.WaitKey(waitKeyDelayMs)
		if a.handleKey(key) {
			break
		}
	}

	return nil
}

// handleKey reacts to a pressed key and reports whether the loop should end.
func (a *App) handleKey(key int) bool {
	switch key {
	case 'q':
		return true
	case 'r':
		a.resetTracker()
	case 'p':
		a.paused = !a.paused
		if a.paused {
			log.Println("Tracking paused")
		} else {
			log.Println("Tracking resumed")
		}
	}
	return false
}

// resetTracker zeroes the counter and announces it.
func (a *App) resetTracker() {
	a.tracker.Reset()
	a.speak("Exercise counter reset")
	a.publishStatus(exercise.Angles{}, false)
}

// StartSession opens a workout history record when a store is attached.
// Run calls this automatically; tests drive it directly.
func (a *App) StartSession() {
	if a.store == nil {
		return
	}

	sess, err := a.store.Sessions().Start(string(a.tracker.Kind()))
	if err != nil {
		log.Printf("Failed to start session record: %v", err)
		return
	}
	a.sess = sess
}

// speak delivers feedback, degrading to a log line on engine errors.
func (a *App) speak(msg string) {
	if msg == "" {
		return
	}
	if err := a.speaker.Speak(msg); err != nil {
		log.Printf("Speech failed (%v): %s", err, msg)
	}
}

func (a *App) cleanup() {
	log.Println("Cleaning up...")

	if a.sess != nil && a.store != nil {
		if err := a.store.Sessions().Finish(a.sess.ID, a.tracker.Reps()); err != nil {
			log.Printf("Failed to finish session record: %v", err)
		}
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if err := a.speaker.Close(); err != nil {
		log.Printf("Error closing speech engine: %v", err)
	}

	log.Println("Goodbye!")
}
