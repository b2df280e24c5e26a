package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/VaibhavSomanna/AI-land/internal/detector"
	"github.com/VaibhavSomanna/AI-land/internal/exercise"
	"github.com/VaibhavSomanna/AI-land/internal/overlay"
	"github.com/VaibhavSomanna/AI-land/internal/server"
)

// ProcessFrame runs one frame through the tracking pipeline: motion gate,
// pose detection, angle extraction, tracker update, then overlay and
// publication. The frame is annotated in place.
func (a *App) ProcessFrame(frame *gocv.Mat) {
	a.updateIdleState(frame)

	var pose *detector.PoseLandmarks
	if !a.idle && !a.paused {
		var err error
		pose, err = a.detector.Detect(frame)
		if err != nil {
			log.Printf("Pose detection error: %v", err)
			pose = nil
		}
	}

	var angles exercise.Angles
	hasAngles := false
	if pose != nil && !a.paused {
		left, right, ok := pose.Arms(a.cfg.Pose.MinJointVisibility)
		if ok {
			angles = exercise.Angles{
				Left:  elbowAngle(left),
				Right: elbowAngle(right),
			}
			hasAngles = true

			res := a.tracker.Update(angles)
			if res.Feedback != "" {
				a.speak(res.Feedback)
			}
			if res.RepCompleted {
				a.recordRep(res)
			}
		}
	}

	info := overlay.Info{
		Exercise:   a.tracker.Name(),
		Reps:       a.tracker.Reps(),
		Stage:      a.tracker.Stage(),
		ActiveSide: a.tracker.ActiveSide(),
		LeftAngle:  angles.Left,
		RightAngle: angles.Right,
		HasAngles:  hasAngles,
	}
	a.renderer.Draw(frame, pose, info)

	a.publishStatus(angles, hasAngles)
	a.publishFrame(frame)
}

// updateIdleState feeds the motion detector and toggles the idle gate.
// A still scene longer than IdleTimeout drops the capture rate and skips
// pose detection until motion returns.
func (a *App) updateIdleState(frame *gocv.Mat) {
	moved, _ := a.motion.Detect(frame)
	now := time.Now()

	if moved {
		a.lastMotionTime = now
		if a.idle {
			a.idle = false
			a.camera.SetFPS(a.cfg.Camera.FPS)
			log.Println("Motion detected, resuming pose detection")
		}
		return
	}

	if !a.idle && now.Sub(a.lastMotionTime) > IdleTimeout {
		a.idle = true
		a.camera.SetFPS(IdleFPS)
		log.Println("Scene idle, pausing pose detection")
	}
}

// recordRep logs the completed rep and appends it to the session record.
func (a *App) recordRep(res exercise.Result) {
	reps := a.tracker.Reps()
	log.Printf("Rep %d completed (%s)", reps, res.Side)

	if a.sess == nil || a.store == nil {
		return
	}
	if err := a.store.Sessions().RecordRep(a.sess.ID, reps, string(res.Side), time.Now()); err != nil {
		log.Printf("Failed to record rep: %v", err)
	}
}

// publishStatus pushes the current training state to the hub, if one is
// attached.
func (a *App) publishStatus(angles exercise.Angles, hasAngles bool) {
	if a.hub == nil {
		return
	}

	st := server.Status{
		Exercise:   a.tracker.Name(),
		Stage:      string(a.tracker.Stage()),
		Reps:       a.tracker.Reps(),
		ActiveSide: string(a.tracker.ActiveSide()),
	}
	if a.sess != nil {
		st.SessionID = a.sess.ID
	}
	if hasAngles {
		st.LeftAngle = angles.Left
		st.RightAngle = angles.Right
	}
	a.hub.Publish(st)
}

// publishFrame encodes the annotated frame for the MJPEG stream.
func (a *App) publishFrame(frame *gocv.Mat) {
	if a.hub == nil || frame == nil || frame.Empty() {
		return
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, *frame)
	if err != nil {
		log.Printf("Failed to encode frame: %v", err)
		return
	}
	defer buf.Close()

	a.hub.PublishFrame(buf.GetBytes())
}

// elbowAngle computes the elbow angle from one arm's joints.
func elbowAngle(arm detector.ArmJoints) float64 {
	return exercise.Angle(
		exercise.Point2D(arm.Shoulder),
		exercise.Point2D(arm.Elbow),
		exercise.Point2D(arm.Wrist),
	)
}
