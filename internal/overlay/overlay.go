// Package overlay draws exercise feedback onto live video frames.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/VaibhavSomanna/AI-land/internal/detector"
	"github.com/VaibhavSomanna/AI-land/internal/exercise"
)

var (
	textColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	activeColor   = color.RGBA{G: 255, A: 255}
	skeletonColor = color.RGBA{G: 200, B: 255, A: 255}
	jointColor    = color.RGBA{R: 255, G: 128, A: 255}
)

// skeleton lists the landmark index pairs to connect with lines: the arms
// the trackers watch plus the torso for spatial context.
var skeleton = [][2]int{
	{detector.LeftShoulder, detector.RightShoulder},
	{detector.LeftShoulder, detector.LeftElbow},
	{detector.LeftElbow, detector.LeftWrist},
	{detector.RightShoulder, detector.RightElbow},
	{detector.RightElbow, detector.RightWrist},
	{detector.LeftShoulder, detector.LeftHip},
	{detector.RightShoulder, detector.RightHip},
	{detector.LeftHip, detector.RightHip},
}

// Info is the per-frame state the renderer displays.
type Info struct {
	Exercise   string
	Reps       int
	Stage      exercise.Stage
	ActiveSide exercise.Side

	// Elbow angles for the frame; only drawn when HasAngles is set
	// (a frame with an occluded arm has nothing to show).
	LeftAngle  float64
	RightAngle float64
	HasAngles  bool
}

// Renderer draws session state and the detected pose onto frames.
type Renderer struct {
	width         int
	height        int
	fontScale     float64
	fontThickness int
	minVisibility float64
}

// New creates a Renderer for frames of the given pixel size.
func New(width, height int, fontScale float64, fontThickness int) *Renderer {
	return &Renderer{
		width:         width,
		height:        height,
		fontScale:     fontScale,
		fontThickness: fontThickness,
		minVisibility: detector.DefaultMinVisibility,
	}
}

// Draw renders the pose skeleton and the session info block onto the frame.
// A nil pose draws the info block only.
func (r *Renderer) Draw(img *gocv.Mat, pose *detector.PoseLandmarks, info Info) {
	if img == nil || img.Empty() {
		return
	}

	if pose != nil {
		r.drawSkeleton(img, pose)
		if info.HasAngles {
			r.drawElbowAngles(img, pose, info)
		}
	}
	r.drawInfo(img, info)
}

func (r *Renderer) drawSkeleton(img *gocv.Mat, pose *detector.PoseLandmarks) {
	visible := func(i int) bool {
		return pose.Points[i].Visibility >= r.minVisibility
	}

	for _, pair := range skeleton {
		if !visible(pair[0]) || !visible(pair[1]) {
			continue
		}
		gocv.Line(img, r.pixel(pose.Points[pair[0]]), r.pixel(pose.Points[pair[1]]), skeletonColor, 2)
	}

	for _, pair := range skeleton {
		for _, i := range pair {
			if visible(i) {
				gocv.Circle(img, r.pixel(pose.Points[i]), 4, jointColor, -1)
			}
		}
	}
}

// drawElbowAngles puts each elbow's angle next to the joint and a summary
// in the corner block.
func (r *Renderer) drawElbowAngles(img *gocv.Mat, pose *detector.PoseLandmarks, info Info) {
	leftElbow := r.pixel(pose.Points[detector.LeftElbow])
	rightElbow := r.pixel(pose.Points[detector.RightElbow])

	r.putText(img, fmt.Sprintf("%d", int(info.LeftAngle)), leftElbow, textColor)
	r.putText(img, fmt.Sprintf("%d", int(info.RightAngle)), rightElbow, textColor)
}

func (r *Renderer) drawInfo(img *gocv.Mat, info Info) {
	r.putText(img, fmt.Sprintf("Reps: %d", info.Reps), image.Pt(10, 30), textColor)
	r.putText(img, fmt.Sprintf("Stage: %s", info.Stage), image.Pt(10, 70), textColor)
	r.putText(img, fmt.Sprintf("Exercise: %s", info.Exercise), image.Pt(10, 110), textColor)

	if info.HasAngles {
		r.putText(img, fmt.Sprintf("Left: %d", int(info.LeftAngle)), image.Pt(10, 150), textColor)
		r.putText(img, fmt.Sprintf("Right: %d", int(info.RightAngle)), image.Pt(10, 190), textColor)
	}

	switch info.ActiveSide {
	case exercise.SideLeft:
		r.putText(img, "<- ACTIVE", image.Pt(200, 150), activeColor)
	case exercise.SideRight:
		r.putText(img, "ACTIVE ->", image.Pt(200, 190), activeColor)
	}
}

// pixel converts a normalized landmark to frame pixel coordinates.
func (r *Renderer) pixel(p detector.Point3D) image.Point {
	return image.Pt(int(p.X*float64(r.width)), int(p.Y*float64(r.height)))
}

func (r *Renderer) putText(img *gocv.Mat, text string, org image.Point, c color.RGBA) {
	gocv.PutText(img, text, org, gocv.FontHersheySimplex, r.fontScale, c, r.fontThickness)
}
