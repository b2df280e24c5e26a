// Package detector provides body pose detection interfaces and types for
// exercise tracking.
package detector

// Pose landmark indices following the MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// DefaultMinVisibility is the per-joint visibility floor below which a
// joint is treated as occluded.
const DefaultMinVisibility = 0.5

// Point3D is one pose landmark: normalized image coordinates plus the
// model's visibility estimate for the joint.
type Point3D struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// PoseLandmarks represents the 33 body landmarks detected by MediaPipe Pose
// for a single person.
type PoseLandmarks struct {
	Points [NumLandmarks]Point3D `json:"points"`
	Score  float64               `json:"score"`
}

// Joint2D is a named 2D joint position in normalized image coordinates.
type Joint2D struct {
	X float64
	Y float64
}

// ArmJoints holds the three joints an elbow-angle computation needs.
type ArmJoints struct {
	Shoulder Joint2D
	Elbow    Joint2D
	Wrist    Joint2D
}

// armIndices maps an arm side to its shoulder/elbow/wrist landmark indices.
func armIndices(right bool) (int, int, int) {
	if right {
		return RightShoulder, RightElbow, RightWrist
	}
	return LeftShoulder, LeftElbow, LeftWrist
}

// arm extracts one arm's joints, reporting ok=false when any required joint
// falls below the visibility floor. An occluded joint is a silent skip for
// the caller, not an error.
func (p *PoseLandmarks) arm(right bool, minVisibility float64) (ArmJoints, bool) {
	if p == nil {
		return ArmJoints{}, false
	}
	si, ei, wi := armIndices(right)
	for _, i := range []int{si, ei, wi} {
		if p.Points[i].Visibility < minVisibility {
			return ArmJoints{}, false
		}
	}
	pt := func(i int) Joint2D {
		return Joint2D{X: p.Points[i].X, Y: p.Points[i].Y}
	}
	return ArmJoints{Shoulder: pt(si), Elbow: pt(ei), Wrist: pt(wi)}, true
}

// LeftArm extracts the left arm's joints. ok is false when the arm is
// occluded or the pose is nil.
func (p *PoseLandmarks) LeftArm(minVisibility float64) (ArmJoints, bool) {
	return p.arm(false, minVisibility)
}

// RightArm extracts the right arm's joints.
func (p *PoseLandmarks) RightArm(minVisibility float64) (ArmJoints, bool) {
	return p.arm(true, minVisibility)
}

// Arms extracts both arms. ok is false unless all six joints clear the
// visibility floor: the trackers need both elbow angles for a frame before
// it is evaluated at all.
func (p *PoseLandmarks) Arms(minVisibility float64) (left, right ArmJoints, ok bool) {
	l, lok := p.LeftArm(minVisibility)
	r, rok := p.RightArm(minVisibility)
	return l, r, lok && rok
}
