package detector

import (
	"math"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	pose *PoseLandmarks
	err  error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetPose sets the pose that will be returned by Detect. Passing nil
// simulates a frame with no person in it.
func (m *MockDetector) SetPose(pose *PoseLandmarks) {
	m.pose = pose
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured pose or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*PoseLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pose, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// ArmsAtAngles returns a preset pose whose left and right elbow angles are
// the given values in degrees. Shoulders sit directly above the elbows and
// the wrists are rotated around the elbows, so the shoulder-elbow-wrist
// angle comes out exactly as requested. All six arm joints (plus the hips,
// for skeleton rendering) are fully visible.
func ArmsAtAngles(left, right float64) *PoseLandmarks {
	pose := &PoseLandmarks{Score: 0.95}

	const reach = 0.2

	placeArm := func(si, ei, wi int, elbowX float64, mirror bool) {
		elbow := Point3D{X: elbowX, Y: 0.5, Visibility: 0.95}
		shoulder := Point3D{X: elbowX, Y: 0.5 - reach, Visibility: 0.95}

		angle := left
		if mirror {
			angle = right
		}
		// The elbow-to-shoulder vector points straight up (-90 deg in
		// image coordinates); rotate the wrist away from it by the
		// requested angle. Mirroring keeps the wrist on the outer side.
		theta := (-90 + angle) * math.Pi / 180
		if mirror {
			theta = (-90 - angle) * math.Pi / 180
		}
		wrist := Point3D{
			X:          elbowX + reach*math.Cos(theta),
			Y:          0.5 + reach*math.Sin(theta),
			Visibility: 0.95,
		}

		pose.Points[si] = shoulder
		pose.Points[ei] = elbow
		pose.Points[wi] = wrist
	}

	placeArm(LeftShoulder, LeftElbow, LeftWrist, 0.38, false)
	placeArm(RightShoulder, RightElbow, RightWrist, 0.62, true)

	pose.Points[LeftHip] = Point3D{X: 0.42, Y: 0.85, Visibility: 0.9}
	pose.Points[RightHip] = Point3D{X: 0.58, Y: 0.85, Visibility: 0.9}

	return pose
}

// OccludedArmPose returns a pose where the right wrist is below the
// visibility floor, so arm extraction must report the frame unusable.
func OccludedArmPose() *PoseLandmarks {
	pose := ArmsAtAngles(90, 90)
	pose.Points[RightWrist].Visibility = 0.1
	return pose
}
