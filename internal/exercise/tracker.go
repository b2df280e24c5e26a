package exercise

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by New for an exercise kind it does not know.
var ErrUnknownKind = errors.New("unknown exercise kind")

// Kind identifies one of the supported exercises.
type Kind string

const (
	ShoulderPress        Kind = "shoulder_press"
	BicepCurl            Kind = "bicep_curl"
	AlternatingBicepCurl Kind = "alternating_bicep_curl"
	TricepKickback       Kind = "tricep_kickback"
)

// Kinds returns the supported exercise kinds in a stable order.
func Kinds() []Kind {
	return []Kind{ShoulderPress, BicepCurl, AlternatingBicepCurl, TricepKickback}
}

// Stage is the symbolic position in an exercise's motion cycle.
type Stage string

const (
	StageInitial Stage = "initial"
	StageStart   Stage = "start"
	StageUp      Stage = "up"
)

// Side identifies which limb (or both) a value refers to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
)

// Angles carries the per-frame elbow angles for both arms, in degrees.
type Angles struct {
	Left  float64
	Right float64
}

// Result is the outcome of feeding one frame's angles to a tracker.
type Result struct {
	// RepCompleted is true when this frame closed a full motion cycle.
	RepCompleted bool

	// Side is the limb that completed the rep (SideBoth for exercises
	// where both arms move together). Only meaningful when RepCompleted.
	Side Side

	// Feedback is a message to speak to the user, already gated so the
	// same message is not re-emitted frame after frame. Empty when there
	// is nothing new to say.
	Feedback string
}

// Tracker counts repetitions of one exercise from a stream of joint angles.
// Implementations are not safe for concurrent use; the frame loop is the
// only caller.
type Tracker interface {
	// Name is the human-readable exercise name ("Shoulder Press").
	Name() string

	// Kind is the selector the tracker was built from.
	Kind() Kind

	// Update advances the state machine with one frame's angles.
	Update(a Angles) Result

	// Reps returns the repetitions counted since construction or Reset.
	Reps() int

	// Stage returns the current stage. For alternating exercises this is
	// the active arm's stage.
	Stage() Stage

	// StageFor returns the stage of one limb. Shared-stage exercises
	// report the same stage for both sides.
	StageFor(side Side) Stage

	// ActiveSide returns the limb currently being evaluated, or SideBoth
	// for exercises that track both arms together.
	ActiveSide() Side

	// Reset zeroes the rep counter and returns every stage to initial.
	Reset()
}

// New builds the tracker for the given exercise kind using thresholds from
// the provided set. Unknown kinds fail fast.
func New(kind Kind, set ThresholdSet) (Tracker, error) {
	switch kind {
	case ShoulderPress:
		return newShoulderPress(set.ShoulderPress), nil
	case BicepCurl:
		return newBicepCurl(set.BicepCurl), nil
	case AlternatingBicepCurl:
		return newAlternatingBicepCurl(set.BicepCurl), nil
	case TricepKickback:
		return newTricepKickback(set.TricepKickback), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
