package exercise

import "fmt"

// alternatingTracker keeps an independent stage per arm plus a pointer to
// the arm currently being worked. Only the active arm's angle is evaluated
// each frame; completing its cycle increments the shared counter and flips
// the pointer. Tricep kickback and alternating bicep curl are built on it.
type alternatingTracker struct {
	name          string
	kind          Kind
	left          machine
	right         machine
	active        Side
	reps          int
	feedbackGiven bool
}

func (t *alternatingTracker) Name() string { return t.name }
func (t *alternatingTracker) Kind() Kind   { return t.kind }
func (t *alternatingTracker) Reps() int    { return t.reps }

func (t *alternatingTracker) ActiveSide() Side { return t.active }

func (t *alternatingTracker) Stage() Stage { return t.machineFor(t.active).stage }

func (t *alternatingTracker) StageFor(side Side) Stage {
	return t.machineFor(side).stage
}

func (t *alternatingTracker) machineFor(side Side) *machine {
	if side == SideRight {
		return &t.right
	}
	return &t.left
}

func (t *alternatingTracker) Update(a Angles) Result {
	side := t.active
	tr := t.machineFor(side).step(a)
	if tr == nil {
		return Result{}
	}

	// One flag is shared across both arms so a message for the freshly
	// activated arm is not suppressed by the previous arm's chatter.
	t.feedbackGiven = false

	res := Result{}
	if tr.countsRep {
		t.reps++
		res.RepCompleted = true
		res.Side = side
		t.active = otherSide(side)
	}
	if tr.feedback != nil {
		res.Feedback = t.emit(tr.feedback(t.reps))
	}
	return res
}

func (t *alternatingTracker) emit(msg string) string {
	if msg == "" || t.feedbackGiven {
		return ""
	}
	t.feedbackGiven = true
	return msg
}

func (t *alternatingTracker) Reset() {
	t.reps = 0
	t.left.reset()
	t.right.reset()
	t.active = SideLeft
	t.feedbackGiven = false
}

func otherSide(s Side) Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// armAngle selects the angle the given side's machine evaluates.
func armAngle(side Side) func(a Angles) float64 {
	if side == SideRight {
		return func(a Angles) float64 { return a.Right }
	}
	return func(a Angles) float64 { return a.Left }
}

// armTable builds one arm's transition table from per-stage angle tests and
// the exercise's feedback wording.
func armTable(side Side, verb, done string, start, up, down func(v float64) bool) []transition {
	angle := armAngle(side)
	return []transition{
		{
			from: StageInitial,
			when: func(a Angles) bool { return start(angle(a)) },
			to:   StageStart,
			feedback: func(int) string {
				return fmt.Sprintf("Start position detected for %s arm. %s", side, verb)
			},
		},
		{
			from: StageStart,
			when: func(a Angles) bool { return up(angle(a)) },
			to:   StageUp,
		},
		{
			from:      StageUp,
			when:      func(a Angles) bool { return down(angle(a)) },
			to:        StageInitial,
			countsRep: true,
			feedback: func(reps int) string {
				return fmt.Sprintf("%s arm %s completed! Total reps: %d. Switch to %s arm.",
					capitalize(string(side)), done, reps, otherSide(side))
			},
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func newTricepKickback(th CurlThresholds) *alternatingTracker {
	start := func(v float64) bool { return v < th.Start }
	up := func(v float64) bool { return v > th.Up }
	down := func(v float64) bool { return v < th.Down }

	return &alternatingTracker{
		name:   "Tricep Kickback",
		kind:   TricepKickback,
		left:   newMachine(armTable(SideLeft, "Extend your arm fully.", "tricep kickback", start, up, down), nil),
		right:  newMachine(armTable(SideRight, "Extend your arm fully.", "tricep kickback", start, up, down), nil),
		active: SideLeft,
	}
}

func newAlternatingBicepCurl(th CurlThresholds) *alternatingTracker {
	start := func(v float64) bool { return v > th.Start }
	up := func(v float64) bool { return v < th.Up }
	down := func(v float64) bool { return v > th.Down }

	return &alternatingTracker{
		name:   "Alternating Bicep Curl",
		kind:   AlternatingBicepCurl,
		left:   newMachine(armTable(SideLeft, "Curl your arm.", "bicep curl", start, up, down), nil),
		right:  newMachine(armTable(SideRight, "Curl your arm.", "bicep curl", start, up, down), nil),
		active: SideLeft,
	}
}
