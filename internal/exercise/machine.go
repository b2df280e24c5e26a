package exercise

// condition tests one frame's angles against an exercise threshold.
type condition func(a Angles) bool

// transition is one row of a tracker's transition table.
type transition struct {
	from      Stage
	when      condition
	to        Stage
	countsRep bool
	// feedback formats the message for this transition. The rep count is
	// the value after any increment caused by the transition.
	feedback func(reps int) string
}

// machine is a declarative threshold state machine. Transitions are checked
// in table order and at most one fires per frame, so a frame whose angles
// momentarily satisfy a later stage's condition while the machine is still
// in an earlier stage only advances one step.
type machine struct {
	stage         Stage
	transitions   []transition
	nudges        map[Stage]string
	feedbackGiven bool
}

func newMachine(transitions []transition, nudges map[Stage]string) machine {
	return machine{
		stage:       StageInitial,
		transitions: transitions,
		nudges:      nudges,
	}
}

// step evaluates the table against this frame's angles and returns the
// transition that fired, if any. Firing clears the feedback-given flag so
// the transition's message (or a subsequent nudge) can be emitted.
func (m *machine) step(a Angles) *transition {
	for i := range m.transitions {
		t := &m.transitions[i]
		if t.from != m.stage {
			continue
		}
		if t.when(a) {
			m.stage = t.to
			m.feedbackGiven = false
			return t
		}
	}
	return nil
}

// nudge returns the standing coaching message for the current stage, if one
// is configured ("push your arms up fully" while stuck between start and up).
func (m *machine) nudge() string {
	if m.nudges == nil {
		return ""
	}
	return m.nudges[m.stage]
}

// emit gates a message through the feedback-given flag: each message is
// spoken at most once until the next transition clears the flag.
func (m *machine) emit(msg string) string {
	if msg == "" || m.feedbackGiven {
		return ""
	}
	m.feedbackGiven = true
	return msg
}

func (m *machine) reset() {
	m.stage = StageInitial
	m.feedbackGiven = false
}
