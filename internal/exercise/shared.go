package exercise

import "fmt"

// sharedTracker runs one state machine across both arms: every transition
// requires both angles to satisfy its condition at the same time. Shoulder
// press and (two-armed) bicep curl are built on it.
type sharedTracker struct {
	name string
	kind Kind
	m    machine
	reps int
}

func (t *sharedTracker) Name() string { return t.name }
func (t *sharedTracker) Kind() Kind   { return t.kind }
func (t *sharedTracker) Reps() int    { return t.reps }
func (t *sharedTracker) Stage() Stage { return t.m.stage }

func (t *sharedTracker) StageFor(Side) Stage { return t.m.stage }
func (t *sharedTracker) ActiveSide() Side    { return SideBoth }

func (t *sharedTracker) Update(a Angles) Result {
	tr := t.m.step(a)
	if tr == nil {
		return Result{Feedback: t.m.emit(t.m.nudge())}
	}

	res := Result{Side: SideBoth}
	if tr.countsRep {
		t.reps++
		res.RepCompleted = true
	}
	if tr.feedback != nil {
		res.Feedback = t.m.emit(tr.feedback(t.reps))
	}
	return res
}

func (t *sharedTracker) Reset() {
	t.reps = 0
	t.m.reset()
}

// both builds a condition that holds when the per-arm test passes for the
// left and right angle simultaneously.
func both(test func(angle float64) bool) condition {
	return func(a Angles) bool {
		return test(a.Left) && test(a.Right)
	}
}

func newShoulderPress(th PressThresholds) *sharedTracker {
	return &sharedTracker{
		name: "Shoulder Press",
		kind: ShoulderPress,
		m: newMachine(
			[]transition{
				{
					from: StageInitial,
					when: both(func(v float64) bool { return th.StartMin < v && v < th.StartMax }),
					to:   StageStart,
					feedback: func(int) string {
						return "Start position detected. Push your arms up!"
					},
				},
				{
					from: StageStart,
					when: both(func(v float64) bool { return v > th.Up }),
					to:   StageUp,
				},
				{
					from:      StageUp,
					when:      both(func(v float64) bool { return v < th.Down }),
					to:        StageInitial,
					countsRep: true,
					feedback: func(reps int) string {
						return fmt.Sprintf("Shoulder press completed! Reps: %d", reps)
					},
				},
			},
			map[Stage]string{
				StageStart: "Push your arms up fully.",
			},
		),
	}
}

func newBicepCurl(th CurlThresholds) *sharedTracker {
	return &sharedTracker{
		name: "Bicep Curl",
		kind: BicepCurl,
		m: newMachine(
			[]transition{
				{
					from: StageInitial,
					when: both(func(v float64) bool { return v > th.Start }),
					to:   StageStart,
					feedback: func(int) string {
						return "Start position detected. Curl your arms!"
					},
				},
				{
					from: StageStart,
					when: both(func(v float64) bool { return v < th.Up }),
					to:   StageUp,
				},
				{
					from:      StageUp,
					when:      both(func(v float64) bool { return v > th.Down }),
					to:        StageInitial,
					countsRep: true,
					feedback: func(reps int) string {
						return fmt.Sprintf("Bicep curl completed! Reps: %d", reps)
					},
				},
			},
			nil,
		),
	}
}
