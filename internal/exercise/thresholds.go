package exercise

// PressThresholds are the angle boundaries for the shoulder press, whose
// start position is a bounded window (the "L shape") rather than a single
// cutoff.
type PressThresholds struct {
	StartMin float64
	StartMax float64
	Up       float64
	Down     float64
}

// CurlThresholds are the angle boundaries for exercises with a single start
// cutoff (bicep curl, tricep kickback). Whether a stage is entered by going
// above or below a boundary depends on the exercise.
type CurlThresholds struct {
	Start float64
	Up    float64
	Down  float64
}

// ThresholdSet is the full per-exercise threshold table. It is built once
// at startup from configuration and treated as immutable. The alternating
// bicep curl shares the bicep curl entry.
type ThresholdSet struct {
	ShoulderPress  PressThresholds
	BicepCurl      CurlThresholds
	TricepKickback CurlThresholds
}

// DefaultThresholds returns the stock threshold table, in degrees.
func DefaultThresholds() ThresholdSet {
	return ThresholdSet{
		ShoulderPress: PressThresholds{
			StartMin: 80,
			StartMax: 100,
			Up:       160,
			Down:     90,
		},
		BicepCurl: CurlThresholds{
			Start: 160,
			Up:    60,
			Down:  160,
		},
		TricepKickback: CurlThresholds{
			Start: 30,
			Up:    150,
			Down:  30,
		},
	}
}
