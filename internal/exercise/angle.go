// Package exercise provides rep counting for tracked exercises based on
// per-frame joint angles.
package exercise

import "math"

// Point2D is a normalized image-plane coordinate as produced by the pose
// detector (0..1 in both axes).
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Angle returns the unsigned angle ABC in degrees, with b as the vertex.
// The result is always in [0, 180]: the raw atan2 difference is folded so
// that reflex angles map back to their interior measure.
//
// If b coincides with a or c the vector direction is undefined and the
// result is whatever atan2(0, 0) produces; callers feeding detector output
// never hit this in practice, so it is not guarded.
func Angle(a, b, c Point2D) float64 {
	rad := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	deg := math.Abs(rad * 180.0 / math.Pi)
	if deg > 180.0 {
		deg = 360.0 - deg
	}
	return deg
}
