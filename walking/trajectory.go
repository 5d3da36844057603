package walking

import (
	"math"
)

// swingProgress maps the step phase onto the horizontal progress of the swing
// foot: a half cosine from 0 to 1, so the foot leaves and lands without
// horizontal velocity.
func swingProgress(t float64) float64 {
	if t <= 0 {
		return 0
	}

	if t >= 1 {
		return 1
	}

	return 0.5 - (math.Cos(t*math.Pi) / 2)
}

// swingLift is the fraction of the swing height at the given phase. It is
// exactly zero at both ends of the step.
func swingLift(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}

	return math.Sin(t * math.Pi)
}
