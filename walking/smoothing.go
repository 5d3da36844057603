package walking

import (
	"math"

	"github.com/paudar/hulk/utils"
)

// SmoothStep limits how far the requested step may move away from the last
// smoothed step. Forward is bounded asymmetrically: deceleration may always
// bring it straight back to zero, but never past it. Turn gets a symmetric
// bound, tighter while walking fast. Left passes through untouched.
func SmoothStep(p *Parameters, requested, last Step) Step {
	var backward, forward float64

	switch {
	case last.Forward > 0:
		backward, forward = -last.Forward, p.MaxForwardAcceleration
	case last.Forward == 0:
		backward, forward = -p.MaxForwardAcceleration, p.MaxForwardAcceleration
	default:
		backward, forward = -p.MaxForwardAcceleration, -last.Forward
	}

	turn := TurnAcceleration(p, last)

	return Step{
		Forward: last.Forward + utils.Clamp(requested.Forward-last.Forward, backward, forward),
		Left:    requested.Left,
		Turn:    last.Turn + utils.Clamp(requested.Turn-last.Turn, -turn, turn),
	}
}

// TurnAcceleration is the largest change of turn allowed after the last step.
func TurnAcceleration(p *Parameters, last Step) float64 {
	if math.Abs(last.Forward) > p.ForwardTurnThreshold {
		return p.MaxTurnAcceleration * p.ForwardTurnReduction
	}

	return p.MaxTurnAcceleration
}
