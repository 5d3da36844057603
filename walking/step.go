package walking

import (
	"fmt"
	"math"
)

// Side identifies a foot. As a support side it names the foot currently
// bearing the weight of the robot.
type Side int

const (
	Left Side = iota
	Right
)

// Opposite flips the side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}

	return Left
}

// sign is +1 for the left side and -1 for the right, since Y points left.
func (s Side) sign() float64 {
	if s == Left {
		return 1
	}

	return -1
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Step is the displacement requested for a single step: meters forward,
// meters to the left, and radians counter-clockwise.
type Step struct {
	Forward float64 `json:"forward"`
	Left    float64 `json:"left"`
	Turn    float64 `json:"turn"`
}

// ZeroStep is the neutral step, which brings the feet back together.
var ZeroStep = Step{}

func (s Step) String() string {
	return fmt.Sprintf("Step{fwd=%+.3f left=%+.3f turn=%+.3f}", s.Forward, s.Left, s.Turn)
}

func (s Step) abs() Step {
	return Step{math.Abs(s.Forward), math.Abs(s.Left), math.Abs(s.Turn)}
}

func (s Step) dot(o Step) float64 {
	return s.Forward*o.Forward + s.Left*o.Left + s.Turn*o.Turn
}

// mirror returns the step as seen by the other foot.
func (s Step) mirror() Step {
	return Step{s.Forward, -s.Left, -s.Turn}
}
