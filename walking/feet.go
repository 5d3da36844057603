package walking

import (
	"fmt"

	"github.com/paudar/hulk/math3d"
)

// Feet are the sole poses labelled by role rather than by side.
type Feet struct {
	Support math3d.Pose
	Swing   math3d.Pose
}

// FeetFromPoses labels left/right poses according to the support side.
func FeetFromPoses(p FootPoses, supportSide Side) Feet {
	if supportSide == Left {
		return Feet{Support: p.Left, Swing: p.Right}
	}

	return Feet{Support: p.Right, Swing: p.Left}
}

// Poses is the inverse of FeetFromPoses.
func (f Feet) Poses(supportSide Side) FootPoses {
	if supportSide == Left {
		return FootPoses{Left: f.Support, Right: f.Swing}
	}

	return FootPoses{Left: f.Swing, Right: f.Support}
}

func (f Feet) String() string {
	return fmt.Sprintf("Feet{support=%s swing=%s}", f.Support, f.Swing)
}

// endFeet places both soles where they should be once the step is done,
// relative to the torso: the support sole half a step behind its neutral
// position, the swing sole half a step ahead of its own.
func endFeet(p *Parameters, step Step, supportSide Side) Feet {
	neutral := FeetFromPoses(NeutralFootPoses(p), supportSide)

	support := math3d.MakePose(-step.Forward/2, -step.Left/2, 0, -step.Turn/2)
	swing := math3d.MakePose(step.Forward/2, step.Left/2, 0, step.Turn/2)

	return Feet{
		Support: rotateAbout(neutral.Support, support),
		Swing:   rotateAbout(neutral.Swing, swing),
	}
}

// rotateAbout offsets the neutral pose by the step part and rotates it about
// the torso origin by the step turn, so turning steps swing the feet around
// the body rather than spinning them in place.
func rotateAbout(neutral, part math3d.Pose) math3d.Pose {
	turned := math3d.Pose{Yaw: part.Yaw}.Add(math3d.Pose{Position: neutral.Position, Yaw: neutral.Yaw})
	turned.Position = turned.Position.Add(part.Position)
	return turned
}
