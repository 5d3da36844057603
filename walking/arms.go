package walking

import (
	"fmt"

	"github.com/paudar/hulk/joints"
)

// ArmMotion selects what an arm does while walking.
type ArmMotion int

const (
	// Swing the arm against the opposite foot, like a person does.
	Swing ArmMotion = iota

	// Hold the arm against the body, to squeeze past obstacles.
	PullTight
)

func (a ArmMotion) String() string {
	switch a {
	case Swing:
		return "swing"
	case PullTight:
		return "pull_tight"
	default:
		return fmt.Sprintf("ArmMotion(%d)", int(a))
	}
}

type ArmMotions struct {
	Left  ArmMotion
	Right ArmMotion
}

func computeArm(ctx *Context, motion ArmMotion, side Side, feet FootPoses) joints.Arm {
	p := ctx.Parameters.Arms
	sign := side.sign()

	arm := joints.Arm{
		ShoulderPitch: p.BaseShoulderPitch,
		ShoulderRoll:  sign * p.BaseShoulderRoll,
		ElbowYaw:      -sign * p.BaseElbowYaw,
		ElbowRoll:     -sign * p.BaseElbowRoll,
	}

	switch motion {
	case PullTight:
		arm.ShoulderPitch = p.PullTightPitch
		arm.ShoulderRoll = sign * p.PullTightRoll

	default:
		opposite := feet.Left
		if side == Left {
			opposite = feet.Right
		}

		// Arm forward (smaller pitch) while the opposite foot is forward.
		x := opposite.Position.X + ctx.Parameters.Stance.TorsoOffset
		arm.ShoulderPitch -= p.SwingFactor * x
	}

	return arm
}
