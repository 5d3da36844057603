package walking

import (
	"fmt"
	"math"
	"time"

	"github.com/paudar/hulk/math3d"
	"github.com/paudar/hulk/utils"
)

// KickVariant selects which kick step is made.
type KickVariant int

const (
	KickForward KickVariant = iota
	KickTurn
	KickSide
)

func (v KickVariant) String() string {
	switch v {
	case KickForward:
		return "forward"
	case KickTurn:
		return "turn"
	case KickSide:
		return "side"
	default:
		return fmt.Sprintf("KickVariant(%d)", int(v))
	}
}

func (p KickParameters) variant(v KickVariant) KickStepParameters {
	switch v {
	case KickTurn:
		return p.Turn
	case KickSide:
		return p.Side
	default:
		return p.Forward
	}
}

// KickState is a kick in progress. Side is the support side the kick is made
// from; the opposite foot kicks.
type KickState struct {
	Variant  KickVariant
	Side     Side
	Strength float64
	Step     StepState
}

// NewKickState plans the kick step. Strength is clamped to [0, 1].
func NewKickState(ctx *Context, variant KickVariant, side Side, strength float64) KickState {
	kp := ctx.Parameters.Kick.variant(variant)

	step := kp.BaseStep
	if side.Opposite() == Right {
		step = step.mirror()
	}

	plan := NewStepPlan(ctx, step, side)
	if kp.DurationScale > 0 {
		plan.Duration = time.Duration(float64(plan.Duration) * kp.DurationScale)
	}

	return KickState{
		Variant:  variant,
		Side:     side,
		Strength: utils.Clamp(strength, 0, 1),
		Step:     NewStepState(plan),
	}
}

func (k KickState) String() string {
	return fmt.Sprintf("Kick{%s side=%s strength=%.2f}", k.Variant, k.Side, k.Strength)
}

// ComputeFeet is the normal step trajectory with the kick swung on top of it.
// The kick offset vanishes at both ends of the step, so the kicking foot lands
// exactly on the planned end pose.
func (k KickState) ComputeFeet(ctx *Context) Feet {
	kp := ctx.Parameters.Kick.variant(k.Variant)
	feet := k.Step.ComputeFeet(ctx)

	t := k.Step.Phase()
	bump := 0.0
	if t > 0 && t < 1 {
		bump = math.Sin(t * math.Pi)
	}

	overshoot := kp.Overshoot
	if k.Side.Opposite() == Right {
		overshoot.Position.Y = -overshoot.Position.Y
		overshoot.Yaw = -overshoot.Yaw
	}

	s := k.Strength * bump
	feet.Swing.Position = feet.Swing.Position.Add(overshoot.Position.MultiplyByScalar(s))
	feet.Swing.Position = feet.Swing.Position.Add(math3d.Vector3{Z: kp.Lift * bump})
	feet.Swing.Yaw += overshoot.Yaw * s

	return feet
}
