package walking

import (
	"fmt"

	"github.com/paudar/hulk/joints"
)

type Kicking struct {
	State KickState
}

func NewKicking(ctx *Context, kick KickState) *Kicking {
	return &Kicking{State: kick}
}

func (k *Kicking) Stand(ctx *Context) Mode {
	step := k.State.Step

	if step.IsSupportSwitched(ctx) {
		return NewWalkingWithStep(zeroStep(ctx, step.Plan.SupportSide.Opposite()), settle(ctx, step.Plan.Step))
	}

	return k.interrupt(ctx)
}

func (k *Kicking) Walk(ctx *Context, requested Step) Mode {
	step := k.State.Step

	if step.IsSupportSwitched(ctx) {
		return NewWalking(ctx, requested, step.Plan.SupportSide.Opposite(), settle(ctx, step.Plan.Step))
	}

	return k.interrupt(ctx)
}

func (k *Kicking) Kick(ctx *Context, variant KickVariant, side Side, strength float64) Mode {
	step := k.State.Step

	if step.IsSupportSwitched(ctx) {
		next := step.Plan.SupportSide.Opposite()
		return kickOrPreStep(ctx, variant, side, strength, next, step.Plan.Step)
	}

	return k.interrupt(ctx)
}

// interrupt handles everything after the support switch, which is the same
// for every request.
func (k *Kicking) interrupt(ctx *Context) Mode {
	step := k.State.Step

	if shouldCatchStep(ctx, step) {
		return NewCatching(ctx, step)
	}

	if step.IsTimeouted(ctx.Parameters) {
		return NewWalkingWithStep(zeroStep(ctx, step.Plan.SupportSide.Opposite()), settle(ctx, step.Plan.Step))
	}

	return k
}

func (k *Kicking) Tick(ctx *Context) {
	k.State.Step.Tick(ctx)
}

func (k *Kicking) ComputeCommands(ctx *Context) joints.MotorCommands {
	s := ctx.Parameters.Stiffnesses
	feet := k.State.ComputeFeet(ctx)
	return k.State.Step.ComputeJoints(ctx, feet).ApplyStiffness(s.LegStiffnessWalk, s.ArmStiffness)
}

func (k *Kicking) SupportSide() Side {
	return k.State.Step.Plan.SupportSide
}

func (k *Kicking) SafeExit(ctx *Context) bool {
	return false
}

func (k *Kicking) String() string {
	return fmt.Sprintf("Kicking{support=%s %s}", k.SupportSide(), k.State)
}
