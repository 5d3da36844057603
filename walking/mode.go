package walking

import (
	"github.com/paudar/hulk/joints"
)

// Mode is the state of the walking engine. Each variant decides, once per
// cycle, which mode follows it given the request of that cycle. Transitions
// always look at the same things in the same order: has the support switched,
// is the robot falling (catch), has the step timed out. A transition which
// changes nothing returns its receiver.
type Mode interface {
	Stand(ctx *Context) Mode
	Walk(ctx *Context, step Step) Mode
	Kick(ctx *Context, variant KickVariant, side Side, strength float64) Mode

	// Tick advances the mode by one cycle.
	Tick(ctx *Context)

	ComputeCommands(ctx *Context) joints.MotorCommands

	// SupportSide is the foot currently bearing the weight.
	SupportSide() Side

	// SafeExit returns true if the engine may be stopped (e.g. to sit down)
	// without the robot falling over.
	SafeExit(ctx *Context) bool

	String() string
}

// zeroStep plans a step which brings the feet back to the neutral stance.
func zeroStep(ctx *Context, supportSide Side) StepState {
	return NewStepState(NewStepPlan(ctx, ZeroStep, supportSide))
}

// settle is the step history after a zero step was put in: smoothed as if
// zero had been requested, so forward stops and turn decays within its bound.
func settle(ctx *Context, history Step) Step {
	return SmoothStep(ctx.Parameters, ZeroStep, history)
}

// kickOrPreStep starts the requested kick if the support side already
// matches, otherwise puts in a zero step on nextSupportSide so the next one
// will.
func kickOrPreStep(ctx *Context, variant KickVariant, side Side, strength float64, nextSupportSide Side, history Step) Mode {
	if nextSupportSide != side {
		return NewWalkingWithStep(zeroStep(ctx, nextSupportSide), settle(ctx, history))
	}

	return NewKicking(ctx, NewKickState(ctx, variant, side, strength))
}

// done returns true once the step in flight is over, one way or another.
func done(ctx *Context, s StepState) bool {
	return s.IsSupportSwitched(ctx) || s.IsTimeouted(ctx.Parameters)
}

func shouldCatchStep(ctx *Context, s StepState) bool {
	return ShouldCatch(ctx, s.Plan.EndFeet, s.Plan.SupportSide)
}
