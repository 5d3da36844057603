package walking

import (
	"fmt"

	"github.com/paudar/hulk/joints"
)

// Walking is the normal mode: one step after the other, each smoothed towards
// the requested step.
type Walking struct {
	Step          StepState
	RequestedStep Step
}

// NewWalking plans the next step from the requested step, limited by the
// acceleration bounds relative to the last smoothed step.
func NewWalking(ctx *Context, requested Step, supportSide Side, last Step) *Walking {
	smoothed := SmoothStep(ctx.Parameters, requested, last)

	return &Walking{
		Step:          NewStepState(NewStepPlan(ctx, smoothed, supportSide)),
		RequestedStep: smoothed,
	}
}

// NewWalkingWithStep continues walking with a step which has already been
// planned, remembering requested as the smoothed history.
func NewWalkingWithStep(step StepState, requested Step) *Walking {
	return &Walking{
		Step:          step,
		RequestedStep: requested,
	}
}

func (w *Walking) Stand(ctx *Context) Mode {
	if done(ctx, w.Step) {
		return NewStopping(ctx, w.Step.Plan.SupportSide.Opposite())
	}

	if shouldCatchStep(ctx, w.Step) {
		return NewCatching(ctx, w.Step)
	}

	return w
}

func (w *Walking) Walk(ctx *Context, step Step) Mode {
	if w.Step.IsSupportSwitched(ctx) {
		return NewWalking(ctx, step, w.Step.Plan.SupportSide.Opposite(), w.RequestedStep)
	}

	if shouldCatchStep(ctx, w.Step) {
		return NewCatching(ctx, w.Step)
	}

	if w.Step.IsTimeouted(ctx.Parameters) {
		return NewWalkingWithStep(zeroStep(ctx, w.Step.Plan.SupportSide.Opposite()), settle(ctx, w.RequestedStep))
	}

	return w
}

func (w *Walking) Kick(ctx *Context, variant KickVariant, side Side, strength float64) Mode {
	if w.Step.IsSupportSwitched(ctx) {
		next := w.Step.Plan.SupportSide.Opposite()
		return kickOrPreStep(ctx, variant, side, strength, next, w.RequestedStep)
	}

	if shouldCatchStep(ctx, w.Step) {
		return NewCatching(ctx, w.Step)
	}

	if w.Step.IsTimeouted(ctx.Parameters) {
		return NewWalkingWithStep(zeroStep(ctx, w.Step.Plan.SupportSide.Opposite()), settle(ctx, w.RequestedStep))
	}

	return w
}

func (w *Walking) Tick(ctx *Context) {
	w.Step.Tick(ctx)
}

func (w *Walking) ComputeCommands(ctx *Context) joints.MotorCommands {
	s := ctx.Parameters.Stiffnesses
	feet := w.Step.ComputeFeet(ctx)
	return w.Step.ComputeJoints(ctx, feet).ApplyStiffness(s.LegStiffnessWalk, s.ArmStiffness)
}

func (w *Walking) SupportSide() Side {
	return w.Step.Plan.SupportSide
}

func (w *Walking) SafeExit(ctx *Context) bool {
	return false
}

func (w *Walking) String() string {
	return fmt.Sprintf("Walking{support=%s %s}", w.SupportSide(), w.Step.Plan.Step)
}
