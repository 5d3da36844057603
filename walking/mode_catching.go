package walking

import (
	"fmt"

	"github.com/paudar/hulk/joints"
)

// Catching replaces a step in flight with one which puts the swing foot
// under the capture point, to stop a fall.
type Catching struct {
	Step StepState
}

// NewCatching takes over from the given step, keeping the feet where they
// are right now.
func NewCatching(ctx *Context, step StepState) *Catching {
	return &Catching{
		Step: NewStepState(catchingPlan(ctx, step)),
	}
}

// recover decides what follows once the catching step is over: another
// catching step if the robot is still falling, otherwise standing still on
// the other foot, slowing down from the step which was caught.
func (c *Catching) recover(ctx *Context) Mode {
	next := zeroStep(ctx, c.Step.Plan.SupportSide.Opposite())
	if shouldCatchStep(ctx, next) {
		return NewCatching(ctx, next)
	}

	return NewWalkingWithStep(next, settle(ctx, c.Step.Plan.Step))
}

func (c *Catching) transition(ctx *Context) Mode {
	if done(ctx, c.Step) {
		return c.recover(ctx)
	}

	return c
}

func (c *Catching) Stand(ctx *Context) Mode {
	return c.transition(ctx)
}

func (c *Catching) Walk(ctx *Context, step Step) Mode {
	return c.transition(ctx)
}

func (c *Catching) Kick(ctx *Context, variant KickVariant, side Side, strength float64) Mode {
	return c.transition(ctx)
}

func (c *Catching) Tick(ctx *Context) {
	c.Step.Tick(ctx)
}

func (c *Catching) ComputeCommands(ctx *Context) joints.MotorCommands {
	s := ctx.Parameters.Stiffnesses
	feet := c.Step.ComputeFeet(ctx)
	return c.Step.ComputeJoints(ctx, feet).ApplyStiffness(s.LegStiffnessWalk, s.ArmStiffness)
}

func (c *Catching) SupportSide() Side {
	return c.Step.Plan.SupportSide
}

func (c *Catching) SafeExit(ctx *Context) bool {
	return false
}

func (c *Catching) String() string {
	return fmt.Sprintf("Catching{support=%s}", c.SupportSide())
}
