package walking

import (
	"fmt"

	"github.com/paudar/hulk/joints"
)

// Stopping brings the feet together with one last zero step and then stands
// there until asked to do something else.
type Stopping struct {
	Step StepState
}

func NewStopping(ctx *Context, supportSide Side) *Stopping {
	return &Stopping{Step: zeroStep(ctx, supportSide)}
}

func (s *Stopping) Stand(ctx *Context) Mode {
	if shouldCatchStep(ctx, s.Step) {
		return NewCatching(ctx, s.Step)
	}

	return s
}

func (s *Stopping) Walk(ctx *Context, step Step) Mode {
	if shouldCatchStep(ctx, s.Step) {
		return NewCatching(ctx, s.Step)
	}

	if done(ctx, s.Step) {
		return NewWalking(ctx, step, s.SupportSide().Opposite(), ZeroStep)
	}

	return s
}

func (s *Stopping) Kick(ctx *Context, variant KickVariant, side Side, strength float64) Mode {
	if shouldCatchStep(ctx, s.Step) {
		return NewCatching(ctx, s.Step)
	}

	if done(ctx, s.Step) {
		return kickOrPreStep(ctx, variant, side, strength, s.SupportSide().Opposite(), ZeroStep)
	}

	return s
}

func (s *Stopping) Tick(ctx *Context) {
	s.Step.Tick(ctx)
}

func (s *Stopping) ComputeCommands(ctx *Context) joints.MotorCommands {
	st := ctx.Parameters.Stiffnesses
	feet := s.Step.ComputeFeet(ctx)
	return s.Step.ComputeJoints(ctx, feet).ApplyStiffness(st.LegStiffnessStand, st.ArmStiffness)
}

func (s *Stopping) SupportSide() Side {
	return s.Step.Plan.SupportSide
}

// SafeExit is true once the feet are together.
func (s *Stopping) SafeExit(ctx *Context) bool {
	return done(ctx, s.Step)
}

func (s *Stopping) String() string {
	return fmt.Sprintf("Stopping{support=%s}", s.SupportSide())
}
