package walking

import (
	"time"

	"github.com/paudar/hulk/joints"
	"github.com/paudar/hulk/kinematics"
)

// StepState is a step in progress.
type StepState struct {
	Plan           StepPlan
	TimeSinceStart time.Duration
}

func NewStepState(plan StepPlan) StepState {
	return StepState{Plan: plan}
}

// Tick advances the step by the duration of the last cycle.
func (s *StepState) Tick(ctx *Context) {
	s.TimeSinceStart += ctx.Cycle.LastCycleDuration
}

// Phase is the normalized progress through the planned duration, from 0 to 1.
func (s StepState) Phase() float64 {
	if s.Plan.Duration <= 0 {
		return 1
	}

	t := s.TimeSinceStart.Seconds() / s.Plan.Duration.Seconds()
	if t > 1 {
		return 1
	}

	return t
}

// IsSupportSwitched returns true once the swing foot has been put down: late
// enough in the step, and carrying weight.
func (s StepState) IsSupportSwitched(ctx *Context) bool {
	p := ctx.Parameters
	swingSide := s.Plan.SupportSide.Opposite()

	return s.Phase() >= p.MinimumStepDurationRatio &&
		ctx.Sensors.Pressure(swingSide) > p.SwingFootPressureThreshold
}

// IsTimeouted returns true once the step has lasted longer than any step
// should, whether or not the support switched.
func (s StepState) IsTimeouted(p *Parameters) bool {
	return s.TimeSinceStart > p.StepTimeout.Duration
}

// ComputeFeet returns the sole poses at the current phase. The support foot
// moves linearly under the body; the swing foot follows the swing curve.
func (s StepState) ComputeFeet(ctx *Context) Feet {
	t := s.Phase()
	start := s.Plan.StartFeet
	end := s.Plan.EndFeet

	swing := start.Swing.Lerp(end.Swing, swingProgress(t))
	swing.Position.Z += s.Plan.SwingHeight * swingLift(t)

	return Feet{
		Support: start.Support.Lerp(end.Support, t),
		Swing:   swing,
	}
}

// ComputeJoints converts sole poses into joint angles for the whole body.
func (s StepState) ComputeJoints(ctx *Context, feet Feet) joints.Body {
	return computeJoints(ctx, feet, s.Plan.SupportSide)
}

func computeJoints(ctx *Context, feet Feet, supportSide Side) joints.Body {
	p := ctx.Parameters
	poses := feet.Poses(supportSide)

	left, right := kinematics.LegAngles(p.Dimensions, poses.Left, poses.Right)

	// Counter torso rotation on the support ankle only; the swing foot is in
	// the air and can't push.
	pitch := p.GyroBalance.AnklePitchGain * ctx.Sensors.Gyro.Y
	roll := p.GyroBalance.AnkleRollGain * ctx.Sensors.Gyro.X
	if supportSide == Left {
		left.AnklePitch += pitch
		left.AnkleRoll += roll
	} else {
		right.AnklePitch += pitch
		right.AnkleRoll += roll
	}

	return joints.Body{
		LeftArm:  computeArm(ctx, ctx.Arms.Left, Left, poses),
		RightArm: computeArm(ctx, ctx.Arms.Right, Right, poses),
		LeftLeg:  left,
		RightLeg: right,
	}
}
