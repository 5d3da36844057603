package walking

import (
	"math"
	"time"
)

// StepPlan is everything decided at the start of a step. It is never changed
// afterwards; a different plan means a different step.
type StepPlan struct {
	Step        Step
	SupportSide Side
	StartFeet   Feet
	EndFeet     Feet
	Duration    time.Duration
	SwingHeight float64
}

// NewStepPlan plans a step from the current feet to the end position of the
// given step, standing on supportSide.
func NewStepPlan(ctx *Context, step Step, supportSide Side) StepPlan {
	p := ctx.Parameters

	// Lateral steps are only taken with the foot on that side, since the
	// other foot would have to cross the support foot. The following step
	// brings the feet back together.
	if step.Left*supportSide.sign() > 0 {
		step.Left = 0
	}

	seconds := p.BaseStepDuration.Seconds() + step.abs().dot(p.StepDurationIncrease)

	return StepPlan{
		Step:        step,
		SupportSide: supportSide,
		StartFeet:   FeetFromPoses(ctx.CurrentFeet, supportSide),
		EndFeet:     endFeet(p, step, supportSide),
		Duration:    time.Duration(seconds * float64(time.Second)),
		SwingHeight: p.Swing.BaseHeight + p.Swing.HeightIncrease*math.Abs(step.Forward),
	}
}
