package walking

import (
	"math"

	"github.com/paudar/hulk/math3d"
	"github.com/paudar/hulk/utils"
)

// CapturePoint is where the robot would have to step to come to rest, on the
// ground plane. Only X and Y are meaningful.
func CapturePoint(ctx *Context) math3d.Vector3 {
	s := ctx.Sensors
	cp := s.CenterOfMass.Add(s.CenterOfMassVelocity.MultiplyByScalar(ctx.Parameters.Catching.CapturePointGain))
	cp.Z = 0
	return cp
}

// supportRegion is an axis-aligned box on the ground plane.
type supportRegion struct {
	minX, maxX float64
	minY, maxY float64
}

func (r supportRegion) contains(v math3d.Vector3) bool {
	return v.X >= r.minX && v.X <= r.maxX && v.Y >= r.minY && v.Y <= r.maxY
}

func (r supportRegion) center() math3d.Vector3 {
	return math3d.Vector3{X: (r.minX + r.maxX) / 2, Y: (r.minY + r.maxY) / 2}
}

// makeSupportRegion bounds the outlines of both soles, grown by the margin.
func makeSupportRegion(p CatchingParameters, feet Feet) supportRegion {
	r := supportRegion{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
	}

	hl := p.FootLength / 2
	hw := p.FootWidth / 2

	for _, sole := range []math3d.Pose{feet.Support, feet.Swing} {
		for _, c := range [][2]float64{{hl, hw}, {hl, -hw}, {-hl, hw}, {-hl, -hw}} {
			v := sole.Add(math3d.MakePose(c[0], c[1], 0, 0)).Position
			r.minX = math.Min(r.minX, v.X)
			r.maxX = math.Max(r.maxX, v.X)
			r.minY = math.Min(r.minY, v.Y)
			r.maxY = math.Max(r.maxY, v.Y)
		}
	}

	r.minX -= p.Margin
	r.maxX += p.Margin
	r.minY -= p.Margin
	r.maxY += p.Margin

	return r
}

// ShouldCatch returns true if the capture point lies outside of the region
// which will be supported once the step ends.
func ShouldCatch(ctx *Context, endFeet Feet, supportSide Side) bool {
	p := ctx.Parameters.Catching
	if !p.Enabled {
		return false
	}

	return !makeSupportRegion(p, endFeet).contains(CapturePoint(ctx))
}

// catchingPlan re-plans the step in flight: it starts wherever the feet are
// now, and the swing foot is aimed towards the capture point.
func catchingPlan(ctx *Context, step StepState) StepPlan {
	p := ctx.Parameters
	current := step.ComputeFeet(ctx)
	end := step.Plan.EndFeet

	offset := CapturePoint(ctx).Subtract(makeSupportRegion(p.Catching, end).center())
	end.Swing.Position.X += utils.Clamp(offset.X, -p.Catching.MaxAdjustment, p.Catching.MaxAdjustment)
	end.Swing.Position.Y += utils.Clamp(offset.Y, -p.Catching.MaxAdjustment, p.Catching.MaxAdjustment)

	duration := step.Plan.Duration - step.TimeSinceStart
	if shortest := p.BaseStepDuration.Duration / 2; duration < shortest {
		duration = shortest
	}

	return StepPlan{
		Step:        step.Plan.Step,
		SupportSide: step.Plan.SupportSide,
		StartFeet:   current,
		EndFeet:     end,
		Duration:    duration,
		SwingHeight: step.Plan.SwingHeight,
	}
}
