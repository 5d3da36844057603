package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paudar/hulk/joints"
	"github.com/paudar/hulk/math3d"
)

func TestForwardLegStraight(t *testing.T) {
	d := DefaultDimensions
	hip := d.Hip(true)

	p := ForwardLeg(d, hip, joints.Leg{})
	exp := math3d.Vector3{X: 0, Y: d.HipOffsetY, Z: -d.HipOffsetZ - d.ThighLength - d.TibiaLength - d.FootHeight}
	assert.InDelta(t, 0, p.Position.Distance(exp), 1e-12)
}

func TestInverseForwardRoundTrip(t *testing.T) {
	type eg struct {
		left bool
		sole math3d.Pose
	}

	d := DefaultDimensions

	examples := []eg{
		{true, math3d.MakePose(0, 0.05, -0.31, 0)},
		{false, math3d.MakePose(0, -0.05, -0.31, 0)},
		{true, math3d.MakePose(0.04, 0.07, -0.30, 0.2)},
		{false, math3d.MakePose(-0.03, -0.02, -0.29, -0.25)},
		{true, math3d.MakePose(0.06, 0.03, -0.32, 0.1)},
		{false, math3d.MakePose(0.01, -0.08, -0.27, 0.3)},
	}

	for i, x := range examples {
		hip := d.Hip(x.left)
		leg := InverseLeg(d, hip, x.sole)
		act := ForwardLeg(d, hip, leg)

		if act.Position.Distance(x.sole.Position) > 1e-6 {
			t.Errorf("Example #%d: got %s, expected: %s", i+1, act, x.sole)
		}

		assert.InDelta(t, x.sole.Yaw, act.Yaw, 1e-9, "example %d", i+1)

		// A flat sole means the pitch joints cancel out.
		assert.InDelta(t, 0, leg.HipPitch+leg.KneePitch+leg.AnklePitch, 1e-9)
		assert.InDelta(t, 0, leg.HipRoll+leg.AnkleRoll, 1e-9)
		assert.True(t, leg.KneePitch >= 0, "knee must not bend backwards")
	}
}

func TestInverseLegOutOfReach(t *testing.T) {
	d := DefaultDimensions
	hip := d.Hip(true)

	far := math3d.MakePose(0, d.HipOffsetY, -1.0, 0)
	leg := InverseLeg(d, hip, far)
	for _, a := range []float64{leg.HipYaw, leg.HipRoll, leg.HipPitch, leg.KneePitch, leg.AnklePitch, leg.AnkleRoll} {
		assert.False(t, math.IsNaN(a))
	}

	// The sole ends up straight below the hip, as far down as the leg goes.
	act := ForwardLeg(d, hip, leg)
	assert.InDelta(t, 0, act.Position.X, 1e-9)
	assert.InDelta(t, d.HipOffsetY, act.Position.Y, 1e-9)
	assert.True(t, act.Position.Z > far.Position.Z)

	// The same for a target inside the hip.
	near := math3d.MakePose(0, d.HipOffsetY, -d.HipOffsetZ-d.FootHeight, 0)
	leg = InverseLeg(d, hip, near)
	assert.False(t, math.IsNaN(leg.KneePitch))
}

func TestInverseLegContinuous(t *testing.T) {
	d := DefaultDimensions
	hip := d.Hip(false)

	prev := InverseLeg(d, hip, math3d.MakePose(-0.05, -0.05, -0.30, 0))
	for x := -0.05; x <= 0.05; x += 0.001 {
		leg := InverseLeg(d, hip, math3d.MakePose(x, -0.05, -0.30, 0))
		assert.InDelta(t, prev.HipPitch, leg.HipPitch, 0.05)
		assert.InDelta(t, prev.KneePitch, leg.KneePitch, 0.05)
		prev = leg
	}
}

func TestLegAngles(t *testing.T) {
	d := DefaultDimensions
	l, r := LegAngles(d, math3d.MakePose(0, 0.05, -0.3, 0), math3d.MakePose(0, -0.05, -0.3, 0))

	// Symmetric stance gives mirrored rolls and identical pitches.
	assert.InDelta(t, l.HipPitch, r.HipPitch, 1e-12)
	assert.InDelta(t, l.KneePitch, r.KneePitch, 1e-12)
	assert.InDelta(t, 0, l.HipRoll, 1e-12)
	assert.InDelta(t, 0, r.HipRoll, 1e-12)
}

func TestSegmentChain(t *testing.T) {
	root := MakeRootSegment(math3d.Vector3{X: 1, Y: 0, Z: 0})
	a := MakeSegment("a", root, math3d.MakeSingularEulerAngle(math3d.RotationYaw, math.Pi/2), math3d.Vector3{X: 1, Y: 0, Z: 0})

	assert.InDelta(t, 0, a.Start().Distance(math3d.Vector3{X: 1, Y: 0, Z: 0}), 1e-12)
	assert.InDelta(t, 0, a.End().Distance(math3d.Vector3{X: 1, Y: 1, Z: 0}), 1e-12)
	assert.Equal(t, a, root.Child)
}
