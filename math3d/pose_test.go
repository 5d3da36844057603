package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	type eg struct {
		recv Pose
		arg  Pose
		out  Pose
	}

	q := math.Pi / 2

	examples := []eg{
		{
			recv: Pose{Vector3{+0, +0, +0}, 0},
			arg:  Pose{Vector3{+0, +0, +0}, 0},
			out:  Pose{Vector3{+0, +0, +0}, 0},
		},
		{
			recv: Pose{Vector3{+0, +0, +0}, q},
			arg:  Pose{Vector3{+1, +0, +0}, 0},
			out:  Pose{Vector3{+0, +1, +0}, q},
		},
		{
			recv: Pose{Vector3{+0, +0, +0}, 2 * q},
			arg:  Pose{Vector3{+1, +0, +0}, 0},
			out:  Pose{Vector3{-1, +0, +0}, 2 * q},
		},
		{
			recv: Pose{Vector3{+9, +9, +1}, q},
			arg:  Pose{Vector3{+1, +0, +0}, q},
			out:  Pose{Vector3{+9, +10, +1}, 2 * q},
		},
	}

	for i, x := range examples {
		act := x.recv.Add(x.arg)
		assert.InDelta(t, x.out.Position.X, act.Position.X, 0.01, "example %d:X", i+1)
		assert.InDelta(t, x.out.Position.Y, act.Position.Y, 0.01, "example %d:Y", i+1)
		assert.InDelta(t, x.out.Position.Z, act.Position.Z, 0.01, "example %d:Z", i+1)
		assert.InDelta(t, x.out.Yaw, act.Yaw, 0.01, "example %d:Yaw", i+1)
	}
}

func TestOut(t *testing.T) {
	p := Pose{Vector3{+1, +2, +0}, math.Pi / 2}
	pp := Pose{Vector3{+4, +0, +3}, 0.25}

	local := p.Out(pp)
	assert.InDelta(t, -2.0, local.Position.X, 1e-9)
	assert.InDelta(t, -3.0, local.Position.Y, 1e-9)
	assert.InDelta(t, 3.0, local.Position.Z, 1e-9)
	assert.InDelta(t, 0.25-math.Pi/2, local.Yaw, 1e-9)

	// Round trip.
	back := p.Add(local)
	assert.InDelta(t, pp.Position.X, back.Position.X, 1e-9)
	assert.InDelta(t, pp.Position.Y, back.Position.Y, 1e-9)
	assert.InDelta(t, pp.Yaw, back.Yaw, 1e-9)
}

func TestPoseLerp(t *testing.T) {
	a := MakePose(0, 0.05, -0.23, 0)
	b := MakePose(0.04, 0.05, -0.23, 0.2)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))

	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 0.02, mid.Position.X, 1e-12)
	assert.InDelta(t, 0.1, mid.Yaw, 1e-12)
}
