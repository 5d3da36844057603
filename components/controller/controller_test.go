package controller

import (
	"bytes"
	"testing"
	"time"

	"github.com/adammck/sixaxis"
	"github.com/stretchr/testify/assert"

	"github.com/paudar/hulk"
	"github.com/paudar/hulk/walking"
)

type fakePad struct {
	pad Pad
}

func (f *fakePad) Pad() Pad {
	return f.pad
}

func TestLatch(t *testing.T) {
	l := Latch{}
	assert.False(t, l.Run(false))
	assert.True(t, l.Run(true))
	assert.False(t, l.Run(true))
	assert.False(t, l.Run(false))
	assert.True(t, l.Run(true))
}

func TestRequests(t *testing.T) {
	type eg struct {
		pad Pad
		exp walking.Request
	}

	examples := []eg{
		{Pad{}, walking.StandRequest()},
		{Pad{LeftStickX: 0.05, LeftStickY: -0.05}, walking.StandRequest()},
		{Pad{LeftStickY: 1}, walking.WalkRequest(walking.Step{Forward: maxForward})},
		{Pad{LeftStickX: -0.5}, walking.WalkRequest(walking.Step{Left: 0.5 * maxLeft})},
		{Pad{RightStickX: 1}, walking.WalkRequest(walking.Step{Turn: -maxTurn})},
		{Pad{LeftStickY: 1, Down: true}, walking.StandRequest()},
		{Pad{Left: true}, walking.KickRequest(walking.KickForward, walking.Left, 0.5)},
		{Pad{Right: true, L2: 1}, walking.KickRequest(walking.KickForward, walking.Right, 1)},
		{Pad{Right: true, Up: true}, walking.KickRequest(walking.KickTurn, walking.Right, 0.5)},
		{Pad{Left: true, LeftStickX: 1}, walking.KickRequest(walking.KickSide, walking.Left, 0.5)},
	}

	for i, x := range examples {
		state := &hulk.State{}
		c := New(&fakePad{x.pad})
		assert.NoError(t, c.Tick(time.Now(), state))
		assert.Equal(t, x.exp, state.Request, "example %d", i)
	}
}

func TestStartShutsDown(t *testing.T) {
	fp := &fakePad{}
	c := New(fp)
	state := &hulk.State{}

	c.Tick(time.Now(), state)
	assert.False(t, state.Shutdown)

	fp.pad.Start = true
	c.Tick(time.Now(), state)
	assert.True(t, state.Shutdown)
}

func TestTriangleTogglesArms(t *testing.T) {
	fp := &fakePad{}
	c := New(fp)
	state := &hulk.State{}

	fp.pad.Triangle = true
	c.Tick(time.Now(), state)
	assert.Equal(t, walking.PullTight, state.Arms.Left)
	assert.Equal(t, walking.PullTight, state.Arms.Right)

	// held, no change
	c.Tick(time.Now(), state)
	assert.Equal(t, walking.PullTight, state.Arms.Left)

	fp.pad.Triangle = false
	c.Tick(time.Now(), state)
	fp.pad.Triangle = true
	c.Tick(time.Now(), state)
	assert.Equal(t, walking.Swing, state.Arms.Left)
}

func TestSixaxisPad(t *testing.T) {
	sa := sixaxis.New(&bytes.Buffer{})
	sa.LeftStick.Y = -127
	sa.RightStick.X = 127
	sa.L2 = 102
	sa.Left = 40
	sa.Start = true

	p := padOf(sa)
	assert.InDelta(t, 1, p.LeftStickY, 1e-9)
	assert.InDelta(t, 0, p.LeftStickX, 1e-9)
	assert.InDelta(t, 1, p.RightStickX, 1e-9)
	assert.InDelta(t, 0.4, p.L2, 1e-9)
	assert.True(t, p.Left)
	assert.False(t, p.Right)
	assert.True(t, p.Start)
	assert.False(t, p.Triangle)

	// pushed up and left on the left stick walks forward and to the left
	state := &hulk.State{}
	sa.LeftStick.X = -127
	sa.Left = 0
	c := New(&Sixaxis{sa: sa})
	assert.NoError(t, c.Tick(time.Now(), state))
	assert.Equal(t, walking.RequestWalk, state.Request.Kind)
	assert.InDelta(t, maxForward, state.Request.Step.Forward, 1e-9)
	assert.InDelta(t, maxLeft, state.Request.Step.Left, 1e-9)
}
