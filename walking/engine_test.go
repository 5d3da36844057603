package walking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineStartsStanding(t *testing.T) {
	ctx := testContext()
	e := NewEngine(ctx)

	w, ok := e.Mode().(*Walking)
	require.True(t, ok)
	assert.Equal(t, Left, w.SupportSide())
	assert.Equal(t, ZeroStep, w.RequestedStep)
}

func TestEngineSupportAlternates(t *testing.T) {
	ctx := loaded(testContext())
	e := NewEngine(ctx)

	sides := []Side{}
	for i := 0; i < 300; i++ {
		out := e.Cycle(ctx, WalkRequest(Step{Forward: 0.05}))
		require.Equal(t, "walking", out.Mode)

		if len(sides) == 0 || sides[len(sides)-1] != out.SupportSide {
			sides = append(sides, out.SupportSide)
		}
	}

	require.True(t, len(sides) > 5)
	for i := 1; i < len(sides); i++ {
		assert.Equal(t, sides[i-1].Opposite(), sides[i])
	}

	// accelerated up to the request
	out := e.Cycle(ctx, WalkRequest(Step{Forward: 0.05}))
	assert.InDelta(t, 0.05, out.RequestedStep.Forward, 1e-9)
}

func TestEngineStops(t *testing.T) {
	ctx := loaded(testContext())
	e := NewEngine(ctx)

	var out Output
	for i := 0; i < 100; i++ {
		out = e.Cycle(ctx, StandRequest())
	}

	assert.Equal(t, "stopping", out.Mode)
	assert.True(t, out.SafeExit)
	assert.Equal(t, ctx.Parameters.Stiffnesses.LegStiffnessStand, out.Commands.Stiffnesses.LeftLeg.AnklePitch)

	// and again, with the feet together
	for i := 0; i < 10; i++ {
		assert.Equal(t, out, e.Cycle(ctx, StandRequest()))
	}
}

func TestEngineKick(t *testing.T) {
	ctx := loaded(testContext())
	e := NewEngine(ctx)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		out := e.Cycle(ctx, KickRequest(KickForward, Left, 1))
		seen[out.Mode] = true
	}

	assert.True(t, seen["kicking"])
	assert.False(t, seen["catching"])
}

func TestEngineCatch(t *testing.T) {
	ctx := falling(testContext())
	e := NewEngine(ctx)

	out := e.Cycle(ctx, WalkRequest(Step{Forward: 0.05}))
	assert.Equal(t, "catching", out.Mode)
	assert.False(t, out.SafeExit)
}

func TestRequestString(t *testing.T) {
	assert.Equal(t, "stand", StandRequest().String())
	assert.Equal(t, "kick forward side=left strength=1.00", KickRequest(KickForward, Left, 1).String())
}
