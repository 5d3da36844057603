package walking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// finish moves the step of a mode to its end, so it has switched support if
// the swing foot is loaded.
func finish(s *StepState) {
	s.TimeSinceStart = s.Plan.Duration
}

// expire moves the step of a mode past its timeout.
func expire(ctx *Context, s *StepState) {
	s.TimeSinceStart = ctx.Parameters.StepTimeout.Duration + ctx.Cycle.LastCycleDuration
}

func TestWalkingWalkOnSwitch(t *testing.T) {
	ctx := loaded(testContext())
	ctx.Parameters.MaxForwardAcceleration = 0.1

	w := NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep)
	finish(&w.Step)

	next, ok := w.Walk(ctx, Step{Forward: 0.3}).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Right, next.SupportSide())
	assert.InDelta(t, 0.1, next.RequestedStep.Forward, 1e-12)
	assert.InDelta(t, 0.1, next.Step.Plan.Step.Forward, 1e-12)
}

func TestWalkingWalkUnchanged(t *testing.T) {
	ctx := loaded(testContext())
	w := NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep)

	assert.Same(t, w, w.Walk(ctx, Step{Forward: 0.3}))
	assert.Same(t, w, w.Stand(ctx))
	assert.Same(t, w, w.Kick(ctx, KickForward, Right, 1))
}

func TestWalkingCatch(t *testing.T) {
	ctx := falling(testContext())
	w := NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep)

	for i, m := range []Mode{
		w.Stand(ctx),
		w.Walk(ctx, Step{Forward: 0.1}),
		w.Kick(ctx, KickForward, Right, 1),
	} {
		c, ok := m.(*Catching)
		require.True(t, ok, "example %d", i)
		assert.Equal(t, Left, c.SupportSide(), "example %d", i)
	}
}

func TestWalkingCatchBeforeTimeout(t *testing.T) {
	ctx := falling(testContext())
	w := NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep)
	expire(ctx, &w.Step)

	_, ok := w.Walk(ctx, Step{Forward: 0.1}).(*Catching)
	assert.True(t, ok)
}

func TestWalkingTimeout(t *testing.T) {
	ctx := testContext()
	history := Step{Forward: 0.05, Turn: 0.1}
	w := NewWalkingWithStep(NewStepState(NewStepPlan(ctx, history, Left)), history)
	expire(ctx, &w.Step)

	for i, m := range []Mode{
		w.Walk(ctx, Step{Forward: 0.1}),
		w.Kick(ctx, KickForward, Right, 1),
	} {
		next, ok := m.(*Walking)
		require.True(t, ok, "example %d", i)
		assert.Equal(t, Right, next.SupportSide(), "example %d", i)
		assert.Equal(t, ZeroStep, next.Step.Plan.Step, "example %d", i)

		// forward stops with the zero step, turn only slows down
		assert.InDelta(t, 0, next.RequestedStep.Forward, 1e-12, "example %d", i)
		assert.InDelta(t, 0.05, next.RequestedStep.Turn, 1e-12, "example %d", i)
	}
}

// The step after an inserted zero step must accelerate from zero, not from the
// speed before it.
func TestZeroStepKeepsAccelerationBound(t *testing.T) {
	p := DefaultParameters()
	history := Step{Forward: 0.05, Turn: 0.3}

	timeout := func() *Walking {
		ctx := testContext()
		w := NewWalkingWithStep(NewStepState(NewStepPlan(ctx, history, Left)), history)
		expire(ctx, &w.Step)
		m, _ := w.Walk(ctx, history).(*Walking)
		return m
	}

	preStep := func() *Walking {
		ctx := loaded(testContext())
		w := NewWalkingWithStep(NewStepState(NewStepPlan(ctx, history, Left)), history)
		finish(&w.Step)
		m, _ := w.Kick(ctx, KickForward, Left, 1).(*Walking)
		return m
	}

	for i, zero := range []*Walking{timeout(), preStep()} {
		require.NotNil(t, zero, "example %d", i)
		assert.Equal(t, ZeroStep, zero.Step.Plan.Step, "example %d", i)

		ctx := loaded(testContext())
		finish(&zero.Step)
		next, ok := zero.Walk(ctx, history).(*Walking)
		require.True(t, ok, "example %d", i)

		executed := next.Step.Plan.Step
		assert.LessOrEqual(t, executed.Forward, p.MaxForwardAcceleration+1e-12, "example %d", i)
		assert.InDelta(t, zero.RequestedStep.Turn, executed.Turn, p.MaxTurnAcceleration+1e-12, "example %d", i)
	}
}

func TestWalkingSwitchBeforeCatch(t *testing.T) {
	ctx := falling(loaded(testContext()))
	w := NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep)
	finish(&w.Step)
	require.True(t, shouldCatchStep(ctx, w.Step))

	next, ok := w.Walk(ctx, Step{Forward: 0.05}).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Right, next.SupportSide())

	s, ok := w.Stand(ctx).(*Stopping)
	require.True(t, ok)
	assert.Equal(t, Right, s.SupportSide())

	k, ok := w.Kick(ctx, KickForward, Right, 1).(*Kicking)
	require.True(t, ok)
	assert.Equal(t, Right, k.SupportSide())

	pre, ok := w.Kick(ctx, KickForward, Left, 1).(*Walking)
	require.True(t, ok)
	assert.Equal(t, ZeroStep, pre.Step.Plan.Step)
}

func TestWalkingStand(t *testing.T) {
	ctx := loaded(testContext())
	w := NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep)
	finish(&w.Step)

	s, ok := w.Stand(ctx).(*Stopping)
	require.True(t, ok)
	assert.Equal(t, Right, s.SupportSide())

	// timeout without the swing foot ever landing
	ctx = testContext()
	w = NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep)
	expire(ctx, &w.Step)

	s, ok = w.Stand(ctx).(*Stopping)
	require.True(t, ok)
	assert.Equal(t, Right, s.SupportSide())
}

func TestWalkingKick(t *testing.T) {
	ctx := loaded(testContext())
	history := Step{Forward: 0.04}
	w := NewWalkingWithStep(zeroStep(ctx, Left), history)
	finish(&w.Step)

	// next support is right, so a kick from the left needs a pre-step
	pre, ok := w.Kick(ctx, KickForward, Left, 1).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Right, pre.SupportSide())
	assert.Equal(t, ZeroStep, pre.Step.Plan.Step)
	assert.Equal(t, ZeroStep, pre.RequestedStep)

	k, ok := w.Kick(ctx, KickTurn, Right, 0.5).(*Kicking)
	require.True(t, ok)
	assert.Equal(t, Right, k.SupportSide())
	assert.Equal(t, KickTurn, k.State.Variant)
	assert.Equal(t, 0.5, k.State.Strength)

	// the pre-step lines up the kick
	finish(&pre.Step)
	_, ok = pre.Kick(ctx, KickForward, Left, 1).(*Kicking)
	assert.True(t, ok)
}

func TestKickingTransitions(t *testing.T) {
	ctx := loaded(testContext())

	kicking := func() *Kicking {
		return NewKicking(ctx, NewKickState(ctx, KickForward, Left, 1))
	}

	k := kicking()
	assert.Same(t, k, k.Stand(ctx))

	k = kicking()
	finish(&k.State.Step)
	w, ok := k.Stand(ctx).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Right, w.SupportSide())
	assert.Equal(t, ZeroStep, w.Step.Plan.Step)

	w, ok = k.Walk(ctx, Step{Forward: 0.3}).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Right, w.SupportSide())
	assert.InDelta(t, ctx.Parameters.MaxForwardAcceleration, w.RequestedStep.Forward, 1e-12)

	// chain a kick on the right foot
	next, ok := k.Kick(ctx, KickForward, Right, 1).(*Kicking)
	require.True(t, ok)
	assert.Equal(t, Right, next.SupportSide())

	_, ok = k.Kick(ctx, KickForward, Left, 1).(*Walking)
	assert.True(t, ok)

	ctx = testContext()
	k = kicking()
	expire(ctx, &k.State.Step)
	w, ok = k.Kick(ctx, KickForward, Left, 1).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Right, w.SupportSide())

	k = kicking()
	_, ok = k.Walk(falling(ctx), ZeroStep).(*Catching)
	assert.True(t, ok)
}

func TestKickingTurnSlowsDown(t *testing.T) {
	ctx := loaded(testContext())
	ctx.Parameters.Kick.Turn.BaseStep = Step{Forward: 0.02, Turn: 0.4}

	k := NewKicking(ctx, NewKickState(ctx, KickTurn, Left, 1))
	finish(&k.State.Step)

	kicked := k.State.Step.Plan.Step.Turn
	bound := TurnAcceleration(ctx.Parameters, k.State.Step.Plan.Step)

	w, ok := k.Stand(ctx).(*Walking)
	require.True(t, ok)
	assert.InDelta(t, kicked, w.RequestedStep.Turn, bound+1e-12)
	assert.NotEqual(t, 0.0, w.RequestedStep.Turn)
}

func TestCatchingRecovers(t *testing.T) {
	ctx := falling(loaded(testContext()))
	w := NewWalkingWithStep(NewStepState(NewStepPlan(ctx, Step{Forward: 0.05}, Left)), Step{Forward: 0.05})

	c, ok := w.Walk(ctx, Step{Forward: 0.05}).(*Catching)
	require.True(t, ok)
	assert.Same(t, c, c.Walk(ctx, Step{Forward: 0.05}))

	// the swing foot is aimed towards the capture point
	assert.True(t, c.Step.Plan.EndFeet.Swing.Position.X > w.Step.Plan.EndFeet.Swing.Position.X)

	// still falling after the step: catch again with the other foot
	finish(&c.Step)
	again, ok := c.Stand(ctx).(*Catching)
	require.True(t, ok)
	assert.Equal(t, Right, again.SupportSide())

	// recovered: back to walking on the spot, slowed down from the old speed
	ctx.Sensors.CenterOfMassVelocity.X = 0
	next, ok := c.Walk(ctx, Step{Forward: 0.05}).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Right, next.SupportSide())
	assert.Equal(t, ZeroStep, next.RequestedStep)
	assert.Equal(t, ZeroStep, next.Step.Plan.Step)
}

func TestCatchingContinuous(t *testing.T) {
	ctx := falling(testContext())
	w := NewWalkingWithStep(NewStepState(NewStepPlan(ctx, Step{Forward: 0.05}, Left)), Step{Forward: 0.05})
	w.Step.TimeSinceStart = w.Step.Plan.Duration / 3

	before := w.Step.ComputeFeet(ctx)
	c := NewCatching(ctx, w.Step)
	after := c.Step.ComputeFeet(ctx)

	assertPoseInDelta(t, before.Support, after.Support, "support")
	assertPoseInDelta(t, before.Swing, after.Swing, "swing")
}

func TestStoppingStandIdempotent(t *testing.T) {
	ctx := loaded(testContext())
	s := NewStopping(ctx, Right)

	assert.Same(t, s, s.Stand(ctx))
	assert.False(t, s.SafeExit(ctx))

	finish(&s.Step)
	before := *s
	assert.Same(t, s, s.Stand(ctx))
	assert.Same(t, s, s.Stand(ctx))
	assert.Equal(t, before, *s)
	assert.True(t, s.SafeExit(ctx))
}

func TestStoppingTransitions(t *testing.T) {
	ctx := loaded(testContext())
	s := NewStopping(ctx, Right)

	// closing step still in flight
	assert.Same(t, s, s.Walk(ctx, Step{Forward: 0.1}))
	assert.Same(t, s, s.Kick(ctx, KickForward, Left, 1))

	finish(&s.Step)
	w, ok := s.Walk(ctx, Step{Forward: 0.1}).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Left, w.SupportSide())
	assert.InDelta(t, ctx.Parameters.MaxForwardAcceleration, w.RequestedStep.Forward, 1e-12)

	k, ok := s.Kick(ctx, KickForward, Left, 1).(*Kicking)
	require.True(t, ok)
	assert.Equal(t, Left, k.SupportSide())

	pre, ok := s.Kick(ctx, KickForward, Right, 1).(*Walking)
	require.True(t, ok)
	assert.Equal(t, Left, pre.SupportSide())

	_, ok = s.Stand(falling(ctx)).(*Catching)
	assert.True(t, ok)
}

func TestStiffness(t *testing.T) {
	ctx := testContext()
	st := ctx.Parameters.Stiffnesses

	w := NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep)
	c := w.ComputeCommands(ctx)
	assert.Equal(t, st.LegStiffnessWalk, c.Stiffnesses.LeftLeg.KneePitch)
	assert.Equal(t, st.ArmStiffness, c.Stiffnesses.RightArm.ElbowRoll)

	s := NewStopping(ctx, Left)
	c = s.ComputeCommands(ctx)
	assert.Equal(t, st.LegStiffnessStand, c.Stiffnesses.RightLeg.HipPitch)
	assert.Equal(t, st.ArmStiffness, c.Stiffnesses.LeftArm.ShoulderPitch)
}
