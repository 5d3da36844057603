// Package locomotion is the component which runs the walking engine once per
// tick, and sends its motor commands to the servos.
package locomotion

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk"
	"github.com/paudar/hulk/energy"
	"github.com/paudar/hulk/joints"
	"github.com/paudar/hulk/kinematics"
	"github.com/paudar/hulk/walking"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "locomotion",
})

// Writer is where the motor commands go. *servos.Pool is one.
type Writer interface {
	Write(ctx context.Context, c joints.MotorCommands) error
}

type Locomotion struct {
	cfg    Config
	writer Writer

	engine    *walking.Engine
	minimizer energy.CurrentMinimizer

	// The leg angles sent last cycle. The feet are assumed to be where they
	// were told to go; the servos are too slow to read back every cycle.
	last *joints.Body
	then time.Time
	mode string
}

func New(cfg Config, w Writer) *Locomotion {
	return &Locomotion{
		cfg:    cfg,
		writer: w,
	}
}

func (l *Locomotion) Boot() error {
	return nil
}

// Tick runs one cycle of the walking engine.
func (l *Locomotion) Tick(now time.Time, state *hulk.State) error {
	ctx := l.context(now, state)

	if l.engine == nil {
		l.engine = walking.NewEngine(ctx)
		log.Infof("engine started in %s", l.engine.Mode())
	}

	req := state.Request
	if state.Shutdown {
		req = walking.StandRequest()
	}

	out := l.engine.Cycle(ctx, req)

	if out.Mode != l.mode {
		log.Infof("mode=%s", out.Mode)
		l.mode = out.Mode
	}

	// Only fiddle with the joints while standing with the feet together.
	if out.Mode == "stopping" && out.SafeExit && state.Currents != nil {
		out.Commands.Positions = l.minimizer.Optimize(*state.Currents, out.Commands.Positions, ctx.Cycle.LastCycleDuration, l.cfg.Energy)
	} else {
		l.minimizer.Reset()
	}

	state.Command = out.Commands
	state.Mode = out.Mode
	state.SafeExit = out.SafeExit
	state.Support = out.SupportSide
	state.Step = out.RequestedStep

	positions := out.Commands.Positions
	l.last = &positions
	l.then = now

	if err := l.writer.Write(context.Background(), out.Commands); err != nil {
		return errors.Wrap(err, "while writing motor commands")
	}

	return nil
}

// context builds the walking context for this cycle from the shared state.
func (l *Locomotion) context(now time.Time, state *hulk.State) *walking.Context {
	dt := l.cfg.CycleTime.Duration
	if !l.then.IsZero() {
		dt = now.Sub(l.then)
	}

	p := &l.cfg.Walking

	return &walking.Context{
		Parameters: p,
		Cycle: walking.CycleTime{
			Now:               now,
			LastCycleDuration: dt,
		},
		Sensors:     state.Sensors,
		CurrentFeet: l.currentFeet(p, state),
		Arms:        state.Arms,
	}
}

// currentFeet works out where the soles are from the legs. Before anything
// has been commanded, the measured angles are used, if there are any.
func (l *Locomotion) currentFeet(p *walking.Parameters, state *hulk.State) walking.FootPoses {
	body := l.last
	if body == nil {
		body = state.MeasuredJoints
	}

	if body == nil {
		return walking.NeutralFootPoses(p)
	}

	d := p.Dimensions
	return walking.FootPoses{
		Left:  kinematics.ForwardLeg(d, d.Hip(true), body.LeftLeg),
		Right: kinematics.ForwardLeg(d, d.Hip(false), body.RightLeg),
	}
}
