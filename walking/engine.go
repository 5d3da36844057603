// Package walking is the gait core of the robot: a small state machine which,
// once per control cycle, turns a stand/walk/kick request and the sensor
// readings into joint targets for every motor.
//
// Everything the engine looks at is passed in through a Context, which is
// built fresh every cycle. Nothing in here blocks or talks to hardware.
package walking

import (
	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk/joints"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "walking",
})

// Output is the result of one cycle.
type Output struct {
	Commands joints.MotorCommands

	// SafeExit is true when the engine could be switched off without the
	// robot falling over.
	SafeExit bool

	Mode          string
	SupportSide   Side
	RequestedStep Step
}

// Engine owns the current mode. It is not safe for concurrent use; it is
// meant to be driven by a single control loop.
type Engine struct {
	mode Mode
}

// NewEngine starts standing on the left foot, with a zero step in flight.
func NewEngine(ctx *Context) *Engine {
	return &Engine{
		mode: NewWalkingWithStep(zeroStep(ctx, Left), ZeroStep),
	}
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// Cycle applies the request to the current mode, advances the new mode by one
// cycle and computes its motor commands.
func (e *Engine) Cycle(ctx *Context, r Request) Output {
	prev := e.mode
	e.mode = r.Apply(ctx, prev)

	if e.mode != prev {
		log.WithFields(logrus.Fields{
			"request": r,
			"support": e.mode.SupportSide(),
		}).Debugf("%s -> %s", prev, e.mode)

		if modeName(prev) != modeName(e.mode) {
			log.Infof("mode changed: %s -> %s", modeName(prev), modeName(e.mode))
		}
	}

	e.mode.Tick(ctx)

	out := Output{
		Commands:    e.mode.ComputeCommands(ctx),
		SafeExit:    e.mode.SafeExit(ctx),
		Mode:        modeName(e.mode),
		SupportSide: e.mode.SupportSide(),
	}

	if w, ok := e.mode.(*Walking); ok {
		out.RequestedStep = w.RequestedStep
	}

	return out
}

func modeName(m Mode) string {
	switch m.(type) {
	case *Walking:
		return "walking"
	case *Catching:
		return "catching"
	case *Kicking:
		return "kicking"
	case *Stopping:
		return "stopping"
	default:
		return "unknown"
	}
}
