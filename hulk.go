// Package hulk runs the robot: a set of components which are ticked, in
// order, once per control cycle, and which talk to each other through a
// shared State.
package hulk

import (
	"time"

	"github.com/pkg/errors"

	"github.com/paudar/hulk/joints"
	"github.com/paudar/hulk/walking"
)

// State is everything the components of the robot share. Components earlier
// in the tick order fill in what later ones read.
type State struct {

	// What the robot should be doing, set by the controller.
	Request walking.Request
	Arms    walking.ArmMotions

	// Components can set this to true to indicate that the robot should shut
	// down. The locomotion stands still first, and SafeExit says when it's
	// done.
	Shutdown bool

	// Measurements, set by the feedback components. MeasuredJoints and
	// Currents are nil until the first read.
	Sensors        walking.Sensors
	MeasuredJoints *joints.Body
	Currents       *joints.Body

	// The outcome of the cycle, set by the locomotion.
	Command  joints.MotorCommands
	Mode     string
	SafeExit bool
	Support  walking.Side
	Step     walking.Step
}

type Component interface {
	Boot() error
	Tick(now time.Time, state *State) error
}

type Robot struct {
	Components []Component
	State      State
}

// NewRobot creates a robot with no components, standing still.
func NewRobot() *Robot {
	return &Robot{
		Components: []Component{},
		State: State{
			Request: walking.StandRequest(),
		},
	}
}

// Add registers a component to receive ticks every frame.
func (r *Robot) Add(c Component) {
	r.Components = append(r.Components, c)
}

// Boot calls Boot on each component.
func (r *Robot) Boot() error {
	for _, c := range r.Components {
		err := c.Boot()
		if err != nil {
			return errors.Wrapf(err, "while booting %T", c)
		}
	}

	return nil
}

// Tick calls Tick on each component. The first error stops the tick, since
// later components depend on the earlier ones.
func (r *Robot) Tick(now time.Time) error {
	for _, c := range r.Components {
		err := c.Tick(now, &r.State)
		if err != nil {
			return errors.Wrapf(err, "while ticking %T", c)
		}
	}

	return nil
}
