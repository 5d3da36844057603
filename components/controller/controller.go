package controller

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk"
	"github.com/paudar/hulk/utils"
	"github.com/paudar/hulk/walking"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "controller",
})

const (

	// The step requested when a stick is pushed all the way, in meters per
	// step.
	maxForward = 0.05
	maxLeft    = 0.04

	// Stick positions closer to the center than this are ignored.
	deadZone = 0.1
)

// The turn requested with the right stick all the way over.
var maxTurn = utils.Rad(25)

// Pad is a snapshot of a gamepad. Sticks are -1 to +1 (up and right are
// positive), triggers 0 to 1.
type Pad struct {
	LeftStickX  float64
	LeftStickY  float64
	RightStickX float64

	Left  bool
	Right bool
	Down  bool
	Up    bool

	Triangle bool
	Start    bool

	L2 float64
}

// Gamepad is anything which can say which buttons are pressed.
type Gamepad interface {
	Pad() Pad
}

type Controller struct {
	gp Gamepad

	arms Latch
	shut Latch
}

func New(gp Gamepad) *Controller {
	return &Controller{gp: gp}
}

func (c *Controller) Boot() error {
	return nil
}

// Tick turns the pad into a request for the locomotion.
func (c *Controller) Tick(now time.Time, state *hulk.State) error {
	p := c.gp.Pad()

	// At any time, pressing start shuts down the robot.
	if c.shut.Run(p.Start) {
		log.Infof("pressed START, shutting down")
		state.Shutdown = true
	}

	// Triangle toggles the arms between swinging and held in, to get
	// through narrow gaps.
	if c.arms.Run(p.Triangle) {
		if state.Arms.Left == walking.Swing {
			state.Arms = walking.ArmMotions{Left: walking.PullTight, Right: walking.PullTight}
		} else {
			state.Arms = walking.ArmMotions{Left: walking.Swing, Right: walking.Swing}
		}
		log.Infof("arms=%s", state.Arms.Left)
	}

	// Kick for as long as the button is held. Kicks often need a step first
	// to get onto the right foot, so a single press wouldn't do.
	strength := 0.5 + p.L2/2
	switch {
	case p.Down:
		state.Request = walking.StandRequest()

	case p.Left:
		state.Request = walking.KickRequest(kickVariant(p), walking.Left, strength)

	case p.Right:
		state.Request = walking.KickRequest(kickVariant(p), walking.Right, strength)

	default:
		step := walking.Step{
			Forward: stick(p.LeftStickY) * maxForward,
			Left:    -stick(p.LeftStickX) * maxLeft,
			Turn:    -stick(p.RightStickX) * maxTurn,
		}

		if step == walking.ZeroStep {
			state.Request = walking.StandRequest()
		} else {
			state.Request = walking.WalkRequest(step)
		}
	}

	return nil
}

// kickVariant picks the kick: d-pad up with a side turns the ball, the left
// stick pushed sideways kicks it sideways, otherwise straight.
func kickVariant(p Pad) walking.KickVariant {
	switch {
	case p.Up:
		return walking.KickTurn
	case stick(p.LeftStickX) != 0:
		return walking.KickSide
	default:
		return walking.KickForward
	}
}

func stick(v float64) float64 {
	if v > -deadZone && v < deadZone {
		return 0
	}

	return v
}
