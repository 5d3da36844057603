package controller

import (
	"io"

	"github.com/adammck/sixaxis"
)

const (

	// Full deflection of a stick, and full pressure of a trigger.
	stickMax   = 127.0
	triggerMax = 255.0
)

// Sixaxis is a DualShock 3, read from its event device (/dev/input/eventN).
type Sixaxis struct {
	sa *sixaxis.SA
}

func NewSixaxis(r io.Reader) *Sixaxis {
	return &Sixaxis{
		sa: sixaxis.New(r),
	}
}

// Run reads events until the device goes away. It's meant to be run in its
// own goroutine.
func (s *Sixaxis) Run() {
	s.sa.Run()
}

func (s *Sixaxis) Pad() Pad {
	return padOf(s.sa)
}

// padOf converts the raw state of the controller. The stick reads negative
// when pushed up, so Y is flipped.
func padOf(sa *sixaxis.SA) Pad {
	return Pad{
		LeftStickX:  float64(sa.LeftStick.X) / stickMax,
		LeftStickY:  float64(-sa.LeftStick.Y) / stickMax,
		RightStickX: float64(sa.RightStick.X) / stickMax,

		Left:  sa.Left > 0,
		Right: sa.Right > 0,
		Down:  sa.Down > 0,
		Up:    sa.Up > 0,

		Triangle: sa.Triangle > 0,
		Start:    sa.Start,

		L2: float64(sa.L2) / triggerMax,
	}
}
