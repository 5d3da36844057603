// Package feedback reads what the servos measured into the shared state, for
// the locomotion to start from.
package feedback

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk"
	"github.com/paudar/hulk/joints"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "feedback",
})

// Reader is the part of *servos.Pool this needs.
type Reader interface {
	Read(ctx context.Context) (joints.Body, error)
	Currents(ctx context.Context) (joints.Body, bool, error)
}

type Feedback struct {
	r Reader

	// Robots without pressure sensors in the soles assume that both feet are
	// always loaded, so steps switch support as soon as they may.
	AssumeLoaded bool

	// Reading currents is slow, so only every this often.
	CurrentInterval time.Duration
	lastCurrents    time.Time
}

func New(r Reader) *Feedback {
	return &Feedback{
		r:               r,
		CurrentInterval: 500 * time.Millisecond,
	}
}

// Boot reads the joints once, so that the first step starts from where the
// legs actually are.
func (f *Feedback) Boot() error {
	b, err := f.r.Read(context.Background())
	if err != nil {
		return errors.Wrap(err, "while reading joints")
	}

	log.Infof("left leg: %s", b.LeftLeg)
	log.Infof("right leg: %s", b.RightLeg)
	return nil
}

func (f *Feedback) Tick(now time.Time, state *hulk.State) error {
	ctx := context.Background()

	// The measured joints only seed the first step, after which the
	// locomotion trusts its own commands.
	if state.MeasuredJoints == nil {
		b, err := f.r.Read(ctx)
		if err != nil {
			return errors.Wrap(err, "while reading joints")
		}
		state.MeasuredJoints = &b
	}

	if now.Sub(f.lastCurrents) >= f.CurrentInterval {
		f.lastCurrents = now

		c, ok, err := f.r.Currents(ctx)
		if err != nil {
			log.Warnf("while reading currents: %s", err)
		} else if ok {
			state.Currents = &c
		}
	}

	if f.AssumeLoaded {
		state.Sensors.LeftPressure = 1
		state.Sensors.RightPressure = 1
	}

	return nil
}
