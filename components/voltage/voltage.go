package voltage

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "voltage",
})

const (

	// The time between voltage checks. These are pretty quick, but not
	// instant. Running at low voltage for too long will damage the battery,
	// so it should be checked pretty regularly.
	interval = 5 * time.Second

	// The voltage at which the robot should shut down (3S LiPo).
	minimum = 10.5
)

type HasVoltage interface {
	Voltage() (float64, error)
}

type VoltageCheck struct {
	t time.Time
	HasVoltage
}

func New(v HasVoltage) *VoltageCheck {
	return &VoltageCheck{
		time.Time{},
		v,
	}
}

func (vc *VoltageCheck) Boot() error {
	return nil
}

// Tick checks the voltage every now and then, and asks the robot to stand
// still and shut down once the battery is running low.
func (vc *VoltageCheck) Tick(now time.Time, state *hulk.State) error {
	if !vc.NeedsVoltageCheck(now) {
		return nil
	}

	val, err := vc.Voltage()
	vc.t = now
	if err != nil {
		// A missed reading isn't worth falling over for.
		log.Warnf("while reading voltage: %s", err)
		return nil
	}

	log.Debugf("voltage: %.2fv", val)

	if val < minimum && !state.Shutdown {
		log.Warnf("low voltage: %.2fv, shutting down", val)
		state.Shutdown = true
	}

	return nil
}

// NeedsVoltageCheck returns true if it's been a while since we checked the
// voltage level.
func (vc *VoltageCheck) NeedsVoltageCheck(now time.Time) bool {
	return now.Sub(vc.t) > interval
}
