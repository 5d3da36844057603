// Package energy keeps the motors cool while the robot stands still, by
// moving joints a little so that the most loaded one stops pushing against
// the others.
package energy

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk/joints"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "energy",
})

type Parameters struct {

	// Currents (A) at or below this are fine and left alone.
	AllowedCurrent float64 `json:"allowed_current"`

	// Once the maximum current has dropped below AllowedCurrent, it has to
	// rise above it by this much before optimizing starts again.
	MinimumReachedHysteresis float64 `json:"minimum_reached_hysteresis"`

	// The direction (+1 or -1) in which each joint is moved to relieve it.
	OptimizationSign joints.Body `json:"optimization_sign"`

	// Radians per second.
	OptimizationSpeed float64 `json:"optimization_speed"`

	// When the sum of squared offsets exceeds ResetThreshold, the offsets
	// are walked back at ResetSpeed (rad/s) until the sum is below
	// ResetBaseOffset.
	ResetThreshold  float64 `json:"reset_threshold"`
	ResetBaseOffset float64 `json:"reset_base_offset"`
	ResetSpeed      float64 `json:"reset_speed"`
}

func DefaultParameters() Parameters {
	return Parameters{
		AllowedCurrent:           0.1,
		MinimumReachedHysteresis: 0.05,
		OptimizationSign:         defaultSign(),
		OptimizationSpeed:        0.02,
		ResetThreshold:           0.02,
		ResetBaseOffset:          0.005,
		ResetSpeed:               0.05,
	}
}

// defaultSign relieves the legs by bending them slightly more, and lets the
// arms hang.
func defaultSign() joints.Body {
	b := joints.Fill(1)
	b.LeftLeg.KneePitch = -1
	b.RightLeg.KneePitch = -1
	b.LeftArm.ShoulderRoll = -1
	return b
}

// CurrentMinimizer accumulates per-joint position offsets.
type CurrentMinimizer struct {
	offsets        joints.Body
	minimumReached bool
	resetting      bool
}

// Optimize returns the positions with the accumulated offsets applied, after
// nudging the joint which draws the most current.
func (c *CurrentMinimizer) Optimize(currents, positions joints.Body, cycle time.Duration, p Parameters) joints.Body {
	dt := cycle.Seconds()
	offsets := c.offsets.Values()

	if !c.resetting && squaredSum(offsets) > p.ResetThreshold {
		log.Debugf("offsets too large, resetting")
		c.resetting = true
	}

	if c.resetting {
		step := p.ResetSpeed * dt
		for i, o := range offsets {
			switch {
			case o > step:
				offsets[i] -= step
			case o < -step:
				offsets[i] += step
			default:
				offsets[i] = 0
			}
		}

		if squaredSum(offsets) < p.ResetBaseOffset {
			c.resetting = false
		}

		c.offsets = joints.FromValues(offsets)
		return positions.Add(c.offsets)
	}

	idx, max := joints.ArgMax(currents.Values())

	if max <= p.AllowedCurrent {
		c.minimumReached = true
	} else if max > p.AllowedCurrent+p.MinimumReachedHysteresis {
		c.minimumReached = false
	}

	if !c.minimumReached {
		sign := p.OptimizationSign.Values()
		offsets[idx] += sign[idx] * p.OptimizationSpeed * dt
		c.offsets = joints.FromValues(offsets)
	}

	return positions.Add(c.offsets)
}

// Offsets returns the offsets currently applied.
func (c *CurrentMinimizer) Offsets() joints.Body {
	return c.offsets
}

// Reset drops all offsets, e.g. when the robot starts walking again.
func (c *CurrentMinimizer) Reset() {
	*c = CurrentMinimizer{}
}

func squaredSum(vs []float64) float64 {
	s := 0.0
	for _, v := range vs {
		s += v * v
	}
	return s
}
