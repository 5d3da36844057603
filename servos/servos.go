// Package servos drives the bus servos of the robot: it converts joint
// angles to raw servo positions and back, and writes a whole body of motor
// commands in one go.
package servos

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk/joints"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "servos",
})

const (

	// STS servos have 4096 steps per revolution, with 2048 in the middle.
	stepsPerRevolution = 4096
	center             = 2048
	maxPosition        = stepsPerRevolution - 1

	// Stiffness below this is treated as limp.
	limpStiffness = 0.05
)

// Driver moves a group of servos, addressed by ID, in raw units.
type Driver interface {
	Enable(ctx context.Context) error
	Disable(ctx context.Context) error
	Read(ctx context.Context) (map[int]int, error)
	Write(ctx context.Context, positions map[int]int) error
}

// CurrentReader is implemented by drivers which can measure how much current
// each servo draws, in amperes.
type CurrentReader interface {
	Currents(ctx context.Context) (map[int]float64, error)
}

// Pool is every servo of the body, behind one driver.
type Pool struct {
	driver  Driver
	mapping Mapping
	enabled bool
}

func New(d Driver, m Mapping) *Pool {
	return &Pool{
		driver:  d,
		mapping: m,
	}
}

// Boot turns the torque on.
func (p *Pool) Boot(ctx context.Context) error {
	if err := p.driver.Enable(ctx); err != nil {
		return errors.Wrap(err, "while enabling torque")
	}

	p.enabled = true
	return nil
}

// Write sends the positions of every joint in a single sync write, so that
// all servos start moving at the same time. The servos have no per-joint
// stiffness we can set every cycle, so a body which is (almost) entirely limp
// turns the torque off instead.
func (p *Pool) Write(ctx context.Context, c joints.MotorCommands) error {
	if limp(c.Stiffnesses) {
		if p.enabled {
			log.Infof("all joints limp, disabling torque")
			if err := p.driver.Disable(ctx); err != nil {
				return errors.Wrap(err, "while disabling torque")
			}
			p.enabled = false
		}
		return nil
	}

	if !p.enabled {
		if err := p.Boot(ctx); err != nil {
			return err
		}
	}

	raw := make(map[int]int, len(p.mapping))
	for name, angle := range c.Positions.Map() {
		j, ok := p.mapping[name]
		if !ok {
			continue
		}

		raw[j.ID] = j.Raw(angle)
	}

	log.Debugf("write: %v", raw)

	if err := p.driver.Write(ctx, raw); err != nil {
		return errors.Wrap(err, "while writing positions")
	}

	return nil
}

// Read returns the measured angle of every joint. Joints without a servo
// read as zero.
func (p *Pool) Read(ctx context.Context) (joints.Body, error) {
	raw, err := p.driver.Read(ctx)
	if err != nil {
		return joints.Body{}, errors.Wrap(err, "while reading positions")
	}

	m := make(map[joints.Name]float64, len(p.mapping))
	for name, j := range p.mapping {
		if v, ok := raw[j.ID]; ok {
			m[name] = j.Angle(v)
		}
	}

	return joints.FromMap(m), nil
}

// Currents returns the current drawn by every joint. ok is false if the
// driver can't measure it.
func (p *Pool) Currents(ctx context.Context) (b joints.Body, ok bool, err error) {
	cr, ok := p.driver.(CurrentReader)
	if !ok {
		return joints.Body{}, false, nil
	}

	raw, err := cr.Currents(ctx)
	if err != nil {
		return joints.Body{}, true, errors.Wrap(err, "while reading currents")
	}

	m := make(map[joints.Name]float64, len(p.mapping))
	for name, j := range p.mapping {
		m[name] = raw[j.ID]
	}

	return joints.FromMap(m), true, nil
}

// Shutdown powers off all servos in the pool. This should be called before
// terminating the program, to ensure that servos don't stay powered up
// indefinitely.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.enabled = false
	return errors.Wrap(p.driver.Disable(ctx), "while disabling torque")
}

func limp(s joints.Body) bool {
	for _, v := range s.Values() {
		if v >= limpStiffness {
			return false
		}
	}

	return true
}

// Joint is where a joint is attached: the servo ID, which way round it is
// mounted, and the angle (radians) at which the servo reads center.
type Joint struct {
	ID        int     `json:"id"`
	Direction float64 `json:"direction"`
	Offset    float64 `json:"offset"`
}

// Raw converts a joint angle to a servo position.
func (j Joint) Raw(angle float64) int {
	dir := j.Direction
	if dir == 0 {
		dir = 1
	}

	v := center + math.Round(dir*(angle-j.Offset)*stepsPerRevolution/(2*math.Pi))
	return int(math.Max(0, math.Min(maxPosition, v)))
}

// Angle converts a servo position to a joint angle.
func (j Joint) Angle(raw int) float64 {
	dir := j.Direction
	if dir == 0 {
		dir = 1
	}

	return j.Offset + float64(raw-center)*2*math.Pi/stepsPerRevolution/dir
}

type Mapping map[joints.Name]Joint

// DefaultMapping numbers the servos 1 to 22 in joint order. Everything on the
// right side which rolls or yaws is mounted mirrored.
func DefaultMapping() Mapping {
	m := Mapping{}
	mirrored := map[joints.Name]bool{
		joints.RightShoulderRoll: true,
		joints.RightElbowYaw:     true,
		joints.RightElbowRoll:    true,
		joints.RightWristYaw:     true,
		joints.RightHipYaw:       true,
		joints.RightHipRoll:      true,
		joints.RightAnkleRoll:    true,
	}

	for i, name := range joints.AllNames() {
		j := Joint{ID: i + 1, Direction: 1}
		if mirrored[name] {
			j.Direction = -1
		}
		m[name] = j
	}

	return m
}

// IDs returns the servo IDs of the mapping, in joint order.
func (m Mapping) IDs() []int {
	ids := []int{}
	for _, name := range joints.AllNames() {
		if j, ok := m[name]; ok {
			ids = append(ids, j.ID)
		}
	}

	return ids
}
