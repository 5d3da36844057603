package servos

import (
	"context"
	"io"
	"math"

	"github.com/adammck/dynamixel/network"
	"github.com/adammck/dynamixel/servo"
	"github.com/adammck/dynamixel/servo/ax"
	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
)

const (

	// AX servos are positioned in degrees, zero in the middle of a 300 degree
	// range.
	axRange = 150.0

	// As fast as they go.
	axMovingSpeed = 1023
)

// Dynamixel drives AX servos on a dynamixel network. It takes and returns
// positions in the same steps as the STS servos, so a Mapping works for both.
type Dynamixel struct {
	port    io.ReadWriteCloser
	network *network.Network
	servos  map[int]*servo.Servo
}

// OpenDynamixel opens the serial port and adds every servo of the mapping.
func OpenDynamixel(port string, m Mapping) (*Dynamixel, error) {
	opts := serial.OpenOptions{
		PortName:              port,
		BaudRate:              1000000,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: 100,
	}

	s, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "while opening %s", port)
	}

	d := &Dynamixel{
		port:    s,
		network: network.New(s),
		servos:  map[int]*servo.Servo{},
	}

	for _, id := range m.IDs() {
		sv, err := ax.New(d.network, id)
		if err != nil {
			s.Close()
			return nil, errors.Wrapf(err, "while adding servo #%d", id)
		}

		d.servos[id] = sv
	}

	return d, nil
}

// Ping checks that every one of the given servos answers.
func (d *Dynamixel) Ping(ctx context.Context, ids []int) error {
	for _, id := range ids {
		sv, ok := d.servos[id]
		if !ok {
			return errors.Errorf("servo #%d is not on the network", id)
		}

		if err := sv.Ping(); err != nil {
			return errors.Wrapf(err, "while pinging servo #%d", id)
		}
		log.Debugf("servo #%d is alive", id)
	}

	return nil
}

func (d *Dynamixel) Enable(ctx context.Context) error {
	for id, sv := range d.servos {
		if err := sv.SetTorqueEnable(true); err != nil {
			return errors.Wrapf(err, "while enabling torque of servo #%d", id)
		}

		if err := sv.SetMovingSpeed(axMovingSpeed); err != nil {
			return errors.Wrapf(err, "while setting move speed of servo #%d", id)
		}
	}

	return nil
}

// Disable turns the torque and the LEDs off. It tries every servo, even if
// some fail, so as few as possible stay powered.
func (d *Dynamixel) Disable(ctx context.Context) error {
	var first error

	for id, sv := range d.servos {
		if err := sv.SetTorqueEnable(false); err != nil && first == nil {
			first = errors.Wrapf(err, "while disabling torque of servo #%d", id)
		}
		sv.SetLED(false)
	}

	return first
}

func (d *Dynamixel) Read(ctx context.Context) (map[int]int, error) {
	out := make(map[int]int, len(d.servos))

	for id, sv := range d.servos {
		deg, err := sv.Angle()
		if err != nil {
			return nil, errors.Wrapf(err, "while reading servo #%d", id)
		}

		out[id] = axRaw(deg)
	}

	return out, nil
}

func (d *Dynamixel) Write(ctx context.Context, positions map[int]int) error {
	for id, raw := range positions {
		sv, ok := d.servos[id]
		if !ok {
			continue
		}

		if err := sv.MoveTo(axDegrees(raw)); err != nil {
			return errors.Wrapf(err, "while moving servo #%d", id)
		}
	}

	return nil
}

func (d *Dynamixel) Close() error {
	return d.port.Close()
}

// axDegrees converts a position in steps to degrees, clamped to the range of
// the servo.
func axDegrees(raw int) float64 {
	deg := float64(raw-center) * 360 / stepsPerRevolution
	return math.Max(-axRange, math.Min(axRange, deg))
}

func axRaw(deg float64) int {
	return center + int(math.Round(deg*stepsPerRevolution/360))
}
