package walking

import (
	"time"

	"github.com/paudar/hulk/math3d"
)

// Context is everything a cycle of the walking engine may look at. It is
// built fresh for every cycle and never modified by the engine.
type Context struct {
	Parameters  *Parameters
	Cycle       CycleTime
	Sensors     Sensors
	CurrentFeet FootPoses
	Arms        ArmMotions
}

type CycleTime struct {
	Now               time.Time
	LastCycleDuration time.Duration
}

// Sensors is the measured (or estimated) state of the robot this cycle.
// Positions are in the torso frame.
type Sensors struct {
	LeftPressure  float64
	RightPressure float64

	CenterOfMass         math3d.Vector3
	CenterOfMassVelocity math3d.Vector3

	// Angular velocity of the torso, rad/s.
	Gyro math3d.Vector3
}

// Pressure returns the load on the sole of the given side.
func (s Sensors) Pressure(side Side) float64 {
	if side == Left {
		return s.LeftPressure
	}

	return s.RightPressure
}

// FootPoses are the poses of both soles in the torso frame.
type FootPoses struct {
	Left  math3d.Pose
	Right math3d.Pose
}

// NeutralFootPoses returns both soles in the standing position.
func NeutralFootPoses(p *Parameters) FootPoses {
	x := -p.Stance.TorsoOffset
	y := p.Stance.FootOffsetLeft
	z := -p.Stance.WalkHeight

	return FootPoses{
		Left:  math3d.MakePose(x, y, z, 0),
		Right: math3d.MakePose(x, -y, z, 0),
	}
}
