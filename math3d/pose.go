package math3d

import (
	"fmt"
)

// Pose is a position plus a heading (yaw, radians) about the Z axis. Foot
// soles are always flat, so this is all we need to place one.
type Pose struct {
	Position Vector3
	Yaw      float64
}

func MakePose(x, y, z, yaw float64) Pose {
	return Pose{Position: Vector3{x, y, z}, Yaw: yaw}
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.4f y=%+07.4f z=%+07.4f, yaw=%+07.4f}", p.Position.X, p.Position.Y, p.Position.Z, p.Yaw)
}

// Matrix returns the transform from the pose's local space into the parent.
func (p Pose) Matrix() Matrix44 {
	return MakeMatrix44(p.Position, p.ea())
}

// Add composes two poses: pp is interpreted in the local space of p.
func (p Pose) Add(pp Pose) Pose {
	m := Matrix44{}
	m.SetRotation(p.ea())
	return Pose{
		Position: p.Position.Add(pp.Position.Rotate(m)),
		Yaw:      p.Yaw + pp.Yaw,
	}
}

// Out returns pp, which is in the parent space, relative to p.
func (p Pose) Out(pp Pose) Pose {
	return Pose{
		Position: pp.Position.MultiplyByMatrix44(p.Matrix().Inverse()),
		Yaw:      pp.Yaw - p.Yaw,
	}
}

// Lerp interpolates position and yaw linearly. t=1 returns exactly pp.
func (p Pose) Lerp(pp Pose, t float64) Pose {
	if t >= 1 {
		return pp
	}

	return Pose{
		Position: p.Position.Lerp(pp.Position, t),
		Yaw:      p.Yaw + (pp.Yaw-p.Yaw)*t,
	}
}

func (p Pose) ea() EulerAngles {
	return MakeSingularEulerAngle(RotationYaw, p.Yaw)
}
