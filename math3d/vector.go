package math3d

import (
	"fmt"
	"math"
)

// Vector3 is a point or direction in a right-handed frame where X points
// forwards, Y to the left and Z up. Units are meters unless noted.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}
)

// MakeVector3 returns a new Vector3.
func MakeVector3(x float64, y float64, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%+.4f y=%+.4f z=%+.4f}", v.X, v.Y, v.Z)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

func (v Vector3) Add(vv Vector3) Vector3 {
	return Vector3{
		(v.X + vv.X),
		(v.Y + vv.Y),
		(v.Z + vv.Z),
	}
}

func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3{
		(v.X - vv.X),
		(v.Y - vv.Y),
		(v.Z - vv.Z),
	}
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return Vector3{
		(v.X * s),
		(v.Y * s),
		(v.Z * s),
	}
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z))
}

// Unit returns the vector scaled to length one. The zero vector stays zero.
func (v Vector3) Unit() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return ZeroVector3
	}

	return v.MultiplyByScalar(1 / m)
}

// Distance calculates and returns the distance between this vector and another.
func (v Vector3) Distance(vv Vector3) float64 {
	return v.Subtract(vv).Magnitude()
}

// Lerp returns the point at ratio t on the line from v to vv. t is not
// clamped; t=0 is v and t=1 is exactly vv.
func (v Vector3) Lerp(vv Vector3, t float64) Vector3 {
	return Vector3{
		v.X + (vv.X-v.X)*t,
		v.Y + (vv.Y-v.Y)*t,
		v.Z + (vv.Z-v.Z)*t,
	}
}

// MultiplyByMatrix44 returns a new Vector3, by multiplying this vector (as a
// row vector, with an implicit w=1) by a 4x4 matrix.
func (v Vector3) MultiplyByMatrix44(m Matrix44) Vector3 {
	return Vector3{
		(v.X * m.m11) + (v.Y * m.m21) + (v.Z * m.m31) + m.m41,
		(v.X * m.m12) + (v.Y * m.m22) + (v.Z * m.m32) + m.m42,
		(v.X * m.m13) + (v.Y * m.m23) + (v.Z * m.m33) + m.m43,
	}
}

// Rotate applies only the rotation part of the matrix.
func (v Vector3) Rotate(m Matrix44) Vector3 {
	return Vector3{
		(v.X * m.m11) + (v.Y * m.m21) + (v.Z * m.m31),
		(v.X * m.m12) + (v.Y * m.m22) + (v.Z * m.m32),
		(v.X * m.m13) + (v.Y * m.m23) + (v.Z * m.m33),
	}
}
