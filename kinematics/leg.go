// Package kinematics converts between sole poses and leg joint angles.
//
// The leg is modelled as hip yaw, hip roll, hip pitch, knee, ankle pitch and
// ankle roll, with the thigh and tibia hanging straight down (-Z) at zero.
// Soles are always commanded flat, so a sole pose is a position plus a yaw.
package kinematics

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk/joints"
	"github.com/paudar/hulk/math3d"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "kinematics",
})

// Dimensions of the lower body, in meters, relative to the torso origin.
type Dimensions struct {
	HipOffsetY  float64 `json:"hip_offset_y"`
	HipOffsetZ  float64 `json:"hip_offset_z"`
	ThighLength float64 `json:"thigh_length"`
	TibiaLength float64 `json:"tibia_length"`
	FootHeight  float64 `json:"foot_height"`
}

// DefaultDimensions are measured from a NAO v6.
var DefaultDimensions = Dimensions{
	HipOffsetY:  0.05,
	HipOffsetZ:  0.085,
	ThighLength: 0.1,
	TibiaLength: 0.1029,
	FootHeight:  0.04519,
}

// Hip returns the position of the hip joint on the given side.
func (d Dimensions) Hip(left bool) math3d.Vector3 {
	y := -d.HipOffsetY
	if left {
		y = d.HipOffsetY
	}

	return math3d.Vector3{X: 0, Y: y, Z: -d.HipOffsetZ}
}

// maxReach is slightly less than a fully stretched leg, to keep the knee off
// its singularity.
func (d Dimensions) maxReach() float64 {
	return (d.ThighLength + d.TibiaLength) * 0.9999
}

func (d Dimensions) minReach() float64 {
	return math.Abs(d.ThighLength-d.TibiaLength) + 0.001
}

// LegAngles returns the joint angles for both legs to place the soles at the
// given poses (in the torso frame).
func LegAngles(d Dimensions, left, right math3d.Pose) (joints.Leg, joints.Leg) {
	return InverseLeg(d, d.Hip(true), left), InverseLeg(d, d.Hip(false), right)
}

// InverseLeg solves the leg joints for a flat sole at the given pose. Targets
// out of reach are pulled back onto the reachable shell along the hip-ankle
// line, so this is total and continuous in its input.
func InverseLeg(d Dimensions, hip math3d.Vector3, sole math3d.Pose) joints.Leg {
	yaw := sole.Yaw

	// The ankle is directly above the sole, since the sole is flat.
	ankle := sole.Position.Add(math3d.Vector3{X: 0, Y: 0, Z: d.FootHeight})

	// Undo the hip yaw, so the rest of the leg can be solved in the hip frame.
	unyaw := math3d.MakeMatrix44(math3d.ZeroVector3, math3d.MakeSingularEulerAngle(math3d.RotationYaw, -yaw))
	v := ankle.Subtract(hip).Rotate(unyaw)

	// The hip roll tilts the sagittal plane of the leg sideways. Once it is
	// undone, the remaining joints all rotate about Y, so it's 2d trig from
	// here on.
	roll := math.Atan2(v.Y, -v.Z)
	u := v.X
	w := -math.Hypot(v.Y, v.Z)

	//        (hip)
	//         / \
	//    thigh   l
	//       /     \
	//   (knee)     \
	//       \       \
	//      tibia     \
	//          \      \
	//          (ankle)-
	//
	l := math.Hypot(u, w)
	lc := math.Max(d.minReach(), math.Min(l, d.maxReach()))
	if l > 0 {
		u, w = u*lc/l, w*lc/l
	} else {
		u, w = 0, -lc
	}

	knee := math.Pi - sss(lc, d.ThighLength, d.TibiaLength)
	pitch := math.Atan2(-d.TibiaLength*math.Sin(knee), d.ThighLength+d.TibiaLength*math.Cos(knee)) - math.Atan2(u, -w)

	leg := joints.Leg{
		HipYaw:     yaw,
		HipRoll:    roll,
		HipPitch:   pitch,
		KneePitch:  knee,
		AnklePitch: -(pitch + knee),
		AnkleRoll:  -roll,
	}

	// Crash if any of the angles are invalid. Sending garbage to the servos is
	// worse than stopping.
	for _, a := range []float64{leg.HipYaw, leg.HipRoll, leg.HipPitch, leg.KneePitch, leg.AnklePitch, leg.AnkleRoll} {
		if math.IsNaN(a) {
			log.Errorf("invalid leg angles %s for sole %s", leg, sole)
			panic("goal out of range")
		}
	}

	return leg
}

// ForwardLeg returns the sole pose for the given joint angles. The yaw of the
// result is only meaningful while the sole is flat.
func ForwardLeg(d Dimensions, hip math3d.Vector3, leg joints.Leg) math3d.Pose {
	root := MakeRootSegment(hip)
	hy := MakeSegment("hip_yaw", root, math3d.MakeSingularEulerAngle(math3d.RotationYaw, leg.HipYaw), math3d.ZeroVector3)
	hr := MakeSegment("hip_roll", hy, math3d.MakeSingularEulerAngle(math3d.RotationRoll, leg.HipRoll), math3d.ZeroVector3)
	hp := MakeSegment("thigh", hr, math3d.MakeSingularEulerAngle(math3d.RotationPitch, leg.HipPitch), math3d.Vector3{X: 0, Y: 0, Z: -d.ThighLength})
	kn := MakeSegment("tibia", hp, math3d.MakeSingularEulerAngle(math3d.RotationPitch, leg.KneePitch), math3d.Vector3{X: 0, Y: 0, Z: -d.TibiaLength})
	ap := MakeSegment("ankle_pitch", kn, math3d.MakeSingularEulerAngle(math3d.RotationPitch, leg.AnklePitch), math3d.ZeroVector3)
	ar := MakeSegment("foot", ap, math3d.MakeSingularEulerAngle(math3d.RotationRoll, leg.AnkleRoll), math3d.Vector3{X: 0, Y: 0, Z: -d.FootHeight})

	return math3d.Pose{
		Position: ar.End(),
		Yaw:      leg.HipYaw,
	}
}

// sss returns the angle opposite side a (in radians), given the length of
// sides a, b, and c.
// See: http://en.wikipedia.org/wiki/Solution_of_triangles
func sss(a float64, b float64, c float64) float64 {
	return math.Acos(((b * b) + (c * c) - (a * a)) / (2 * b * c))
}
