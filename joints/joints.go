// Package joints holds the joint sets of the robot body and the motor
// commands built from them. All angles are radians.
package joints

import (
	"fmt"
)

// Name identifies a single actuated joint.
type Name string

const (
	LeftShoulderPitch  Name = "l_shoulder_pitch"
	LeftShoulderRoll   Name = "l_shoulder_roll"
	LeftElbowYaw       Name = "l_elbow_yaw"
	LeftElbowRoll      Name = "l_elbow_roll"
	LeftWristYaw       Name = "l_wrist_yaw"
	RightShoulderPitch Name = "r_shoulder_pitch"
	RightShoulderRoll  Name = "r_shoulder_roll"
	RightElbowYaw      Name = "r_elbow_yaw"
	RightElbowRoll     Name = "r_elbow_roll"
	RightWristYaw      Name = "r_wrist_yaw"
	LeftHipYaw         Name = "l_hip_yaw"
	LeftHipRoll        Name = "l_hip_roll"
	LeftHipPitch       Name = "l_hip_pitch"
	LeftKneePitch      Name = "l_knee_pitch"
	LeftAnklePitch     Name = "l_ankle_pitch"
	LeftAnkleRoll      Name = "l_ankle_roll"
	RightHipYaw        Name = "r_hip_yaw"
	RightHipRoll       Name = "r_hip_roll"
	RightHipPitch      Name = "r_hip_pitch"
	RightKneePitch     Name = "r_knee_pitch"
	RightAnklePitch    Name = "r_ankle_pitch"
	RightAnkleRoll     Name = "r_ankle_roll"
)

// AllNames returns every joint of the body, in the same order as Values.
func AllNames() []Name {
	return []Name{
		LeftShoulderPitch, LeftShoulderRoll, LeftElbowYaw, LeftElbowRoll, LeftWristYaw,
		RightShoulderPitch, RightShoulderRoll, RightElbowYaw, RightElbowRoll, RightWristYaw,
		LeftHipYaw, LeftHipRoll, LeftHipPitch, LeftKneePitch, LeftAnklePitch, LeftAnkleRoll,
		RightHipYaw, RightHipRoll, RightHipPitch, RightKneePitch, RightAnklePitch, RightAnkleRoll,
	}
}

// Leg is the chain from hip to ankle. Joint order matches the kinematic chain.
type Leg struct {
	HipYaw     float64
	HipRoll    float64
	HipPitch   float64
	KneePitch  float64
	AnklePitch float64
	AnkleRoll  float64
}

func (l Leg) values() []float64 {
	return []float64{l.HipYaw, l.HipRoll, l.HipPitch, l.KneePitch, l.AnklePitch, l.AnkleRoll}
}

func (l Leg) String() string {
	return fmt.Sprintf("Leg{yaw=%+.3f roll=%+.3f pitch=%+.3f knee=%+.3f ankle=%+.3f/%+.3f}",
		l.HipYaw, l.HipRoll, l.HipPitch, l.KneePitch, l.AnklePitch, l.AnkleRoll)
}

type Arm struct {
	ShoulderPitch float64
	ShoulderRoll  float64
	ElbowYaw      float64
	ElbowRoll     float64
	WristYaw      float64
}

func (a Arm) values() []float64 {
	return []float64{a.ShoulderPitch, a.ShoulderRoll, a.ElbowYaw, a.ElbowRoll, a.WristYaw}
}

// Body is every actuated joint below the head.
type Body struct {
	LeftArm  Arm
	RightArm Arm
	LeftLeg  Leg
	RightLeg Leg
}

// Fill returns a body with every joint set to v.
func Fill(v float64) Body {
	a := Arm{v, v, v, v, v}
	l := Leg{v, v, v, v, v, v}
	return Body{a, a, l, l}
}

// Values flattens the body in AllNames order.
func (b Body) Values() []float64 {
	vs := make([]float64, 0, len(AllNames()))
	vs = append(vs, b.LeftArm.values()...)
	vs = append(vs, b.RightArm.values()...)
	vs = append(vs, b.LeftLeg.values()...)
	vs = append(vs, b.RightLeg.values()...)
	return vs
}

// FromValues is the inverse of Values. It panics if vs has the wrong length,
// since that can only be a programming error.
func FromValues(vs []float64) Body {
	if len(vs) != len(AllNames()) {
		panic(fmt.Sprintf("expected %d joint values, got %d", len(AllNames()), len(vs)))
	}

	return Body{
		LeftArm:  Arm{vs[0], vs[1], vs[2], vs[3], vs[4]},
		RightArm: Arm{vs[5], vs[6], vs[7], vs[8], vs[9]},
		LeftLeg:  Leg{vs[10], vs[11], vs[12], vs[13], vs[14], vs[15]},
		RightLeg: Leg{vs[16], vs[17], vs[18], vs[19], vs[20], vs[21]},
	}
}

// Map returns the joints keyed by name.
func (b Body) Map() map[Name]float64 {
	m := make(map[Name]float64, len(AllNames()))
	vs := b.Values()
	for i, n := range AllNames() {
		m[n] = vs[i]
	}

	return m
}

// FromMap builds a body from named values. Missing joints are zero.
func FromMap(m map[Name]float64) Body {
	vs := make([]float64, len(AllNames()))
	for i, n := range AllNames() {
		vs[i] = m[n]
	}

	return FromValues(vs)
}

func (b Body) Add(o Body) Body {
	vs := b.Values()
	for i, v := range o.Values() {
		vs[i] += v
	}

	return FromValues(vs)
}

// Scale multiplies every joint by s.
func (b Body) Scale(s float64) Body {
	vs := b.Values()
	for i := range vs {
		vs[i] *= s
	}

	return FromValues(vs)
}

// ArgMax returns the index and value of the largest element. Taking the
// maximum of nothing is a programming error, so an empty slice panics.
func ArgMax(vs []float64) (int, float64) {
	if len(vs) == 0 {
		panic("joints: values must not be empty")
	}

	idx := 0
	for i, v := range vs {
		if v > vs[idx] {
			idx = i
		}
	}

	return idx, vs[idx]
}
