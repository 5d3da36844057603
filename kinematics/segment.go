package kinematics

import (
	"fmt"

	"github.com/paudar/hulk/math3d"
)

// Segment is one rigid link of a kinematic chain. Its frame starts at the
// end of the parent (rotated by Angles), and the link itself extends along
// vec in that frame.
type Segment struct {
	Name   string
	parent *Segment
	Child  *Segment
	Angles math3d.EulerAngles
	vec    math3d.Vector3
}

func MakeSegment(name string, parent *Segment, angles math3d.EulerAngles, vec math3d.Vector3) *Segment {
	s := &Segment{
		Name:   name,
		parent: parent,
		Angles: angles,
		vec:    vec,
	}

	if parent != nil {
		parent.Child = s
	}

	return s
}

func MakeRootSegment(vec math3d.Vector3) *Segment {
	return MakeSegment("root", nil, math3d.IdentityOrientation, vec)
}

func (s Segment) String() string {
	var childStr string

	if s.Child != nil {
		childStr = s.Child.String()
	} else {
		childStr = "nil"
	}

	return fmt.Sprintf("&Seg{%s: %s %s}", s.Name, s.Angles, childStr)
}

// Start returns the coordinates of the start of this segment, in the root
// coordinate space.
func (s *Segment) Start() math3d.Vector3 {
	return s.Project(math3d.ZeroVector3)
}

// End returns the coordinates of the end of this segment, in the root
// coordinate space.
func (s *Segment) End() math3d.Vector3 {
	return s.Project(s.vec)
}

// WorldMatrix returns a matrix which can be applied to a vector in this
// segment's coordinate space to convert it to the root space.
func (s *Segment) WorldMatrix() math3d.Matrix44 {

	// With a parent, the frame starts at the end of the parent link and is
	// rotated by our own angles, then whatever the parent does applies on top.
	if s.parent != nil {
		m := math3d.MakeMatrix44(s.parent.vec, s.Angles)
		return math3d.MultiplyMatrices(m, s.parent.WorldMatrix())
	}

	return math3d.MakeMatrix44(math3d.ZeroVector3, s.Angles)
}

// Project transforms a vector in this segment's coordinate space into the
// root space.
func (s *Segment) Project(v math3d.Vector3) math3d.Vector3 {
	return v.MultiplyByMatrix44(s.WorldMatrix())
}
