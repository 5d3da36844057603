package math3d

import (
	"fmt"

	"github.com/paudar/hulk/utils"
)

// EulerAngles are applied roll first (about X), then pitch (about Y), then
// yaw (about Z). All angles are radians.
type EulerAngles struct {
	Roll  float64 // x
	Pitch float64 // y
	Yaw   float64 // z
}

type rotation int

const (
	RotationRoll rotation = iota
	RotationPitch
	RotationYaw
)

var (
	IdentityOrientation = EulerAngles{}
)

// MakeSingularEulerAngle returns angles which rotate about a single axis by
// the given number of radians.
func MakeSingularEulerAngle(rot rotation, angle float64) EulerAngles {
	ea := EulerAngles{}

	switch rot {
	case RotationRoll:
		ea.Roll = angle

	case RotationPitch:
		ea.Pitch = angle

	case RotationYaw:
		ea.Yaw = angle

	default:
		panic("invalid rotation")
	}

	return ea
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{r=%+.2f° p=%+.2f° y=%+.2f°}", utils.Deg(ea.Roll), utils.Deg(ea.Pitch), utils.Deg(ea.Yaw))
}
