package joints

// MotorCommands is what gets sent to the actuators each cycle: a target angle
// and a stiffness (0 is limp, 1 is full torque) for every joint.
type MotorCommands struct {
	Positions   Body
	Stiffnesses Body
}

// ApplyStiffness attaches the leg stiffness to every leg joint and the arm
// stiffness to every arm joint.
func (b Body) ApplyStiffness(leg, arm float64) MotorCommands {
	la := Arm{arm, arm, arm, arm, arm}
	ll := Leg{leg, leg, leg, leg, leg, leg}

	return MotorCommands{
		Positions: b,
		Stiffnesses: Body{
			LeftArm:  la,
			RightArm: la,
			LeftLeg:  ll,
			RightLeg: ll,
		},
	}
}
