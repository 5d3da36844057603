package walking

import (
	"encoding/json"
	"time"

	"github.com/paudar/hulk/kinematics"
	"github.com/paudar/hulk/math3d"
)

// Duration is a time.Duration which reads and writes itself as a string like
// "250ms" in parameter files.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	d.Duration = v
	return nil
}

// Parameters are the tuning knobs of the walking engine. They are loaded once
// and then shared read-only by every cycle through the Context.
type Parameters struct {

	// Limits on how much the smoothed step may change from one step to the
	// next. Units are those of Step.
	MaxForwardAcceleration float64 `json:"max_forward_acceleration"`
	MaxTurnAcceleration    float64 `json:"max_turn_acceleration"`

	// While walking forward faster than the threshold, the turn acceleration
	// is multiplied by the reduction.
	ForwardTurnThreshold float64 `json:"forward_turn_threshold"`
	ForwardTurnReduction float64 `json:"forward_turn_reduction"`

	// Step duration is the base plus the absolute step (per axis) times the
	// increase, in seconds per unit.
	BaseStepDuration     Duration `json:"base_step_duration"`
	StepDurationIncrease Step     `json:"step_duration_increase"`

	// The support may only switch after this fraction of the planned step
	// duration, and only once the swing foot is loaded.
	MinimumStepDurationRatio   float64 `json:"minimum_step_duration_ratio"`
	SwingFootPressureThreshold float64 `json:"swing_foot_pressure_threshold"`

	// A step which has not switched after this long is abandoned.
	StepTimeout Duration `json:"step_timeout"`

	Stance      StanceParameters      `json:"stance"`
	Swing       SwingParameters       `json:"swing"`
	Catching    CatchingParameters    `json:"catching"`
	Kick        KickParameters        `json:"kick"`
	Arms        ArmParameters         `json:"arms"`
	GyroBalance GyroBalanceParameters `json:"gyro_balance"`
	Stiffnesses Stiffnesses           `json:"stiffnesses"`

	Dimensions kinematics.Dimensions `json:"dimensions"`
}

type StanceParameters struct {
	// Distance of the soles below the torso origin.
	WalkHeight float64 `json:"walk_height"`

	// Lateral distance of each sole from the torso center line.
	FootOffsetLeft float64 `json:"foot_offset_left"`

	// How far the feet sit behind the torso origin.
	TorsoOffset float64 `json:"torso_offset"`
}

type SwingParameters struct {
	BaseHeight     float64 `json:"base_height"`
	HeightIncrease float64 `json:"height_increase"`
}

type CatchingParameters struct {
	Enabled bool `json:"enabled"`

	// Capture point = center of mass + gain * center of mass velocity.
	CapturePointGain float64 `json:"capture_point_gain"`

	// The support region is the bounding box of both soles, grown by the
	// margin on every side.
	FootLength float64 `json:"foot_length"`
	FootWidth  float64 `json:"foot_width"`
	Margin     float64 `json:"margin"`

	// Maximum distance the swing foot target is moved per axis.
	MaxAdjustment float64 `json:"max_adjustment"`
}

type KickParameters struct {
	Forward KickStepParameters `json:"forward"`
	Turn    KickStepParameters `json:"turn"`
	Side    KickStepParameters `json:"side"`
}

// KickStepParameters describe one kick step for a left swing foot. They are
// mirrored for the right.
type KickStepParameters struct {
	BaseStep Step `json:"base_step"`

	// Peak offset of the swing foot at full strength, reached mid-step.
	Overshoot math3d.Pose `json:"overshoot"`
	Lift      float64     `json:"lift"`

	// Multiplies the planned step duration. Zero means unscaled.
	DurationScale float64 `json:"duration_scale"`
}

type ArmParameters struct {
	SwingFactor       float64 `json:"swing_factor"`
	BaseShoulderPitch float64 `json:"base_shoulder_pitch"`
	BaseShoulderRoll  float64 `json:"base_shoulder_roll"`
	BaseElbowYaw      float64 `json:"base_elbow_yaw"`
	BaseElbowRoll     float64 `json:"base_elbow_roll"`
	PullTightPitch    float64 `json:"pull_tight_pitch"`
	PullTightRoll     float64 `json:"pull_tight_roll"`
}

type GyroBalanceParameters struct {
	AnklePitchGain float64 `json:"ankle_pitch_gain"`
	AnkleRollGain  float64 `json:"ankle_roll_gain"`
}

type Stiffnesses struct {
	LegStiffnessWalk  float64 `json:"leg_stiffness_walk"`
	LegStiffnessStand float64 `json:"leg_stiffness_stand"`
	ArmStiffness      float64 `json:"arm_stiffness"`
}

// DefaultParameters returns parameters which work on a NAO on carpet.
func DefaultParameters() Parameters {
	return Parameters{
		MaxForwardAcceleration: 0.01,
		MaxTurnAcceleration:    0.1,
		ForwardTurnThreshold:   0.02,
		ForwardTurnReduction:   0.5,

		BaseStepDuration:     Duration{250 * time.Millisecond},
		StepDurationIncrease: Step{Forward: 0.5, Left: 0.5, Turn: 0.05},

		MinimumStepDurationRatio:   0.75,
		SwingFootPressureThreshold: 0.5,
		StepTimeout:                Duration{500 * time.Millisecond},

		Stance: StanceParameters{
			WalkHeight:     0.31,
			FootOffsetLeft: 0.052,
			TorsoOffset:    0.01,
		},

		Swing: SwingParameters{
			BaseHeight:     0.012,
			HeightIncrease: 0.05,
		},

		Catching: CatchingParameters{
			Enabled:          true,
			CapturePointGain: 0.18,
			FootLength:       0.16,
			FootWidth:        0.09,
			Margin:           0.03,
			MaxAdjustment:    0.04,
		},

		Kick: KickParameters{
			Forward: KickStepParameters{
				BaseStep:      Step{Forward: 0.05},
				Overshoot:     math3d.MakePose(0.08, 0, 0, 0),
				Lift:          0.02,
				DurationScale: 1.5,
			},
			Turn: KickStepParameters{
				BaseStep:      Step{Forward: 0.02, Turn: 0.3},
				Overshoot:     math3d.MakePose(0.05, 0.02, 0, 0.2),
				Lift:          0.015,
				DurationScale: 1.5,
			},
			Side: KickStepParameters{
				BaseStep:      Step{Left: 0.03},
				Overshoot:     math3d.MakePose(0, 0.06, 0, 0),
				Lift:          0.015,
				DurationScale: 1.5,
			},
		},

		Arms: ArmParameters{
			SwingFactor:       4.0,
			BaseShoulderPitch: 1.57,
			BaseShoulderRoll:  0.15,
			BaseElbowYaw:      1.2,
			BaseElbowRoll:     0.3,
			PullTightPitch:    1.8,
			PullTightRoll:     -0.05,
		},

		GyroBalance: GyroBalanceParameters{
			AnklePitchGain: 0.05,
			AnkleRollGain:  0.05,
		},

		Stiffnesses: Stiffnesses{
			LegStiffnessWalk:  0.9,
			LegStiffnessStand: 0.6,
			ArmStiffness:      0.3,
		},

		Dimensions: kinematics.DefaultDimensions,
	}
}
