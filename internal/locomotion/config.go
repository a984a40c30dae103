package locomotion

import (
	"errors"
	"fmt"
)

const (
	DefaultWalkSpeed    = 5.0
	DefaultSprintSpeed  = 8.0
	DefaultJumpVelocity = 4.5
	DefaultGravity      = 9.8
	DefaultAirControl   = 2.0
	DefaultInertia      = 10.0

	// AirControlMultiplier scales AirControl into the per-second steering rate.
	AirControlMultiplier = 3.0
)

var ErrInvalidConfig = errors.New("invalid movement config")

// Config is the movement tuning for one character. It is fixed for the lifetime of a
// controller.
type Config struct {
	WalkSpeed    float32 `yaml:"walk_speed"`
	SprintSpeed  float32 `yaml:"sprint_speed"`
	JumpVelocity float32 `yaml:"jump_velocity"`
	Gravity      float32 `yaml:"gravity"`
	AirControl   float32 `yaml:"air_control"`
	Inertia      float32 `yaml:"inertia"`
}

func DefaultConfig() Config {
	return Config{
		WalkSpeed:    DefaultWalkSpeed,
		SprintSpeed:  DefaultSprintSpeed,
		JumpVelocity: DefaultJumpVelocity,
		Gravity:      DefaultGravity,
		AirControl:   DefaultAirControl,
		Inertia:      DefaultInertia,
	}
}

// CurrentSpeed is the target horizontal speed for the given sprint modifier.
func (c Config) CurrentSpeed(sprint bool) float32 {
	if sprint {
		return c.SprintSpeed
	}
	return c.WalkSpeed
}

func (c Config) Validate() error {
	var errs []error
	if c.WalkSpeed <= 0 {
		errs = append(errs, fmt.Errorf("%w: walk_speed must be > 0, got %v", ErrInvalidConfig, c.WalkSpeed))
	}
	if c.SprintSpeed < c.WalkSpeed {
		errs = append(errs, fmt.Errorf("%w: sprint_speed (%v) < walk_speed (%v)", ErrInvalidConfig, c.SprintSpeed, c.WalkSpeed))
	}
	if c.JumpVelocity < 0 {
		errs = append(errs, fmt.Errorf("%w: jump_velocity must be >= 0, got %v", ErrInvalidConfig, c.JumpVelocity))
	}
	if c.Gravity < 0 {
		errs = append(errs, fmt.Errorf("%w: gravity must be >= 0, got %v", ErrInvalidConfig, c.Gravity))
	}
	if c.AirControl < 0 {
		errs = append(errs, fmt.Errorf("%w: air_control must be >= 0, got %v", ErrInvalidConfig, c.AirControl))
	}
	if c.Inertia < 0 {
		errs = append(errs, fmt.Errorf("%w: inertia must be >= 0, got %v", ErrInvalidConfig, c.Inertia))
	}
	return errors.Join(errs...)
}
