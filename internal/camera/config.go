package camera

import (
	"errors"
	"fmt"
)

const (
	DefaultSensitivity        = 0.003
	DefaultBobFrequency       = 2.0
	DefaultBobAmplitude       = 0.3
	DefaultBaseFov            = 75.0
	DefaultMaxFovIncrease     = 15.0
	DefaultFovTransitionSpeed = 2.0

	PitchLimitDegrees = 80.0
	MaxFov            = 180.0
)

var ErrInvalidConfig = errors.New("invalid camera config")

type Config struct {
	// Sensitivity is radians of rotation per pixel of mouse motion.
	Sensitivity  float32 `yaml:"sensitivity"`
	BobFrequency float32 `yaml:"bob_frequency"`
	BobAmplitude float32 `yaml:"bob_amplitude"`
	// BaseFov and MaxFovIncrease are in degrees.
	BaseFov        float32 `yaml:"base_fov"`
	MaxFovIncrease float32 `yaml:"max_fov_increase"`
	// FovTransitionSpeed is the easing rate in 1/second.
	FovTransitionSpeed float32 `yaml:"fov_transition_speed"`
}

func DefaultConfig() Config {
	return Config{
		Sensitivity:        DefaultSensitivity,
		BobFrequency:       DefaultBobFrequency,
		BobAmplitude:       DefaultBobAmplitude,
		BaseFov:            DefaultBaseFov,
		MaxFovIncrease:     DefaultMaxFovIncrease,
		FovTransitionSpeed: DefaultFovTransitionSpeed,
	}
}

// FovBounds returns the closed range every eased FOV value stays within.
func (c Config) FovBounds() (float32, float32) {
	return c.BaseFov, c.BaseFov + c.MaxFovIncrease
}

func (c Config) Validate() error {
	var errs []error
	if c.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("%w: sensitivity must be > 0, got %v", ErrInvalidConfig, c.Sensitivity))
	}
	if c.BobFrequency < 0 {
		errs = append(errs, fmt.Errorf("%w: bob_frequency must be >= 0, got %v", ErrInvalidConfig, c.BobFrequency))
	}
	if c.BobAmplitude < 0 {
		errs = append(errs, fmt.Errorf("%w: bob_amplitude must be >= 0, got %v", ErrInvalidConfig, c.BobAmplitude))
	}
	if c.BaseFov <= 0 || c.BaseFov >= MaxFov {
		errs = append(errs, fmt.Errorf("%w: base_fov must be in (0, %v), got %v", ErrInvalidConfig, MaxFov, c.BaseFov))
	}
	if c.MaxFovIncrease < 0 {
		errs = append(errs, fmt.Errorf("%w: max_fov_increase must be >= 0, got %v", ErrInvalidConfig, c.MaxFovIncrease))
	} else if c.BaseFov+c.MaxFovIncrease >= MaxFov {
		errs = append(errs, fmt.Errorf("%w: base_fov + max_fov_increase must stay below %v", ErrInvalidConfig, MaxFov))
	}
	if c.FovTransitionSpeed <= 0 {
		errs = append(errs, fmt.Errorf("%w: fov_transition_speed must be > 0, got %v", ErrInvalidConfig, c.FovTransitionSpeed))
	}
	return errors.Join(errs...)
}
