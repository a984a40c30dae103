package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Versifine/stride/internal/controller"
)

var ErrInvalidSimulation = errors.New("invalid simulation config")

type Config struct {
	controller.Config `yaml:",inline"`

	Logging    LoggingConfig    `yaml:"logging"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type SimulationConfig struct {
	// TickRate is the fixed step frequency in Hz.
	TickRate int `yaml:"tick_rate"`
	// Duration bounds the run. Zero runs until the input source is exhausted.
	Duration time.Duration `yaml:"duration"`
	// Realtime paces ticks against the wall clock instead of running flat out.
	Realtime bool `yaml:"realtime"`
	// Script is an optional input script; without one the character stands still.
	Script string     `yaml:"script"`
	Spawn  [3]float64 `yaml:"spawn"`
	// EyeHeight is the camera rest offset above the feet.
	EyeHeight float32     `yaml:"eye_height"`
	World     WorldConfig `yaml:"world"`
}

type WorldConfig struct {
	// FloorRadius is the half extent of the square floor laid at y = -1.
	FloorRadius int         `yaml:"floor_radius"`
	Boxes       []BoxConfig `yaml:"boxes"`
}

type BoxConfig struct {
	Min [3]int `yaml:"min"`
	Max [3]int `yaml:"max"`
}

func Default() *Config {
	return &Config{
		Config: controller.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Simulation: SimulationConfig{
			TickRate:  60,
			Duration:  10 * time.Second,
			EyeHeight: 1.6,
			World:     WorldConfig{FloorRadius: 32},
		},
	}
}

// TickInterval is the fixed step length in seconds.
func (s SimulationConfig) TickInterval() float32 {
	return 1 / float32(s.TickRate)
}

// Ticks is how many fixed steps Duration spans.
func (s SimulationConfig) Ticks() int {
	return int(s.Duration.Seconds() * float64(s.TickRate))
}

func (s SimulationConfig) Validate() error {
	var errs []error
	if s.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: tick_rate must be > 0, got %d", ErrInvalidSimulation, s.TickRate))
	}
	if s.Duration < 0 {
		errs = append(errs, fmt.Errorf("%w: duration must be >= 0, got %s", ErrInvalidSimulation, s.Duration))
	}
	if s.World.FloorRadius < 0 {
		errs = append(errs, fmt.Errorf("%w: floor_radius must be >= 0, got %d", ErrInvalidSimulation, s.World.FloorRadius))
	}
	return errors.Join(errs...)
}

func (c *Config) Validate() error {
	return errors.Join(c.Config.Validate(), c.Simulation.Validate())
}

// Load reads a YAML file over the defaults and validates the result. Keys the file leaves
// out keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
