package controller

import (
	"errors"
	"fmt"

	"github.com/Versifine/stride/internal/animation"
	"github.com/Versifine/stride/internal/camera"
	"github.com/Versifine/stride/internal/locomotion"
)

type Config struct {
	Movement  locomotion.Config `yaml:"movement"`
	Camera    camera.Config     `yaml:"camera"`
	Animation animation.Speeds  `yaml:"animation"`
}

func DefaultConfig() Config {
	return Config{
		Movement:  locomotion.DefaultConfig(),
		Camera:    camera.DefaultConfig(),
		Animation: animation.DefaultSpeeds(),
	}
}

func (c Config) Validate() error {
	err := errors.Join(
		c.Movement.Validate(),
		c.Camera.Validate(),
		c.Animation.Validate(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
