// Package animation derives a discrete locomotion animation state from continuous
// movement and hands (clip name, playback rate) pairs to an external player.
package animation

import (
	"errors"
	"fmt"
)

// State is the playback state selected for a step.
type State uint8

const (
	Idle State = iota
	Walk
	Run
	Jump
)

const (
	ClipIdle = "idle"
	ClipWalk = "walk"
	ClipRun  = "run"
	ClipJump = "jump"
)

func (s State) ClipName() string {
	switch s {
	case Walk:
		return ClipWalk
	case Run:
		return ClipRun
	case Jump:
		return ClipJump
	default:
		return ClipIdle
	}
}

func (s State) String() string {
	return s.ClipName()
}

// Phase is the ground contact latch. Jump is entered only on the Grounded to Airborne
// edge and left only on the Airborne to Grounded edge.
type Phase uint8

const (
	Grounded Phase = iota
	Airborne
)

func (p Phase) String() string {
	if p == Airborne {
		return "airborne"
	}
	return "grounded"
}

const (
	DefaultIdleSpeed = 1.0
	DefaultWalkSpeed = 1.5
	DefaultRunSpeed  = 2.0

	// MovingThreshold is the speed above which the character counts as moving.
	MovingThreshold = 0.1
)

var ErrInvalidSpeeds = errors.New("invalid animation speeds")

// Speeds are the playback-rate multipliers per state. Jump plays at Idle.
type Speeds struct {
	Idle float32 `yaml:"idle_speed"`
	Walk float32 `yaml:"walk_speed"`
	Run  float32 `yaml:"run_speed"`
}

func DefaultSpeeds() Speeds {
	return Speeds{Idle: DefaultIdleSpeed, Walk: DefaultWalkSpeed, Run: DefaultRunSpeed}
}

func (s Speeds) For(state State) float32 {
	switch state {
	case Walk:
		return s.Walk
	case Run:
		return s.Run
	default:
		return s.Idle
	}
}

func (s Speeds) Validate() error {
	var errs []error
	for _, st := range []State{Idle, Walk, Run} {
		if v := s.For(st); v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s_speed must be >= 0, got %v", ErrInvalidSpeeds, st, v))
		}
	}
	return errors.Join(errs...)
}
