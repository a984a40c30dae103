package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/animation"
)

const (
	EventJump           = "movement.jump"
	EventLand           = "movement.land"
	EventAnimationState = "animation.state"
)

// JumpEvent marks the tick a character left the ground, by jumping or by walking off an
// edge.
type JumpEvent struct {
	Tick     int
	Position mgl64.Vec3
}

type LandEvent struct {
	Tick     int
	Position mgl64.Vec3
	// FallSpeed is the downward speed just before contact.
	FallSpeed float32
	Airtime   int
}

type AnimationStateEvent struct {
	Tick int
	From animation.State
	To   animation.State
	Clip string
}
