// Package locomotion turns movement intent and ground contact into a new character
// velocity once per fixed step.
package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Versifine/stride/internal/ease"
)

// directionEpsilon is the squared length below which a rotated input is treated as no input.
const directionEpsilon = 1e-12

// Input is the movement intent sampled for one step.
type Input struct {
	// Axes is the strafe (x, right positive) and forward (y, forward positive) intent.
	Axes        mgl32.Vec2
	Sprint      bool
	JumpPressed bool
}

// Integrate returns the velocity for the next step. The grounded flag belongs to the
// collision system and is only read here.
func Integrate(velocity mgl32.Vec3, yaw float32, cfg Config, in Input, grounded bool, dt float32) mgl32.Vec3 {
	if dt <= 0 {
		return velocity
	}

	if !grounded {
		velocity[1] -= cfg.Gravity * dt
	}
	// After the gravity branch so a jump on a grounded frame is never cancelled.
	if grounded && in.JumpPressed {
		velocity[1] = cfg.JumpVelocity
	}

	direction := Direction(yaw, in.Axes)
	moving := direction != (mgl32.Vec3{})
	speed := cfg.CurrentSpeed(in.Sprint)
	horizontal := Horizontal(velocity)

	switch {
	case grounded && moving:
		horizontal = direction.Mul(speed)
	case grounded:
		horizontal = ease.Vec3(horizontal, mgl32.Vec3{}, ease.Weight(cfg.Inertia, dt))
	case moving:
		target := direction.Mul(speed)
		horizontal = ease.Vec3(horizontal, target, ease.Weight(cfg.AirControl*AirControlMultiplier, dt))
	}

	return mgl32.Vec3{horizontal.X(), velocity.Y(), horizontal.Z()}
}

// Direction maps input axes into a unit world-space direction on the XZ plane using the
// body's yaw. Forward intent points along -Z at zero yaw. No input yields the zero vector.
func Direction(yaw float32, axes mgl32.Vec2) mgl32.Vec3 {
	local := mgl32.Vec3{axes.X(), 0, -axes.Y()}
	world := mgl32.Rotate3DY(yaw).Mul3x1(local)
	if world.Dot(world) <= directionEpsilon {
		return mgl32.Vec3{}
	}
	return world.Normalize()
}

// Horizontal drops the vertical component.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}
